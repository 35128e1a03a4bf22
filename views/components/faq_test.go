package components

import (
	"bytes"
	"context"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpcenter/views/models"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestFaqCardList_Empty(t *testing.T) {
	got := render(t, FaqCardList(nil, "No results found."))
	assert.Equal(t, `<p class="faq-empty">No results found.</p>`, got)
}

func TestFaqCard_EscapesText(t *testing.T) {
	got := render(t, FaqCard(models.FaqView{
		Question:   `Is <b> allowed & "quoted"?`,
		Category:   "Account",
		AnswerHTML: "<p>Yes.</p>",
	}))

	assert.Contains(t, got, `data-category="Account"`)
	assert.Contains(t, got, "Is &lt;b&gt; allowed &amp; &#34;quoted&#34;?")
	assert.Contains(t, got, `<div class="faq-answer"><p>Yes.</p></div>`)
}

func TestSearchForm_SelectsCurrentOptions(t *testing.T) {
	got := render(t, SearchForm(models.SearchView{
		Query: "book",
		Categories: []models.OptionView{
			{Value: "All", Label: "All"},
			{Value: "Booking", Label: "Booking", Selected: true},
		},
		Sorts: []models.OptionView{
			{Value: "asc", Label: "A–Z", Selected: true},
			{Value: "desc", Label: "Z–A"},
		},
	}))

	assert.Contains(t, got, `name="q" placeholder="Search for help..." autocomplete="off" value="book"`)
	assert.Contains(t, got, `<select name="category"><option value="All">All</option><option value="Booking" selected>Booking</option></select>`)
	assert.Contains(t, got, `<option value="asc" selected>A–Z</option><option value="desc">Z–A</option>`)
	assert.Contains(t, got, `hx-target="#`+FaqListID+`"`)
	// Selectors must not also trigger on input, which would fire two requests per change
	assert.Contains(t, got, `hx-trigger="input changed from:input[name=q], change from:select"`)
}

func TestHeaderAndFooter(t *testing.T) {
	header := render(t, Header("Acme", "Help", []models.NavLink{{Label: "Home", Href: "/"}, {Label: "Bad", Href: "javascript:alert(1)"}}))
	assert.Contains(t, header, `alt="Acme Logo"`)
	assert.Contains(t, header, `<h1 class="brand-title">Help</h1>`)
	assert.Contains(t, header, `<a href="/">Home</a>`)
	assert.NotContains(t, header, "javascript:")

	footer := render(t, Footer("Acme", 2030))
	assert.Equal(t, `<footer class="site-footer"><p>&copy; 2030 Acme. All rights reserved.</p></footer>`, footer)
}
