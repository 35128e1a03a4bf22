package faq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultService(t *testing.T) {
	svc, err := NewDefaultService()
	require.NoError(t, err)

	assert.Equal(t, 5, svc.Count())
	assert.Equal(t, []string{"All", "Booking", "Payments", "Account"}, svc.Categories())
}

func TestNewService_RejectsDuplicateQuestions(t *testing.T) {
	records := []Record{
		{Question: "Q", Answer: "a", Category: "Booking"},
		{Question: "Q", Answer: "b", Category: "Account"},
	}
	_, err := NewService(records, Categories)
	assert.Error(t, err)
}

func TestService_CategoryCounts(t *testing.T) {
	svc, err := NewDefaultService()
	require.NoError(t, err)

	assert.Equal(t, []CategoryCount{
		{Name: "All", Count: 5},
		{Name: "Booking", Count: 2},
		{Name: "Payments", Count: 1},
		{Name: "Account", Count: 2},
	}, svc.CategoryCounts())
}

func TestService_RenderAnswer(t *testing.T) {
	records := []Record{
		{Question: "Markdown?", Answer: "Use **bold** text.", Category: "Account"},
		{Question: "HTML?", Answer: "<script>alert(1)</script>", Category: "Account"},
	}
	svc, err := NewService(records, Categories)
	require.NoError(t, err)

	assert.Equal(t, "<p>Use <strong>bold</strong> text.</p>\n", svc.RenderAnswer(records[0]))
	assert.NotContains(t, svc.RenderAnswer(records[1]), "<script>")

	// Records outside the catalog are rendered on demand
	assert.Contains(t, svc.RenderAnswer(Record{Question: "new", Answer: "*hi*"}), "<em>hi</em>")
}

func TestService_Derive(t *testing.T) {
	svc, err := NewDefaultService()
	require.NoError(t, err)

	// "support" is also a substring of "supported"
	got := svc.Derive(NewViewState("support", AllCategories, "asc"))
	require.Len(t, got, 2)
	assert.Equal(t, "How can I contact support?", got[0].Question)
	assert.Equal(t, "Account", got[0].Category)
	assert.Equal(t, "What payment methods are supported?", got[1].Question)

	got = svc.Derive(NewViewState("contact", AllCategories, "asc"))
	require.Len(t, got, 1)
	assert.Equal(t, "How can I contact support?", got[0].Question)
}
