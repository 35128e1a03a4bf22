package faq

import (
	"net/url"
	"strings"
)

// AllCategories is the selector value that disables category filtering
const AllCategories = "All"

// NoResultsMessage is rendered in place of the list when nothing matches
const NoResultsMessage = "No results found."

// SortOrder is the direction of the question ordering
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Label returns the selector caption for the sort order
func (o SortOrder) Label() string {
	if o == SortDesc {
		return "Z–A"
	}
	return "A–Z"
}

// ParseSortOrder maps anything other than "desc" to ascending
func ParseSortOrder(s string) SortOrder {
	if strings.EqualFold(strings.TrimSpace(s), string(SortDesc)) {
		return SortDesc
	}
	return SortAsc
}

// Record is a single static question/answer pair
type Record struct {
	Question string `json:"question"`
	Answer   string `json:"answer"` // markdown
	Category string `json:"category"`
}

// ViewState holds the user-controlled inputs of the FAQ view
type ViewState struct {
	Query    string    `json:"query"`
	Category string    `json:"category"`
	Sort     SortOrder `json:"sort"`
}

// DefaultViewState is the state of a freshly loaded page
func DefaultViewState() ViewState {
	return ViewState{Category: AllCategories, Sort: SortAsc}
}

// NewViewState builds a state from raw input values, filling defaults
func NewViewState(query, category, sort string) ViewState {
	st := DefaultViewState()
	st.Query = query
	if c := strings.TrimSpace(category); c != "" {
		st.Category = c
	}
	st.Sort = ParseSortOrder(sort)
	return st
}

// ViewStateFromQuery reads q, category and sort from URL query values
func ViewStateFromQuery(v url.Values) ViewState {
	return NewViewState(v.Get("q"), v.Get("category"), v.Get("sort"))
}

// Values encodes the state back into URL query values
func (s ViewState) Values() url.Values {
	v := url.Values{}
	if s.Query != "" {
		v.Set("q", s.Query)
	}
	if s.Category != "" && s.Category != AllCategories {
		v.Set("category", s.Category)
	}
	if s.Sort == SortDesc {
		v.Set("sort", string(SortDesc))
	}
	return v
}

// CategoryCount is a selector category with the number of records under it
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
