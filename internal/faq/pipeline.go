package faq

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// collationTag selects the collation rules used to order questions
var collationTag = language.English

// Matches reports whether a record passes the category and text filters
func Matches(r Record, st ViewState) bool {
	return newMatcher(st).match(r)
}

// Filter keeps the records visible under st, preserving input order
func Filter(records []Record, st ViewState) []Record {
	m := newMatcher(st)
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if m.match(r) {
			out = append(out, r)
		}
	}
	return out
}

// Sort orders records by question using locale-aware collation. Equal
// questions keep their input order when ascending; descending is the
// exact reverse of the ascending result.
func Sort(records []Record, order SortOrder) []Record {
	out := slices.Clone(records)
	// Collators keep internal buffers and are not safe for concurrent use
	col := collate.New(collationTag)
	slices.SortStableFunc(out, func(a, b Record) int {
		return col.CompareString(a.Question, b.Question)
	})
	if order == SortDesc {
		slices.Reverse(out)
	}
	return out
}

// Apply runs filter then sort and returns the derived list
func Apply(records []Record, st ViewState) []Record {
	return Sort(Filter(records, st), st.Sort)
}

type matcher struct {
	category string
	query    string
	fold     cases.Caser
}

func newMatcher(st ViewState) matcher {
	category := st.Category
	if category == "" {
		category = AllCategories
	}
	m := matcher{category: category, fold: cases.Fold()}
	m.query = m.fold.String(st.Query)
	return m
}

func (m matcher) match(r Record) bool {
	if m.category != AllCategories && r.Category != m.category {
		return false
	}
	if m.query == "" {
		return true
	}
	return strings.Contains(m.fold.String(r.Question), m.query) ||
		strings.Contains(m.fold.String(r.Answer), m.query)
}
