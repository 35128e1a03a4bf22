package models

// FaqView represents a FAQ entry for template rendering
type FaqView struct {
	Question   string
	Category   string
	AnswerHTML string // rendered markdown
}

// OptionView is a single <option> of a selector
type OptionView struct {
	Value    string
	Label    string
	Selected bool
}

// NavLink is a header navigation entry
type NavLink struct {
	Label string
	Href  string
}

// SearchView carries the current view state into the search form
type SearchView struct {
	Query      string
	Categories []OptionView
	Sorts      []OptionView
}

// PageView is everything the help-center page needs
type PageView struct {
	Title        string
	Brand        string
	Nav          []NavLink
	Search       SearchView
	Faqs         []FaqView
	EmptyMessage string
	Year         int
}
