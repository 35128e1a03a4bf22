package faq

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
)

type Service struct {
	records    []Record
	categories []string
	md         goldmark.Markdown
	answers    map[string]string // question -> rendered answer HTML
}

// NewService builds a service over the given records. Answers are rendered
// once up front since the catalog never changes.
func NewService(records []Record, categories []string) (*Service, error) {
	s := &Service{
		records:    records,
		categories: categories,
		md:         goldmark.New(),
		answers:    make(map[string]string, len(records)),
	}
	for _, r := range records {
		if _, dup := s.answers[r.Question]; dup {
			return nil, fmt.Errorf("duplicate question %q", r.Question)
		}
		out, err := s.renderMarkdown(r.Answer)
		if err != nil {
			return nil, fmt.Errorf("render answer for %q: %w", r.Question, err)
		}
		s.answers[r.Question] = out
	}
	return s, nil
}

// NewDefaultService serves the built-in help-center catalog
func NewDefaultService() (*Service, error) {
	return NewService(Records(), Categories)
}

// Derive returns the records visible under st in display order
func (s *Service) Derive(st ViewState) []Record {
	return Apply(s.records, st)
}

// Categories returns the selector options
func (s *Service) Categories() []string {
	return s.categories
}

// CategoryCounts returns each selector option with its record count
func (s *Service) CategoryCounts() []CategoryCount {
	counts := make([]CategoryCount, len(s.categories))
	for i, name := range s.categories {
		n := len(s.records)
		if name != AllCategories {
			n = 0
			for _, r := range s.records {
				if r.Category == name {
					n++
				}
			}
		}
		counts[i] = CategoryCount{Name: name, Count: n}
	}
	return counts
}

// Count returns the size of the catalog
func (s *Service) Count() int {
	return len(s.records)
}

// RenderAnswer returns the HTML for a record's answer
func (s *Service) RenderAnswer(r Record) string {
	if out, ok := s.answers[r.Question]; ok {
		return out
	}
	out, err := s.renderMarkdown(r.Answer)
	if err != nil {
		return html.EscapeString(r.Answer)
	}
	return out
}

func (s *Service) renderMarkdown(content string) (string, error) {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
