package faq

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"helpcenter/views/components"
	"helpcenter/views/models"
	"helpcenter/views/pages"
)

// Site holds the static branding shown around the FAQ list
type Site struct {
	Title string
	Brand string
	Nav   []models.NavLink
}

// DefaultSite is the Yaadgarpal help-center branding
func DefaultSite() Site {
	return Site{
		Title: "Yaadgarpal Help Center",
		Brand: "Yaadgarpal",
		Nav: []models.NavLink{
			{Label: "Home", Href: "#"},
			{Label: "Events", Href: "#"},
			{Label: "Contact", Href: "#"},
		},
	}
}

type Handler struct {
	svc  *Service
	log  *slog.Logger
	site Site
	now  func() time.Time
}

func NewHandler(svc *Service, site Site, log *slog.Logger) *Handler {
	return &Handler{svc: svc, log: log, site: site, now: time.Now}
}

// --- REST API Handlers ---

// FaqsResponse is the JSON body of GET /api/faqs
type FaqsResponse struct {
	State   ViewState `json:"state"`
	Count   int       `json:"count"`
	Faqs    []Record  `json:"faqs"`
	Message string    `json:"message,omitempty"`
}

// ListFaqs handles GET /api/faqs
func (h *Handler) ListFaqs(w http.ResponseWriter, r *http.Request) {
	st := ViewStateFromQuery(r.URL.Query())
	faqs := h.svc.Derive(st)

	resp := FaqsResponse{State: st, Count: len(faqs), Faqs: faqs}
	if len(faqs) == 0 {
		resp.Message = NoResultsMessage
	}
	h.jsonResponse(w, resp, http.StatusOK)
}

// ListCategories handles GET /api/categories
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, h.svc.CategoryCounts(), http.StatusOK)
}

// --- Helper methods ---

func (h *Handler) jsonResponse(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error("failed to encode response", "error", err)
	}
}

// --- View model converters ---

func (h *Handler) faqsToViews(faqs []Record) []models.FaqView {
	views := make([]models.FaqView, len(faqs))
	for i, faq := range faqs {
		views[i] = models.FaqView{
			Question:   faq.Question,
			Category:   faq.Category,
			AnswerHTML: h.svc.RenderAnswer(faq),
		}
	}
	return views
}

func (h *Handler) searchView(st ViewState) models.SearchView {
	categories := make([]models.OptionView, len(h.svc.Categories()))
	for i, name := range h.svc.Categories() {
		categories[i] = models.OptionView{Value: name, Label: name, Selected: name == st.Category}
	}

	sorts := make([]models.OptionView, 0, 2)
	for _, o := range []SortOrder{SortAsc, SortDesc} {
		sorts = append(sorts, models.OptionView{Value: string(o), Label: o.Label(), Selected: o == st.Sort})
	}

	return models.SearchView{Query: st.Query, Categories: categories, Sorts: sorts}
}

// --- HTMX Web Handlers ---

// PageURL is the address of the full page showing st
func PageURL(st ViewState) string {
	if v := st.Values(); len(v) > 0 {
		return "/?" + v.Encode()
	}
	return "/"
}

// HelpPage handles GET /
func (h *Handler) HelpPage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	st := ViewStateFromQuery(r.URL.Query())
	page := models.PageView{
		Title:        h.site.Title,
		Brand:        h.site.Brand,
		Nav:          h.site.Nav,
		Search:       h.searchView(st),
		Faqs:         h.faqsToViews(h.svc.Derive(st)),
		EmptyMessage: NoResultsMessage,
		Year:         h.now().Year(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.HelpPage(page).Render(r.Context(), w); err != nil {
		h.log.Error("failed to render help page", "error", err)
	}
}

// FaqsFragment handles GET /fragments/faqs (HTMX partial)
func (h *Handler) FaqsFragment(w http.ResponseWriter, r *http.Request) {
	st := ViewStateFromQuery(r.URL.Query())
	faqs := h.faqsToViews(h.svc.Derive(st))

	// Keep the address bar in sync so reloads and shared links restore the view
	w.Header().Set("HX-Push-Url", PageURL(st))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := components.FaqCardList(faqs, NoResultsMessage).Render(r.Context(), w); err != nil {
		h.log.Error("failed to render faq fragment", "error", err)
	}
}
