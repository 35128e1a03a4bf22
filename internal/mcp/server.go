package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"helpcenter/internal/faq"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewServer creates an MCP server with tools for browsing the help center
func NewServer(svc *faq.Service) *server.MCPServer {
	s := server.NewMCPServer(
		"Help Center",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	// Tool: list_categories - List FAQ categories with counts
	s.AddTool(
		mcp.NewTool("list_categories",
			mcp.WithDescription("List the FAQ categories with the number of questions in each. \"All\" covers every question."),
		),
		handleListCategories(svc),
	)

	// Tool: search_faqs - Filter and sort the FAQ list
	s.AddTool(
		mcp.NewTool("search_faqs",
			mcp.WithDescription("Search the help-center FAQ. Matches the query case-insensitively against questions and answers, optionally restricted to one category, ordered by question."),
			mcp.WithString("query",
				mcp.Description("Optional: text to look for in questions and answers"),
			),
			mcp.WithString("category",
				mcp.Description("Optional: category name (default: All)"),
			),
			mcp.WithString("sort",
				mcp.Description("Optional: question order, asc or desc (default: asc)"),
				mcp.Enum(string(faq.SortAsc), string(faq.SortDesc)),
			),
		),
		handleSearchFaqs(svc),
	)

	return s
}

// FaqResult represents a FAQ entry in tool responses
type FaqResult struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

func handleListCategories(svc *faq.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		data, err := json.MarshalIndent(svc.CategoryCounts(), "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to encode categories: %v", err)), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	}
}

func handleSearchFaqs(svc *faq.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		sort := req.GetString("sort", "")
		if sort != "" && !strings.EqualFold(sort, string(faq.SortAsc)) && !strings.EqualFold(sort, string(faq.SortDesc)) {
			return mcp.NewToolResultError(fmt.Sprintf("invalid sort %q: expected asc or desc", sort)), nil
		}

		st := faq.NewViewState(
			req.GetString("query", ""),
			req.GetString("category", ""),
			sort,
		)

		records := svc.Derive(st)
		if len(records) == 0 {
			return mcp.NewToolResultText(faq.NoResultsMessage), nil
		}

		data, err := json.MarshalIndent(faqsToResults(records), "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to encode faqs: %v", err)), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	}
}

// Helper functions

func faqsToResults(records []faq.Record) []FaqResult {
	results := make([]FaqResult, len(records))
	for i, r := range records {
		results[i] = FaqResult{
			Question: r.Question,
			Answer:   r.Answer,
			Category: r.Category,
		}
	}
	return results
}
