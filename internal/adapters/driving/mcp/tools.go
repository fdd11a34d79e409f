package mcp

import (
	"context"
	"errors"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nyayvidhi/nyaya/internal/core/domain"
)

const defaultLimit = 20

// errNoFIRService is returned by get_fir when no FIR service is wired.
var errNoFIRService = errors.New("fir lookup is not available")

// SearchInput is the input schema for the search_sections tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"words to look for in section numbers and descriptions"`
	Code  string `json:"code,omitempty" jsonschema:"legal code to search: ipc (default) or cpc"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of sections to return (default 20)"`
}

// SearchOutput is the output schema for the search_sections tool.
type SearchOutput struct {
	Code    string          `json:"code"`
	Query   string          `json:"query"`
	Count   int             `json:"count"`
	Results []SectionOutput `json:"results"`
}

// SectionOutput is one section in tool output.
type SectionOutput struct {
	Chapter     string `json:"chapter"`
	Number      string `json:"number"`
	Description string `json:"description"`

	// Highlighted marks matched words with double asterisks.
	Highlighted string `json:"highlighted,omitempty"`
}

// GetSectionInput is the input schema for the get_section tool.
type GetSectionInput struct {
	Number string `json:"number" jsonschema:"section number, for example 378"`
	Code   string `json:"code,omitempty" jsonschema:"legal code: ipc (default) or cpc"`
}

// GetSectionOutput is the output schema for the get_section tool.
type GetSectionOutput struct {
	Code        string `json:"code"`
	Number      int    `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Chapter     string `json:"chapter,omitempty"`
}

// GetFIRInput is the input schema for the get_fir tool.
type GetFIRInput struct {
	ID string `json:"id" jsonschema:"FIR number, for example FIR2025001"`
}

// GetFIROutput is the output schema for the get_fir tool.
type GetFIROutput struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
	Station     string `json:"station"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_sections",
		Description: "Search the Indian Penal Code or the Code of Civil Procedure. Every word of the query must match.",
	}, s.handleSearchSections)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_section",
		Description: "Read one section of the IPC or CPC by number",
	}, s.handleGetSection)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_fir",
		Description: "Look up the status of a registered First Information Report",
	}, s.handleGetFIR)
}

func (s *Server) handleSearchSections(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	kind, err := parseCode(input.Code)
	if err != nil {
		return nil, SearchOutput{}, err
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	result, err := s.ports.Legal.Search(ctx, kind, input.Query)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Code:    kind.String(),
		Query:   input.Query,
		Count:   result.Count(),
		Results: []SectionOutput{},
	}
	for _, ch := range result.Chapters {
		for _, m := range ch.Sections {
			if len(output.Results) == limit {
				return nil, output, nil
			}
			out := SectionOutput{
				Chapter:     ch.Title,
				Number:      m.Section.Number,
				Description: m.Section.Description,
			}
			if strings.TrimSpace(input.Query) != "" {
				out.Highlighted = markSpans(m.DescriptionSpans)
			}
			output.Results = append(output.Results, out)
		}
	}
	return nil, output, nil
}

func (s *Server) handleGetSection(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetSectionInput,
) (*mcp.CallToolResult, GetSectionOutput, error) {
	kind, err := parseCode(input.Code)
	if err != nil {
		return nil, GetSectionOutput{}, err
	}
	section, err := s.ports.Legal.Section(ctx, kind, input.Number)
	if err != nil {
		return nil, GetSectionOutput{}, err
	}
	return nil, GetSectionOutput{
		Code:        kind.String(),
		Number:      section.Number,
		Title:       section.Title,
		Description: section.Description,
		Chapter:     section.Chapter,
	}, nil
}

func (s *Server) handleGetFIR(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetFIRInput,
) (*mcp.CallToolResult, GetFIROutput, error) {
	if s.ports.FIR == nil {
		return nil, GetFIROutput{}, errNoFIRService
	}
	fir, err := s.ports.FIR.Lookup(ctx, input.ID)
	if err != nil {
		return nil, GetFIROutput{}, err
	}
	return nil, GetFIROutput{
		ID:          fir.ID,
		Status:      fir.Status.String(),
		StatusLabel: fir.Status.Label(domain.DefaultLanguage),
		Station:     fir.Station,
		Date:        fir.Date,
		Type:        fir.Type,
		Description: fir.Description,
		URL:         fir.URL,
	}, nil
}

// parseCode defaults a blank code to the IPC.
func parseCode(code string) (domain.DatasetKind, error) {
	if strings.TrimSpace(code) == "" {
		return domain.DatasetIPC, nil
	}
	return domain.ParseDatasetKind(code)
}

// markSpans renders spans with matched runs wrapped in double asterisks.
func markSpans(spans []domain.Span) string {
	var b strings.Builder
	for _, sp := range spans {
		if sp.Matched {
			b.WriteString("**" + sp.Text + "**")
		} else {
			b.WriteString(sp.Text)
		}
	}
	return b.String()
}

// chaptersURI is the resource URI of a code's outline.
func chaptersURI(kind domain.DatasetKind) string {
	return uriScheme + "chapters/" + kind.String()
}
