package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nyayvidhi/nyaya/internal/core/domain"
)

// uriScheme is the URI scheme for nyaya resources.
const uriScheme = "nyaya://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	for _, kind := range domain.DatasetKinds() {
		s.server.AddResource(&mcp.Resource{
			URI:         chaptersURI(kind),
			Name:        kind.String() + "-chapters",
			Description: kind.Title() + " grouped by chapter",
			MIMEType:    "application/json",
		}, s.handleChaptersResource)
	}

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "chapters/{code}",
		Name:        "chapters",
		Description: "Chapter outline of a legal code (ipc or cpc)",
		MIMEType:    "application/json",
	}, s.handleChaptersResource)
}

// handleChaptersResource returns the chapter outline of one legal code.
func (s *Server) handleChaptersResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	kind, ok := extractCode(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	chapters, err := s.ports.Legal.Chapters(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", kind, err)
	}

	data, err := json.MarshalIndent(chapters, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling chapters: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractCode extracts the legal code from a URI like nyaya://chapters/{code}.
func extractCode(uri string) (domain.DatasetKind, bool) {
	const prefix = uriScheme + "chapters/"

	if !strings.HasPrefix(uri, prefix) {
		return "", false
	}
	kind, err := domain.ParseDatasetKind(strings.TrimPrefix(uri, prefix))
	if err != nil {
		return "", false
	}
	return kind, true
}
