package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/slidedeck/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for slidedeck resources.
	uriScheme = "slidedeck://"

	mimeJSON     = "application/json"
	mimeMarkdown = "text/markdown"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// The deck as a presentation document.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "slides",
		Name:        "slides",
		Description: "The deck as a JSON presentation document",
		MIMEType:    mimeJSON,
	}, s.handleSlidesResource)

	// The deck as markdown.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "markdown",
		Name:        "markdown",
		Description: "The deck as one markdown document",
		MIMEType:    mimeMarkdown,
	}, s.handleMarkdownResource)

	// Template for a single slide.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "slides/{number}",
		Name:        "slide",
		Description: "A single slide by its 1-based number",
		MIMEType:    mimeJSON,
	}, s.handleSlideResource)
}

// handleSlidesResource returns the whole deck as JSON.
func (s *Server) handleSlidesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	data, err := domain.EncodeDocument(s.ports.Deck.Slides())
	if err != nil {
		return nil, fmt.Errorf("marshalling slides: %w", err)
	}

	return textResult(req.Params.URI, mimeJSON, string(data)), nil
}

// handleMarkdownResource returns the deck serialized as markdown.
func (s *Server) handleMarkdownResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return textResult(req.Params.URI, mimeMarkdown, s.ports.Deck.Markdown()), nil
}

// handleSlideResource returns one slide as JSON.
func (s *Server) handleSlideResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	number := extractSlideNumber(req.Params.URI)
	if number < 1 {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	slide, err := s.ports.Deck.Slide(number - 1)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	data, err := json.MarshalIndent(slide, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling slide: %w", err)
	}

	return textResult(req.Params.URI, mimeJSON, string(data)), nil
}

func textResult(uri, mimeType, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: mimeType,
			Text:     text,
		}},
	}
}

// extractSlideNumber extracts the slide number from a URI like
// slidedeck://slides/{number}. Returns 0 when the URI does not match.
func extractSlideNumber(uri string) int {
	const prefix = uriScheme + "slides/"

	if !strings.HasPrefix(uri, prefix) {
		return 0
	}

	n, err := strconv.Atoi(strings.TrimPrefix(uri, prefix))
	if err != nil {
		return 0
	}
	return n
}
