package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/slidedeck/internal/core/domain"
)

// ListSlidesInput is the input schema for the list_slides tool.
type ListSlidesInput struct{}

// ListSlidesOutput is the output schema for the list_slides tool.
type ListSlidesOutput struct {
	Slides []SlideOutput `json:"slides"`
	Count  int           `json:"count"`
}

// SlideOutput represents a single slide. Number is 1-based.
type SlideOutput struct {
	Number   int      `json:"number"`
	Type     string   `json:"type"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	Content  string   `json:"content,omitempty"`
	Points   []string `json:"points,omitempty"`
}

// GetMarkdownInput is the input schema for the get_markdown tool.
type GetMarkdownInput struct{}

// MarkdownOutput carries a markdown document.
type MarkdownOutput struct {
	Markdown string `json:"markdown"`
}

// CommitMarkdownInput is the input schema for the commit_markdown tool.
type CommitMarkdownInput struct {
	Markdown string `json:"markdown" jsonschema:"the whole deck as markdown; slides are separated by a line containing only ---"`
}

// DeckSizeOutput reports the slide count after a change.
type DeckSizeOutput struct {
	Count int `json:"count"`
}

// AddSlideInput is the input schema for the add_slide tool.
type AddSlideInput struct {
	Type string `json:"type" jsonschema:"slide type: title, content or list"`
}

// AddSlideOutput is the output schema for the add_slide tool.
type AddSlideOutput struct {
	Number int `json:"number"`
	Count  int `json:"count"`
}

// DeleteSlideInput is the input schema for the delete_slide tool.
type DeleteSlideInput struct {
	Number int `json:"number" jsonschema:"1-based number of the slide to delete"`
}

// UpdateSlideInput is the input schema for the update_slide tool.
// Omitted fields are left unchanged.
type UpdateSlideInput struct {
	Number   int       `json:"number" jsonschema:"1-based number of the slide to edit"`
	Title    *string   `json:"title,omitempty" jsonschema:"new title"`
	Subtitle *string   `json:"subtitle,omitempty" jsonschema:"new subtitle, title slides only"`
	Content  *string   `json:"content,omitempty" jsonschema:"new paragraph, content slides only"`
	Points   *[]string `json:"points,omitempty" jsonschema:"new bullet points, content and list slides only"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_slides",
		Description: "List every slide in presentation order",
	}, s.handleListSlides)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_markdown",
		Description: "Get the whole deck as one markdown document",
	}, s.handleGetMarkdown)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "commit_markdown",
		Description: "Replace the whole deck with the slides parsed from a markdown document",
	}, s.handleCommitMarkdown)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_slide",
		Description: "Append a placeholder slide of the given type",
	}, s.handleAddSlide)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "delete_slide",
		Description: "Delete a slide; later slides move up by one",
	}, s.handleDeleteSlide)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "update_slide",
		Description: "Edit individual fields of a slide",
	}, s.handleUpdateSlide)
}

// handleListSlides handles the list_slides tool invocation.
func (s *Server) handleListSlides(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ListSlidesInput,
) (*mcp.CallToolResult, ListSlidesOutput, error) {
	slides := s.ports.Deck.Slides()

	output := ListSlidesOutput{
		Slides: make([]SlideOutput, len(slides)),
		Count:  len(slides),
	}
	for i, slide := range slides {
		output.Slides[i] = toSlideOutput(i, slide)
	}

	return nil, output, nil
}

// handleGetMarkdown handles the get_markdown tool invocation.
func (s *Server) handleGetMarkdown(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ GetMarkdownInput,
) (*mcp.CallToolResult, MarkdownOutput, error) {
	return nil, MarkdownOutput{Markdown: s.ports.Deck.Markdown()}, nil
}

// handleCommitMarkdown handles the commit_markdown tool invocation.
func (s *Server) handleCommitMarkdown(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CommitMarkdownInput,
) (*mcp.CallToolResult, DeckSizeOutput, error) {
	if err := s.ports.Deck.CommitMarkdown(ctx, input.Markdown); err != nil {
		return nil, DeckSizeOutput{}, err
	}
	return nil, DeckSizeOutput{Count: s.ports.Deck.Len()}, nil
}

// handleAddSlide handles the add_slide tool invocation.
func (s *Server) handleAddSlide(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AddSlideInput,
) (*mcp.CallToolResult, AddSlideOutput, error) {
	t, err := domain.ParseSlideType(input.Type)
	if err != nil {
		return nil, AddSlideOutput{}, err
	}

	index, err := s.ports.Deck.Add(ctx, t)
	if err != nil {
		return nil, AddSlideOutput{}, err
	}

	return nil, AddSlideOutput{Number: index + 1, Count: s.ports.Deck.Len()}, nil
}

// handleDeleteSlide handles the delete_slide tool invocation.
func (s *Server) handleDeleteSlide(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DeleteSlideInput,
) (*mcp.CallToolResult, DeckSizeOutput, error) {
	if err := s.ports.Deck.Delete(ctx, input.Number-1); err != nil {
		return nil, DeckSizeOutput{}, err
	}
	return nil, DeckSizeOutput{Count: s.ports.Deck.Len()}, nil
}

// handleUpdateSlide handles the update_slide tool invocation.
func (s *Server) handleUpdateSlide(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input UpdateSlideInput,
) (*mcp.CallToolResult, SlideOutput, error) {
	edit := domain.SlideEdit{
		Title:    input.Title,
		Subtitle: input.Subtitle,
		Content:  input.Content,
		Points:   input.Points,
	}
	if edit.IsEmpty() {
		return nil, SlideOutput{}, fmt.Errorf("%w: no fields to update", domain.ErrInvalidInput)
	}

	index := input.Number - 1
	if err := s.ports.Deck.Update(ctx, index, edit); err != nil {
		return nil, SlideOutput{}, err
	}

	slide, err := s.ports.Deck.Slide(index)
	if err != nil {
		return nil, SlideOutput{}, err
	}
	return nil, toSlideOutput(index, slide), nil
}

func toSlideOutput(index int, slide domain.Slide) SlideOutput {
	out := SlideOutput{
		Number: index + 1,
		Type:   slide.Type().String(),
		Title:  slide.Heading(),
	}

	switch sl := slide.(type) {
	case domain.TitleSlide:
		out.Subtitle = sl.Subtitle
	case domain.ContentSlide:
		out.Content = sl.Content
		out.Points = sl.Points
	case domain.ListSlide:
		out.Points = sl.Points
	}

	return out
}
