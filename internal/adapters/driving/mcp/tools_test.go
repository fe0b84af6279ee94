package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/slidedeck/internal/core/domain"
)

func strPtr(s string) *string { return &s }

func TestServer_handleListSlides(t *testing.T) {
	server, _ := newTestServer(t)

	_, output, err := server.handleListSlides(context.Background(), nil, ListSlidesInput{})

	require.NoError(t, err)
	assert.Equal(t, 2, output.Count)
	require.Len(t, output.Slides, 2)

	assert.Equal(t, SlideOutput{
		Number:   1,
		Type:     "title",
		Title:    "Sample Title Slide",
		Subtitle: "With a subtitle\nMultiple lines possible",
	}, output.Slides[0])

	assert.Equal(t, 2, output.Slides[1].Number)
	assert.Equal(t, "content", output.Slides[1].Type)
	assert.Len(t, output.Slides[1].Points, 3)
}

func TestServer_handleGetMarkdown(t *testing.T) {
	server, deck := newTestServer(t)

	_, output, err := server.handleGetMarkdown(context.Background(), nil, GetMarkdownInput{})

	require.NoError(t, err)
	assert.Equal(t, deck.Markdown(), output.Markdown)
	assert.Contains(t, output.Markdown, "# Sample Title Slide\n## With a subtitle")
}

func TestServer_handleCommitMarkdown(t *testing.T) {
	server, deck := newTestServer(t)

	input := CommitMarkdownInput{Markdown: "# A\n## B\n\n---\n\n# C\n\n- d\n- e\n\n---\n\n# F\n\ntext"}
	_, output, err := server.handleCommitMarkdown(context.Background(), nil, input)

	require.NoError(t, err)
	assert.Equal(t, 3, output.Count)
	assert.Equal(t, domain.Deck{
		domain.TitleSlide{Title: "A", Subtitle: "B"},
		domain.ListSlide{Title: "C", Points: []string{"d", "e"}},
		domain.ContentSlide{Title: "F", Content: "text", Points: []string{}},
	}, deck.Slides())
}

func TestServer_handleAddSlide(t *testing.T) {
	ctx := context.Background()

	t.Run("appends slide", func(t *testing.T) {
		server, deck := newTestServer(t)

		_, output, err := server.handleAddSlide(ctx, nil, AddSlideInput{Type: "List"})

		require.NoError(t, err)
		assert.Equal(t, 3, output.Number)
		assert.Equal(t, 3, output.Count)
		slide, err := deck.Slide(2)
		require.NoError(t, err)
		assert.Equal(t, domain.SlideTypeList, slide.Type())
	})

	t.Run("unknown type returns error", func(t *testing.T) {
		server, deck := newTestServer(t)

		_, _, err := server.handleAddSlide(ctx, nil, AddSlideInput{Type: "video"})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnsupportedType)
		assert.Equal(t, 2, deck.Len())
	})
}

func TestServer_handleDeleteSlide(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes by 1-based number", func(t *testing.T) {
		server, deck := newTestServer(t)

		_, output, err := server.handleDeleteSlide(ctx, nil, DeleteSlideInput{Number: 1})

		require.NoError(t, err)
		assert.Equal(t, 1, output.Count)
		slide, err := deck.Slide(0)
		require.NoError(t, err)
		assert.Equal(t, "Content Slide Example", slide.Heading())
	})

	t.Run("out of range returns not found", func(t *testing.T) {
		server, _ := newTestServer(t)

		_, _, err := server.handleDeleteSlide(ctx, nil, DeleteSlideInput{Number: 9})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("zero returns not found", func(t *testing.T) {
		server, _ := newTestServer(t)

		_, _, err := server.handleDeleteSlide(ctx, nil, DeleteSlideInput{Number: 0})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestServer_handleUpdateSlide(t *testing.T) {
	ctx := context.Background()

	t.Run("updates fields", func(t *testing.T) {
		server, _ := newTestServer(t)
		points := []string{"only point"}

		_, output, err := server.handleUpdateSlide(ctx, nil, UpdateSlideInput{
			Number:  2,
			Title:   strPtr("Renamed"),
			Content: strPtr("New body"),
			Points:  &points,
		})

		require.NoError(t, err)
		assert.Equal(t, SlideOutput{
			Number:  2,
			Type:    "content",
			Title:   "Renamed",
			Content: "New body",
			Points:  []string{"only point"},
		}, output)
	})

	t.Run("empty edit is invalid", func(t *testing.T) {
		server, _ := newTestServer(t)

		_, _, err := server.handleUpdateSlide(ctx, nil, UpdateSlideInput{Number: 1})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("field the slide lacks is invalid", func(t *testing.T) {
		server, _ := newTestServer(t)

		_, _, err := server.handleUpdateSlide(ctx, nil, UpdateSlideInput{
			Number:  1,
			Content: strPtr("titles have no content"),
		})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("out of range returns not found", func(t *testing.T) {
		server, _ := newTestServer(t)

		_, _, err := server.handleUpdateSlide(ctx, nil, UpdateSlideInput{
			Number: 5,
			Title:  strPtr("x"),
		})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
