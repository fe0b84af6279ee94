package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/slidedeck/internal/core/domain"
)

func TestSlideList(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "slide", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "2 slides:")
	assert.Contains(t, out, " 1. title    Sample Title Slide")
	assert.Contains(t, out, " 2. content  Content Slide Example")
}

func TestSlideList_Empty(t *testing.T) {
	deck := setupTestServices(t)
	require.NoError(t, deck.CommitMarkdown(t.Context(), ""))

	out, err := execute(t, "slide", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "No slides.")
}

func TestSlideList_JSON(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "slide", "list", "--json")

	require.NoError(t, err)
	var doc []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc, 2)
	assert.Equal(t, "title", doc[0]["type"])
	assert.Equal(t, "Content Slide Example", doc[1]["title"])
}

func TestSlideShow(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "slide", "show", "2")

	require.NoError(t, err)
	assert.Contains(t, out, "Slide 2 of 2")
	assert.Contains(t, out, "Title:    Content Slide Example")
	assert.Contains(t, out, "    - Second bullet point")
}

func TestSlideShow_OutOfRange(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "slide", "show", "5")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSlideShow_InvalidNumber(t *testing.T) {
	setupTestServices(t)

	for _, arg := range []string{"0", "abc", "-1"} {
		_, err := execute(t, "slide", "show", "--", arg)
		require.Error(t, err, arg)
		assert.Contains(t, err.Error(), "must be 1 or more")
	}
}

func TestSlideAdd(t *testing.T) {
	deck := setupTestServices(t)

	out, err := execute(t, "slide", "add", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "Added list slide 3.")
	require.Equal(t, 3, deck.Len())
	slide, err := deck.Slide(2)
	require.NoError(t, err)
	assert.Equal(t, domain.SlideTypeList, slide.Type())
}

func TestSlideAdd_UnknownType(t *testing.T) {
	deck := setupTestServices(t)

	_, err := execute(t, "slide", "add", "chart")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
	assert.Equal(t, 2, deck.Len())
}

func TestSlideDelete(t *testing.T) {
	deck := setupTestServices(t)

	out, err := execute(t, "slide", "delete", "1")

	require.NoError(t, err)
	assert.Contains(t, out, "Deleted slide 1. 1 slides left.")
	require.Equal(t, 1, deck.Len())
	slide, err := deck.Slide(0)
	require.NoError(t, err)
	assert.Equal(t, "Content Slide Example", slide.Heading())
}

func TestSlideSet_TitleAndSubtitle(t *testing.T) {
	deck := setupTestServices(t)

	out, err := execute(t, "slide", "set", "1", "--title", "Review", "--subtitle", `Q3\n2026`)

	require.NoError(t, err)
	assert.Contains(t, out, "Updated slide 1.")
	slide, err := deck.Slide(0)
	require.NoError(t, err)
	assert.Equal(t, domain.TitleSlide{Title: "Review", Subtitle: "Q3\n2026"}, slide)
}

func TestSlideSet_Points(t *testing.T) {
	deck := setupTestServices(t)

	_, err := execute(t, "slide", "set", "2", "--point", "One", "--point", "Two")

	require.NoError(t, err)
	slide, err := deck.Slide(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"One", "Two"}, domain.PointsOf(slide))
}

func TestSlideSet_PointsText(t *testing.T) {
	deck := setupTestServices(t)

	_, err := execute(t, "slide", "set", "2", "--points-text", "A\n\nB\n")

	require.NoError(t, err)
	slide, err := deck.Slide(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, domain.PointsOf(slide))
}

func TestSlideSet_NothingToChange(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "slide", "set", "1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to change")
}

func TestSlideSet_PointFlagsExclusive(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "slide", "set", "2", "--point", "A", "--points-text", "B")

	require.Error(t, err)
}

func TestParseSlideNumber(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"1", 0, false},
		{" 12 ", 11, false},
		{"0", 0, true},
		{"x", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseSlideNumber(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
