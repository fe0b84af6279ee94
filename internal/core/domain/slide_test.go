package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestSlideType_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		t        SlideType
		expected bool
	}{
		{"title is valid", SlideTypeTitle, true},
		{"content is valid", SlideTypeContent, true},
		{"list is valid", SlideTypeList, true},
		{"empty is invalid", SlideType(""), false},
		{"unknown is invalid", SlideType("image"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.t.IsValid())
		})
	}
}

func TestParseSlideType(t *testing.T) {
	got, err := ParseSlideType("  Content ")
	require.NoError(t, err)
	assert.Equal(t, SlideTypeContent, got)

	_, err = ParseSlideType("video")
	assert.True(t, errors.Is(err, ErrUnsupportedType))
}

func TestSlide_TypeAndHeading(t *testing.T) {
	slides := []Slide{
		TitleSlide{Title: "a"},
		ContentSlide{Title: "b"},
		ListSlide{Title: "c"},
	}

	assert.Equal(t, SlideTypeTitle, slides[0].Type())
	assert.Equal(t, SlideTypeContent, slides[1].Type())
	assert.Equal(t, SlideTypeList, slides[2].Type())
	assert.Equal(t, "a", slides[0].Heading())
	assert.Equal(t, "b", slides[1].Heading())
	assert.Equal(t, "c", slides[2].Heading())
}

func TestNewSlide_Defaults(t *testing.T) {
	title, err := NewSlide(SlideTypeTitle)
	require.NoError(t, err)
	assert.Equal(t, TitleSlide{Title: "New Title Slide", Subtitle: "Subtitle"}, title)

	content, err := NewSlide(SlideTypeContent)
	require.NoError(t, err)
	assert.Equal(t, ContentSlide{
		Title:   "New Slide",
		Content: "Content",
		Points:  []string{"Point 1", "Point 2"},
	}, content)

	list, err := NewSlide(SlideTypeList)
	require.NoError(t, err)
	assert.Equal(t, ListSlide{Title: "New List Slide", Points: []string{"Point 1", "Point 2"}}, list)

	_, err = NewSlide("chart")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestNewSlide_ReturnsIndependentPoints(t *testing.T) {
	a, _ := NewSlide(SlideTypeList)
	b, _ := NewSlide(SlideTypeList)

	a.(ListSlide).Points[0] = "changed"

	assert.Equal(t, "Point 1", b.(ListSlide).Points[0])
}

func TestDefaultDeck(t *testing.T) {
	deck := DefaultDeck()

	require.Len(t, deck, 2)
	assert.Equal(t, SlideTypeTitle, deck[0].Type())
	assert.Contains(t, deck[0].(TitleSlide).Subtitle, "\n")
	assert.Len(t, PointsOf(deck[1]), 3)
}

func TestPointsOf(t *testing.T) {
	assert.Equal(t, []string{}, PointsOf(TitleSlide{}))
	assert.Equal(t, []string{}, PointsOf(ContentSlide{}))
	assert.Equal(t, []string{"x"}, PointsOf(ListSlide{Points: []string{"x"}}))
}

func TestSplitPoints(t *testing.T) {
	assert.Equal(t, []string{"one", "two", "  three"}, SplitPoints("one\n\ntwo\r\n   \n  three\n"))
	assert.Equal(t, []string{}, SplitPoints(""))
}

func TestCloneSlide(t *testing.T) {
	orig := ContentSlide{Title: "t", Points: []string{"a", "b"}}

	clone := CloneSlide(orig).(ContentSlide)
	clone.Points[0] = "z"

	assert.Equal(t, "a", orig.Points[0])
	assert.Equal(t, TitleSlide{Title: "x"}, CloneSlide(TitleSlide{Title: "x"}))
}

func TestSlideEdit_Apply_Title(t *testing.T) {
	edit := SlideEdit{Title: strPtr("Hello"), Subtitle: strPtr("line 1\nline 2")}

	got, err := edit.Apply(TitleSlide{Title: "old", Subtitle: "old"})

	require.NoError(t, err)
	assert.Equal(t, TitleSlide{Title: "Hello", Subtitle: "line 1\nline 2"}, got)
}

func TestSlideEdit_Apply_Content(t *testing.T) {
	points := []string{"p"}
	edit := SlideEdit{Content: strPtr("body"), Points: &points}

	got, err := edit.Apply(ContentSlide{Title: "keep", Content: "old", Points: []string{"a", "b"}})

	require.NoError(t, err)
	assert.Equal(t, ContentSlide{Title: "keep", Content: "body", Points: []string{"p"}}, got)
}

func TestSlideEdit_Apply_ClearsPoints(t *testing.T) {
	empty := []string{}
	got, err := SlideEdit{Points: &empty}.Apply(ListSlide{Title: "l", Points: []string{"a"}})

	require.NoError(t, err)
	assert.Equal(t, ListSlide{Title: "l", Points: []string{}}, got)
}

func TestSlideEdit_Apply_RejectsForeignFields(t *testing.T) {
	points := []string{"p"}

	_, err := SlideEdit{Points: &points}.Apply(TitleSlide{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = SlideEdit{Subtitle: strPtr("s")}.Apply(ContentSlide{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = SlideEdit{Content: strPtr("c")}.Apply(ListSlide{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSlideEdit_IsEmpty(t *testing.T) {
	assert.True(t, SlideEdit{}.IsEmpty())
	assert.False(t, SlideEdit{Title: strPtr("")}.IsEmpty())
}
