package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDocument_Format(t *testing.T) {
	deck := Deck{
		TitleSlide{Title: "T", Subtitle: "S"},
		ListSlide{Title: "L"},
	}

	data, err := EncodeDocument(deck)
	require.NoError(t, err)

	expected := `[
  {
    "type": "title",
    "title": "T",
    "subtitle": "S"
  },
  {
    "type": "list",
    "title": "L",
    "points": []
  }
]`
	assert.Equal(t, expected, string(data))
}

func TestEncodeDocument_EmptyDeck(t *testing.T) {
	data, err := EncodeDocument(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestDecodeDocument_RoundTrip(t *testing.T) {
	deck := Deck{
		TitleSlide{Title: "Intro", Subtitle: "a\nb"},
		ContentSlide{Title: "Body", Content: "Some *text*", Points: []string{"one", "two"}},
		ContentSlide{Title: "Bare", Content: "", Points: []string{}},
		ListSlide{Title: "List", Points: []string{"[link](https://example.com)"}},
	}

	data, err := EncodeDocument(deck)
	require.NoError(t, err)

	decoded, err := DecodeDocument(data)
	require.NoError(t, err)
	assert.Equal(t, deck, decoded)
}

func TestDecodeDocument_Permissive(t *testing.T) {
	// Content slides written by older versions carry no type field.
	data := []byte(`[
		{"title": "Untyped", "content": "c", "points": ["p"]},
		{"type": "title", "title": "T"},
		{"type": "list", "title": "L"},
		{"type": "mystery", "title": "M"}
	]`)

	deck, err := DecodeDocument(data)
	require.NoError(t, err)
	require.Len(t, deck, 4)
	assert.Equal(t, ContentSlide{Title: "Untyped", Content: "c", Points: []string{"p"}}, deck[0])
	assert.Equal(t, TitleSlide{Title: "T"}, deck[1])
	assert.Equal(t, ListSlide{Title: "L", Points: []string{}}, deck[2])
	assert.Equal(t, ContentSlide{Title: "M", Points: []string{}}, deck[3])
}

func TestDecodeDocument_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "this is not json"},
		{"object instead of array", `{"title": "x"}`},
		{"truncated", `[{"title": "x"`},
		{"wrong element type", `[1, 2, 3]`},
		{"empty input", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deck, err := DecodeDocument([]byte(tt.data))
			assert.ErrorIs(t, err, ErrInvalidDocument)
			assert.Nil(t, deck)
		})
	}
}

func TestDeck_MarshalThroughEncodingJSON(t *testing.T) {
	data, err := json.Marshal(Deck{ContentSlide{Title: "x"}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"type":"content","title":"x","content":"","points":[]}]`, string(data))
}

func TestDeck_Clone(t *testing.T) {
	deck := Deck{ListSlide{Title: "l", Points: []string{"a"}}}

	clone := deck.Clone()
	clone[0].(ListSlide).Points[0] = "b"

	assert.Equal(t, "a", deck[0].(ListSlide).Points[0])
}
