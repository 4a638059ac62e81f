package seed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/wordwise/internal/vocab"
)

const travelPack = `{
  "version": "1.2.0",
  "categories": [{
    "name": "Travel and Leisure",
    "translated_name": "Reisen und Freizeit",
    "words": [
      {"text": "train", "translation": "der Zug", "source_lang": "en", "target_lang": "de", "difficulty": "easy",
       "examples": [{"text": "The train leaves at noon.", "translation": "Der Zug fährt mittags ab."}],
       "passage": "We reached the station early. Our train was late again. Mr. Weber waited on the platform."},
      {"text": "ticket", "difficulty": "EASY"}
    ]
  }]
}`

func TestLoad(t *testing.T) {
	p, err := Load(strings.NewReader(travelPack))
	require.NoError(t, err)

	assert.Equal(t, "1.2.0", p.Version)
	require.Len(t, p.Categories, 1)
	c := p.Categories[0]
	assert.Equal(t, "Reisen und Freizeit", c.TranslatedName)
	require.Len(t, c.Words, 2)
	assert.Equal(t, "der Zug", c.Words[0].Translation)
	assert.Len(t, c.Words[0].Examples, 1)
	assert.Empty(t, c.Words[1].Translation)
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"malformed", `{"version":`, "decode pack"},
		{"unknown field", `{"version":"1.0.0","categories":[],"extra":1}`, "unknown field"},
		{"bad version", `{"version":"latest","categories":[{"name":"A","words":[]}]}`, "not a semantic version"},
		{"no categories", `{"version":"1.0.0","categories":[]}`, "no categories"},
		{"empty category name", `{"version":"1.0.0","categories":[{"name":" ","words":[]}]}`, "name is empty"},
		{"empty word", `{"version":"1.0.0","categories":[{"name":"A","words":[{"text":"","difficulty":"EASY"}]}]}`, "text is empty"},
		{"bad difficulty", `{"version":"1.0.0","categories":[{"name":"A","words":[{"text":"x","difficulty":"EXPERT"}]}]}`, "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	p := &Pack{
		Version: "nope",
		Categories: []PackCategory{{
			Name:  "A",
			Words: []PackWord{{Text: "", Difficulty: "EASY"}, {Text: "b", Difficulty: "SILLY"}},
		}},
	}
	err := p.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "not a semantic version")
	assert.Contains(t, msg, "text is empty")
	assert.Contains(t, msg, `"b"`)
}

func TestCanonicalVersion(t *testing.T) {
	assert.Equal(t, "v1.2.0", canonicalVersion("1.2.0"))
	assert.Equal(t, "v1.2.0", canonicalVersion("v1.2"))
	assert.Equal(t, "v2.0.0", canonicalVersion(" 2 "))
	assert.Equal(t, "", canonicalVersion("latest"))
	assert.Equal(t, "", canonicalVersion(""))
}

func TestStarter(t *testing.T) {
	p, err := Starter()
	require.NoError(t, err)
	require.Len(t, p.Categories, 6)

	for _, c := range p.Categories {
		perLevel := map[vocab.Difficulty]int{}
		for _, w := range c.Words {
			d, err := vocab.ParseDifficulty(w.Difficulty)
			require.NoError(t, err)
			perLevel[d]++

			assert.NotEmpty(t, w.Translation, "%s/%s has no translation", c.Name, w.Text)
			for _, ex := range w.Examples {
				assert.True(t, vocab.ContainsWord(ex.Text, w.Text), "%q does not contain %q", ex.Text, w.Text)
			}
		}
		for _, d := range vocab.Difficulties {
			assert.GreaterOrEqual(t, perLevel[d], 4, "%s has too few %s words", c.Name, d)
		}
	}
}
