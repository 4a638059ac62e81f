package translate

import "github.com/abhisek/wordwise/internal/llm"

// TranslationSchema defines the JSON schema for single-term translations.
var TranslationSchema = &llm.Schema{
	Name:        "word-translation",
	Description: "Translation of a single vocabulary term",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"translation": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "The term in the target language, without articles in parentheses or explanations",
			},
		},
		"required":             []any{"translation"},
		"additionalProperties": false,
	},
}

// SentencesSchema defines the JSON schema for generated example sentences.
var SentencesSchema = &llm.Schema{
	Name:        "example-sentences",
	Description: "Short example sentences that use a vocabulary word verbatim",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"sentences": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{
							"type":        "string",
							"minLength":   1,
							"description": "Sentence in the source language containing the word exactly as given",
						},
						"translation": map[string]any{
							"type":        "string",
							"description": "The sentence in the target language",
						},
					},
					"required":             []any{"text", "translation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"sentences"},
		"additionalProperties": false,
	},
}
