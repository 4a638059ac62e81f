// Package seed imports vocabulary content packs into the store.
package seed

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/abhisek/wordwise/internal/vocab"
)

// Pack is a versioned bundle of categories, words and example sentences.
type Pack struct {
	Version    string         `json:"version"`
	Categories []PackCategory `json:"categories"`
}

// PackCategory is one theme in a Pack.
type PackCategory struct {
	Name           string     `json:"name"`
	TranslatedName string     `json:"translated_name,omitempty"`
	Words          []PackWord `json:"words"`
}

// PackWord is one vocabulary entry. Passage is optional running text from
// which additional example sentences are extracted.
type PackWord struct {
	Text        string        `json:"text"`
	Translation string        `json:"translation,omitempty"`
	SourceLang  string        `json:"source_lang,omitempty"`
	TargetLang  string        `json:"target_lang,omitempty"`
	Difficulty  string        `json:"difficulty"`
	Examples    []PackExample `json:"examples,omitempty"`
	Passage     string        `json:"passage,omitempty"`
}

// PackExample is an example sentence with an optional translation.
type PackExample struct {
	Text        string `json:"text"`
	Translation string `json:"translation,omitempty"`
}

// Load decodes and validates a pack.
func Load(r io.Reader) (*Pack, error) {
	var p Pack
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decode pack: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadFile reads a pack from path.
func LoadFile(path string) (*Pack, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Validate checks the version and every entry. All problems are reported
// together.
func (p *Pack) Validate() error {
	var errs []error
	if !semver.IsValid(canonicalVersion(p.Version)) {
		errs = append(errs, fmt.Errorf("version %q is not a semantic version", p.Version))
	}
	if len(p.Categories) == 0 {
		errs = append(errs, errors.New("pack has no categories"))
	}
	for i, c := range p.Categories {
		if strings.TrimSpace(c.Name) == "" {
			errs = append(errs, fmt.Errorf("category %d: name is empty", i))
			continue
		}
		for j, w := range c.Words {
			if strings.TrimSpace(w.Text) == "" {
				errs = append(errs, fmt.Errorf("%s word %d: text is empty", c.Name, j))
			}
			if _, err := vocab.ParseDifficulty(w.Difficulty); err != nil {
				errs = append(errs, fmt.Errorf("%s word %q: %w", c.Name, w.Text, err))
			}
		}
	}
	return errors.Join(errs...)
}

// canonicalVersion accepts versions with or without the leading "v".
func canonicalVersion(v string) string {
	v = strings.TrimSpace(v)
	if v != "" && !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return semver.Canonical(v)
}
