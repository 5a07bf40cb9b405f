package parsers

import (
	"strings"
	"unicode"
)

// EntityLabel classifies a tagged text span.
type EntityLabel string

const (
	LabelPerson   EntityLabel = "PERSON"
	LabelLocation EntityLabel = "GPE"
)

// Entity is a tagged span of text.
type Entity struct {
	Text  string
	Label EntityLabel
}

// NameTagger is an optional named-entity capability used to improve name
// detection. Implementations must be safe for concurrent use; a nil tagger
// is a normal configuration and degrades to the line-scan fallback.
type NameTagger interface {
	Tag(text string) []Entity
}

// HeuristicTagger is a lightweight rule-based NameTagger. It tags runs of
// 2-4 capitalized words as PERSON and known location tokens as GPE.
type HeuristicTagger struct{}

// NewHeuristicTagger creates the built-in rule-based tagger.
func NewHeuristicTagger() *HeuristicTagger {
	return &HeuristicTagger{}
}

// Tag scans the text line by line for capitalized word runs.
func (t *HeuristicTagger) Tag(text string) []Entity {
	var entities []Entity

	for _, line := range strings.Split(text, "\n") {
		words := strings.Fields(line)
		var run []string

		flush := func() {
			if len(run) >= 2 && len(run) <= 4 {
				entities = append(entities, Entity{Text: strings.Join(run, " "), Label: LabelPerson})
			}
			run = nil
		}

		for _, word := range words {
			trimmed := strings.TrimFunc(word, func(r rune) bool {
				return !unicode.IsLetter(r)
			})
			if trimmed == "" {
				flush()
				continue
			}
			if isLocationWord(trimmed) {
				flush()
				entities = append(entities, Entity{Text: trimmed, Label: LabelLocation})
				continue
			}
			if isCapitalizedWord(trimmed) {
				run = append(run, trimmed)
				continue
			}
			flush()
		}
		flush()
	}

	return entities
}

func isCapitalizedWord(word string) bool {
	runes := []rune(word)
	if len(runes) < 2 || !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
