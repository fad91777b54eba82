// Package lang tags listing descriptions with a language so notifications
// can be worded accordingly.
package lang

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

const (
	French  = "fr"
	English = "en"
)

var detector = lingua.NewLanguageDetectorBuilder().
	FromLanguages(lingua.French, lingua.English).
	Build()

// Detect returns "fr" or "en" for the given text. French is the default
// for empty or ambiguous input.
func Detect(text string) string {
	if strings.TrimSpace(text) == "" {
		return French
	}

	detected, ok := detector.DetectLanguageOf(text)
	if !ok {
		return French
	}
	if detected == lingua.English {
		return English
	}
	return French
}
