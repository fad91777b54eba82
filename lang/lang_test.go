package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect_French(t *testing.T) {
	text := "Bel appartement ensoleillé avec deux chambres, proche de toutes commodités à Cocody"
	assert.Equal(t, French, Detect(text))
}

func TestDetect_English(t *testing.T) {
	text := "Beautiful sunny apartment with two bedrooms, close to all amenities and shops"
	assert.Equal(t, English, Detect(text))
}

func TestDetect_EmptyDefaultsToFrench(t *testing.T) {
	assert.Equal(t, French, Detect(""))
	assert.Equal(t, French, Detect("   "))
}
