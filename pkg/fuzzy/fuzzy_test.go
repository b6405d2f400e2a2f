package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 0, LevenshteinDistance("cave", "cave"))
	assert.Equal(t, 1, LevenshteinDistance("cave", "cove"))
	assert.Equal(t, 4, LevenshteinDistance("", "cave"))
	assert.Equal(t, 3, LevenshteinDistance("kitten", "sitting"))
	assert.Equal(t, 0, LevenshteinDistance("Cave", "cave"), "case insensitive")
}

func TestMatchName(t *testing.T) {
	// Substrings and prefixes always match.
	assert.True(t, MatchName("stone", "Nightstone Keep"))
	assert.True(t, MatchName("night", "Nightstone Keep"))

	// Typo tolerance scales with query length.
	assert.True(t, MatchName("nightstne", "Nightstone Keep"))
	assert.False(t, MatchName("kep", "Goldenfields"))
	assert.True(t, MatchName("kep", "Nightstone Keep"))

	// Empty query matches everything.
	assert.True(t, MatchName("", "Bryn Shander"))

	assert.False(t, MatchName("waterdeep", "Bryn Shander"))
}
