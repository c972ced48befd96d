package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarityIdentity(t *testing.T) {
	for _, input := range []string{"bonjour", "horaires", "quels sont vos horaires"} {
		assert.Equal(t, 100.0, Similarity(input, input), "input %q", input)
	}
}

func TestSimilarityIdentityAfterNormalization(t *testing.T) {
	// Different spellings of the same normalized text still score 100.
	assert.Equal(t, 100.0, Similarity("Quels sont vos horaires ?", "quels sont vos horaires"))
	assert.Equal(t, 100.0, Similarity("déjà", "deja"))
}

func TestSimilarityEmpty(t *testing.T) {
	assert.Equal(t, 0.0, Similarity("", "bonjour"))
	assert.Equal(t, 0.0, Similarity("bonjour", ""))
	assert.Equal(t, 0.0, Similarity("", ""))
	// Input that normalizes to nothing counts as empty
	assert.Equal(t, 0.0, Similarity("???", "bonjour"))
}

func TestSimilaritySymmetric(t *testing.T) {
	pairs := [][2]string{
		{"horaires", "Quels sont vos horaires ?"},
		{"comment payer", "Quels moyens de paiement acceptez-vous ?"},
		{"livraison rapide", "suivi de commande"},
	}

	for _, pair := range pairs {
		assert.InDelta(t, Similarity(pair[0], pair[1]), Similarity(pair[1], pair[0]), 1e-9)
	}
}

func TestSimilarityRange(t *testing.T) {
	pairs := [][2]string{
		{"horaires", "Quels sont vos horaires ?"},
		{"xyz", "abc"},
		{"a", "quelque chose de beaucoup plus long"},
	}

	for _, pair := range pairs {
		s := Similarity(pair[0], pair[1])
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 100.0)
	}
}

func TestSimilarityWordOrderInsensitive(t *testing.T) {
	// Sort and set channels carry 80% of the weight, reordering words
	// barely dents the score.
	s := Similarity("horaires ouverture", "ouverture horaires")
	assert.Greater(t, s, 80.0)
}

func TestSimilaritySubstringContainment(t *testing.T) {
	// A short query contained in a longer question keeps a high score
	// through the set and partial channels.
	s := Similarity("horaires", "Quels sont vos horaires ?")
	assert.Greater(t, s, 80.0)

	unrelated := Similarity("xyz123 random gibberish", "Quels sont vos horaires ?")
	assert.Less(t, unrelated, s)
}
