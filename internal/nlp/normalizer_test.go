package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace only", "   \t\n", ""},
		{"lowercases", "BONJOUR", "bonjour"},
		{"strips accents", "Élève déjà présent", "eleve deja present"},
		{"cedilla", "Ça va ?", "ca va"},
		{"punctuation to space", "Quels sont vos horaires?", "quels sont vos horaires"},
		{"collapses whitespace", "un    deux\t trois", "un deux trois"},
		{"keeps digits", "ouvert de 9h a 18h", "ouvert de 9h a 18h"},
		{"symbols dropped", "prix : 25 €", "prix 25"},
		{"apostrophes", "j'ai besoin d'aide", "j ai besoin d aide"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"Bonjour, comment allez-vous ?",
		"Élément N°1 — déjà vu !",
		"ouvert de 9h à 18h",
		"  UPPER   case  ",
	}

	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), "input %q", input)
	}
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"bonjour", "le", "monde"}, Tokens("Bonjour, le Monde !"))
	assert.Nil(t, Tokens("  ...  "))
	assert.Nil(t, Tokens(""))
}
