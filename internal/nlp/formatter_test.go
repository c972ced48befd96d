package nlp

import (
	"strings"
	"testing"

	"github.com/MagloireKITIO/chatbot-file/internal/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestFormatter() *Formatter {
	return NewFormatter(zap.NewNop())
}

func TestFormatPlainText(t *testing.T) {
	f := newTestFormatter()
	assert.Equal(t, "9h-18h", f.Format(models.Answer{Text: "9h-18h"}))
	assert.Equal(t, "", f.Format(models.Answer{}))
}

func TestFormatStructuredParts(t *testing.T) {
	f := newTestFormatter()
	answer := models.Answer{
		Structured: &models.StructuredAnswer{
			Title:        "Nos services",
			Introduction: "Voici ce que nous proposons.",
			Conclusion:   "N'hésitez pas à nous écrire.",
			Contact:      "support@example.com",
		},
	}

	out := f.Format(answer)
	parts := strings.Split(out, "\n\n")
	assert.Equal(t, []string{
		"Nos services",
		"Voici ce que nous proposons.",
		"N'hésitez pas à nous écrire.",
		"support@example.com",
	}, parts)
}

func TestFormatTitleIcons(t *testing.T) {
	f := newTestFormatter()
	tests := []struct {
		title string
		icon  string
	}{
		{"Modes de paiement", "💳"},
		{"Nos produits", "📦"},
		{"Nous contacter", "📞"},
		{"Localisation de nos agences", "📍"},
		{"Signaler un incident", "⚠️"},
		{"Autre sujet", ""},
	}

	for _, tt := range tests {
		out := f.Format(models.Answer{Structured: &models.StructuredAnswer{Title: tt.title}})
		if tt.icon == "" {
			assert.Equal(t, tt.title, out)
		} else {
			assert.Equal(t, tt.icon+" "+tt.title, out)
		}
	}
}

func TestFormatSteps(t *testing.T) {
	f := newTestFormatter()
	answer := models.Answer{
		Structured: &models.StructuredAnswer{
			Steps: []models.Step{
				{
					Text:    "Ouvrez l'application",
					Info:    "Disponible sur iOS et Android",
					Options: []string{"App Store", "Play Store"},
				},
				{
					Text:    "Choisissez un moyen de paiement",
					Warning: "Les chèques ne sont plus acceptés",
				},
			},
		},
	}

	out := f.Format(answer)
	assert.Contains(t, out, "1. Ouvrez l'application")
	assert.Contains(t, out, "ℹ️ Disponible sur iOS et Android")
	assert.Contains(t, out, "• App Store")
	assert.Contains(t, out, "• Play Store")
	assert.Contains(t, out, "2. Choisissez un moyen de paiement")
	assert.Contains(t, out, "⚠️ Les chèques ne sont plus acceptés")
}

func TestFormatNoteOnlyStepsTrail(t *testing.T) {
	f := newTestFormatter()
	answer := models.Answer{
		Structured: &models.StructuredAnswer{
			Title: "Modes de paiement",
			Steps: []models.Step{
				{Text: "Rendez-vous en caisse", Info: "aux heures d'ouverture"},
				{Text: "Carte bancaire", Note: "Visa et Mastercard"},
				{Text: "Validez votre achat"},
			},
		},
	}

	out := f.Format(answer)

	// The note-only step leaves the numbered flow and lands at the end
	// as an italic summary.
	assert.Contains(t, out, "1. Rendez-vous en caisse")
	assert.Contains(t, out, "2. Validez votre achat")
	assert.NotContains(t, out, "2. Carte bancaire")
	assert.Contains(t, out, "*Carte bancaire : Visa et Mastercard*")
	assert.Less(t, strings.Index(out, "2. Validez"), strings.Index(out, "*Carte bancaire"))

	// Payment icon from the title
	assert.True(t, strings.HasPrefix(out, "💳 Modes de paiement"))
}

func TestFormatStepWithNoteAndOtherFieldsStaysInline(t *testing.T) {
	f := newTestFormatter()
	answer := models.Answer{
		Structured: &models.StructuredAnswer{
			Steps: []models.Step{
				{Text: "Carte bancaire", Note: "Visa et Mastercard", Tip: "sans contact possible"},
			},
		},
	}

	out := f.Format(answer)
	assert.Contains(t, out, "1. Carte bancaire")
	assert.Contains(t, out, "📝 Visa et Mastercard")
	assert.NotContains(t, out, "*Carte bancaire : Visa et Mastercard*")
}
