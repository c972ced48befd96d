package nlp

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MagloireKITIO/chatbot-file/internal/models"

	"go.uber.org/zap"
)

// titleIcons maps a keyword found in a normalized title to the icon that
// prefixes it. First hit wins.
var titleIcons = []struct {
	keyword string
	icon    string
}{
	{"produit", "📦"},
	{"product", "📦"},
	{"contact", "📞"},
	{"localisation", "📍"},
	{"location", "📍"},
	{"adresse", "📍"},
	{"incident", "⚠️"},
	{"probleme", "⚠️"},
	{"problem", "⚠️"},
	{"paiement", "💳"},
	{"payment", "💳"},
}

// Formatter renders a matched answer into a single display string.
type Formatter struct {
	logger *zap.Logger
}

func NewFormatter(logger *zap.Logger) *Formatter {
	return &Formatter{logger: logger}
}

// Format renders the answer. Plain answers pass through verbatim;
// structured answers assemble their non-empty parts separated by blank
// lines. Formatting never fails: any panic degrades to a raw textual
// rendering of the answer, the user always gets a response.
func (f *Formatter) Format(answer models.Answer) (out string) {
	defer func() {
		if r := recover(); r != nil {
			f.logger.Error("Answer formatting failed, falling back to raw text",
				zap.Any("panic", r),
			)
			out = rawAnswerText(answer)
		}
	}()

	if !answer.IsStructured() {
		return answer.Text
	}

	s := answer.Structured
	var parts []string
	appendPart := func(p string) {
		if p != "" {
			parts = append(parts, p)
		}
	}

	if s.Title != "" {
		if icon := titleIcon(s.Title); icon != "" {
			appendPart(icon + " " + s.Title)
		} else {
			appendPart(s.Title)
		}
	}
	appendPart(s.Introduction)
	appendPart(s.Text)
	appendPart(formatSteps(s.Steps))
	appendPart(s.Conclusion)
	appendPart(s.AdditionalInfo)
	appendPart(s.Contact)
	appendPart(s.Note)

	return strings.Join(parts, "\n\n")
}

// titleIcon picks an icon from keywords of the title, or "" when none apply.
func titleIcon(title string) string {
	normalized := Normalize(title)
	for _, entry := range titleIcons {
		if strings.Contains(normalized, entry.keyword) {
			return entry.icon
		}
	}
	return ""
}

// formatSteps renders the numbered step block. Steps that carry exactly a
// text and a note are short annotations, not instructions: they are pulled
// out of the numbered flow and appended as italic summary lines.
func formatSteps(steps []models.Step) string {
	if len(steps) == 0 {
		return ""
	}

	var lines []string
	var trailing []string
	index := 1
	for i := range steps {
		step := &steps[i]
		if step.IsNoteOnly() {
			trailing = append(trailing, fmt.Sprintf("*%s : %s*", step.Text, step.Note))
			continue
		}

		var b strings.Builder
		fmt.Fprintf(&b, "%d. %s", index, step.Text)
		index++

		if step.Info != "" {
			b.WriteString("\n   ℹ️ " + step.Info)
		}
		if step.Note != "" {
			b.WriteString("\n   📝 " + step.Note)
		}
		if step.Example != "" {
			b.WriteString("\n   Exemple : " + step.Example)
		}
		if step.Warning != "" {
			b.WriteString("\n   ⚠️ " + step.Warning)
		}
		if step.Tip != "" {
			b.WriteString("\n   💡 " + step.Tip)
		}
		for _, option := range step.Options {
			b.WriteString("\n   • " + option)
		}
		lines = append(lines, b.String())
	}

	lines = append(lines, trailing...)
	return strings.Join(lines, "\n")
}

// rawAnswerText is the last-resort rendering used when formatting fails.
func rawAnswerText(answer models.Answer) string {
	if !answer.IsStructured() {
		return answer.Text
	}
	if data, err := json.Marshal(answer.Structured); err == nil {
		return string(data)
	}
	return fmt.Sprintf("%+v", *answer.Structured)
}
