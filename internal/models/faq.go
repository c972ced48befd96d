package models

import (
	"encoding/json"
	"strings"
	"time"
)

// KnowledgeBase is the in-memory form of a validated FAQ document for one
// language. Instances are immutable once loaded; a reload replaces the whole
// value, it never mutates one in place.
type KnowledgeBase struct {
	Categories []Category `json:"categories"`
	LoadedAt   time.Time  `json:"-"`
}

type Category struct {
	Name      string     `json:"name"`
	Questions []Question `json:"questions"`
}

// Question is a single FAQ entry. ID is assumed unique within a knowledge
// base but not enforced. Alternatives and Keywords are optional extra
// matching signals.
type Question struct {
	ID           string   `json:"id"`
	Question     string   `json:"question"`
	Alternatives []string `json:"alternatives,omitempty"`
	Keywords     []string `json:"keywords,omitempty"`
	Answer       Answer   `json:"answer"`
}

// Answer is a two-variant union: a plain text string or a structured
// multi-part answer. FAQ documents encode it either as a JSON string or as
// an object, so decoding picks the variant from the JSON shape.
type Answer struct {
	Text       string
	Structured *StructuredAnswer
}

type StructuredAnswer struct {
	Title          string `json:"title,omitempty"`
	Introduction   string `json:"introduction,omitempty"`
	Text           string `json:"text,omitempty"`
	Steps          []Step `json:"steps,omitempty"`
	Conclusion     string `json:"conclusion,omitempty"`
	AdditionalInfo string `json:"additional_info,omitempty"`
	Contact        string `json:"contact,omitempty"`
	Note           string `json:"note,omitempty"`
}

// Step is one instruction inside a structured answer. Text is required,
// the annotations are optional.
type Step struct {
	Text    string   `json:"step"`
	Info    string   `json:"info,omitempty"`
	Note    string   `json:"note,omitempty"`
	Example string   `json:"example,omitempty"`
	Warning string   `json:"warning,omitempty"`
	Tip     string   `json:"tip,omitempty"`
	Options []string `json:"options,omitempty"`
}

// IsNoteOnly reports whether the step carries exactly a text and a note.
// Such steps are short inline annotations (a product name with a remark)
// rather than instructional steps, and render as a trailing summary line.
func (s *Step) IsNoteOnly() bool {
	return s.Text != "" && s.Note != "" &&
		s.Info == "" && s.Example == "" && s.Warning == "" && s.Tip == "" &&
		len(s.Options) == 0
}

// IsStructured reports whether the structured variant is populated.
func (a *Answer) IsStructured() bool {
	return a.Structured != nil
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		a.Text = plain
		a.Structured = nil
		return nil
	}

	var structured StructuredAnswer
	if err := json.Unmarshal(data, &structured); err == nil {
		a.Text = ""
		a.Structured = &structured
		return nil
	}

	// Validation is structural only, so an answer of an unexpected kind
	// (number, array) can reach this point. Keep its raw text so the user
	// still gets something.
	a.Text = strings.TrimSpace(string(data))
	a.Structured = nil
	return nil
}

func (a Answer) MarshalJSON() ([]byte, error) {
	if a.Structured != nil {
		return json.Marshal(a.Structured)
	}
	return json.Marshal(a.Text)
}
