// Package faq loads and validates FAQ documents. A document is either
// installed whole or rejected; nothing is ever partially loaded.
package faq

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/MagloireKITIO/chatbot-file/internal/models"
)

var (
	// ErrNotFound means the document source could not be read.
	ErrNotFound = errors.New("faq document not found")
	// ErrParse means the document content is not well-formed JSON.
	ErrParse = errors.New("faq document is not valid JSON")
	// ErrValidation means the document failed the structural contract.
	ErrValidation = errors.New("faq document has an invalid structure")
)

// Validate checks the structural contract of a decoded FAQ document:
// a categories sequence, each category holding a non-empty questions
// sequence, each question carrying id, question and answer fields.
// Value types beyond container kind are not checked.
func Validate(doc map[string]any) bool {
	categories, ok := doc["categories"].([]any)
	if !ok {
		return false
	}

	for _, raw := range categories {
		category, ok := raw.(map[string]any)
		if !ok {
			return false
		}
		questions, ok := category["questions"].([]any)
		if !ok || len(questions) == 0 {
			return false
		}
		for _, rawQ := range questions {
			question, ok := rawQ.(map[string]any)
			if !ok {
				return false
			}
			for _, field := range []string{"id", "question", "answer"} {
				if _, present := question[field]; !present {
					return false
				}
			}
		}
	}
	return true
}

// Load reads a FAQ document from path and returns a fully-formed
// knowledge base, or ErrNotFound / ErrParse / ErrValidation.
func Load(path string) (*models.KnowledgeBase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return LoadBytes(data)
}

// LoadBytes parses and validates raw document content. Used by Load and
// by the upload path, which receives the bytes directly.
func LoadBytes(data []byte) (*models.KnowledgeBase, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	if !Validate(raw) {
		return nil, ErrValidation
	}

	var kb models.KnowledgeBase
	if err := json.Unmarshal(data, &kb); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	kb.LoadedAt = time.Now()

	return &kb, nil
}
