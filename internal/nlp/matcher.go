package nlp

import (
	"errors"
	"sort"
	"strings"

	"github.com/MagloireKITIO/chatbot-file/internal/models"

	"go.uber.org/zap"
)

// ErrEmptyInput is returned when the user input normalizes to nothing.
// It is distinct from a no-match result: there was nothing to score.
var ErrEmptyInput = errors.New("empty user input")

// Channel weights of the per-question score. Absent alternative/keyword
// lists contribute 0 and the weights are not renormalized, so a question
// annotated with all three signals can outscore one that only has its
// main text.
const (
	weightQuestion     = 0.6
	weightAlternatives = 0.25
	weightKeywords     = 0.15
)

// MatchResult is the winning question of a scan with its composite score.
type MatchResult struct {
	Question *models.Question
	Category string
	Score    float64
}

// Matcher scans a knowledge base for the question closest to a user input.
type Matcher struct {
	threshold float64
	logger    *zap.Logger
}

// NewMatcher creates a matcher. threshold is the minimum score (strict)
// for a question to count as answered; 50 is the service default.
func NewMatcher(threshold float64, logger *zap.Logger) *Matcher {
	return &Matcher{
		threshold: threshold,
		logger:    logger,
	}
}

// FindBestMatch scores every question of the knowledge base against the
// input and returns the single best one, or nil when no question clears
// the threshold. Ties keep the first question in scan order. Empty input
// returns ErrEmptyInput.
func (m *Matcher) FindBestMatch(kb *models.KnowledgeBase, userInput string) (*MatchResult, error) {
	if strings.TrimSpace(userInput) == "" {
		return nil, ErrEmptyInput
	}

	var best *MatchResult
	for ci := range kb.Categories {
		category := &kb.Categories[ci]
		for qi := range category.Questions {
			question := &category.Questions[qi]
			score := m.questionScore(userInput, question)
			if best == nil || score > best.Score {
				best = &MatchResult{
					Question: question,
					Category: category.Name,
					Score:    score,
				}
			}
		}
	}

	if best == nil || best.Score <= m.threshold {
		if best != nil {
			m.logger.Debug("No question cleared the match threshold",
				zap.Float64("best_score", best.Score),
				zap.String("best_question", best.Question.Question),
			)
		}
		return nil, nil
	}

	m.logger.Debug("Best match found",
		zap.String("question_id", best.Question.ID),
		zap.Float64("score", best.Score),
	)
	return best, nil
}

// Suggest returns up to limit question texts ranked by the same score the
// matcher uses, descending, ties kept in scan order.
func (m *Matcher) Suggest(kb *models.KnowledgeBase, userInput string, limit int) []string {
	if strings.TrimSpace(userInput) == "" || limit <= 0 {
		return nil
	}

	type candidate struct {
		text  string
		score float64
	}
	var candidates []candidate
	for ci := range kb.Categories {
		for qi := range kb.Categories[ci].Questions {
			question := &kb.Categories[ci].Questions[qi]
			candidates = append(candidates, candidate{
				text:  question.Question,
				score: m.questionScore(userInput, question),
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	suggestions := make([]string, 0, len(candidates))
	for _, c := range candidates {
		suggestions = append(suggestions, c.text)
	}
	return suggestions
}

func (m *Matcher) questionScore(userInput string, q *models.Question) float64 {
	score := weightQuestion * Similarity(userInput, q.Question)

	if len(q.Alternatives) > 0 {
		best := 0.0
		for _, alt := range q.Alternatives {
			if s := Similarity(userInput, alt); s > best {
				best = s
			}
		}
		score += weightAlternatives * best
	}

	if len(q.Keywords) > 0 {
		best := 0.0
		for _, kw := range q.Keywords {
			if s := Similarity(userInput, kw); s > best {
				best = s
			}
		}
		score += weightKeywords * best
	}

	return score
}
