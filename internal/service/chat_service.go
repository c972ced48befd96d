package service

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/MagloireKITIO/chatbot-file/internal/dto"
	"github.com/MagloireKITIO/chatbot-file/internal/faq"
	"github.com/MagloireKITIO/chatbot-file/internal/models"
	"github.com/MagloireKITIO/chatbot-file/internal/nlp"
	"github.com/MagloireKITIO/chatbot-file/pkg/config"

	"go.uber.org/zap"
)

// ErrUnsupportedLanguage is returned for a language the service was not
// configured with. It is the only error surfaced to the HTTP caller as a
// hard request failure.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// User-facing texts. Failures never leak raw errors into the chat.
const (
	apologyMessage = "Je suis désolé, je n'ai pas trouvé de réponse à votre question. " +
		"Pouvez-vous reformuler ou poser une autre question ?"
	emptyMessageReply = "Je n'ai pas reçu de question. Pouvez-vous écrire quelques mots ?"
	notLoadedMessage  = "Les données FAQ n'ont pas été chargées. Veuillez réessayer plus tard."
)

// languageSlot holds the active knowledge base of one language. Reload
// swaps the pointer whole under the lock; concurrent readers see either
// the old or the new knowledge base, never a partial one.
type languageSlot struct {
	mu sync.RWMutex
	kb *models.KnowledgeBase
}

func (s *languageSlot) get() *models.KnowledgeBase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.kb
}

func (s *languageSlot) set(kb *models.KnowledgeBase) {
	s.mu.Lock()
	s.kb = kb
	s.mu.Unlock()
}

// ChatService wires the matching engine: one knowledge-base slot per
// supported language, a matcher and a formatter. It owns all per-language
// state; there are no package-level singletons.
type ChatService struct {
	matcher   *nlp.Matcher
	formatter *nlp.Formatter
	cfg       *config.FAQConfig
	slots     map[string]*languageSlot
	logger    *zap.Logger
}

func NewChatService(matcher *nlp.Matcher, formatter *nlp.Formatter, cfg *config.FAQConfig, logger *zap.Logger) *ChatService {
	slots := make(map[string]*languageSlot, len(cfg.Languages))
	for _, lang := range cfg.Languages {
		slots[lang] = &languageSlot{}
	}

	return &ChatService{
		matcher:   matcher,
		formatter: formatter,
		cfg:       cfg,
		slots:     slots,
		logger:    logger,
	}
}

// Languages returns the configured language codes.
func (s *ChatService) Languages() []string {
	return s.cfg.Languages
}

// Supported reports whether the language has a slot.
func (s *ChatService) Supported(language string) bool {
	_, ok := s.slots[language]
	return ok
}

// DocumentPath is the storage location of a language's processed FAQ file.
func (s *ChatService) DocumentPath(language string) string {
	return filepath.Join(s.cfg.StorageDir, fmt.Sprintf("faq_%s.json", language))
}

// Install atomically replaces the knowledge base of a language.
func (s *ChatService) Install(language string, kb *models.KnowledgeBase) error {
	slot, ok := s.slots[language]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedLanguage, language)
	}
	slot.set(kb)
	s.logger.Info("Knowledge base installed",
		zap.String("language", language),
		zap.Int("categories", len(kb.Categories)),
	)
	return nil
}

// Reload loads the language's FAQ document from storage and installs it.
// On failure the previously active knowledge base stays in place.
func (s *ChatService) Reload(language string) error {
	slot, ok := s.slots[language]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedLanguage, language)
	}

	path := s.DocumentPath(language)
	kb, err := faq.Load(path)
	if err != nil {
		s.logger.Error("FAQ reload failed, previous knowledge base kept",
			zap.String("language", language),
			zap.String("path", path),
			zap.Error(err),
		)
		return err
	}

	slot.set(kb)
	s.logger.Info("FAQ reloaded",
		zap.String("language", language),
		zap.Int("categories", len(kb.Categories)),
	)
	return nil
}

// ReloadAll reloads every configured language. A failing language does
// not block the others.
func (s *ChatService) ReloadAll() map[string]error {
	results := make(map[string]error, len(s.slots))
	for _, lang := range s.cfg.Languages {
		results[lang] = s.Reload(lang)
	}
	return results
}

// HandleMessage resolves the language, matches the input against its
// knowledge base and returns the formatted answer, or an apology with
// suggestions when nothing matched. Only an unknown language is an error;
// every other condition yields a polite response.
func (s *ChatService) HandleMessage(language, text string) (*dto.ChatResponse, error) {
	slot, ok := s.slots[language]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, language)
	}

	kb := slot.get()
	if kb == nil {
		// Lazy first load, mirrors the reload endpoint
		if err := s.Reload(language); err == nil {
			kb = slot.get()
		}
	}
	if kb == nil {
		return &dto.ChatResponse{
			Response:    notLoadedMessage,
			Suggestions: []string{},
		}, nil
	}

	match, err := s.matcher.FindBestMatch(kb, text)
	if errors.Is(err, nlp.ErrEmptyInput) {
		return &dto.ChatResponse{
			Response:    emptyMessageReply,
			Suggestions: []string{},
		}, nil
	}
	if err != nil {
		// The matcher has no other failure mode today; degrade politely
		// if one ever appears.
		s.logger.Error("Matching failed", zap.String("language", language), zap.Error(err))
		return &dto.ChatResponse{
			Response:    apologyMessage,
			Suggestions: []string{},
		}, nil
	}

	if match != nil {
		return &dto.ChatResponse{
			Response:    s.formatter.Format(match.Question.Answer),
			Suggestions: []string{},
		}, nil
	}

	suggestions := s.matcher.Suggest(kb, text, s.cfg.SuggestionLimit)
	if suggestions == nil {
		suggestions = []string{}
	}
	return &dto.ChatResponse{
		Response:    apologyMessage,
		Suggestions: suggestions,
	}, nil
}
