package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MagloireKITIO/chatbot-file/internal/faq"
	"github.com/MagloireKITIO/chatbot-file/internal/models"
	"github.com/MagloireKITIO/chatbot-file/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrInvalidFileName is returned for uploads that are not .json files.
var ErrInvalidFileName = errors.New("faq upload must be a .json file")

// FAQService handles backoffice FAQ uploads: validate the document,
// persist it to the per-language storage path, record the upload and
// install the new knowledge base.
type FAQService struct {
	chat   *ChatService
	files  *repository.FAQFileRepository
	logger *zap.Logger
}

func NewFAQService(chat *ChatService, files *repository.FAQFileRepository, logger *zap.Logger) *FAQService {
	return &FAQService{
		chat:   chat,
		files:  files,
		logger: logger,
	}
}

// Upload validates and installs a new FAQ document for a language.
// An invalid document changes nothing: the previous file and knowledge
// base stay active.
func (s *FAQService) Upload(ctx context.Context, language, fileName string, content []byte) (*models.FAQFile, error) {
	if !strings.HasSuffix(strings.ToLower(fileName), ".json") {
		return nil, ErrInvalidFileName
	}
	if !s.chat.Supported(language) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, language)
	}

	kb, err := faq.LoadBytes(content)
	if err != nil {
		return nil, err
	}

	if err := s.writeDocument(language, content); err != nil {
		return nil, err
	}

	record := &models.FAQFile{
		ID:         uuid.New(),
		Language:   language,
		FileName:   fileName,
		UploadedAt: time.Now(),
	}
	if s.files != nil {
		if err := s.files.Upsert(ctx, record); err != nil {
			// The document itself is installed; losing the audit record
			// is not worth failing the upload over.
			s.logger.Warn("Failed to record FAQ upload", zap.Error(err))
		}
	}

	if err := s.chat.Install(language, kb); err != nil {
		return nil, err
	}

	s.logger.Info("FAQ uploaded",
		zap.String("language", language),
		zap.String("file", fileName),
		zap.Int("categories", len(kb.Categories)),
	)
	return record, nil
}

// History lists recorded uploads, most recent first. Empty without a
// database.
func (s *FAQService) History(ctx context.Context) ([]*models.FAQFile, error) {
	if s.files == nil {
		return []*models.FAQFile{}, nil
	}
	return s.files.List(ctx)
}

// writeDocument stores the validated document pretty-printed at the
// language's storage path, where Reload picks it up.
func (s *FAQService) writeDocument(language string, content []byte) error {
	path := s.chat.DocumentPath(language)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create faq storage dir: %w", err)
	}

	var doc any
	if err := json.Unmarshal(content, &doc); err != nil {
		return fmt.Errorf("%w: %v", faq.ErrParse, err)
	}
	pretty, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode faq document: %w", err)
	}

	if err := os.WriteFile(path, pretty, 0o644); err != nil {
		return fmt.Errorf("failed to write faq document: %w", err)
	}
	return nil
}
