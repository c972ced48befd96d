package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MagloireKITIO/chatbot-file/internal/dto"
	"github.com/MagloireKITIO/chatbot-file/internal/models"
	"github.com/MagloireKITIO/chatbot-file/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const defaultInactivityTimeout = 600 // seconds

// SettingsService serves the chat widget presentation settings. With a
// database the single row lives in Postgres; without one an in-memory
// copy backed by defaults is used, so the chatbot stays usable in dev.
type SettingsService struct {
	repo   *repository.SettingsRepository
	logger *zap.Logger

	mu     sync.RWMutex
	cached *models.ChatbotSettings
}

func NewSettingsService(repo *repository.SettingsRepository, logger *zap.Logger) *SettingsService {
	return &SettingsService{
		repo:   repo,
		logger: logger,
	}
}

// Get returns the stored settings, or defaults when nothing was saved yet.
func (s *SettingsService) Get(ctx context.Context) (*models.ChatbotSettings, error) {
	if s.repo != nil {
		settings, err := s.repo.Get(ctx)
		if err == nil {
			return settings, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
	}

	s.mu.RLock()
	cached := s.cached
	s.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	return defaultSettings(), nil
}

// Update persists new settings and returns the stored value.
func (s *SettingsService) Update(ctx context.Context, req *dto.UpdateSettingsRequest) (*models.ChatbotSettings, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	settings := &models.ChatbotSettings{
		ID:                current.ID,
		WelcomeMessage:    req.WelcomeMessage,
		FarewellMessage:   req.FarewellMessage,
		InactivityTimeout: req.InactivityTimeout,
		BackgroundImage:   req.BackgroundImage,
		ChatIcon:          req.ChatIcon,
		CreatedAt:         current.CreatedAt,
		UpdatedAt:         now,
	}
	if settings.InactivityTimeout <= 0 {
		settings.InactivityTimeout = defaultInactivityTimeout
	}

	if s.repo != nil {
		if err := s.repo.Upsert(ctx, settings); err != nil {
			return nil, err
		}
	} else {
		s.mu.Lock()
		s.cached = settings
		s.mu.Unlock()
	}

	s.logger.Info("Chatbot settings updated")
	return settings, nil
}

func defaultSettings() *models.ChatbotSettings {
	now := time.Now()
	return &models.ChatbotSettings{
		ID:                uuid.New(),
		WelcomeMessage:    "Bonjour ! Comment puis-je vous aider aujourd'hui ?",
		FarewellMessage:   "Merci de votre visite. À bientôt !",
		InactivityTimeout: defaultInactivityTimeout,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}
