package repository

import (
	"context"

	"github.com/MagloireKITIO/chatbot-file/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type SettingsRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewSettingsRepository(db *pgxpool.Pool, logger *zap.Logger) *SettingsRepository {
	return &SettingsRepository{
		db:     db,
		logger: logger,
	}
}

// Get returns the settings row. There is at most one; pgx.ErrNoRows when
// none has been saved yet.
func (r *SettingsRepository) Get(ctx context.Context) (*models.ChatbotSettings, error) {
	query := squirrel.Select("id", "welcome_message", "farewell_message", "inactivity_timeout",
		"background_image", "chat_icon", "created_at", "updated_at").
		From("chatbot_settings").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var s models.ChatbotSettings
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&s.ID, &s.WelcomeMessage, &s.FarewellMessage, &s.InactivityTimeout,
		&s.BackgroundImage, &s.ChatIcon, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// Upsert inserts the settings row or overwrites the existing one.
func (r *SettingsRepository) Upsert(ctx context.Context, s *models.ChatbotSettings) error {
	query := squirrel.Insert("chatbot_settings").
		Columns("id", "welcome_message", "farewell_message", "inactivity_timeout",
			"background_image", "chat_icon", "created_at", "updated_at").
		Values(s.ID, s.WelcomeMessage, s.FarewellMessage, s.InactivityTimeout,
			s.BackgroundImage, s.ChatIcon, s.CreatedAt, s.UpdatedAt).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			welcome_message = EXCLUDED.welcome_message,
			farewell_message = EXCLUDED.farewell_message,
			inactivity_timeout = EXCLUDED.inactivity_timeout,
			background_image = EXCLUDED.background_image,
			chat_icon = EXCLUDED.chat_icon,
			updated_at = EXCLUDED.updated_at`).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
