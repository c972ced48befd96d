package models

import (
	"time"

	"github.com/google/uuid"
)

// ChatbotSettings is the single row of presentation settings the chat
// widget consumes. The core matching engine never reads it.
type ChatbotSettings struct {
	ID                uuid.UUID `db:"id"`
	WelcomeMessage    string    `db:"welcome_message"`
	FarewellMessage   string    `db:"farewell_message"`
	InactivityTimeout int       `db:"inactivity_timeout"` // seconds
	BackgroundImage   string    `db:"background_image"`
	ChatIcon          string    `db:"chat_icon"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}
