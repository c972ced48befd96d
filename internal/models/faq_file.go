package models

import (
	"time"

	"github.com/google/uuid"
)

// FAQFile records a processed FAQ upload. One record per language, replaced
// on each new upload.
type FAQFile struct {
	ID         uuid.UUID `db:"id"`
	Language   string    `db:"language"`
	FileName   string    `db:"file_name"`
	UploadedAt time.Time `db:"uploaded_at"`
}
