package repository

import (
	"context"

	"github.com/MagloireKITIO/chatbot-file/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type FAQFileRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewFAQFileRepository(db *pgxpool.Pool, logger *zap.Logger) *FAQFileRepository {
	return &FAQFileRepository{
		db:     db,
		logger: logger,
	}
}

// Upsert records an upload, replacing any previous record for the same
// language.
func (r *FAQFileRepository) Upsert(ctx context.Context, f *models.FAQFile) error {
	query := squirrel.Insert("faq_files").
		Columns("id", "language", "file_name", "uploaded_at").
		Values(f.ID, f.Language, f.FileName, f.UploadedAt).
		Suffix(`ON CONFLICT (language) DO UPDATE SET
			id = EXCLUDED.id,
			file_name = EXCLUDED.file_name,
			uploaded_at = EXCLUDED.uploaded_at`).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// GetByLanguage returns the upload record for one language.
func (r *FAQFileRepository) GetByLanguage(ctx context.Context, language string) (*models.FAQFile, error) {
	query := squirrel.Select("id", "language", "file_name", "uploaded_at").
		From("faq_files").
		Where(squirrel.Eq{"language": language}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var f models.FAQFile
	err = r.db.QueryRow(ctx, sql, args...).Scan(&f.ID, &f.Language, &f.FileName, &f.UploadedAt)
	if err != nil {
		return nil, err
	}

	return &f, nil
}

// List returns all upload records, most recent first.
func (r *FAQFileRepository) List(ctx context.Context) ([]*models.FAQFile, error) {
	query := squirrel.Select("id", "language", "file_name", "uploaded_at").
		From("faq_files").
		OrderBy("uploaded_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []*models.FAQFile
	for rows.Next() {
		var f models.FAQFile
		if err := rows.Scan(&f.ID, &f.Language, &f.FileName, &f.UploadedAt); err != nil {
			return nil, err
		}
		files = append(files, &f)
	}

	return files, rows.Err()
}
