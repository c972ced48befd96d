package service

import (
	"context"
	"os"
	"testing"

	"github.com/MagloireKITIO/chatbot-file/internal/faq"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestFAQService(t *testing.T) (*FAQService, *ChatService) {
	t.Helper()
	chat, _ := newTestChatService(t)
	return NewFAQService(chat, nil, zap.NewNop()), chat
}

func TestUploadInstallsKnowledgeBase(t *testing.T) {
	svc, chat := newTestFAQService(t)

	record, err := svc.Upload(context.Background(), "fr", "faq_fr.json", []byte(testDocument))
	require.NoError(t, err)
	assert.Equal(t, "fr", record.Language)
	assert.Equal(t, "faq_fr.json", record.FileName)
	assert.False(t, record.UploadedAt.IsZero())

	// Document persisted at the storage path, pretty-printed
	data, err := os.ReadFile(chat.DocumentPath("fr"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Quels sont vos horaires?")

	// The new knowledge base answers immediately
	resp, err := chat.HandleMessage("fr", "horaires")
	require.NoError(t, err)
	assert.Equal(t, "9h-18h", resp.Response)
}

func TestUploadRejectsBadExtension(t *testing.T) {
	svc, _ := newTestFAQService(t)

	_, err := svc.Upload(context.Background(), "fr", "faq.txt", []byte(testDocument))
	assert.ErrorIs(t, err, ErrInvalidFileName)
}

func TestUploadRejectsUnsupportedLanguage(t *testing.T) {
	svc, _ := newTestFAQService(t)

	_, err := svc.Upload(context.Background(), "de", "faq.json", []byte(testDocument))
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
}

func TestUploadRejectsInvalidDocument(t *testing.T) {
	svc, chat := newTestFAQService(t)

	// Install a good document first
	_, err := svc.Upload(context.Background(), "fr", "faq.json", []byte(testDocument))
	require.NoError(t, err)

	// Structurally invalid upload changes nothing
	_, err = svc.Upload(context.Background(), "fr", "faq.json", []byte(`{"metadata": {}}`))
	assert.ErrorIs(t, err, faq.ErrValidation)

	_, err = svc.Upload(context.Background(), "fr", "faq.json", []byte(`not json`))
	assert.ErrorIs(t, err, faq.ErrParse)

	resp, err := chat.HandleMessage("fr", "horaires")
	require.NoError(t, err)
	assert.Equal(t, "9h-18h", resp.Response)
}

func TestHistoryWithoutDatabase(t *testing.T) {
	svc, _ := newTestFAQService(t)

	files, err := svc.History(context.Background())
	require.NoError(t, err)
	assert.Empty(t, files)
}
