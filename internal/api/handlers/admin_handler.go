package handlers

import (
	"errors"
	"io"
	"time"

	"github.com/MagloireKITIO/chatbot-file/internal/dto"
	"github.com/MagloireKITIO/chatbot-file/internal/faq"
	"github.com/MagloireKITIO/chatbot-file/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AdminHandler struct {
	faqService      *service.FAQService
	settingsService *service.SettingsService
	logger          *zap.Logger
}

func NewAdminHandler(faqService *service.FAQService, settingsService *service.SettingsService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		faqService:      faqService,
		settingsService: settingsService,
		logger:          logger,
	}
}

// UploadFAQ handles POST /backoffice/upload-faq (multipart: language, file)
func (h *AdminHandler) UploadFAQ(c *fiber.Ctx) error {
	language := c.FormValue("language")
	if language == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Language is required",
		})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "File is required",
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to open file",
		})
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to read file",
		})
	}

	record, err := h.faqService.Upload(c.Context(), language, fileHeader.Filename, content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidFileName):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Only .json files are accepted",
			})
		case errors.Is(err, service.ErrUnsupportedLanguage):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Langue non supportée",
			})
		case errors.Is(err, faq.ErrParse):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid JSON file",
			})
		case errors.Is(err, faq.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid FAQ structure",
			})
		}
		h.logger.Error("Failed to upload FAQ", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to upload FAQ",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.FAQFileResponse{
		ID:         record.ID.String(),
		Language:   record.Language,
		FileName:   record.FileName,
		UploadedAt: record.UploadedAt.Format(time.RFC3339),
	})
}

// ListUploads handles GET /backoffice/uploads
func (h *AdminHandler) ListUploads(c *fiber.Ctx) error {
	files, err := h.faqService.History(c.Context())
	if err != nil {
		h.logger.Error("Failed to list FAQ uploads", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list uploads",
		})
	}

	resp := make([]dto.FAQFileResponse, 0, len(files))
	for _, f := range files {
		resp = append(resp, dto.FAQFileResponse{
			ID:         f.ID.String(),
			Language:   f.Language,
			FileName:   f.FileName,
			UploadedAt: f.UploadedAt.Format(time.RFC3339),
		})
	}
	return c.JSON(resp)
}

// GetSettings handles GET /backoffice/settings
func (h *AdminHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.settingsService.Get(c.Context())
	if err != nil {
		h.logger.Error("Failed to load chatbot settings", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load settings",
		})
	}

	return c.JSON(dto.SettingsResponse{
		WelcomeMessage:    settings.WelcomeMessage,
		FarewellMessage:   settings.FarewellMessage,
		InactivityTimeout: settings.InactivityTimeout,
		BackgroundImage:   settings.BackgroundImage,
		ChatIcon:          settings.ChatIcon,
	})
}

// UpdateSettings handles PUT /backoffice/settings
func (h *AdminHandler) UpdateSettings(c *fiber.Ctx) error {
	var req dto.UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	settings, err := h.settingsService.Update(c.Context(), &req)
	if err != nil {
		h.logger.Error("Failed to update chatbot settings", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update settings",
		})
	}

	return c.JSON(dto.SettingsResponse{
		WelcomeMessage:    settings.WelcomeMessage,
		FarewellMessage:   settings.FarewellMessage,
		InactivityTimeout: settings.InactivityTimeout,
		BackgroundImage:   settings.BackgroundImage,
		ChatIcon:          settings.ChatIcon,
	})
}
