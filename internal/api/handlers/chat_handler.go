package handlers

import (
	"errors"

	"github.com/MagloireKITIO/chatbot-file/internal/dto"
	"github.com/MagloireKITIO/chatbot-file/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ChatHandler struct {
	chatService     *service.ChatService
	settingsService *service.SettingsService
	logger          *zap.Logger
}

func NewChatHandler(chatService *service.ChatService, settingsService *service.SettingsService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService:     chatService,
		settingsService: settingsService,
		logger:          logger,
	}
}

// Message handles POST /chatbot/api/message
func (h *ChatHandler) Message(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Language == "" {
		req.Language = "fr"
	}

	h.logger.Info("Message received",
		zap.String("language", req.Language),
		zap.Int("length", len(req.Message)),
	)

	resp, err := h.chatService.HandleMessage(req.Language, req.Message)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedLanguage) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Langue non supportée",
			})
		}
		h.logger.Error("Failed to handle message", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to handle message",
		})
	}

	return c.JSON(resp)
}

// Settings handles GET /chatbot/api/settings
func (h *ChatHandler) Settings(c *fiber.Ctx) error {
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

// Reload handles POST /chatbot/api/reload-faq. With a language query
// parameter only that language reloads, otherwise all of them. A failed
// language never blocks the others.
func (h *ChatHandler) Reload(c *fiber.Ctx) error {
	language := c.Query("language")

	results := make(map[string]error)
	if language != "" {
		if !h.chatService.Supported(language) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Langue non supportée",
			})
		}
		results[language] = h.chatService.Reload(language)
	} else {
		results = h.chatService.ReloadAll()
	}

	statuses := make(map[string]string, len(results))
	for lang, err := range results {
		if err != nil {
			statuses[lang] = err.Error()
		} else {
			statuses[lang] = "ok"
		}
	}

	return c.JSON(dto.ReloadResponse{Statuses: statuses})
}
