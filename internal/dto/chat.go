package dto

type ChatRequest struct {
	Message  string `json:"message"`
	Language string `json:"language"`
}

type ChatResponse struct {
	Response    string   `json:"response"`
	Suggestions []string `json:"suggestions"`
}

type SettingsResponse struct {
	WelcomeMessage    string `json:"welcome_message"`
	FarewellMessage   string `json:"farewell_message"`
	InactivityTimeout int    `json:"inactivity_timeout"`
	BackgroundImage   string `json:"background_image,omitempty"`
	ChatIcon          string `json:"chat_icon,omitempty"`
}

type UpdateSettingsRequest struct {
	WelcomeMessage    string `json:"welcome_message"`
	FarewellMessage   string `json:"farewell_message"`
	InactivityTimeout int    `json:"inactivity_timeout"`
	BackgroundImage   string `json:"background_image"`
	ChatIcon          string `json:"chat_icon"`
}

type ReloadResponse struct {
	Statuses map[string]string `json:"statuses"`
}

type FAQFileResponse struct {
	ID         string `json:"id"`
	Language   string `json:"language"`
	FileName   string `json:"file_name"`
	UploadedAt string `json:"uploaded_at"`
}
