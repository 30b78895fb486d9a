package model

// MaxMessageLength bounds an ask message, counted in UTF-16 code units the
// way browsers and JavaScript clients count string length.
const MaxMessageLength = 10000

// Conversation roles understood by the providers.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

type AskRequest struct {
	Message string `json:"message" validate:"notblank,messagelen"`
}

type TeachRequest struct {
	Topic string `json:"topic" validate:"notblank"`
}

type AskResponse struct {
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
}

type TeachResponse struct {
	Response  string `json:"response"`
	Topic     string `json:"topic"`
	Timestamp string `json:"timestamp"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// Turn is one message of a conversation sent to the provider.
type Turn struct {
	Role string
	Text string
}

// GenerationConfig holds sampling parameters. Zero fields leave the
// provider default in place.
type GenerationConfig struct {
	Temperature     float32
	TopP            float32
	TopK            int32
	MaxOutputTokens int32
}
