package entity

import "time"

// OpenAIKey is a stored provider API key owned by a user.
type OpenAIKey struct {
	ID        string    `json:"id"`
	APIKey    string    `json:"api_key"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LLMAPI is a reachable model endpoint registered by a user.
type LLMAPI struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Endpoint  string    `json:"endpoint"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LLMAdapter describes an adapter shim for a given model type.
type LLMAdapter struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ModelType string    `json:"model_type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MergedLLM pairs two registered LLM APIs into a merged model.
type MergedLLM struct {
	ID        string    `json:"id"`
	LLM1ID    string    `json:"llm1_id"`
	LLM2ID    string    `json:"llm2_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ChatModel is a chat-capable model record bound to a provider key.
type ChatModel struct {
	ID           string    `json:"id"`
	ModelName    string    `json:"model_name"`
	ModelVersion string    `json:"model_version"`
	APIKeyID     string    `json:"api_key_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AutonomousAgent is a named agent backed by a registered LLM API.
type AutonomousAgent struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	LLMID     string    `json:"llm_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ExportedCode is a generated code artifact owned by a user. ArchiveURL
// is set when the artifact has been copied to object storage.
type ExportedCode struct {
	ID         string    `json:"id"`
	Code       string    `json:"code"`
	ArchiveURL string    `json:"archive_url"`
	UserID     string    `json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
