package repository

import (
	"context"

	"github.com/modelforge/modelforge/internal/domain/entity"
)

// DropdownRow is a projection of whitelisted columns for dropdown pickers.
type DropdownRow map[string]any

type OpenAIKeyRepository interface {
	List(ctx context.Context, skip, take int, search string) ([]entity.OpenAIKey, int, error)
	GetByID(ctx context.Context, id string) (*entity.OpenAIKey, error)
	Create(ctx context.Context, k *entity.OpenAIKey) error
	Update(ctx context.Context, k *entity.OpenAIKey) error
	Delete(ctx context.Context, id string) error
	Dropdown(ctx context.Context, fields []string, keyword string) ([]DropdownRow, error)
}

type LLMAPIRepository interface {
	List(ctx context.Context, skip, take int, search string) ([]entity.LLMAPI, int, error)
	GetByID(ctx context.Context, id string) (*entity.LLMAPI, error)
	Create(ctx context.Context, a *entity.LLMAPI) error
	Update(ctx context.Context, a *entity.LLMAPI) error
	Delete(ctx context.Context, id string) error
	Dropdown(ctx context.Context, fields []string, keyword string) ([]DropdownRow, error)
}

type LLMAdapterRepository interface {
	List(ctx context.Context, skip, take int, search string) ([]entity.LLMAdapter, int, error)
	GetByID(ctx context.Context, id string) (*entity.LLMAdapter, error)
	Create(ctx context.Context, a *entity.LLMAdapter) error
	Update(ctx context.Context, a *entity.LLMAdapter) error
	Delete(ctx context.Context, id string) error
	Dropdown(ctx context.Context, fields []string, keyword string) ([]DropdownRow, error)
}

type MergedLLMRepository interface {
	List(ctx context.Context, skip, take int, search string) ([]entity.MergedLLM, int, error)
	GetByID(ctx context.Context, id string) (*entity.MergedLLM, error)
	Create(ctx context.Context, m *entity.MergedLLM) error
	Update(ctx context.Context, m *entity.MergedLLM) error
	Delete(ctx context.Context, id string) error
	Dropdown(ctx context.Context, fields []string, keyword string) ([]DropdownRow, error)
}

type ChatModelRepository interface {
	List(ctx context.Context, skip, take int, search string) ([]entity.ChatModel, int, error)
	GetByID(ctx context.Context, id string) (*entity.ChatModel, error)
	Create(ctx context.Context, m *entity.ChatModel) error
	Update(ctx context.Context, m *entity.ChatModel) error
	Delete(ctx context.Context, id string) error
	Dropdown(ctx context.Context, fields []string, keyword string) ([]DropdownRow, error)
}

type AutonomousAgentRepository interface {
	List(ctx context.Context, skip, take int, search string) ([]entity.AutonomousAgent, int, error)
	GetByID(ctx context.Context, id string) (*entity.AutonomousAgent, error)
	Create(ctx context.Context, a *entity.AutonomousAgent) error
	Update(ctx context.Context, a *entity.AutonomousAgent) error
	Delete(ctx context.Context, id string) error
	Dropdown(ctx context.Context, fields []string, keyword string) ([]DropdownRow, error)
}

type ExportedCodeRepository interface {
	List(ctx context.Context, skip, take int, search string) ([]entity.ExportedCode, int, error)
	GetByID(ctx context.Context, id string) (*entity.ExportedCode, error)
	Create(ctx context.Context, e *entity.ExportedCode) error
	Update(ctx context.Context, e *entity.ExportedCode) error
	Delete(ctx context.Context, id string) error
	Dropdown(ctx context.Context, fields []string, keyword string) ([]DropdownRow, error)
}
