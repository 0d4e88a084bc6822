package application

import (
	"context"

	"github.com/modelforge/modelforge/internal/domain/entity"
	"github.com/modelforge/modelforge/internal/domain/repository"
)

// apply overwrites dst when a partial-update field was provided.
func apply[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// OpenAIKeyService manages stored provider API keys.
type OpenAIKeyService struct {
	repo repository.OpenAIKeyRepository
}

func NewOpenAIKeyService(repo repository.OpenAIKeyRepository) *OpenAIKeyService {
	return &OpenAIKeyService{repo: repo}
}

func (s *OpenAIKeyService) List(ctx context.Context, skip, take int, search string) ([]entity.OpenAIKey, int, error) {
	return s.repo.List(ctx, skip, take, search)
}

func (s *OpenAIKeyService) Get(ctx context.Context, id string) (*entity.OpenAIKey, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *OpenAIKeyService) Create(ctx context.Context, userID, apiKey string) (*entity.OpenAIKey, error) {
	k := &entity.OpenAIKey{APIKey: apiKey, UserID: userID}
	if err := s.repo.Create(ctx, k); err != nil {
		return nil, err
	}
	return k, nil
}

func (s *OpenAIKeyService) Update(ctx context.Context, id string, apiKey *string) (*entity.OpenAIKey, error) {
	k, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	apply(&k.APIKey, apiKey)
	if err := s.repo.Update(ctx, k); err != nil {
		return nil, err
	}
	return k, nil
}

func (s *OpenAIKeyService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *OpenAIKeyService) Dropdown(ctx context.Context, fields []string, keyword string) ([]repository.DropdownRow, error) {
	return s.repo.Dropdown(ctx, fields, keyword)
}

// LLMAPIService manages registered model endpoints.
type LLMAPIService struct {
	repo repository.LLMAPIRepository
}

func NewLLMAPIService(repo repository.LLMAPIRepository) *LLMAPIService {
	return &LLMAPIService{repo: repo}
}

func (s *LLMAPIService) List(ctx context.Context, skip, take int, search string) ([]entity.LLMAPI, int, error) {
	return s.repo.List(ctx, skip, take, search)
}

func (s *LLMAPIService) Get(ctx context.Context, id string) (*entity.LLMAPI, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *LLMAPIService) Create(ctx context.Context, userID, name, endpoint string) (*entity.LLMAPI, error) {
	a := &entity.LLMAPI{Name: name, Endpoint: endpoint, UserID: userID}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *LLMAPIService) Update(ctx context.Context, id string, name, endpoint *string) (*entity.LLMAPI, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	apply(&a.Name, name)
	apply(&a.Endpoint, endpoint)
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *LLMAPIService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *LLMAPIService) Dropdown(ctx context.Context, fields []string, keyword string) ([]repository.DropdownRow, error) {
	return s.repo.Dropdown(ctx, fields, keyword)
}

// LLMAdapterService manages adapter shims.
type LLMAdapterService struct {
	repo repository.LLMAdapterRepository
}

func NewLLMAdapterService(repo repository.LLMAdapterRepository) *LLMAdapterService {
	return &LLMAdapterService{repo: repo}
}

func (s *LLMAdapterService) List(ctx context.Context, skip, take int, search string) ([]entity.LLMAdapter, int, error) {
	return s.repo.List(ctx, skip, take, search)
}

func (s *LLMAdapterService) Get(ctx context.Context, id string) (*entity.LLMAdapter, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *LLMAdapterService) Create(ctx context.Context, name, modelType string) (*entity.LLMAdapter, error) {
	a := &entity.LLMAdapter{Name: name, ModelType: modelType}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *LLMAdapterService) Update(ctx context.Context, id string, name, modelType *string) (*entity.LLMAdapter, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	apply(&a.Name, name)
	apply(&a.ModelType, modelType)
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *LLMAdapterService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *LLMAdapterService) Dropdown(ctx context.Context, fields []string, keyword string) ([]repository.DropdownRow, error) {
	return s.repo.Dropdown(ctx, fields, keyword)
}

// MergedLLMService manages merged model pairs.
type MergedLLMService struct {
	repo repository.MergedLLMRepository
}

func NewMergedLLMService(repo repository.MergedLLMRepository) *MergedLLMService {
	return &MergedLLMService{repo: repo}
}

func (s *MergedLLMService) List(ctx context.Context, skip, take int, search string) ([]entity.MergedLLM, int, error) {
	return s.repo.List(ctx, skip, take, search)
}

func (s *MergedLLMService) Get(ctx context.Context, id string) (*entity.MergedLLM, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *MergedLLMService) Create(ctx context.Context, llm1ID, llm2ID string) (*entity.MergedLLM, error) {
	m := &entity.MergedLLM{LLM1ID: llm1ID, LLM2ID: llm2ID}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MergedLLMService) Update(ctx context.Context, id string, llm1ID, llm2ID *string) (*entity.MergedLLM, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	apply(&m.LLM1ID, llm1ID)
	apply(&m.LLM2ID, llm2ID)
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MergedLLMService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *MergedLLMService) Dropdown(ctx context.Context, fields []string, keyword string) ([]repository.DropdownRow, error) {
	return s.repo.Dropdown(ctx, fields, keyword)
}

// ChatModelService manages chat model records.
type ChatModelService struct {
	repo repository.ChatModelRepository
}

func NewChatModelService(repo repository.ChatModelRepository) *ChatModelService {
	return &ChatModelService{repo: repo}
}

func (s *ChatModelService) List(ctx context.Context, skip, take int, search string) ([]entity.ChatModel, int, error) {
	return s.repo.List(ctx, skip, take, search)
}

func (s *ChatModelService) Get(ctx context.Context, id string) (*entity.ChatModel, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ChatModelService) Create(ctx context.Context, modelName, modelVersion, apiKeyID string) (*entity.ChatModel, error) {
	m := &entity.ChatModel{ModelName: modelName, ModelVersion: modelVersion, APIKeyID: apiKeyID}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *ChatModelService) Update(ctx context.Context, id string, modelName, modelVersion, apiKeyID *string) (*entity.ChatModel, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	apply(&m.ModelName, modelName)
	apply(&m.ModelVersion, modelVersion)
	apply(&m.APIKeyID, apiKeyID)
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *ChatModelService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *ChatModelService) Dropdown(ctx context.Context, fields []string, keyword string) ([]repository.DropdownRow, error) {
	return s.repo.Dropdown(ctx, fields, keyword)
}
