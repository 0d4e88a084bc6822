package application

import (
	"context"

	"github.com/modelforge/modelforge/internal/domain/entity"
	"github.com/modelforge/modelforge/internal/domain/repository"
)

// AutonomousAgentService manages agent records.
type AutonomousAgentService struct {
	repo repository.AutonomousAgentRepository
}

func NewAutonomousAgentService(repo repository.AutonomousAgentRepository) *AutonomousAgentService {
	return &AutonomousAgentService{repo: repo}
}

func (s *AutonomousAgentService) List(ctx context.Context, skip, take int, search string) ([]entity.AutonomousAgent, int, error) {
	return s.repo.List(ctx, skip, take, search)
}

func (s *AutonomousAgentService) Get(ctx context.Context, id string) (*entity.AutonomousAgent, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AutonomousAgentService) Create(ctx context.Context, userID, name, llmID string) (*entity.AutonomousAgent, error) {
	a := &entity.AutonomousAgent{Name: name, LLMID: llmID, UserID: userID}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AutonomousAgentService) Update(ctx context.Context, id string, name, llmID *string) (*entity.AutonomousAgent, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	apply(&a.Name, name)
	apply(&a.LLMID, llmID)
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AutonomousAgentService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *AutonomousAgentService) Dropdown(ctx context.Context, fields []string, keyword string) ([]repository.DropdownRow, error) {
	return s.repo.Dropdown(ctx, fields, keyword)
}
