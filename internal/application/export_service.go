package application

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/sirupsen/logrus"

	"github.com/modelforge/modelforge/internal/domain/entity"
	"github.com/modelforge/modelforge/internal/domain/repository"
	"github.com/modelforge/modelforge/pkg/helpers"
)

// ExportedCodeService manages generated code artifacts. On create the
// artifact is also archived to object storage when a bucket is
// configured; archive failures are logged, the row is kept either way.
type ExportedCodeService struct {
	repo      repository.ExportedCodeRepository
	gcs       *storage.Client
	gcsBucket string
	log       *logrus.Logger
}

func NewExportedCodeService(repo repository.ExportedCodeRepository, gcs *storage.Client, gcsBucket string, log *logrus.Logger) *ExportedCodeService {
	return &ExportedCodeService{repo: repo, gcs: gcs, gcsBucket: gcsBucket, log: log}
}

func (s *ExportedCodeService) List(ctx context.Context, skip, take int, search string) ([]entity.ExportedCode, int, error) {
	return s.repo.List(ctx, skip, take, search)
}

func (s *ExportedCodeService) Get(ctx context.Context, id string) (*entity.ExportedCode, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ExportedCodeService) Create(ctx context.Context, userID, code string) (*entity.ExportedCode, error) {
	e := &entity.ExportedCode{Code: code, UserID: userID}
	e.ArchiveURL = s.archive(ctx, userID, code)
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *ExportedCodeService) Update(ctx context.Context, id string, code *string) (*entity.ExportedCode, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	apply(&e.Code, code)
	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *ExportedCodeService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *ExportedCodeService) Dropdown(ctx context.Context, fields []string, keyword string) ([]repository.DropdownRow, error) {
	return s.repo.Dropdown(ctx, fields, keyword)
}

func (s *ExportedCodeService) archive(ctx context.Context, userID, code string) string {
	if s.gcs == nil || s.gcsBucket == "" {
		return ""
	}
	objectPath := "exports/" + userID + "/" + time.Now().UTC().Format("20060102T150405") + ".txt"
	url, err := helpers.UploadObject(ctx, s.gcs, s.gcsBucket, objectPath, "text/plain", strings.NewReader(code))
	if err != nil {
		helpers.LogError(s.log, "export archive upload failed", err, logrus.Fields{"user_id": userID})
		return ""
	}
	return url
}
