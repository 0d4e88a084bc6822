package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/modelforge/modelforge/internal/domain/entity"
	"github.com/modelforge/modelforge/internal/domain/repository"
	"github.com/modelforge/modelforge/pkg/helpers"
)

const profileCacheTTL = 5 * time.Minute

// UserService serves profile reads and admin-style user management.
// Profiles are cached in Redis; users are mirrored into Elasticsearch
// for full-text search.
type UserService struct {
	users        repository.UserRepository
	rdb          *redis.Client
	es           *elasticsearch.Client
	esUsersIndex string
	log          *logrus.Logger
}

func NewUserService(users repository.UserRepository, rdb *redis.Client, es *elasticsearch.Client, esUsersIndex string, log *logrus.Logger) *UserService {
	return &UserService{users: users, rdb: rdb, es: es, esUsersIndex: esUsersIndex, log: log}
}

// Profile is the public view of a user. Password hashes never leave the
// service layer.
type Profile struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toProfile(u *entity.User) *Profile {
	return &Profile{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func profileCacheKey(id string) string { return "profile:" + id }

func (s *UserService) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	if s.rdb != nil {
		var cached Profile
		if ok, err := helpers.RedisGetJSON(ctx, s.rdb, profileCacheKey(userID), &cached); err == nil && ok {
			return &cached, nil
		}
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	p := toProfile(u)
	if s.rdb != nil {
		if err := helpers.RedisSetJSON(ctx, s.rdb, profileCacheKey(userID), p, profileCacheTTL); err != nil {
			helpers.LogError(s.log, "profile cache write failed", err, logrus.Fields{"user_id": userID})
		}
	}
	return p, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID, name string) (*Profile, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	u.Name = name
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	if s.rdb != nil {
		_ = helpers.RedisDel(ctx, s.rdb, profileCacheKey(userID))
	}
	s.Index(ctx, u)
	return toProfile(u), nil
}

func (s *UserService) List(ctx context.Context, skip, take int, search string) ([]Profile, int, error) {
	users, total, err := s.users.List(ctx, skip, take, search)
	if err != nil {
		return nil, 0, err
	}
	out := make([]Profile, 0, len(users))
	for i := range users {
		out = append(out, *toProfile(&users[i]))
	}
	return out, total, nil
}

func (s *UserService) Delete(ctx context.Context, userID string) error {
	err := s.users.Delete(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

// Index mirrors a user document into Elasticsearch. Best-effort: failures
// are logged, never propagated.
func (s *UserService) Index(ctx context.Context, u *entity.User) {
	if s.es == nil || s.esUsersIndex == "" {
		return
	}
	doc := map[string]any{
		"id":             u.ID,
		"email":          u.Email,
		"name":           u.Name,
		"email_verified": u.EmailVerified,
		"created_at":     u.CreatedAt.Format(time.RFC3339Nano),
		"updated_at":     u.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.esUsersIndex, DocumentID: u.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.es)
	if err != nil {
		helpers.LogError(s.log, "es index failed", err, logrus.Fields{"user_id": u.ID})
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		helpers.LogError(s.log, "es index response error", nil, logrus.Fields{"status": res.Status(), "user_id": u.ID})
	}
}

// Search performs a simple multi_match search on email and name.
func (s *UserService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.es == nil || s.esUsersIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"email^2", "name"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.es.Search(
		s.es.Search.WithContext(c),
		s.es.Search.WithIndex(s.esUsersIndex),
		s.es.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
