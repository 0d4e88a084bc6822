package application

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/modelforge/modelforge/config"
	"github.com/modelforge/modelforge/internal/domain/entity"
	"github.com/modelforge/modelforge/internal/domain/repository"
	"github.com/modelforge/modelforge/pkg/helpers"
	"github.com/modelforge/modelforge/pkg/mailer"
	"github.com/modelforge/modelforge/pkg/mailer/templates"
)

const (
	// Minimum wall-clock gap between two issuances for the same
	// (email, purpose) pair.
	tokenThrottle = 3 * time.Minute
	// Tokens older than this are dead. There is no sweeper; age is
	// checked when the token is presented and the row removed then.
	tokenTTL = 24 * time.Hour
)

// Mailer sends account emails. Delivery failures must surface as errors.
type Mailer interface {
	SendVerification(ctx context.Context, name, email, link string) error
	SendPasswordReset(ctx context.Context, name, email, link string) error
}

// Publisher queues jobs for async processing.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// TokenPair is the bearer session pair returned on login and refresh.
type TokenPair struct {
	AccessToken      string    `json:"access_token"`
	AccessExpiresAt  time.Time `json:"access_expires_at"`
	RefreshToken     string    `json:"refresh_token"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
}

// AuthService owns the token lifecycle (issue, throttle, redeem) and
// session issuance.
type AuthService struct {
	cfg    *config.Config
	users  repository.UserRepository
	tokens repository.TokenRepository
	jwt    *helpers.JWTManager
	mail   Mailer
	queue  Publisher // optional, login notifications
	log    *logrus.Logger
}

func NewAuthService(
	cfg *config.Config,
	users repository.UserRepository,
	tokens repository.TokenRepository,
	jwt *helpers.JWTManager,
	mail Mailer,
	queue Publisher,
	log *logrus.Logger,
) *AuthService {
	return &AuthService{
		cfg:    cfg,
		users:  users,
		tokens: tokens,
		jwt:    jwt,
		mail:   mail,
		queue:  queue,
		log:    log,
	}
}

// Register creates an unverified user and sends the verification email.
func (s *AuthService) Register(ctx context.Context, name, email, password, confirm string) (*entity.User, error) {
	if password != confirm {
		return nil, ErrPasswordConfirm
	}
	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{Name: name, Email: email, Password: hash}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	if err := s.IssueToken(ctx, email, entity.PurposeEmailVerify); err != nil {
		return nil, err
	}
	return u, nil
}

// Login validates credentials and mints a bearer pair. Unverified
// accounts cannot log in.
func (s *AuthService) Login(ctx context.Context, email, password, ip, userAgent string) (*TokenPair, *entity.User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, nil, ErrInvalidCredentials
	}
	if !u.EmailVerified {
		return nil, nil, ErrEmailNotVerified
	}

	pair, err := s.mintPair(u)
	if err != nil {
		return nil, nil, err
	}
	s.notifyLogin(ctx, u, ip, userAgent)
	return pair, u, nil
}

// RefreshTokens verifies a refresh token, re-resolves the user and mints
// a fresh pair. Every failure collapses into ErrInvalidRefreshToken.
func (s *AuthService) RefreshTokens(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.jwt.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}
	u, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}
	return s.mintPair(u)
}

// ChangePassword rotates the password of a logged-in user.
func (s *AuthService) ChangePassword(ctx context.Context, userID, current, newPassword, confirm string) error {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if newPassword == current {
		return ErrSamePassword
	}
	if newPassword != confirm {
		return ErrPasswordConfirm
	}
	if !helpers.CompareHashAndPassword(u.Password, current) {
		return ErrPasswordMismatch
	}

	hash, err := helpers.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, u.Email, hash)
}

// IssueToken creates (or replaces) the live token for (email, purpose)
// and mails the matching link. A token issued less than three minutes ago
// blocks re-issuance. The upsert is not rolled back when mail delivery
// fails; the token stays redeemable and the caller can retry Issue after
// the throttle window.
func (s *AuthService) IssueToken(ctx context.Context, email string, purpose entity.TokenPurpose) error {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if purpose == entity.PurposeEmailVerify && u.EmailVerified {
		return ErrAlreadyVerified
	}

	existing, err := s.tokens.FindByEmail(ctx, email, purpose)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	if existing != nil && time.Since(existing.UpdatedAt) < tokenThrottle {
		return ErrTokenRecentlySent
	}

	token := helpers.GenerateToken()
	if err := s.tokens.Upsert(ctx, email, purpose, token); err != nil {
		return err
	}

	switch purpose {
	case entity.PurposeEmailVerify:
		link := s.cfg.VerifyEmailURL + "?token=" + token
		err = s.mail.SendVerification(ctx, u.Name, email, link)
	case entity.PurposeForgotPassword:
		link := s.cfg.ResetPasswordURL + "?token=" + url.QueryEscape(token)
		err = s.mail.SendPasswordReset(ctx, u.Name, email, link)
	default:
		return fmt.Errorf("unknown token purpose %q", purpose)
	}
	if err != nil {
		helpers.LogError(s.log, "mail delivery failed", err, logrus.Fields{"email": email, "purpose": purpose})
		return fmt.Errorf("%w: %v", ErrMailDelivery, err)
	}
	return nil
}

// VerifyEmail redeems an email-verification token and marks the account
// verified. Returns the verified email address.
func (s *AuthService) VerifyEmail(ctx context.Context, token string) (string, error) {
	t, err := s.tokens.FindByToken(ctx, token, entity.PurposeEmailVerify)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidToken
		}
		return "", err
	}
	if time.Since(t.UpdatedAt) > tokenTTL {
		_ = s.tokens.Delete(ctx, token, entity.PurposeEmailVerify)
		return "", ErrInvalidToken
	}

	u, err := s.users.GetByEmail(ctx, t.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidToken
		}
		return "", err
	}
	// Stale token for an already-verified account stays in place until
	// it expires or gets superseded.
	if u.EmailVerified {
		return "", ErrAlreadyVerified
	}

	if err := s.users.SetVerified(ctx, t.Email); err != nil {
		return "", err
	}
	if err := s.tokens.Delete(ctx, token, entity.PurposeEmailVerify); err != nil {
		helpers.LogError(s.log, "failed to delete redeemed token", err, logrus.Fields{"email": t.Email})
	}
	return t.Email, nil
}

// ResetPassword redeems a forgot-password token and sets a new password.
// The consume is atomic, so of two concurrent redeemers exactly one can
// change the password. The confirmation check runs before the consume;
// a mismatch must not burn the token.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword, confirm string) error {
	if newPassword != confirm {
		return ErrPasswordConfirm
	}
	t, err := s.tokens.Consume(ctx, token, entity.PurposeForgotPassword)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidToken
		}
		return err
	}
	if time.Since(t.UpdatedAt) > tokenTTL {
		return ErrInvalidToken
	}

	hash, err := helpers.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, t.Email, hash); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidToken
		}
		return err
	}
	return nil
}

func (s *AuthService) mintPair(u *entity.User) (*TokenPair, error) {
	access, accessExp, err := s.jwt.GenerateAccessToken(u.ID, u.Email)
	if err != nil {
		return nil, err
	}
	refresh, refreshExp, err := s.jwt.GenerateRefreshToken(u.ID, u.Email)
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		AccessToken:      access,
		AccessExpiresAt:  accessExp,
		RefreshToken:     refresh,
		RefreshExpiresAt: refreshExp,
	}, nil
}

func (s *AuthService) notifyLogin(ctx context.Context, u *entity.User, ip, userAgent string) {
	if s.queue == nil {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: templates.LoginNotification,
		Data: templates.NewLoginNotificationData(s.cfg, u.Name, u.Email,
			templates.WithIP(ip),
			templates.WithUserAgent(userAgent),
			templates.WithTime(time.Now())),
	}
	if err := s.queue.PublishJSON(ctx, job); err != nil {
		helpers.LogError(s.log, "failed to queue login notification", err, logrus.Fields{"email": u.Email})
	}
}
