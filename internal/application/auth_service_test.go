package application

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelforge/modelforge/config"
	"github.com/modelforge/modelforge/internal/domain/entity"
	"github.com/modelforge/modelforge/internal/domain/repository"
	"github.com/modelforge/modelforge/pkg/helpers"
)

type fakeUserRepo struct {
	byEmail map[string]*entity.User
	nextID  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	f.nextID++
	u.ID = "user-" + time.Now().Format("150405") + "-" + string(rune('a'+f.nextID))
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	f.byEmail[u.Email] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	stored, ok := f.byEmail[u.Email]
	if !ok {
		return repository.ErrNotFound
	}
	stored.Name = u.Name
	return nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, email, hash string) error {
	u, ok := f.byEmail[email]
	if !ok {
		return repository.ErrNotFound
	}
	u.Password = hash
	return nil
}

func (f *fakeUserRepo) SetVerified(_ context.Context, email string) error {
	u, ok := f.byEmail[email]
	if !ok {
		return repository.ErrNotFound
	}
	u.EmailVerified = true
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	for email, u := range f.byEmail {
		if u.ID == id {
			delete(f.byEmail, email)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeUserRepo) List(_ context.Context, _, _ int, _ string) ([]entity.User, int, error) {
	out := make([]entity.User, 0, len(f.byEmail))
	for _, u := range f.byEmail {
		out = append(out, *u)
	}
	return out, len(out), nil
}

type fakeTokenRepo struct {
	rows map[string]*entity.AuthToken // key: email|purpose
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{rows: map[string]*entity.AuthToken{}}
}

func tokenKey(email string, purpose entity.TokenPurpose) string {
	return email + "|" + string(purpose)
}

func (f *fakeTokenRepo) FindByEmail(_ context.Context, email string, purpose entity.TokenPurpose) (*entity.AuthToken, error) {
	t, ok := f.rows[tokenKey(email, purpose)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTokenRepo) FindByToken(_ context.Context, token string, purpose entity.TokenPurpose) (*entity.AuthToken, error) {
	for _, t := range f.rows {
		if t.Token == token && t.Purpose == purpose {
			cp := *t
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeTokenRepo) Upsert(_ context.Context, email string, purpose entity.TokenPurpose, token string) error {
	f.rows[tokenKey(email, purpose)] = &entity.AuthToken{
		Email:     email,
		Purpose:   purpose,
		Token:     token,
		UpdatedAt: time.Now(),
	}
	return nil
}

func (f *fakeTokenRepo) Delete(_ context.Context, token string, purpose entity.TokenPurpose) error {
	for k, t := range f.rows {
		if t.Token == token && t.Purpose == purpose {
			delete(f.rows, k)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeTokenRepo) Consume(ctx context.Context, token string, purpose entity.TokenPurpose) (*entity.AuthToken, error) {
	t, err := f.FindByToken(ctx, token, purpose)
	if err != nil {
		return nil, err
	}
	delete(f.rows, tokenKey(t.Email, t.Purpose))
	return t, nil
}

// backdate rewinds a stored token's timestamp.
func (f *fakeTokenRepo) backdate(email string, purpose entity.TokenPurpose, d time.Duration) {
	if t, ok := f.rows[tokenKey(email, purpose)]; ok {
		t.UpdatedAt = t.UpdatedAt.Add(-d)
	}
}

type sentMail struct {
	kind  string
	name  string
	email string
	link  string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (f *fakeMailer) SendVerification(_ context.Context, name, email, link string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{kind: "verify", name: name, email: email, link: link})
	return nil
}

func (f *fakeMailer) SendPasswordReset(_ context.Context, name, email, link string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{kind: "reset", name: name, email: email, link: link})
	return nil
}

type fakePublisher struct {
	jobs []any
}

func (f *fakePublisher) PublishJSON(_ context.Context, body any) error {
	f.jobs = append(f.jobs, body)
	return nil
}

type authFixture struct {
	svc    *AuthService
	users  *fakeUserRepo
	tokens *fakeTokenRepo
	mail   *fakeMailer
	queue  *fakePublisher
	jwt    *helpers.JWTManager
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	cfg := &config.Config{
		AppName:          "modelforge-test",
		FrontEndURL:      "https://app.test",
		VerifyEmailURL:   "https://app.test/verify-email",
		ResetPasswordURL: "https://app.test/reset-password",
		MailSendEnabled:  true,
	}
	log := logrus.New()
	log.SetOutput(io.Discard)

	f := &authFixture{
		users:  newFakeUserRepo(),
		tokens: newFakeTokenRepo(),
		mail:   &fakeMailer{},
		queue:  &fakePublisher{},
		jwt:    helpers.NewJWTManager("access-secret", "refresh-secret", time.Hour, 2*time.Hour),
	}
	f.svc = NewAuthService(cfg, f.users, f.tokens, f.jwt, f.mail, f.queue, log)
	return f
}

func (f *authFixture) register(t *testing.T, email string) *entity.User {
	t.Helper()
	u, err := f.svc.Register(context.Background(), "Ada", email, "hunter2secret", "hunter2secret")
	require.NoError(t, err)
	return u
}

func (f *authFixture) liveToken(t *testing.T, email string, purpose entity.TokenPurpose) string {
	t.Helper()
	tok, err := f.tokens.FindByEmail(context.Background(), email, purpose)
	require.NoError(t, err)
	return tok.Token
}

func TestRegister(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	u := f.register(t, "ada@example.com")
	assert.False(t, u.EmailVerified)

	// verification mail carries the stored token value
	require.Len(t, f.mail.sent, 1)
	assert.Equal(t, "verify", f.mail.sent[0].kind)
	tok := f.liveToken(t, "ada@example.com", entity.PurposeEmailVerify)
	assert.Equal(t, "https://app.test/verify-email?token="+tok, f.mail.sent[0].link)

	_, err := f.svc.Register(ctx, "Ada", "ada@example.com", "hunter2secret", "hunter2secret")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterPasswordConfirmMismatch(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.svc.Register(ctx, "Ada", "ada@example.com", "hunter2secret", "different9999")
	assert.ErrorIs(t, err, ErrPasswordConfirm)

	// nothing was created or sent
	_, err = f.users.GetByEmail(ctx, "ada@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Empty(t, f.mail.sent)
}

func TestIssueTokenThrottle(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	f.register(t, "ada@example.com")

	// token was just issued by Register
	err := f.svc.IssueToken(ctx, "ada@example.com", entity.PurposeEmailVerify)
	assert.ErrorIs(t, err, ErrTokenRecentlySent)

	old := f.liveToken(t, "ada@example.com", entity.PurposeEmailVerify)
	f.tokens.backdate("ada@example.com", entity.PurposeEmailVerify, 4*time.Minute)

	require.NoError(t, f.svc.IssueToken(ctx, "ada@example.com", entity.PurposeEmailVerify))
	fresh := f.liveToken(t, "ada@example.com", entity.PurposeEmailVerify)
	assert.NotEqual(t, old, fresh)

	// superseded token no longer resolves
	_, err = f.svc.VerifyEmail(ctx, old)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssueTokenUnknownUser(t *testing.T) {
	f := newAuthFixture(t)
	err := f.svc.IssueToken(context.Background(), "ghost@example.com", entity.PurposeForgotPassword)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestIssueTokenAlreadyVerified(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	f.register(t, "ada@example.com")
	require.NoError(t, f.users.SetVerified(ctx, "ada@example.com"))

	err := f.svc.IssueToken(ctx, "ada@example.com", entity.PurposeEmailVerify)
	assert.ErrorIs(t, err, ErrAlreadyVerified)

	// forgot-password issuance is unaffected by verification state
	require.NoError(t, f.svc.IssueToken(ctx, "ada@example.com", entity.PurposeForgotPassword))
}

func TestIssueTokenMailFailureKeepsToken(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	f.register(t, "ada@example.com")
	require.NoError(t, f.users.SetVerified(ctx, "ada@example.com"))

	f.mail.err = errors.New("smtp down")
	err := f.svc.IssueToken(ctx, "ada@example.com", entity.PurposeForgotPassword)
	assert.ErrorIs(t, err, ErrMailDelivery)

	// token upsert is not rolled back on delivery failure
	tok := f.liveToken(t, "ada@example.com", entity.PurposeForgotPassword)
	f.mail.err = nil
	require.NoError(t, f.svc.ResetPassword(ctx, tok, "newpassword99", "newpassword99"))
}

func TestIssueTokenResetLinkEscaped(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	f.register(t, "ada@example.com")

	require.NoError(t, f.svc.IssueToken(ctx, "ada@example.com", entity.PurposeForgotPassword))
	require.Len(t, f.mail.sent, 2)
	last := f.mail.sent[1]
	assert.Equal(t, "reset", last.kind)
	assert.True(t, strings.HasPrefix(last.link, "https://app.test/reset-password?token="), last.link)
}

func TestVerifyEmail(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	f.register(t, "ada@example.com")
	tok := f.liveToken(t, "ada@example.com", entity.PurposeEmailVerify)

	email, err := f.svc.VerifyEmail(ctx, tok)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", email)

	u, err := f.users.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.True(t, u.EmailVerified)

	// redeemed token is gone
	_, err = f.tokens.FindByToken(ctx, tok, entity.PurposeEmailVerify)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// second redemption fails generically
	_, err = f.svc.VerifyEmail(ctx, tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyEmailExpired(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	f.register(t, "ada@example.com")
	tok := f.liveToken(t, "ada@example.com", entity.PurposeEmailVerify)
	f.tokens.backdate("ada@example.com", entity.PurposeEmailVerify, 25*time.Hour)

	_, err := f.svc.VerifyEmail(ctx, tok)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// expired token is deleted lazily
	_, err = f.tokens.FindByToken(ctx, tok, entity.PurposeEmailVerify)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	u, err := f.users.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.False(t, u.EmailVerified)
}

func TestVerifyEmailAlreadyVerifiedKeepsToken(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	f.register(t, "ada@example.com")
	tok := f.liveToken(t, "ada@example.com", entity.PurposeEmailVerify)
	require.NoError(t, f.users.SetVerified(ctx, "ada@example.com"))

	_, err := f.svc.VerifyEmail(ctx, tok)
	assert.ErrorIs(t, err, ErrAlreadyVerified)

	// stale token stays until it expires or is superseded
	_, err = f.tokens.FindByToken(ctx, tok, entity.PurposeEmailVerify)
	assert.NoError(t, err)
}

func TestVerifyEmailWrongPurpose(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	f.register(t, "ada@example.com")
	require.NoError(t, f.svc.IssueToken(ctx, "ada@example.com", entity.PurposeForgotPassword))
	resetTok := f.liveToken(t, "ada@example.com", entity.PurposeForgotPassword)

	// a reset token cannot verify an email
	_, err := f.svc.VerifyEmail(ctx, resetTok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResetPassword(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	f.register(t, "ada@example.com")
	require.NoError(t, f.users.SetVerified(ctx, "ada@example.com"))
	require.NoError(t, f.svc.IssueToken(ctx, "ada@example.com", entity.PurposeForgotPassword))
	tok := f.liveToken(t, "ada@example.com", entity.PurposeForgotPassword)

	require.NoError(t, f.svc.ResetPassword(ctx, tok, "brandnewpass1", "brandnewpass1"))

	// old password no longer logs in, new one does
	_, _, err := f.svc.Login(ctx, "ada@example.com", "hunter2secret", "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = f.svc.Login(ctx, "ada@example.com", "brandnewpass1", "", "")
	assert.NoError(t, err)

	// single use
	err = f.svc.ResetPassword(ctx, tok, "anotherpass22", "anotherpass22")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResetPasswordConfirmMismatch(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	f.register(t, "ada@example.com")
	require.NoError(t, f.users.SetVerified(ctx, "ada@example.com"))
	require.NoError(t, f.svc.IssueToken(ctx, "ada@example.com", entity.PurposeForgotPassword))
	tok := f.liveToken(t, "ada@example.com", entity.PurposeForgotPassword)

	err := f.svc.ResetPassword(ctx, tok, "brandnewpass1", "completely-different")
	assert.ErrorIs(t, err, ErrPasswordConfirm)

	// password unchanged and the token not consumed
	_, _, err = f.svc.Login(ctx, "ada@example.com", "brandnewpass1", "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = f.svc.Login(ctx, "ada@example.com", "hunter2secret", "", "")
	assert.NoError(t, err)
	require.NoError(t, f.svc.ResetPassword(ctx, tok, "brandnewpass1", "brandnewpass1"))
}

func TestResetPasswordExpired(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	f.register(t, "ada@example.com")
	require.NoError(t, f.svc.IssueToken(ctx, "ada@example.com", entity.PurposeForgotPassword))
	tok := f.liveToken(t, "ada@example.com", entity.PurposeForgotPassword)
	f.tokens.backdate("ada@example.com", entity.PurposeForgotPassword, 25*time.Hour)

	err := f.svc.ResetPassword(ctx, tok, "brandnewpass1", "brandnewpass1")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// password unchanged
	_, _, err = f.svc.Login(ctx, "ada@example.com", "brandnewpass1", "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	f.register(t, "ada@example.com")

	// unverified accounts cannot log in
	_, _, err := f.svc.Login(ctx, "ada@example.com", "hunter2secret", "1.2.3.4", "ua")
	assert.ErrorIs(t, err, ErrEmailNotVerified)

	require.NoError(t, f.users.SetVerified(ctx, "ada@example.com"))

	_, _, err = f.svc.Login(ctx, "ada@example.com", "wrongpassword", "1.2.3.4", "ua")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = f.svc.Login(ctx, "ghost@example.com", "hunter2secret", "1.2.3.4", "ua")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	pair, u, err := f.svc.Login(ctx, "ada@example.com", "hunter2secret", "1.2.3.4", "ua")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", u.Email)

	claims, err := f.jwt.ParseAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, u.Email, claims.Email)

	// access and refresh tokens are signed with distinct secrets
	_, err = f.jwt.ParseAccessToken(pair.RefreshToken)
	assert.Error(t, err)
	_, err = f.jwt.ParseRefreshToken(pair.AccessToken)
	assert.Error(t, err)

	// login notification queued
	assert.Len(t, f.queue.jobs, 1)
}

func TestRefreshTokens(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	u := f.register(t, "ada@example.com")
	require.NoError(t, f.users.SetVerified(ctx, "ada@example.com"))
	pair, _, err := f.svc.Login(ctx, "ada@example.com", "hunter2secret", "", "")
	require.NoError(t, err)

	fresh, err := f.svc.RefreshTokens(ctx, pair.RefreshToken)
	require.NoError(t, err)
	claims, err := f.jwt.ParseAccessToken(fresh.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)

	// tampered token
	_, err = f.svc.RefreshTokens(ctx, pair.RefreshToken+"x")
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)

	// access token is not accepted as a refresh token
	_, err = f.svc.RefreshTokens(ctx, pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)

	// deleted user cannot refresh
	require.NoError(t, f.users.Delete(ctx, u.ID))
	_, err = f.svc.RefreshTokens(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestChangePassword(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	u := f.register(t, "ada@example.com")
	require.NoError(t, f.users.SetVerified(ctx, "ada@example.com"))

	err := f.svc.ChangePassword(ctx, u.ID, "hunter2secret", "hunter2secret", "hunter2secret")
	assert.ErrorIs(t, err, ErrSamePassword)

	err = f.svc.ChangePassword(ctx, u.ID, "hunter2secret", "freshpass123", "different123")
	assert.ErrorIs(t, err, ErrPasswordConfirm)

	err = f.svc.ChangePassword(ctx, u.ID, "wrongcurrent", "freshpass123", "freshpass123")
	assert.ErrorIs(t, err, ErrPasswordMismatch)

	err = f.svc.ChangePassword(ctx, "no-such-id", "hunter2secret", "freshpass123", "freshpass123")
	assert.ErrorIs(t, err, ErrUserNotFound)

	require.NoError(t, f.svc.ChangePassword(ctx, u.ID, "hunter2secret", "freshpass123", "freshpass123"))
	_, _, err = f.svc.Login(ctx, "ada@example.com", "freshpass123", "", "")
	assert.NoError(t, err)
}
