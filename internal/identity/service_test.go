package identity

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"docuvault/internal/auth"
	"docuvault/internal/database/memstore"
	"docuvault/internal/domain"
	"docuvault/internal/mail"

	"github.com/stretchr/testify/require"
)

type outbox struct {
	sent []mail.Message
}

func (o *outbox) Send(ctx context.Context, msg mail.Message) error {
	o.sent = append(o.sent, msg)
	return nil
}

func (o *outbox) lastToken(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, o.sent)
	body := o.sent[len(o.sent)-1].Body
	i := strings.Index(body, "/reset-password/")
	require.GreaterOrEqual(t, i, 0)
	rest := body[i+len("/reset-password/"):]
	return strings.Fields(rest)[0]
}

func newTestService(t *testing.T) (*Service, *memstore.Store, *outbox) {
	t.Helper()
	store := memstore.New()
	box := &outbox{}
	svc := NewService(store, box, Config{
		JWTSecret:   "identity_test_secret_value",
		TokenTTL:    7 * 24 * time.Hour,
		FrontendURL: "http://localhost:3000/",
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return svc, store, box
}

func register(t *testing.T, svc *Service, email string) *Session {
	t.Helper()
	sess, err := svc.Register(context.Background(), RegisterInput{Email: email, Password: "correct-horse", Name: "Ada"})
	require.NoError(t, err)
	return sess
}

func TestRegister(t *testing.T) {
	svc, _, _ := newTestService(t)

	sess := register(t, svc, "  Ada@Example.COM ")
	require.Equal(t, "ada@example.com", sess.User.Email)
	require.NotEqual(t, "correct-horse", sess.User.PasswordHash)
	require.NotEmpty(t, sess.Token)

	user, err := svc.Authenticate(context.Background(), sess.Token)
	require.NoError(t, err)
	require.Equal(t, sess.User.ID, user.ID)
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	svc, _, _ := newTestService(t)
	register(t, svc, "ada@example.com")

	_, err := svc.Register(context.Background(), RegisterInput{Email: "ADA@example.com", Password: "another-pass", Name: "Other"})
	require.ErrorIs(t, err, domain.ErrConflict)

	var httpErr domain.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, 409, httpErr.StatusCode())
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	cases := []RegisterInput{
		{Email: "not-an-email", Password: "correct-horse", Name: "Ada"},
		{Email: "ada@example.com", Password: "short", Name: "Ada"},
		{Email: "ada@example.com", Password: "correct-horse", Name: "  "},
	}
	for _, in := range cases {
		_, err := svc.Register(ctx, in)
		require.ErrorIs(t, err, domain.ErrValidation, "%+v", in)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	register(t, svc, "ada@example.com")

	sess, err := svc.Login(ctx, "ADA@example.com", "correct-horse")
	require.NoError(t, err)
	require.NotEmpty(t, sess.Token)

	_, wrongPassword := svc.Login(ctx, "ada@example.com", "wrong-password")
	_, unknownEmail := svc.Login(ctx, "nobody@example.com", "correct-horse")

	require.ErrorIs(t, wrongPassword, domain.ErrUnauthorized)
	require.ErrorIs(t, unknownEmail, domain.ErrUnauthorized)
	require.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestAuthenticateRejectsBadTokens(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Authenticate(ctx, "garbage")
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	sess := register(t, svc, "ada@example.com")
	other := NewService(memstore.New(), &outbox{}, svc.cfg, svc.logger)
	_, err = other.Authenticate(ctx, sess.Token)
	require.ErrorIs(t, err, domain.ErrUnauthorized, "token for a user missing from the store")

	expired, err := auth.GenerateJWT(sess.User, svc.cfg.JWTSecret, -time.Minute)
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, expired)
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestForgotPasswordUnknownEmailLooksTheSame(t *testing.T) {
	svc, _, box := newTestService(t)

	require.NoError(t, svc.ForgotPassword(context.Background(), "nobody@example.com"))
	require.Empty(t, box.sent)
}

func TestPasswordResetFlow(t *testing.T) {
	svc, store, box := newTestService(t)
	ctx := context.Background()
	sess := register(t, svc, "ada@example.com")

	require.NoError(t, svc.ForgotPassword(ctx, "ada@example.com"))
	require.Len(t, box.sent, 1)
	require.Equal(t, "ada@example.com", box.sent[0].To)
	require.Contains(t, box.sent[0].Body, "http://localhost:3000/reset-password/")

	token := box.lastToken(t)
	require.Len(t, token, resetTokenLength)

	user, err := store.GetUserByID(ctx, sess.User.ID)
	require.NoError(t, err)
	require.NotNil(t, user.ResetTokenHash)
	require.NotEqual(t, token, *user.ResetTokenHash, "token must not be stored in plaintext")
	require.WithinDuration(t, time.Now().Add(time.Hour), *user.ResetExpiresAt, 5*time.Second)

	require.NoError(t, svc.ResetPassword(ctx, token, "brand-new-secret"))

	_, err = svc.Login(ctx, "ada@example.com", "correct-horse")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = svc.Login(ctx, "ada@example.com", "brand-new-secret")
	require.NoError(t, err)

	err = svc.ResetPassword(ctx, token, "yet-another-secret")
	require.ErrorIs(t, err, domain.ErrValidation, "reset token must be single-use")
}

func TestExpiredResetTokenIsRejectedAndCleared(t *testing.T) {
	svc, store, box := newTestService(t)
	ctx := context.Background()
	sess := register(t, svc, "ada@example.com")

	require.NoError(t, svc.ForgotPassword(ctx, "ada@example.com"))
	token := box.lastToken(t)

	svc.now = func() time.Time { return time.Now().UTC().Add(2 * time.Hour) }
	err := svc.ResetPassword(ctx, token, "brand-new-secret")
	require.ErrorIs(t, err, domain.ErrValidation)

	user, err := store.GetUserByID(ctx, sess.User.ID)
	require.NoError(t, err)
	require.Nil(t, user.ResetTokenHash)
	require.Nil(t, user.ResetExpiresAt)

	_, err = svc.Login(ctx, "ada@example.com", "correct-horse")
	require.NoError(t, err)
}

func TestResetPasswordValidatesNewPassword(t *testing.T) {
	svc, _, _ := newTestService(t)

	err := svc.ResetPassword(context.Background(), "whatever", "short")
	require.ErrorIs(t, err, domain.ErrValidation)
}
