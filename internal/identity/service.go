// Package identity owns user accounts: registration, login, bearer token
// resolution and the password reset flow.
package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"time"

	"docuvault/internal/auth"
	"docuvault/internal/database"
	"docuvault/internal/domain"
	"docuvault/internal/mail"
	"docuvault/internal/models"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const (
	minPasswordLength = 8
	resetTokenLength  = 40
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ForgotPasswordMessage is returned whether or not the address is known.
const ForgotPasswordMessage = "if that email is registered, a reset link has been sent"

var errInvalidCredentials = domain.Unauthorized("invalid credentials")

// dummyHash is compared against when no user matches, so a miss costs the
// same bcrypt work as a wrong password.
var dummyHash = sync.OnceValue(func() string {
	hash, _ := auth.HashPassword("docuvault-timing-equalizer")
	return hash
})

type Config struct {
	JWTSecret   string
	TokenTTL    time.Duration
	ResetTTL    time.Duration
	FrontendURL string
}

type Service struct {
	store  database.Store
	mailer mail.Sender
	cfg    Config
	logger *slog.Logger
	now    func() time.Time
}

func NewService(store database.Store, mailer mail.Sender, cfg Config, logger *slog.Logger) *Service {
	if cfg.ResetTTL == 0 {
		cfg.ResetTTL = time.Hour
	}
	return &Service{
		store:  store,
		mailer: mailer,
		cfg:    cfg,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Session is what a successful register or login hands back.
type Session struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func passwordRules() []validation.Rule {
	return []validation.Rule{validation.Required, validation.Length(minPasswordLength, 72)}
}

func (in *RegisterInput) validate() error {
	err := validation.ValidateStruct(in,
		validation.Field(&in.Email, validation.Required, validation.Length(3, 254), validation.Match(emailPattern)),
		validation.Field(&in.Password, passwordRules()...),
		validation.Field(&in.Name, validation.Required, validation.Length(1, 100)),
	)
	if err != nil {
		return domain.Invalid(err.Error())
	}
	return nil
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	in.Email = normalizeEmail(in.Email)
	in.Name = strings.TrimSpace(in.Name)
	if err := in.validate(); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.store.CreateUser(ctx, database.CreateUserParams{
		ID:           uuid.New(),
		Email:        in.Email,
		Name:         in.Name,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, database.ErrEmailTaken) {
			return nil, &domain.ConflictError{Message: "email is already registered", ResourceType: "user"}
		}
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return s.issue(user)
}

func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.store.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		auth.CheckPasswordHash(password, dummyHash())
		return nil, errInvalidCredentials
	}
	if !auth.CheckPasswordHash(password, user.PasswordHash) {
		return nil, errInvalidCredentials
	}
	return s.issue(user)
}

func (s *Service) issue(user *models.User) (*Session, error) {
	token, err := auth.GenerateJWT(user, s.cfg.JWTSecret, s.cfg.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &Session{User: user, Token: token}, nil
}

// Authenticate resolves a bearer token to a user that still exists.
func (s *Service) Authenticate(ctx context.Context, token string) (*models.User, error) {
	claims, err := auth.VerifyJWT(token, s.cfg.JWTSecret)
	if err != nil {
		return nil, domain.Unauthorized("invalid or expired token")
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, domain.Unauthorized("invalid or expired token")
	}

	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.Unauthorized("user no longer exists")
	}
	return user, nil
}

// ForgotPassword mints a reset token for a known address and mails it. The
// outcome is the same for unknown addresses so accounts cannot be probed.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.store.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	token, err := auth.GenerateToken(resetTokenLength)
	if err != nil {
		return err
	}
	expiresAt := s.now().Add(s.cfg.ResetTTL)
	if err := s.store.SetResetToken(ctx, user.ID, auth.HashToken(token), expiresAt); err != nil {
		return err
	}

	link := strings.TrimRight(s.cfg.FrontendURL, "/") + "/reset-password/" + token
	msg := mail.Message{
		To:      user.Email,
		Subject: "Password reset",
		Body: "You asked to reset your password. Open the link below within " +
			s.cfg.ResetTTL.String() + " to choose a new one:\n\n" + link +
			"\n\nIf you did not ask for this, you can ignore this message.\n",
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("deliver reset token: %w", err)
	}

	s.logger.Info("password reset requested", "user_id", user.ID)
	return nil
}

var errResetToken = domain.Invalid("password reset token is invalid or has expired")

// ResetPassword consumes token and sets a new password. A token works once;
// an expired token is cleared on first use.
func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) error {
	if err := validation.Validate(newPassword, passwordRules()...); err != nil {
		return domain.Invalid("password: " + err.Error())
	}
	if token == "" {
		return errResetToken
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	tokenHash := auth.HashToken(token)
	now := s.now()
	ok, err := s.store.ConsumeResetToken(ctx, tokenHash, hash, now)
	if err != nil {
		return err
	}
	if !ok {
		if err := s.store.ClearExpiredResetToken(ctx, tokenHash, now); err != nil {
			s.logger.Warn("failed to clear expired reset token", "error", err)
		}
		return errResetToken
	}

	s.logger.Info("password reset completed")
	return nil
}
