package application

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/andresmx/tasktrack/internal/domain/entity"
	repo "github.com/andresmx/tasktrack/internal/domain/repository"
	"github.com/andresmx/tasktrack/pkg/helpers"
)

// Input policy for registration. Email is compared case-insensitively, so it
// is normalized (trimmed, lower-cased) before any lookup or insert.
const (
	minPasswordLen = 6
	maxPasswordLen = 20
	minNameLen     = 2
	maxNameLen     = 50
	maxEmailLen    = 100
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserService owns credential registration and verification, and mints a
// bearer token on success.
type UserService struct {
	Repo   repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewUserService(r repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *UserService {
	return &UserService{Repo: r, JWT: jwt, Logger: logger}
}

// AuthResult bundles the authenticated user with a freshly minted token.
type AuthResult struct {
	User      *entity.User
	Token     string
	ExpiresAt time.Time
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

// NormalizeEmail trims and lower-cases an email for storage and comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validatePassword(password string) []string {
	var reasons []string
	if password == "" {
		return []string{"password is required"}
	}
	// length limits are in characters, not bytes
	if n := utf8.RuneCountInString(password); n < minPasswordLen {
		reasons = append(reasons, fmt.Sprintf("password must be at least %d characters", minPasswordLen))
	} else if n > maxPasswordLen {
		reasons = append(reasons, fmt.Sprintf("password must be at most %d characters", maxPasswordLen))
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		reasons = append(reasons, "password must contain at least one uppercase letter, one lowercase letter and one digit")
	}
	return reasons
}

func validateRegistration(in RegisterInput) (email, name string, reasons []string) {
	name = strings.TrimSpace(in.Name)
	switch {
	case name == "":
		reasons = append(reasons, "name is required")
	case utf8.RuneCountInString(name) < minNameLen:
		reasons = append(reasons, fmt.Sprintf("name must be at least %d characters", minNameLen))
	case utf8.RuneCountInString(name) > maxNameLen:
		reasons = append(reasons, fmt.Sprintf("name must be at most %d characters", maxNameLen))
	}

	email = NormalizeEmail(in.Email)
	switch {
	case email == "":
		reasons = append(reasons, "email is required")
	case !emailRe.MatchString(email):
		reasons = append(reasons, "email is not valid (expected user@domain)")
	case len(email) > maxEmailLen:
		reasons = append(reasons, fmt.Sprintf("email must be at most %d characters", maxEmailLen))
	}

	reasons = append(reasons, validatePassword(in.Password)...)
	return email, name, reasons
}

// Register creates a new user and returns it together with a token. All
// format failures are reported at once via *ValidationError; an already
// registered email yields ErrEmailTaken. The stored password is a bcrypt
// hash and the returned entity never carries it.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	email, name, reasons := validateRegistration(in)
	if len(reasons) > 0 {
		return nil, &ValidationError{Reasons: reasons}
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{Email: email, Password: hash, Name: name}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": u.ID}).Info("user registered")

	return s.issue(u)
}

// Login verifies the credentials and mints a token. The failure is identical
// for unknown email and wrong password; the bcrypt comparison still runs on
// a throwaway hash when the user is absent so the two paths cost the same.
// Store failures are not credential failures and propagate as-is.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.Repo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			helpers.CompareHashAndPassword(dummyHash, password)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return s.issue(u)
}

// Profile returns the stored user for an authenticated caller, without the
// password hash. Returns the repository's ErrNotFound when the account was
// deleted after the token was issued.
func (s *UserService) Profile(ctx context.Context, id string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := *u
	out.Password = ""
	return &out, nil
}

// dummyHash is a bcrypt hash of an unguessable value, used to equalize
// timing between the unknown-user and wrong-password login paths.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

func (s *UserService) issue(u *entity.User) (*AuthResult, error) {
	token, exp, err := s.JWT.Generate(u.ID, u.Email, u.Name)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("token generation failed")
		return nil, err
	}
	out := *u
	out.Password = ""
	return &AuthResult{User: &out, Token: token, ExpiresAt: exp}, nil
}
