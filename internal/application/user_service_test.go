package application

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresmx/tasktrack/internal/domain/entity"
	"github.com/andresmx/tasktrack/internal/domain/repository"
	"github.com/andresmx/tasktrack/pkg/helpers"
)

// --- fakes ---

type fakeUserRepo struct {
	byEmail map[string]*entity.User
	nextID  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	f.nextID++
	u.ID = "user-" + strconv.Itoa(f.nextID)
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

func newUserService(t *testing.T) (*UserService, *fakeUserRepo, *helpers.JWTManager) {
	t.Helper()
	repo := newFakeUserRepo()
	jwt := &helpers.JWTManager{Secret: []byte("test-secret"), TTL: 24 * time.Hour}
	logger := helpers.NewLogger("test", "production")
	return NewUserService(repo, jwt, logger), repo, jwt
}

// --- tests ---

func TestRegisterThenLogin(t *testing.T) {
	t.Parallel()
	svc, _, jwt := newUserService(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, RegisterInput{Email: "  Alice@X.com ", Password: "Passw0rd", Name: " Alice "})
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", reg.User.Email, "email must be stored normalized")
	assert.Equal(t, "Alice", reg.User.Name, "name must be trimmed")
	assert.Empty(t, reg.User.Password, "hash must not leave the service")
	assert.NotEmpty(t, reg.User.ID)

	// login with a differently cased email still matches
	res, err := svc.Login(ctx, "ALICE@x.com", "Passw0rd")
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, res.User.ID)

	claims, err := jwt.Parse(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", claims.Email)
	assert.Equal(t, reg.User.ID, claims.UserID)
	assert.Equal(t, "Alice", claims.Name)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()
	svc, _, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Email: "bob@x.com", Password: "Passw0rd", Name: "Bob"})
	require.NoError(t, err)

	// case-insensitive duplicate
	_, err = svc.Register(ctx, RegisterInput{Email: "BOB@x.com", Password: "Passw0rd", Name: "Bobby"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_PasswordPolicy(t *testing.T) {
	t.Parallel()
	svc, _, _ := newUserService(t)
	ctx := context.Background()

	cases := []struct {
		name     string
		password string
	}{
		{"no upper or digit", "abcdef"},
		{"no lower", "ABCDEF1"},
		{"too short", "abc12"},
		{"too long", "Aa1" + "abcdefghijklmnopqrstuvwx"},
		{"empty", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, RegisterInput{Email: "p@x.com", Password: tc.password, Name: "Pat"})
			ve, ok := AsValidation(err)
			require.True(t, ok, "expected ValidationError, got %v", err)
			assert.NotEmpty(t, ve.Reasons)
		})
	}
}

func TestRegister_FieldRules(t *testing.T) {
	t.Parallel()
	svc, _, _ := newUserService(t)
	ctx := context.Background()

	// all failures reported in one pass
	_, err := svc.Register(ctx, RegisterInput{Email: "not-an-email", Password: "abcdefg", Name: "x"})
	ve, ok := AsValidation(err)
	require.True(t, ok)
	assert.Len(t, ve.Reasons, 3)

	longEmail := strings.Repeat("a", 95) + "@example.com"
	_, err = svc.Register(ctx, RegisterInput{Email: longEmail, Password: "Passw0rd", Name: "Pat"})
	_, ok = AsValidation(err)
	assert.True(t, ok)
}

func TestProfile(t *testing.T) {
	t.Parallel()
	svc, _, _ := newUserService(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, RegisterInput{Email: "dora@x.com", Password: "Passw0rd", Name: "Dora"})
	require.NoError(t, err)

	u, err := svc.Profile(ctx, reg.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "dora@x.com", u.Email)
	assert.Empty(t, u.Password)

	_, err = svc.Profile(ctx, "user-999")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

// errUserRepo simulates a store outage: every call fails the same way.
type errUserRepo struct {
	err error
}

func (f *errUserRepo) Create(context.Context, *entity.User) error { return f.err }
func (f *errUserRepo) GetByID(context.Context, string) (*entity.User, error) {
	return nil, f.err
}
func (f *errUserRepo) GetByEmail(context.Context, string) (*entity.User, error) {
	return nil, f.err
}

func TestLogin_StoreFailureIsNotCredentialFailure(t *testing.T) {
	t.Parallel()
	storeErr := errors.New("connection refused")
	jwt := &helpers.JWTManager{Secret: []byte("test-secret"), TTL: 24 * time.Hour}
	svc := NewUserService(&errUserRepo{err: storeErr}, jwt, helpers.NewLogger("test", "production"))

	_, err := svc.Login(context.Background(), "alice@x.com", "Passw0rd")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
	assert.ErrorIs(t, err, storeErr)
}

func TestRegister_LengthsCountRunes(t *testing.T) {
	t.Parallel()
	svc, _, _ := newUserService(t)
	ctx := context.Background()

	// five runes but nine bytes: must still fail the minimum length
	_, err := svc.Register(ctx, RegisterInput{Email: "u1@x.com", Password: "Ññ1Ññ", Name: "Pat"})
	ve, ok := AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Reasons, fmt.Sprintf("password must be at least %d characters", minPasswordLen))

	// two runes, four bytes: a valid name
	_, err = svc.Register(ctx, RegisterInput{Email: "u2@x.com", Password: "Passw0rd", Name: "Ñá"})
	assert.NoError(t, err)
}

func TestLogin_UniformFailure(t *testing.T) {
	t.Parallel()
	svc, _, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Email: "carol@x.com", Password: "Passw0rd", Name: "Carol"})
	require.NoError(t, err)

	// unknown user and wrong password must be indistinguishable
	_, errUnknown := svc.Login(ctx, "nobody@x.com", "Passw0rd")
	_, errWrongPw := svc.Login(ctx, "carol@x.com", "Wrongpw1")
	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
	assert.Equal(t, errUnknown, errWrongPw)
}
