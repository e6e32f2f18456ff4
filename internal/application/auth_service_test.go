package application

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/imf-ops/gadget-api/internal/domain/entity"
	repo "github.com/imf-ops/gadget-api/internal/domain/repository"
	"github.com/imf-ops/gadget-api/pkg/helpers"
)

// -------- test fakes --------

type fakeUserRepo struct {
	byUsername map[string]*entity.User
	nextID     int

	createErr error
	getErr    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byUsername: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.byUsername[u.Username]; ok {
		return repo.ErrDuplicate
	}
	f.nextID++
	u.ID = "user-" + strconv.Itoa(f.nextID)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	f.byUsername[u.Username] = u
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range f.byUsername {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byUsername[username]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return u, nil
}

func newAuthService(r repo.UserRepository) *AuthService {
	return NewAuthService(r, helpers.NewJWTManager("test-secret", time.Hour), nil)
}

// -------- tests --------

func TestSignup_FreshUsername(t *testing.T) {
	t.Parallel()

	svc := newAuthService(newFakeUserRepo())
	u, err := svc.Signup("agent1", "p@ss")
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
	require.Equal(t, "agent1", u.Username)
	require.True(t, helpers.CompareHashAndPassword(u.PasswordHash, "p@ss"))
}

func TestSignup_DuplicateUsername(t *testing.T) {
	t.Parallel()

	svc := newAuthService(newFakeUserRepo())
	_, err := svc.Signup("agent1", "p@ss")
	require.NoError(t, err)

	_, err = svc.Signup("agent1", "other")
	require.ErrorIs(t, err, ErrUserExists)
}

func TestLogin_IssuesTokenBoundToUser(t *testing.T) {
	t.Parallel()

	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	svc := NewAuthService(newFakeUserRepo(), jwt, nil)

	u, err := svc.Signup("agent1", "p@ss")
	require.NoError(t, err)

	token, exp, err := svc.Login("agent1", "p@ss")
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := jwt.Parse(token)
	require.NoError(t, err)
	require.Equal(t, u.ID, claims.UserID)
}

func TestLogin_WrongPasswordAndUnknownUserLookAlike(t *testing.T) {
	t.Parallel()

	svc := newAuthService(newFakeUserRepo())
	_, err := svc.Signup("agent1", "p@ss")
	require.NoError(t, err)

	_, _, errWrongPwd := svc.Login("agent1", "nope")
	_, _, errNoUser := svc.Login("ghost-agent", "p@ss")

	// Enumeration resistance: both failures are the same error kind.
	require.ErrorIs(t, errWrongPwd, ErrInvalidCredentials)
	require.ErrorIs(t, errNoUser, ErrInvalidCredentials)
}

func TestLogin_RepositoryFailurePassesThrough(t *testing.T) {
	t.Parallel()

	r := newFakeUserRepo()
	r.getErr = errors.New("connection refused")
	svc := newAuthService(r)

	_, _, err := svc.Login("agent1", "p@ss")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrInvalidCredentials)
}
