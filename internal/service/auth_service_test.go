package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ifsi-gestion/ifsi-api/internal/models"
	"github.com/ifsi-gestion/ifsi-api/internal/session"
	appErrors "github.com/ifsi-gestion/ifsi-api/pkg/errors"
)

type mockUserRepo struct {
	items  map[int64]*models.User
	nextID int64
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{items: make(map[int64]*models.User), nextID: 1}
}

func (m *mockUserRepo) List(ctx context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(m.items))
	for _, u := range m.items {
		out = append(out, *u)
	}
	return out, nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int64) (*models.User, error) {
	if u, ok := m.items[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range m.items {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockUserRepo) Create(ctx context.Context, u *models.User) error {
	u.ID = m.nextID
	m.nextID++
	cp := *u
	m.items[u.ID] = &cp
	return nil
}

func (m *mockUserRepo) Update(ctx context.Context, u *models.User) error {
	if _, ok := m.items[u.ID]; !ok {
		return sql.ErrNoRows
	}
	cp := *u
	m.items[u.ID] = &cp
	return nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if _, ok := m.items[id]; !ok {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}

func newAuthFixture(t *testing.T) (*AuthService, *mockUserRepo, session.Store) {
	t.Helper()
	users := newMockUserRepo()
	sessions := session.NewMemoryStore()
	svc := NewAuthService(users, sessions, time.Hour, validator.New(), zap.NewNop())
	return svc, users, sessions
}

func TestAuthServiceRegisterAndLogin(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	ctx := context.Background()

	user, sess, err := svc.Register(ctx, RegisterRequest{
		Username: "directrice",
		Password: "motdepasse",
		FullName: "Mme Kone",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.NotEmpty(t, sess.Token)
	assert.NotEqual(t, "motdepasse", user.PasswordHash)

	loggedIn, loginSess, err := svc.Login(ctx, LoginRequest{Username: "directrice", Password: "motdepasse"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.NotEqual(t, sess.Token, loginSess.Token)
}

func TestAuthServiceRegisterDuplicateUsername(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, RegisterRequest{Username: "directrice", Password: "motdepasse", FullName: "Mme Kone"})
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, RegisterRequest{Username: "directrice", Password: "autrechose", FullName: "Autre"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, "Username already exists", appErr.Message)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, RegisterRequest{Username: "directrice", Password: "motdepasse", FullName: "Mme Kone"})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, LoginRequest{Username: "directrice", Password: "faux"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 401, appErr.Status)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Message, appErr.Message)
}

func TestAuthServiceLoginUnknownUserSameError(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, _, err := svc.Login(context.Background(), LoginRequest{Username: "fantome", Password: "rien"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 401, appErr.Status)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Message, appErr.Message)
}

func TestAuthServiceLogoutInvalidatesImmediately(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	ctx := context.Background()

	_, sess, err := svc.Register(ctx, RegisterRequest{Username: "directrice", Password: "motdepasse", FullName: "Mme Kone"})
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, sess.Token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, sess.Token))

	_, err = svc.Authenticate(ctx, sess.Token)
	require.Error(t, err)
	assert.Equal(t, 401, appErrors.FromError(err).Status)
}

func TestAuthServiceAuthenticateUnknownToken(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, err := svc.Authenticate(context.Background(), "jeton-inconnu")
	require.Error(t, err)
	assert.Equal(t, 401, appErrors.FromError(err).Status)
}
