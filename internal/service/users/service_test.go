package users

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/teemx/GolfTee-BookingService/internal/domain"
	userRepo "github.com/teemx/GolfTee-BookingService/internal/infra/storage/user"
	"github.com/teemx/GolfTee-BookingService/internal/service/users/models"
)

type fakeUserRepo struct {
	created   *domain.User
	createErr error
	user      *domain.User
	getErr    error
	list      []*domain.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u := *user
	u.ID = 42
	f.created = &u
	return &u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return f.user, f.getErr
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return f.user, f.getErr
}

func (f *fakeUserRepo) List(ctx context.Context) ([]*domain.User, error) {
	return f.list, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestRegister_HashesPassword(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Register(context.Background(), &models.RegisterUserRequest{
		Name:     "Ana Torres",
		Email:    "ana@example.com",
		Password: "correct horse",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.RoleClient), resp.Role)

	require.NotNil(t, repo.created)
	assert.NotEqual(t, "correct horse", repo.created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.created.PasswordHash), []byte("correct horse")))
}

func TestRegister_ExplicitRole(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewService(repo, nopLogger{})

	role := "promoter"
	resp, err := svc.Register(context.Background(), &models.RegisterUserRequest{
		Name:     "Ana Torres",
		Email:    "ana@example.com",
		Password: "correct horse",
		Role:     &role,
	})

	require.NoError(t, err)
	assert.Equal(t, "promoter", resp.Role)
}

func TestRegister_InvalidRole(t *testing.T) {
	svc := NewService(&fakeUserRepo{}, nopLogger{})

	role := "superuser"
	_, err := svc.Register(context.Background(), &models.RegisterUserRequest{
		Name:     "Ana Torres",
		Email:    "ana@example.com",
		Password: "correct horse",
		Role:     &role,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRegister_EmailTaken(t *testing.T) {
	repo := &fakeUserRepo{createErr: userRepo.ErrEmailTaken}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Register(context.Background(), &models.RegisterUserRequest{
		Name:     "Ana Torres",
		Email:    "ana@example.com",
		Password: "correct horse",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_Validation(t *testing.T) {
	svc := NewService(&fakeUserRepo{}, nopLogger{})

	tests := []struct {
		name string
		req  *models.RegisterUserRequest
	}{
		{"blank name", &models.RegisterUserRequest{Name: "  ", Email: "a@b.com", Password: "longenough"}},
		{"bad email", &models.RegisterUserRequest{Name: "Ana", Email: "not-an-email", Password: "longenough"}},
		{"short password", &models.RegisterUserRequest{Name: "Ana", Email: "a@b.com", Password: "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestRegister_NeverExposesHash(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Register(context.Background(), &models.RegisterUserRequest{
		Name:     "Ana Torres",
		Email:    "ana@example.com",
		Password: "correct horse",
	})

	require.NoError(t, err)

	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(body), repo.created.PasswordHash)
	assert.NotContains(t, string(body), "correct horse")
}
