package auth

import (
	"context"
	"testing"

	"rentwheels/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil && args.Error(0) == nil {
		u.ID = 5
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateToken(userID int64, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func TestRegister_NormalizesEmailAndDefaultsRole(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, new(MockTokenIssuer))

	users.On("GetByEmail", mock.Anything, "rider@example.com").Return(nil, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	u, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "  Rider@Example.com ",
		Password: "sup3rsecret",
		Name:     "Rider",
	})

	require.NoError(t, err)
	assert.Equal(t, "rider@example.com", u.Email)
	assert.Equal(t, domain.RoleRenter, u.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("sup3rsecret")))
}

func TestRegister_RejectsAdminRole(t *testing.T) {
	svc := NewService(new(MockUserRepository), new(MockTokenIssuer))

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "x@example.com",
		Password: "sup3rsecret",
		Name:     "X",
		Role:     "admin",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, new(MockTokenIssuer))

	users.On("GetByEmail", mock.Anything, "taken@example.com").Return(&domain.User{ID: 1}, nil)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "taken@example.com",
		Password: "sup3rsecret",
		Name:     "X",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_Success(t *testing.T) {
	users := new(MockUserRepository)
	issuer := new(MockTokenIssuer)
	svc := NewService(users, issuer)

	hash, _ := bcrypt.GenerateFromPassword([]byte("sup3rsecret"), bcrypt.MinCost)
	users.On("GetByEmail", mock.Anything, "rider@example.com").Return(&domain.User{
		ID:           5,
		Email:        "rider@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleRenter,
	}, nil)
	issuer.On("GenerateToken", int64(5), "renter").Return("token-abc", nil)

	res, err := svc.Login(context.Background(), LoginRequest{
		Email:    "rider@example.com",
		Password: "sup3rsecret",
	})

	require.NoError(t, err)
	assert.Equal(t, "token-abc", res.AccessToken)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, new(MockTokenIssuer))

	hash, _ := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)
	users.On("GetByEmail", mock.Anything, "rider@example.com").Return(&domain.User{
		ID:           5,
		PasswordHash: string(hash),
	}, nil)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "rider@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, new(MockTokenIssuer))

	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
