package services_test

import (
	"encoding/json"
	"strings"
	"testing"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"
	"storefront/pkg/rabbitmq"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

const testJWTSecret = "test_secret"

func newAuthService(userRepo repositories.UserRepository, publisher services.EventPublisher) *services.AuthService {
	return services.NewAuthService(userRepo, publisher, testJWTSecret, "http://localhost:8080")
}

func TestAuthService_RegisterUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	publisher := &fakePublisher{}
	authService := newAuthService(userRepo, publisher)

	userRepo.On("GetByUsername", "alice").Return(nil, repositories.ErrNotFound)
	userRepo.On("GetByEmail", "alice@example.com").Return(nil, repositories.ErrNotFound)
	userRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil)

	user := &models.User{
		ID:       "u-1",
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	}
	err := authService.RegisterUser(user)
	assert.NoError(t, err)

	// Password is stored hashed, never plain.
	assert.NotEqual(t, "password123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))

	// New accounts are customers, default tier, inactive until verified.
	assert.Equal(t, models.TierBronze, user.Tier)
	assert.False(t, user.IsActive)
	assert.False(t, user.IsStaff)
	assert.NotEmpty(t, user.VerificationToken)

	// The verification link goes out on the mail queue.
	mails := publisher.byQueue(rabbitmq.QueueMailEvents)
	assert.Len(t, mails, 1)
	var payload map[string]interface{}
	assert.NoError(t, json.Unmarshal(mails[0].Body, &payload))
	assert.Equal(t, "user.registered", payload["event"])
	assert.Equal(t, "alice@example.com", payload["email"])
	link, _ := payload["link"].(string)
	assert.Contains(t, link, "uid=u-1")
	assert.Contains(t, link, "token="+user.VerificationToken)

	userRepo.AssertExpectations(t)
}

func TestAuthService_RegisterUserForcesBronzeTier(t *testing.T) {
	userRepo := new(MockUserRepository)
	authService := newAuthService(userRepo, nil)

	userRepo.On("GetByUsername", "climber").Return(nil, repositories.ErrNotFound)
	userRepo.On("GetByEmail", "climber@example.com").Return(nil, repositories.ErrNotFound)
	userRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil)

	// A requested tier on the way in must not survive registration.
	user := &models.User{
		Username: "climber",
		Email:    "climber@example.com",
		Password: "password123",
		Tier:     models.TierGold,
	}
	assert.NoError(t, authService.RegisterUser(user))
	assert.Equal(t, models.TierBronze, user.Tier)
}

func TestAuthService_RegisterUserConcurrentDuplicateUsername(t *testing.T) {
	userRepo := new(MockUserRepository)
	authService := newAuthService(userRepo, nil)

	// The pre-checks see nothing, then the insert loses the race.
	userRepo.On("GetByUsername", "alice").Return(nil, repositories.ErrNotFound).Once()
	userRepo.On("GetByEmail", "alice@example.com").Return(nil, repositories.ErrNotFound)
	userRepo.On("Create", mock.AnythingOfType("*models.User")).Return(repositories.ErrDuplicate)
	userRepo.On("GetByUsername", "alice").Return(&models.User{ID: "u-0", Username: "alice"}, nil)

	err := authService.RegisterUser(&models.User{Username: "alice", Email: "alice@example.com", Password: "password123"})
	assert.ErrorIs(t, err, services.ErrUsernameTaken)
}

func TestAuthService_RegisterUserConcurrentDuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	authService := newAuthService(userRepo, nil)

	userRepo.On("GetByUsername", "bob").Return(nil, repositories.ErrNotFound)
	userRepo.On("GetByEmail", "bob@example.com").Return(nil, repositories.ErrNotFound)
	userRepo.On("Create", mock.AnythingOfType("*models.User")).Return(repositories.ErrDuplicate)

	// The username is still free afterwards, so the email was the clash.
	err := authService.RegisterUser(&models.User{Username: "bob", Email: "bob@example.com", Password: "password123"})
	assert.ErrorIs(t, err, services.ErrEmailTaken)
}

func TestAuthService_RegisterUserDuplicateUsername(t *testing.T) {
	userRepo := new(MockUserRepository)
	authService := newAuthService(userRepo, nil)

	userRepo.On("GetByUsername", "alice").Return(&models.User{ID: "u-0", Username: "alice"}, nil)

	err := authService.RegisterUser(&models.User{Username: "alice", Email: "new@example.com", Password: "password123"})
	assert.ErrorIs(t, err, services.ErrUsernameTaken)

	userRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_RegisterUserDuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	authService := newAuthService(userRepo, nil)

	userRepo.On("GetByUsername", "bob").Return(nil, repositories.ErrNotFound)
	userRepo.On("GetByEmail", "taken@example.com").Return(&models.User{ID: "u-0", Email: "taken@example.com"}, nil)

	err := authService.RegisterUser(&models.User{Username: "bob", Email: "taken@example.com", Password: "password123"})
	assert.ErrorIs(t, err, services.ErrEmailTaken)

	userRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_VerifyEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	authService := newAuthService(userRepo, nil)

	user := &models.User{ID: "u-1", VerificationToken: "tok-1", IsActive: false}
	userRepo.On("GetByID", "u-1").Return(user, nil)
	userRepo.On("Update", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		updated := args.Get(0).(*models.User)
		assert.True(t, updated.IsActive)
		assert.Empty(t, updated.VerificationToken, "token must be single-use")
	}).Return(nil)

	assert.NoError(t, authService.VerifyEmail("u-1", "tok-1"))
	userRepo.AssertExpectations(t)
}

func TestAuthService_VerifyEmailBadToken(t *testing.T) {
	userRepo := new(MockUserRepository)
	authService := newAuthService(userRepo, nil)

	userRepo.On("GetByID", "u-1").Return(&models.User{ID: "u-1", VerificationToken: "tok-1"}, nil)

	assert.ErrorIs(t, authService.VerifyEmail("u-1", "wrong"), services.ErrInvalidToken)
	assert.ErrorIs(t, authService.VerifyEmail("u-1", ""), services.ErrInvalidToken)
	userRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestAuthService_VerifyEmailAlreadyUsedToken(t *testing.T) {
	userRepo := new(MockUserRepository)
	authService := newAuthService(userRepo, nil)

	// Token was cleared by a previous verification.
	userRepo.On("GetByID", "u-1").Return(&models.User{ID: "u-1", IsActive: true, VerificationToken: ""}, nil)

	assert.ErrorIs(t, authService.VerifyEmail("u-1", "tok-1"), services.ErrInvalidToken)
}

func TestAuthService_VerifyEmailUnknownUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	authService := newAuthService(userRepo, nil)

	userRepo.On("GetByID", "missing").Return(nil, repositories.ErrNotFound)

	assert.ErrorIs(t, authService.VerifyEmail("missing", "tok-1"), services.ErrNotFound)
}

func TestAuthService_LoginUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	authService := newAuthService(userRepo, nil)

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	userRepo.On("GetByUsername", "alice").Return(&models.User{
		ID:       "u-1",
		Username: "alice",
		Password: string(hashed),
		Tier:     models.TierGold,
		IsActive: true,
		IsStaff:  true,
	}, nil)

	token, err := authService.LoginUser("alice", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := authService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "u-1", claims["user_id"])
	assert.Equal(t, "alice", claims["username"])
	assert.Equal(t, "Gold", claims["tier"])
	assert.Equal(t, true, claims["is_staff"])
}

func TestAuthService_LoginUserWrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	authService := newAuthService(userRepo, nil)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	userRepo.On("GetByUsername", "alice").Return(&models.User{
		ID: "u-1", Username: "alice", Password: string(hashed), IsActive: true,
	}, nil)

	_, err := authService.LoginUser("alice", "nope")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAuthService_LoginUserUnknownUsername(t *testing.T) {
	userRepo := new(MockUserRepository)
	authService := newAuthService(userRepo, nil)

	userRepo.On("GetByUsername", "ghost").Return(nil, repositories.ErrNotFound)

	// Same error as a bad password; the username's existence never leaks.
	_, err := authService.LoginUser("ghost", "password123")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAuthService_LoginUserNotVerified(t *testing.T) {
	userRepo := new(MockUserRepository)
	authService := newAuthService(userRepo, nil)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	userRepo.On("GetByUsername", "alice").Return(&models.User{
		ID: "u-1", Username: "alice", Password: string(hashed), IsActive: false,
	}, nil)

	_, err := authService.LoginUser("alice", "password123")
	assert.ErrorIs(t, err, services.ErrNotVerified)
}

func TestAuthService_ValidateTokenRejectsGarbage(t *testing.T) {
	authService := newAuthService(new(MockUserRepository), nil)

	_, err := authService.ValidateToken("not.a.jwt")
	assert.Error(t, err)

	// A token signed with a different secret is rejected too.
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	otherRepo := new(MockUserRepository)
	otherRepo.On("GetByUsername", "alice").Return(&models.User{
		ID: "u-1", Username: "alice", Password: string(hashed), IsActive: true,
	}, nil)
	other := services.NewAuthService(otherRepo, nil, "other_secret", "http://localhost:8080")
	foreign, err := other.LoginUser("alice", "password123")
	assert.NoError(t, err)
	assert.True(t, strings.Count(foreign, ".") == 2)

	_, err = authService.ValidateToken(foreign)
	assert.Error(t, err)
}
