package user

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/fitforge/api/internal/domain/fitness"
	"github.com/fitforge/api/internal/domain/user"
	"github.com/fitforge/api/internal/ports/inbound"
	"github.com/fitforge/api/internal/ports/outbound"
	"github.com/fitforge/api/pkg/errors"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) GenerateAccessToken(ctx context.Context, userID, email, role string) (string, error) {
	args := m.Called(ctx, userID, email, role)
	return args.String(0), args.Error(1)
}

func (m *MockTokenManager) GenerateRefreshToken(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockTokenManager) ValidateAccessToken(ctx context.Context, token string) (*outbound.TokenClaims, error) {
	panic("not used in these tests")
}

func (m *MockTokenManager) ValidateRefreshToken(ctx context.Context, token string) (*outbound.TokenClaims, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*outbound.TokenClaims), args.Error(1)
}

func (m *MockTokenManager) RevokeRefreshToken(ctx context.Context, tokenID string) error {
	return m.Called(ctx, tokenID).Error(0)
}

func (m *MockTokenManager) AccessTokenTTL() time.Duration {
	return 15 * time.Minute
}

func testUser(t *testing.T) *user.User {
	t.Helper()
	u, err := user.NewUser("maria@example.com", "Maria Silva", "s3cretpass")
	require.NoError(t, err)
	require.NoError(t, u.UpdateProfile(user.Profile{
		Age:             25,
		Gender:          fitness.GenderFemale,
		HeightCm:        170,
		WeightKg:        70,
		Goal:            fitness.GoalLoseWeight,
		ActivityLevel:   fitness.ActivityModerate,
		ExperienceLevel: fitness.ExperienceBeginner,
	}))
	return u
}

func TestRegister_NewAccount(t *testing.T) {
	repo := new(MockUserRepository)
	tokens := new(MockTokenManager)
	svc := NewAuthService(repo, tokens, zaptest.NewLogger(t))

	repo.On("FindByEmail", mock.Anything, "maria@example.com").Return(nil, errors.NewUserNotFoundError("maria@example.com"))
	repo.On("Create", mock.Anything, mock.AnythingOfType("*user.User")).Return(nil)

	u, err := svc.Register(context.Background(), inbound.RegisterCommand{
		Name:     "Maria Silva",
		Email:    "Maria@Example.com",
		Password: "s3cretpass",
	})

	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", u.Email())
	assert.True(t, u.IsActive())
	repo.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := new(MockUserRepository)
	tokens := new(MockTokenManager)
	svc := NewAuthService(repo, tokens, zaptest.NewLogger(t))

	repo.On("FindByEmail", mock.Anything, "maria@example.com").Return(testUser(t), nil)

	_, err := svc.Register(context.Background(), inbound.RegisterCommand{
		Name:     "Maria Silva",
		Email:    "maria@example.com",
		Password: "s3cretpass",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeEmailAlreadyExists))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	repo := new(MockUserRepository)
	tokens := new(MockTokenManager)
	svc := NewAuthService(repo, tokens, zaptest.NewLogger(t))
	u := testUser(t)

	repo.On("FindByEmail", mock.Anything, "maria@example.com").Return(u, nil)
	repo.On("UpdateLastLogin", mock.Anything, u.ID()).Return(nil)
	tokens.On("GenerateAccessToken", mock.Anything, u.ID().String(), u.Email(), "user").Return("access", nil)
	tokens.On("GenerateRefreshToken", mock.Anything, u.ID().String()).Return("refresh", nil)

	pair, err := svc.Login(context.Background(), inbound.LoginCommand{
		Email:    "maria@example.com",
		Password: "s3cretpass",
	})

	require.NoError(t, err)
	assert.Equal(t, "access", pair.AccessToken)
	assert.Equal(t, "refresh", pair.RefreshToken)
	assert.Equal(t, int64(900), pair.ExpiresIn)
	repo.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := new(MockUserRepository)
	tokens := new(MockTokenManager)
	svc := NewAuthService(repo, tokens, zaptest.NewLogger(t))

	repo.On("FindByEmail", mock.Anything, "maria@example.com").Return(testUser(t), nil)

	_, err := svc.Login(context.Background(), inbound.LoginCommand{
		Email:    "maria@example.com",
		Password: "wrong-password",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeInvalidCredentials))
	tokens.AssertNotCalled(t, "GenerateAccessToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := new(MockUserRepository)
	tokens := new(MockTokenManager)
	svc := NewAuthService(repo, tokens, zaptest.NewLogger(t))

	repo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, errors.NewUserNotFoundError("nobody@example.com"))

	_, err := svc.Login(context.Background(), inbound.LoginCommand{
		Email:    "nobody@example.com",
		Password: "whatever1",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeInvalidCredentials))
}

func TestLogin_DeactivatedAccount(t *testing.T) {
	repo := new(MockUserRepository)
	tokens := new(MockTokenManager)
	svc := NewAuthService(repo, tokens, zaptest.NewLogger(t))
	u := testUser(t)
	u.Deactivate()

	repo.On("FindByEmail", mock.Anything, "maria@example.com").Return(u, nil)

	_, err := svc.Login(context.Background(), inbound.LoginCommand{
		Email:    "maria@example.com",
		Password: "s3cretpass",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeForbidden))
}

func TestRefresh_RotatesToken(t *testing.T) {
	repo := new(MockUserRepository)
	tokens := new(MockTokenManager)
	svc := NewAuthService(repo, tokens, zaptest.NewLogger(t))
	u := testUser(t)

	claims := &outbound.TokenClaims{TokenID: "tok-1", UserID: u.ID().String()}
	tokens.On("ValidateRefreshToken", mock.Anything, "old-refresh").Return(claims, nil)
	tokens.On("RevokeRefreshToken", mock.Anything, "tok-1").Return(nil)
	tokens.On("GenerateAccessToken", mock.Anything, u.ID().String(), u.Email(), "user").Return("new-access", nil)
	tokens.On("GenerateRefreshToken", mock.Anything, u.ID().String()).Return("new-refresh", nil)
	repo.On("FindByID", mock.Anything, u.ID()).Return(u, nil)

	pair, err := svc.Refresh(context.Background(), "old-refresh")

	require.NoError(t, err)
	assert.Equal(t, "new-access", pair.AccessToken)
	assert.Equal(t, "new-refresh", pair.RefreshToken)
	tokens.AssertCalled(t, "RevokeRefreshToken", mock.Anything, "tok-1")
}

func TestRefresh_InvalidToken(t *testing.T) {
	repo := new(MockUserRepository)
	tokens := new(MockTokenManager)
	svc := NewAuthService(repo, tokens, zaptest.NewLogger(t))

	tokens.On("ValidateRefreshToken", mock.Anything, "garbage").Return(nil, errors.NewUnauthorizedError("bad token"))

	_, err := svc.Refresh(context.Background(), "garbage")

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeUnauthorized))
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestLogout_RevokesOwnToken(t *testing.T) {
	repo := new(MockUserRepository)
	tokens := new(MockTokenManager)
	svc := NewAuthService(repo, tokens, zaptest.NewLogger(t))
	userID := uuid.New()

	claims := &outbound.TokenClaims{TokenID: "tok-9", UserID: userID.String()}
	tokens.On("ValidateRefreshToken", mock.Anything, "refresh").Return(claims, nil)
	tokens.On("RevokeRefreshToken", mock.Anything, "tok-9").Return(nil)

	require.NoError(t, svc.Logout(context.Background(), userID, "refresh"))
	tokens.AssertExpectations(t)
}

func TestLogout_OtherUsersToken(t *testing.T) {
	repo := new(MockUserRepository)
	tokens := new(MockTokenManager)
	svc := NewAuthService(repo, tokens, zaptest.NewLogger(t))

	claims := &outbound.TokenClaims{TokenID: "tok-9", UserID: uuid.New().String()}
	tokens.On("ValidateRefreshToken", mock.Anything, "refresh").Return(claims, nil)

	err := svc.Logout(context.Background(), uuid.New(), "refresh")

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeForbidden))
	tokens.AssertNotCalled(t, "RevokeRefreshToken", mock.Anything, mock.Anything)
}

func TestUpdateProfile_Valid(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo, zaptest.NewLogger(t))
	u := testUser(t)

	repo.On("FindByID", mock.Anything, u.ID()).Return(u, nil)
	repo.On("Update", mock.Anything, u).Return(nil)

	updated, err := svc.UpdateProfile(context.Background(), u.ID(), inbound.UpdateProfileCommand{
		Age:             30,
		Gender:          "male",
		HeightCm:        180,
		WeightKg:        82,
		Goal:            "gain_muscle",
		ActivityLevel:   "active",
		ExperienceLevel: "intermediate",
	})

	require.NoError(t, err)
	profile := updated.Profile()
	require.NotNil(t, profile)
	assert.Equal(t, 30, profile.Age)
	assert.Equal(t, fitness.GoalGainMuscle, profile.Goal)
	assert.Equal(t, fitness.LocalePTBR, profile.Locale)
}

func TestUpdateProfile_OutOfRange(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo, zaptest.NewLogger(t))
	u := testUser(t)

	repo.On("FindByID", mock.Anything, u.ID()).Return(u, nil)

	_, err := svc.UpdateProfile(context.Background(), u.ID(), inbound.UpdateProfileCommand{
		Age:             12,
		Gender:          "male",
		HeightCm:        180,
		WeightKg:        82,
		Goal:            "gain_muscle",
		ActivityLevel:   "active",
		ExperienceLevel: "intermediate",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeValidationFailed))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestMetrics_FromProfile(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo, zaptest.NewLogger(t))
	u := testUser(t)

	repo.On("FindByID", mock.Anything, u.ID()).Return(u, nil)

	metrics, err := svc.Metrics(context.Background(), u.ID())

	require.NoError(t, err)
	require.NotNil(t, metrics.BMI)
	assert.InDelta(t, 24.2, *metrics.BMI, 0.001)
	assert.Equal(t, "normal", metrics.BMICategory)
	assert.Equal(t, u.Profile().DailyCalorieNeeds(), metrics.DailyCalories)
	assert.Equal(t, u.Profile().MacroTargets(), metrics.Macros)
}

func TestMetrics_NoProfile(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo, zaptest.NewLogger(t))
	u, err := user.NewUser("novo@example.com", "Novo Usuario", "s3cretpass")
	require.NoError(t, err)

	repo.On("FindByID", mock.Anything, u.ID()).Return(u, nil)

	_, err = svc.Metrics(context.Background(), u.ID())

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeProfileNotFound))
}

func TestDeactivate(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo, zaptest.NewLogger(t))
	u := testUser(t)

	repo.On("FindByID", mock.Anything, u.ID()).Return(u, nil)
	repo.On("Update", mock.Anything, u).Return(nil)

	require.NoError(t, svc.Deactivate(context.Background(), u.ID()))
	assert.False(t, u.IsActive())
}
