// internal/services/auth_service_test.go
package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stamperia/stamperia-backend/internal/apperrors"
	"github.com/stamperia/stamperia-backend/internal/config"
	"github.com/stamperia/stamperia-backend/internal/models"
	"github.com/stamperia/stamperia-backend/internal/services"
	"github.com/stamperia/stamperia-backend/internal/utils"
)

func newAuthFixture() (*services.AuthService, *fakeUserStore) {
	utils.SetJWTSecret("test-secret")

	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret"
	cfg.JWT.AccessTokenTTL = 1
	cfg.JWT.RefreshTokenTTL = 24

	users := newFakeUserStore()
	return services.NewAuthService(users, cfg), users
}

func TestRegister(t *testing.T) {
	auth, _ := newAuthFixture()

	resp, err := auth.Register(&services.RegisterRequest{
		Email:    "ana@example.com",
		Password: "Sup3rSecret",
		Name:     "Ana",
	})
	require.NoError(t, err)

	assert.Equal(t, models.UserRoleClient, resp.User.Role)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)
	assert.NotEqual(t, "Sup3rSecret", resp.User.PasswordHash)
}

func TestRegisterDesigner(t *testing.T) {
	auth, _ := newAuthFixture()

	resp, err := auth.Register(&services.RegisterRequest{
		Email:    "diego@example.com",
		Password: "Sup3rSecret",
		Role:     models.UserRoleDesigner,
	})
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleDesigner, resp.User.Role)
}

func TestRegisterAdminRefused(t *testing.T) {
	auth, _ := newAuthFixture()

	_, err := auth.Register(&services.RegisterRequest{
		Email:    "boss@example.com",
		Password: "Sup3rSecret",
		Role:     models.UserRoleAdmin,
	})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestRegisterWeakPassword(t *testing.T) {
	auth, _ := newAuthFixture()

	for _, password := range []string{"short1A", "alllowercase1", "ALLUPPERCASE1", "NoNumbersHere"} {
		_, err := auth.Register(&services.RegisterRequest{
			Email:    "ana@example.com",
			Password: password,
		})
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation), "password %q", password)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	auth, _ := newAuthFixture()

	_, err := auth.Register(&services.RegisterRequest{Email: "ana@example.com", Password: "Sup3rSecret"})
	require.NoError(t, err)

	_, err = auth.Register(&services.RegisterRequest{Email: "ana@example.com", Password: "Sup3rSecret"})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestLogin(t *testing.T) {
	auth, _ := newAuthFixture()

	_, err := auth.Register(&services.RegisterRequest{Email: "ana@example.com", Password: "Sup3rSecret"})
	require.NoError(t, err)

	resp, err := auth.Login(&services.LoginRequest{Email: "ana@example.com", Password: "Sup3rSecret"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	claims, err := utils.ValidateJWT(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID.String(), claims.UserID)
	assert.Equal(t, string(models.UserRoleClient), claims.Role)
}

func TestLoginBadCredentials(t *testing.T) {
	auth, _ := newAuthFixture()

	_, err := auth.Register(&services.RegisterRequest{Email: "ana@example.com", Password: "Sup3rSecret"})
	require.NoError(t, err)

	_, err = auth.Login(&services.LoginRequest{Email: "ana@example.com", Password: "WrongPass1"})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	_, err = auth.Login(&services.LoginRequest{Email: "nobody@example.com", Password: "Sup3rSecret"})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestRefreshToken(t *testing.T) {
	auth, _ := newAuthFixture()

	registered, err := auth.Register(&services.RegisterRequest{Email: "ana@example.com", Password: "Sup3rSecret"})
	require.NoError(t, err)

	refreshed, err := auth.RefreshToken(registered.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, registered.User.ID, refreshed.User.ID)

	_, err = auth.RefreshToken("not-a-token")
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}
