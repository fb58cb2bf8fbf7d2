package utils_test

import (
	"testing"
	"time"

	"github.com/SscSPs/contracts_tracker/internal/core/domain"
	"github.com/SscSPs/contracts_tracker/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_RoundTrip(t *testing.T) {
	user := domain.User{ID: 42, Username: "ivanova", Role: domain.RoleEconomics}

	token, err := utils.GenerateJWT(user, "secret", time.Hour, "contracts")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, "secret", "contracts")
	require.NoError(t, err)

	got, err := claims.User()
	require.NoError(t, err)
	assert.Equal(t, user, *got)
}

func TestJWT_Rejections(t *testing.T) {
	user := domain.User{ID: 1, Username: "admin"}

	token, err := utils.GenerateJWT(user, "secret", time.Hour, "contracts")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "other", "contracts")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	_, err = utils.ParseAndValidateJWT(token, "secret", "someone-else")
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)

	expired, err := utils.GenerateJWT(user, "secret", -time.Minute, "contracts")
	require.NoError(t, err)
	_, err = utils.ParseAndValidateJWT(expired, "secret", "contracts")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestUserClaims_User(t *testing.T) {
	claims := &utils.UserClaims{Username: "x"}
	claims.Subject = "abc"
	_, err := claims.User()
	assert.Error(t, err)

	claims.Subject = "7"
	claims.Username = ""
	_, err = claims.User()
	assert.Error(t, err)
}
