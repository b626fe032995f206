package utils

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tenantguard-be/models"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	user := &models.User{ID: primitive.NewObjectID(), Email: "a@b.test", Role: models.RoleTenant}

	token, err := issuer.Generate(user)
	require.NoError(t, err)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.ID)
	assert.Equal(t, "a@b.test", claims.Email)
	assert.Equal(t, "tenant", claims.Role)
}

func TestTokenIssuer_RejectsWrongSecret(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID(), Email: "a@b.test"}
	token, err := NewTokenIssuer("one", time.Hour).Generate(user)
	require.NoError(t, err)

	_, err = NewTokenIssuer("two", time.Hour).Parse(token)
	assert.Error(t, err)
}

func TestTokenIssuer_RejectsExpired(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -time.Minute)
	token, err := issuer.Generate(&models.User{ID: primitive.NewObjectID()})
	require.NoError(t, err)

	_, err = issuer.Parse(token)
	assert.Error(t, err)
}

func TestTokenIssuer_RejectsOtherAlgorithms(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{ID: primitive.NewObjectID().Hex()})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenIssuer("test-secret", time.Hour).Parse(signed)
	assert.Error(t, err)
}

func TestTokenIssuer_EmptySecret(t *testing.T) {
	_, err := NewTokenIssuer("", time.Hour).Generate(&models.User{ID: primitive.NewObjectID()})
	assert.Error(t, err)
}
