package services_test

import (
	"testing"

	"blogapi/models"
	"blogapi/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenLifecycle(t *testing.T) {
	db := setupDB(t)
	svc := services.NewTokenService(db)

	token, err := svc.IssueToken(5)
	require.NoError(t, err)

	userID, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.EqualValues(t, 5, userID)

	require.NoError(t, svc.RevokeToken(token))

	// Revoked is terminal.
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, services.ErrTokenRevoked)
}

func TestRevokeLeavesOtherTokensAlone(t *testing.T) {
	db := setupDB(t)
	svc := services.NewTokenService(db)

	first, err := svc.IssueToken(5)
	require.NoError(t, err)
	second, err := svc.IssueToken(5)
	require.NoError(t, err)

	require.NoError(t, svc.RevokeToken(first))

	_, err = svc.ValidateToken(second)
	assert.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.AuthToken{}).Where("user_id = ?", 5).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
