package services

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"blogapi/models"
	"blogapi/utils"

	"gorm.io/gorm"
)

var ErrTokenRevoked = errors.New("token has been revoked")

// TokenService issues signed bearer tokens and tracks them in the
// auth_tokens table so that logout can revoke exactly one token. A token
// is accepted only while its signature verifies and its row still exists.
type TokenService struct {
	db *gorm.DB
}

func NewTokenService(db *gorm.DB) *TokenService {
	return &TokenService{db: db}
}

func (s *TokenService) IssueToken(userID uint) (string, error) {
	token, err := utils.GenerateJWT(userID)
	if err != nil {
		return "", err
	}

	record := &models.AuthToken{
		UserID:    userID,
		TokenHash: hashToken(token),
		ExpiresAt: time.Now().Add(utils.TokenTTL),
	}

	if err := s.db.Create(record).Error; err != nil {
		return "", err
	}

	return token, nil
}

func (s *TokenService) ValidateToken(token string) (uint, error) {
	userID, err := utils.ValidateJWT(token)
	if err != nil {
		return 0, err
	}

	var record models.AuthToken
	err = s.db.Where("token_hash = ?", hashToken(token)).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrTokenRevoked
	}
	if err != nil {
		return 0, err
	}

	return userID, nil
}

// RevokeToken deletes the record for this token only. Other tokens held
// by the same user stay valid.
func (s *TokenService) RevokeToken(token string) error {
	return s.db.Where("token_hash = ?", hashToken(token)).
		Delete(&models.AuthToken{}).Error
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
