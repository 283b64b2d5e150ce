package controllers

import (
	"errors"
	"net/http"

	"blogapi/middleware"
	"blogapi/models"
	"blogapi/services"
	"blogapi/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	db           *gorm.DB
	userService  *services.UserService
	tokenService *services.TokenService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		db:           db,
		userService:  services.NewUserService(db),
		tokenService: services.NewTokenService(db),
	}
}

func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, utils.FormatValidationErrors(err))
		return
	}

	user, err := ac.userService.CreateUser(&req)
	if errors.Is(err, services.ErrEmailTaken) {
		utils.ValidationErrorResponse(c, map[string][]string{
			"email": {"the email has already been taken"},
		})
		return
	}
	if err != nil {
		utils.JSONResponse(c, http.StatusInternalServerError, nil, "internal server error")
		return
	}

	token, err := ac.tokenService.IssueToken(user.ID)
	if err != nil {
		utils.JSONResponse(c, http.StatusInternalServerError, nil, "internal server error")
		return
	}

	utils.JSONResponse(c, http.StatusCreated, gin.H{
		"user":  user,
		"token": token,
	}, "register successful")
}

// Login authenticates by email and password. A missing user and a wrong
// password produce the same response so neither case is revealed.
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, utils.FormatValidationErrors(err))
		return
	}

	user, err := ac.userService.GetUserByEmail(req.Email)
	if err != nil || !user.CheckPassword(req.Password) {
		utils.JSONResponse(c, http.StatusUnauthorized, nil, "invalid credentials")
		return
	}

	token, err := ac.tokenService.IssueToken(user.ID)
	if err != nil {
		utils.JSONResponse(c, http.StatusInternalServerError, nil, "internal server error")
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{
		"user":  user,
		"token": token,
	}, "login successful")
}

// Logout revokes the presenting token only. Other sessions of the same
// user keep their tokens.
func (ac *AuthController) Logout(c *gin.Context) {
	token := c.GetString(middleware.ContextToken)
	if token == "" {
		utils.JSONResponse(c, http.StatusUnauthorized, nil, "unauthenticated")
		return
	}

	if err := ac.tokenService.RevokeToken(token); err != nil {
		utils.JSONResponse(c, http.StatusInternalServerError, nil, "internal server error")
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "logged out successfully")
}
