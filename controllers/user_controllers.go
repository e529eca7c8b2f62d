package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dragonpearl/reservation-app/i18n"
	"github.com/dragonpearl/reservation-app/models"
	"github.com/dragonpearl/reservation-app/services"
	"github.com/dragonpearl/reservation-app/utils"
)

type UserController struct {
	DB       *gorm.DB
	Verifier services.CredentialVerifier
	Issuer   *utils.TokenIssuer
}

func NewUserController(db *gorm.DB, verifier services.CredentialVerifier, issuer *utils.TokenIssuer) *UserController {
	return &UserController{DB: db, Verifier: verifier, Issuer: issuer}
}

// Login checks admin credentials and returns a session token. A missing user
// and a wrong password produce the same generic message.
func (uc *UserController) Login(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	locale := i18n.Match(c.GetHeader("Accept-Language"))
	invalid := errors.New(i18n.T(locale, i18n.KeyInvalidCredentials))

	var user models.User
	if err := uc.DB.Where("username = ?", input.Username).First(&user).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, invalid)
		return
	}

	if err := uc.Verifier.Verify(user.PasswordHash, input.Password); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, invalid)
		return
	}

	token, err := uc.Issuer.Generate(user.ID, user.Role)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Login successful for user: %s", user.Username)

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token":     token,
		"user_role": user.Role,
	})
}

// GetProfile returns the identity already loaded by the auth middleware.
func (uc *UserController) GetProfile(c *gin.Context) {
	userIDInterface, exists := c.Get("user_id")
	if !exists {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	userID, ok := userIDInterface.(uint)
	if !ok {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("invalid user id type"))
		return
	}

	var user models.User
	if err := uc.DB.First(&user, userID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Profile data retrieved successfully", gin.H{
		"id":       user.ID,
		"username": user.Username,
		"role":     user.Role,
	})
}
