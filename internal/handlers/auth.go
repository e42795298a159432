package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"drepalife-app/internal/config"
	"drepalife-app/internal/models"
	"drepalife-app/internal/utils"
)

// AuthHandler handles the /api/users endpoints.
type AuthHandler struct {
	DB  *gorm.DB
	Cfg *config.DevAPIConfig
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(db *gorm.DB, cfg *config.DevAPIConfig) *AuthHandler {
	return &AuthHandler{DB: db, Cfg: cfg}
}

// Register handles user registration.
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existingUser models.User
	if err := h.DB.Where("email = ?", email).First(&existingUser).Error; err == nil {
		utils.BadRequest(c, "User with this email already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}

	user := models.User{
		Name:       strings.TrimSpace(req.Name),
		Email:      email,
		Role:       req.Role,
		IsVerified: !req.Role.NeedsApproval(),
	}
	if err := user.SetPassword(req.Password); err != nil {
		utils.InternalServerError(c, "Failed to hash password: "+err.Error())
		return
	}

	if err := h.DB.Create(&user).Error; err != nil {
		utils.InternalServerError(c, "Failed to create user: "+err.Error())
		return
	}

	c.JSON(http.StatusCreated, models.RegisterResponse{
		Success: true,
		User:    &user,
		Message: "User registered successfully",
	})
}

// Login handles user login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var user models.User
	if err := h.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Unauthorized(c, "Invalid email or password")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if !user.CheckPassword(req.Password) {
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	token, err := utils.GenerateToken(&user, h.Cfg.JWTSecret, time.Duration(h.Cfg.JWTExpirationMinutes)*time.Minute)
	if err != nil {
		utils.InternalServerError(c, "Failed to generate token: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{
		Success: true,
		Token:   token,
		User:    &user,
		Message: "Login successful",
	})
}
