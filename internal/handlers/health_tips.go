package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"drepalife-app/internal/models"
	"drepalife-app/internal/utils"
)

// HealthTipHandler handles CRUD on /health-tips.
type HealthTipHandler struct {
	DB *gorm.DB
}

// NewHealthTipHandler creates a new HealthTipHandler.
func NewHealthTipHandler(db *gorm.DB) *HealthTipHandler {
	return &HealthTipHandler{DB: db}
}

// ListHealthTips returns every tip, newest first, as a bare array.
func (h *HealthTipHandler) ListHealthTips(c *gin.Context) {
	tips := []models.HealthTip{}
	if err := h.DB.Order("created_at desc").Find(&tips).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch health tips: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, tips)
}

func bindTip(c *gin.Context) (models.HealthTipInput, bool) {
	var req models.HealthTipInput
	if !utils.BindAndValidate(c, &req) {
		return req, false
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)
	if req.Title == "" || req.Content == "" {
		utils.BadRequest(c, "Title and content are required")
		return req, false
	}
	return req, true
}

// CreateHealthTip adds a tip.
func (h *HealthTipHandler) CreateHealthTip(c *gin.Context) {
	req, ok := bindTip(c)
	if !ok {
		return
	}
	tip := models.HealthTip{Title: req.Title, Content: req.Content}
	if err := h.DB.Create(&tip).Error; err != nil {
		utils.InternalServerError(c, "Failed to create health tip: "+err.Error())
		return
	}
	c.JSON(http.StatusCreated, tip)
}

// UpdateHealthTip replaces a tip's title and content.
func (h *HealthTipHandler) UpdateHealthTip(c *gin.Context) {
	req, ok := bindTip(c)
	if !ok {
		return
	}

	var tip models.HealthTip
	if err := h.DB.First(&tip, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Health tip not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	tip.Title = req.Title
	tip.Content = req.Content
	if err := h.DB.Save(&tip).Error; err != nil {
		utils.InternalServerError(c, "Failed to update health tip: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, tip)
}

// DeleteHealthTip removes a tip.
func (h *HealthTipHandler) DeleteHealthTip(c *gin.Context) {
	result := h.DB.Delete(&models.HealthTip{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		utils.InternalServerError(c, "Failed to delete health tip: "+result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Health tip not found")
		return
	}
	utils.Success(c, "Health tip deleted", nil)
}
