package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"drepalife-app/internal/genotype"
	"drepalife-app/internal/middleware"
	"drepalife-app/internal/models"
	"drepalife-app/internal/utils"
)

// GenotypeHandler answers compatibility checks.
type GenotypeHandler struct {
	DB *gorm.DB
}

// NewGenotypeHandler creates a new GenotypeHandler.
func NewGenotypeHandler(db *gorm.DB) *GenotypeHandler {
	return &GenotypeHandler{DB: db}
}

// CreateMatch handles POST /api/genotype-matches.
func (h *GenotypeHandler) CreateMatch(c *gin.Context) {
	var req models.GenotypeMatchRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	caller, ok := middleware.PrincipalFrom(c)
	if !ok {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	patient, err := genotype.Parse(req.PatientGenotype)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	partner, err := genotype.Parse(req.PartnerGenotype)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	dist := genotype.OffspringDistribution(patient, partner)
	match := models.GenotypeMatch{
		UserID:           caller.UserID,
		PatientGenotype:  string(patient),
		PartnerGenotype:  string(partner),
		RiskMessage:      dist.RiskMessage(),
		ChildPercentages: dist.Strings(),
	}
	if err := h.DB.Create(&match).Error; err != nil {
		utils.InternalServerError(c, "Failed to record genotype match: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, models.GenotypeMatchResponse{
		Success: true,
		Data: &models.GenotypeMatchData{
			RiskMessage:      match.RiskMessage,
			ChildPercentages: match.ChildPercentages,
		},
	})
}
