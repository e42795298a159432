package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"drepalife-app/internal/models"
	"drepalife-app/internal/utils"
)

// ConsultHandler answers /consult with automated advice.
type ConsultHandler struct {
	DB *gorm.DB
}

// NewConsultHandler creates a new ConsultHandler.
func NewConsultHandler(db *gorm.DB) *ConsultHandler {
	return &ConsultHandler{DB: db}
}

type adviceRule struct {
	keywords []string
	advice   string
}

var adviceRules = []adviceRule{
	{
		keywords: []string{"chest", "breath"},
		advice:   "Chest pain or difficulty breathing can be acute chest syndrome. Seek emergency care now.",
	},
	{
		keywords: []string{"fever", "temperature"},
		advice:   "A temperature of 38°C or higher needs urgent medical review for people living with sickle cell disease.",
	},
	{
		keywords: []string{"pain", "crisis"},
		advice:   "Drink plenty of water, keep warm, rest and take your prescribed pain relief. Go to the nearest emergency unit if the pain is severe or lasts more than a few hours.",
	},
	{
		keywords: []string{"tired", "fatigue", "pale", "dizzy"},
		advice:   "Tiredness, dizziness or pale skin can be signs of anaemia. Book a blood count with your care team.",
	},
}

const defaultAdvice = "Thank you for reaching out. Describe your symptoms and a health expert will follow up with you."

// Advise matches symptoms against the advice rules.
func Advise(symptoms string) string {
	text := strings.ToLower(symptoms)
	var parts []string
	for _, rule := range adviceRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				parts = append(parts, rule.advice)
				break
			}
		}
	}
	if len(parts) == 0 {
		return defaultAdvice
	}
	return strings.Join(parts, " ")
}

// Consult handles POST /consult.
func (h *ConsultHandler) Consult(c *gin.Context) {
	var req models.ConsultRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	consultation := models.Consultation{Symptoms: req.Symptoms, Advice: Advise(req.Symptoms)}
	if err := h.DB.Create(&consultation).Error; err != nil {
		utils.InternalServerError(c, "Failed to record consultation: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, models.ConsultResponse{Advice: consultation.Advice})
}
