package models

// Sender identifies who wrote a chat message
type Sender string

const (
	SenderPatient Sender = "patient"
	SenderBot     Sender = "bot"
)

// ChatMessage is one line of a consultation transcript
type ChatMessage struct {
	Sender Sender `json:"sender"`
	Text   string `json:"text"`
	SentAt int64  `json:"sentAt"`
}

// Consultation records an automated advice exchange
type Consultation struct {
	BaseModel
	Symptoms string `gorm:"type:text" json:"symptoms"`
	Advice   string `gorm:"type:text" json:"advice"`
}

// GenotypeMatch records a compatibility check made by a user
type GenotypeMatch struct {
	BaseModel
	UserID           string             `gorm:"size:36;index" json:"userId"`
	PatientGenotype  string             `gorm:"size:2" json:"patientGenotype"`
	PartnerGenotype  string             `gorm:"size:2" json:"partnerGenotype"`
	RiskMessage      string             `gorm:"type:text" json:"riskMessage"`
	ChildPercentages map[string]float64 `gorm:"serializer:json" json:"childPercentages"`
}
