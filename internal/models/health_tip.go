package models

// HealthTip is a short title/content record shown to patients
type HealthTip struct {
	BaseModel
	Title   string `gorm:"size:255;not null" json:"title"`
	Content string `gorm:"type:text;not null" json:"content"`
}
