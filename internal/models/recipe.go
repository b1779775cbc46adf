package models

import "time"

// Recipe is the single persisted record type
type Recipe struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"type:text;not null" json:"title"`
	MakingTime  string    `gorm:"type:text;not null" json:"making_time"`
	Serves      string    `gorm:"type:text;not null" json:"serves"`
	Ingredients string    `gorm:"type:text;not null" json:"ingredients"`
	Cost        string    `gorm:"type:text;not null" json:"cost"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

// TableName returns the table name for the Recipe model
func (Recipe) TableName() string {
	return "recipes"
}
