package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recipe categories form a closed set; anything else is rejected at the
// request boundary.
const (
	CategoryVeg    = "veg"
	CategoryNonVeg = "non-veg"
)

type Recipe struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Ingredient  string    `gorm:"type:text;not null" json:"ingredient"`
	Instruction string    `gorm:"type:text;not null" json:"instruction"`
	Category    string    `gorm:"size:50;not null" json:"category"`
	ImageURL    string    `gorm:"size:512" json:"image_url"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
