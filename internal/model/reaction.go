package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ReactionLike    = "like"
	ReactionDislike = "dislike"
)

// ValidReaction reports whether value belongs to the reaction enum.
func ValidReaction(value string) bool {
	return value == ReactionLike || value == ReactionDislike
}

// Reaction records a user's like or dislike of a recipe. The unique index
// on (recipe_id, user_id) enforces at most one row per pair; repeated
// reactions overwrite the value in place.
type Reaction struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	RecipeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_recipe_user,priority:1" json:"recipe_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_recipe_user,priority:2" json:"user_id"`
	Reaction  string    `gorm:"size:10;not null" json:"reaction"`

	Recipe Recipe `gorm:"foreignKey:RecipeID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Reaction) TableName() string {
	return "reactions"
}

func (r *Reaction) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
