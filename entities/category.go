package entities

import (
	"github.com/google/uuid"
)

type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string    `gorm:"uniqueIndex" json:"name"`
	Description string    `json:"description"`

	Timestamp
}

// Update applies a partial update; nil fields keep their current value.
func (c *Category) Update(name, description *string) {
	if name != nil {
		c.Name = *name
	}
	if description != nil {
		c.Description = *description
	}
	c.Touch()
}
