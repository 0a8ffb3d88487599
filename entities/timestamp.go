package entities

import "time"

type Timestamp struct {
	CreatedAt time.Time  `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt *time.Time `gorm:"type:timestamp" json:"updated_at,omitempty"`
}

// Touch stamps the last-modified time. Entity update methods call it so
// the stamp always moves together with the fields it covers.
func (t *Timestamp) Touch() {
	now := time.Now()
	t.UpdatedAt = &now
}
