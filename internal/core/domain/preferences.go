package domain

import "time"

// UserPreferences is the long-lived record used for cross-session
// personalisation. It survives a reset.
type UserPreferences struct {
	Goal      *UserGoal `json:"goal,omitempty"`
	Sector    *string   `json:"sector,omitempty"`
	Category  *string   `json:"category,omitempty"`
	Mode      *UserMode `json:"mode,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Merge overlays the non-nil fields of update onto p, later write wins per key.
func (p UserPreferences) Merge(update UserPreferences, now time.Time) UserPreferences {
	if update.Goal != nil {
		p.Goal = update.Goal
	}
	if update.Sector != nil {
		p.Sector = update.Sector
	}
	if update.Category != nil {
		p.Category = update.Category
	}
	if update.Mode != nil {
		p.Mode = update.Mode
	}
	p.UpdatedAt = now
	return p
}
