package models

// BreathPlan is a shared, named breathing cadence. Plans are global
// reference data with no owner; sessions reference them optionally.
type BreathPlan struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"uniqueIndex;not null" json:"name"`
	InhaleMS int    `gorm:"not null" json:"inhale_ms"`
	HoldMS   int    `gorm:"not null;default:0" json:"hold_ms"`
	ExhaleMS int    `gorm:"not null" json:"exhale_ms"`
	IsPublic bool   `gorm:"not null;default:true" json:"is_public"`
	Notes    string `gorm:"not null;default:''" json:"notes"`
}

func DefaultPlans() []BreathPlan {
	return []BreathPlan{
		{Name: "4-7-8 Relax", InhaleMS: 4000, HoldMS: 7000, ExhaleMS: 8000, IsPublic: true, Notes: "Classic relaxation cadence."},
		{Name: "Box Breathing", InhaleMS: 4000, HoldMS: 4000, ExhaleMS: 4000, IsPublic: true, Notes: "Equal sides, steady focus."},
		{Name: "Coherent 5.5", InhaleMS: 5500, HoldMS: 0, ExhaleMS: 5500, IsPublic: true, Notes: "Resonance breathing at ~5.5 breaths per minute."},
		{Name: "Extended Exhale", InhaleMS: 4000, HoldMS: 0, ExhaleMS: 6000, IsPublic: true, Notes: "Longer exhale for winding down."},
	}
}
