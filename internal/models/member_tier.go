package models

import "github.com/google/uuid"

// Value types for member tier thresholds.
const (
	TierValueDays   = "days"
	TierValuePoints = "points"
)

// MemberTier is a named tier unlocked by elapsed days or accumulated points.
type MemberTier struct {
	SerialModel
	StoreID        uuid.UUID `gorm:"type:uuid;index" json:"store_id"`
	MemberTierName string    `json:"member_tier_name"`
	Description    string    `json:"description"`
	ValueType      string    `json:"value_type"`
	Value          int       `json:"value"`
}

func (MemberTier) TableName() string {
	return "member_tiers"
}
