package models

import "github.com/google/uuid"

// Reward types.
const (
	RewardTypePromo  = "promo"
	RewardTypeReward = "reward"
)

// Reward is something a customer can unlock with points. DaysLeft is nil for
// rewards that never expire.
type Reward struct {
	SerialModel
	StoreID      uuid.UUID `gorm:"type:uuid;index" json:"store_id"`
	Title        string    `json:"title"`
	RewardName   string    `json:"reward_name"`
	UnlockPoints *int      `json:"unlock_points"`
	RewardType   string    `json:"reward_type"`
	DaysLeft     *int      `json:"days_left"`
}

func (Reward) TableName() string {
	return "rewards"
}
