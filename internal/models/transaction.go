package models

import (
	"time"

	"github.com/google/uuid"
)

// Transaction types recorded on the ledger.
const (
	TransactionSignup       = "signup"
	TransactionVisit        = "visit"
	TransactionRedeemReward = "redeem_reward"
)

// CustomerTransaction is one immutable point movement for a customer.
// NetPoints holds the customer's balance right after the movement.
type CustomerTransaction struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	TransactionType string    `gorm:"index" json:"transaction_type"`
	PointsChanged   int       `json:"points_changed"`
	NetPoints       int       `json:"net_points"`
	RewardID        *int64    `json:"reward_id"`
	CustomerID      uuid.UUID `gorm:"type:uuid;index" json:"customer_id"`
	CreatedAt       time.Time `json:"created_at"`
}

func (CustomerTransaction) TableName() string {
	return "customer_transactions"
}
