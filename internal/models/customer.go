package models

import (
	"time"

	"github.com/google/uuid"
)

// Membership levels a customer can hold.
const (
	MembershipNew     = "new"
	MembershipRegular = "regular"
	MembershipVIP     = "vip"
	MembershipVVIP    = "vvip"
)

// Customer is a loyalty member of a store.
type Customer struct {
	BaseModel
	StoreID         uuid.UUID  `gorm:"type:uuid;index" json:"store_id"`
	PhoneNumber     string     `gorm:"index" json:"phone_number"`
	Name            string     `json:"name"`
	AvatarName      string     `json:"avatar_name"`
	CurrentPoints   int        `json:"current_points"`
	LifetimePoints  int        `json:"lifetime_points"`
	TotalVisits     int        `json:"total_visits"`
	LastVisit       *time.Time `json:"last_visit"`
	JoinDate        *time.Time `json:"join_date"`
	MembershipLevel string     `json:"membership_level"`
	IsActive        bool       `json:"is_active"`
}

func (Customer) TableName() string {
	return "customers"
}

// ValidMembershipLevel reports whether level is one of the known membership levels.
func ValidMembershipLevel(level string) bool {
	switch level {
	case MembershipNew, MembershipRegular, MembershipVIP, MembershipVVIP:
		return true
	}
	return false
}
