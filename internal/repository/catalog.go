package repository

import (
	"gorm.io/gorm"

	"github.com/example/inhalebay/internal/models"
)

// RewardRepository reads and writes the rewards table, oldest first.
type RewardRepository = Repository[models.Reward, int64]

// MemberTierRepository reads and writes the member_tiers table, oldest first.
type MemberTierRepository = Repository[models.MemberTier, int64]

// ScreenCodeRepository reads and writes the screen_codes table, oldest first.
type ScreenCodeRepository = Repository[models.ScreenCode, int64]

func NewRewardRepository(db *gorm.DB) *RewardRepository {
	return New[models.Reward, int64](db, Options{
		Naming:     Naming{Singular: "reward", Plural: "rewards"},
		Columns:    []string{"store_id", "title", "reward_name", "unlock_points", "reward_type", "days_left"},
		Timestamps: true,
	})
}

func NewMemberTierRepository(db *gorm.DB) *MemberTierRepository {
	return New[models.MemberTier, int64](db, Options{
		Naming:     Naming{Singular: "member tier", Plural: "member tiers"},
		Columns:    []string{"store_id", "member_tier_name", "description", "value_type", "value"},
		Timestamps: true,
	})
}

func NewScreenCodeRepository(db *gorm.DB) *ScreenCodeRepository {
	return New[models.ScreenCode, int64](db, Options{
		Naming:     Naming{Singular: "screen code", Plural: "screen codes"},
		Columns:    []string{"store_id", "screen_name", "screen_code"},
		Timestamps: true,
	})
}
