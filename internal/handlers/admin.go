package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/inhalebay/internal/models"
)

// AdminHandler serves the dashboard home page.
type AdminHandler struct {
	db *gorm.DB
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

// DashboardStats returns aggregate statistics for the dashboard.
func (h *AdminHandler) DashboardStats(c *fiber.Ctx) error {
	db := h.db.WithContext(c.UserContext())

	var totalCustomers int64
	if err := db.Model(&models.Customer{}).Count(&totalCustomers).Error; err != nil {
		return err
	}

	var activeCustomers int64
	if err := db.Model(&models.Customer{}).Where("is_active = ?", true).Count(&activeCustomers).Error; err != nil {
		return err
	}

	// Customers by membership level
	type levelCount struct {
		MembershipLevel string `json:"membership_level"`
		Count           int64  `json:"count"`
	}
	var levelCounts []levelCount
	if err := db.Model(&models.Customer{}).
		Select("membership_level, count(*) as count").
		Group("membership_level").
		Scan(&levelCounts).Error; err != nil {
		return err
	}

	customersByLevel := make(map[string]int64)
	for _, lc := range levelCounts {
		customersByLevel[lc.MembershipLevel] = lc.Count
	}

	var totalTransactions int64
	if err := db.Model(&models.CustomerTransaction{}).Count(&totalTransactions).Error; err != nil {
		return err
	}

	var pointsIssued int64
	if err := db.Model(&models.CustomerTransaction{}).
		Where("points_changed > 0").
		Select("COALESCE(SUM(points_changed), 0)").
		Scan(&pointsIssued).Error; err != nil {
		return err
	}

	var pointsRedeemed int64
	if err := db.Model(&models.CustomerTransaction{}).
		Where("points_changed < 0").
		Select("COALESCE(-SUM(points_changed), 0)").
		Scan(&pointsRedeemed).Error; err != nil {
		return err
	}

	var totalRewards int64
	if err := db.Model(&models.Reward{}).Count(&totalRewards).Error; err != nil {
		return err
	}

	var totalTiers int64
	if err := db.Model(&models.MemberTier{}).Count(&totalTiers).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"total_customers":    totalCustomers,
			"active_customers":   activeCustomers,
			"customers_by_level": customersByLevel,
			"total_transactions": totalTransactions,
			"points_issued":      pointsIssued,
			"points_redeemed":    pointsRedeemed,
			"total_rewards":      totalRewards,
			"total_member_tiers": totalTiers,
		},
	})
}
