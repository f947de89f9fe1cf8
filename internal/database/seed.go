package database

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/example/inhalebay/internal/models"
)

// Default kiosk codes written by Seed when a device class has none.
const (
	DefaultClientCode  = 5678
	DefaultHandlerCode = 1234
)

var defaultTiers = []models.MemberTier{
	{
		MemberTierName: "New",
		Description:    "Members who signed up in the past 30 days.",
		ValueType:      models.TierValueDays,
		Value:          30,
	},
	{
		MemberTierName: "Regular",
		Description:    "Members who have visited in the past 30 days. Regulars become Inactive if they haven't visited your business within this period.",
		ValueType:      models.TierValueDays,
		Value:          30,
	},
	{
		MemberTierName: "VIP",
		Description:    "Regulars with at least 100 lifetime points.",
		ValueType:      models.TierValuePoints,
		Value:          100,
	},
	{
		MemberTierName: "Elite",
		Description:    "Members with at least 300 lifetime points.",
		ValueType:      models.TierValuePoints,
		Value:          300,
	},
}

// Seed makes sure the store identified by storeCode exists together with its
// kiosk codes and the default member tiers. It is safe to run repeatedly.
func Seed(conn *gorm.DB, storeCode int, storeName string) (*models.Store, error) {
	var store models.Store
	err := conn.Where("store_code = ?", storeCode).First(&store).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		store = models.Store{StoreCode: storeCode, Name: storeName}
		if err := conn.Create(&store).Error; err != nil {
			return nil, fmt.Errorf("create store: %w", err)
		}
		log.Printf("seeded store %d (%s)", storeCode, store.ID)
	} else if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}

	codes := map[string]int{
		models.DeviceClient:  DefaultClientCode,
		models.DeviceHandler: DefaultHandlerCode,
	}
	for _, deviceType := range []string{models.DeviceClient, models.DeviceHandler} {
		var count int64
		if err := conn.Model(&models.StoreDeviceCode{}).Where("device_type = ?", deviceType).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("count %s codes: %w", deviceType, err)
		}
		if count > 0 {
			continue
		}
		row := models.StoreDeviceCode{StoreID: store.ID, DeviceType: deviceType, Code: codes[deviceType]}
		if err := conn.Create(&row).Error; err != nil {
			return nil, fmt.Errorf("create %s code: %w", deviceType, err)
		}
	}

	var tiers int64
	if err := conn.Model(&models.MemberTier{}).Where("store_id = ?", store.ID).Count(&tiers).Error; err != nil {
		return nil, fmt.Errorf("count member tiers: %w", err)
	}
	if tiers == 0 {
		for _, tier := range defaultTiers {
			tier.StoreID = store.ID
			if err := conn.Create(&tier).Error; err != nil {
				return nil, fmt.Errorf("create member tier %s: %w", tier.MemberTierName, err)
			}
		}
	}

	return &store, nil
}
