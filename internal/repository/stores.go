package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/inhalebay/internal/models"
)

// StoreRepository reads and writes the inhale_bay_stores table.
type StoreRepository struct {
	*Repository[models.Store, uuid.UUID]
}

func NewStoreRepository(db *gorm.DB) *StoreRepository {
	return &StoreRepository{New[models.Store, uuid.UUID](db, Options{
		Naming:     Naming{Singular: "store", Plural: "stores"},
		Columns:    []string{"store_code", "name"},
		Timestamps: true,
	})}
}

// StoreIDByCode resolves a store code to the store's id.
func (r *StoreRepository) StoreIDByCode(ctx context.Context, code int) Result[uuid.UUID] {
	var store models.Store
	if err := r.DB(ctx).Select("id").Where("store_code = ?", code).First(&store).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound[uuid.UUID]("No store found with the provided store code.")
		}
		r.logError("fetching store id", err)
		return Failure[uuid.UUID]("Failed to fetch store id.")
	}
	if store.ID == uuid.Nil {
		return NotFound[uuid.UUID]("No store found with the provided store code.")
	}
	return OK(store.ID)
}

// DeviceCodeRepository reads and writes the store_devices_codes table.
type DeviceCodeRepository struct {
	*Repository[models.StoreDeviceCode, int64]
}

func NewDeviceCodeRepository(db *gorm.DB) *DeviceCodeRepository {
	return &DeviceCodeRepository{New[models.StoreDeviceCode, int64](db, Options{
		Naming:     Naming{Singular: "device code", Plural: "device codes"},
		Columns:    []string{"store_id", "device_type", "code"},
		Timestamps: true,
	})}
}

// CodeFor returns the lock code configured for a device type.
func (r *DeviceCodeRepository) CodeFor(ctx context.Context, deviceType string) Result[int] {
	var rows []models.StoreDeviceCode
	if err := r.DB(ctx).Where("device_type = ?", deviceType).Order("id asc").Find(&rows).Error; err != nil {
		r.logError("fetching "+deviceType+" device code", err)
		return Failure[int]("Failed to fetch " + deviceType + " device code. Please try again later.")
	}
	if len(rows) == 0 {
		return NotFound[int]("No " + deviceType + " device code found.")
	}
	return OK(rows[0].Code)
}

// SetCode stores code for deviceType, creating the row when missing.
func (r *DeviceCodeRepository) SetCode(ctx context.Context, storeID uuid.UUID, deviceType string, code int) Result[*models.StoreDeviceCode] {
	var row models.StoreDeviceCode
	err := r.DB(ctx).Where("device_type = ?", deviceType).Order("id asc").First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.Create(ctx, &models.StoreDeviceCode{StoreID: storeID, DeviceType: deviceType, Code: code})
	}
	if err != nil {
		r.logError("fetching "+deviceType+" device code", err)
		return Failure[*models.StoreDeviceCode]("Failed to fetch " + deviceType + " device code. Please try again later.")
	}
	return r.Update(ctx, row.ID, map[string]any{"code": code})
}
