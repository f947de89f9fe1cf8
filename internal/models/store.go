package models

import "github.com/google/uuid"

// Device classes that can be locked behind a kiosk code.
const (
	DeviceClient  = "client"
	DeviceHandler = "handler"
)

// Store is a physical location. StoreCode is the human-facing number.
type Store struct {
	BaseModel
	StoreCode int    `gorm:"uniqueIndex" json:"store_code"`
	Name      string `json:"name"`
}

func (Store) TableName() string {
	return "inhale_bay_stores"
}

// ScreenCode names a kiosk screen and its numeric code.
type ScreenCode struct {
	SerialModel
	StoreID    uuid.UUID `gorm:"type:uuid;index" json:"store_id"`
	ScreenName string    `json:"screen_name"`
	ScreenCode int       `json:"screen_code"`
}

func (ScreenCode) TableName() string {
	return "screen_codes"
}

// StoreDeviceCode holds the lock code for a device class of a store.
type StoreDeviceCode struct {
	SerialModel
	StoreID    uuid.UUID `gorm:"type:uuid;index" json:"store_id"`
	DeviceType string    `gorm:"index" json:"device_type"`
	Code       int       `json:"code"`
}

func (StoreDeviceCode) TableName() string {
	return "store_devices_codes"
}
