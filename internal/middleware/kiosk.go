package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/inhalebay/internal/kiosk"
)

// KioskGuard only lets requests through when the :device kiosk is unlocked.
func KioskGuard(gate *kiosk.Gate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		device := c.Params("device")
		if !kiosk.ValidDevice(device) {
			return fiber.NewError(fiber.StatusNotFound, kiosk.ErrUnknownDevice.Error())
		}
		if !gate.Authenticated(device) {
			return fiber.NewError(fiber.StatusUnauthorized, "device is locked")
		}
		return c.Next()
	}
}
