package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/example/inhalebay/internal/config"
	"github.com/example/inhalebay/internal/kiosk"
	"github.com/example/inhalebay/internal/repository"
)

// KioskHandler serves the PIN-locked client and handler screens.
type KioskHandler struct {
	gate *kiosk.Gate
	cfg  *config.Config
}

// NewKioskHandler constructs KioskHandler.
func NewKioskHandler(gate *kiosk.Gate, cfg *config.Config) *KioskHandler {
	return &KioskHandler{gate: gate, cfg: cfg}
}

type kioskLoginRequest struct {
	Code string `json:"code"`
}

func kioskError(err error) error {
	var lookup *kiosk.LookupError
	switch {
	case errors.Is(err, kiosk.ErrUnknownDevice):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, kiosk.ErrMalformedCode):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, kiosk.ErrWrongCode):
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	case errors.As(err, &lookup):
		return resultError(lookup.Status, lookup.Message)
	}
	return err
}

// Login unlocks a device when the entered code matches.
func (h *KioskHandler) Login(c *fiber.Ctx) error {
	var req kioskLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	device := c.Params("device")
	if err := h.gate.Login(c.UserContext(), device, req.Code); err != nil {
		return kioskError(err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"device": device, "authenticated": true},
	})
}

// Logout locks a device again.
func (h *KioskHandler) Logout(c *fiber.Ctx) error {
	device := c.Params("device")
	if err := h.gate.Logout(device); err != nil {
		return kioskError(err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"device": device, "authenticated": false},
	})
}

// Main is the landing screen of an unlocked device.
func (h *KioskHandler) Main(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"device":     c.Params("device"),
			"store_code": h.cfg.StoreCode,
			"store_name": h.cfg.StoreName,
		},
	})
}

// Status reports which devices are unlocked.
func (h *KioskHandler) Status(c *fiber.Ctx) error {
	return c.JSON(repository.OK(h.gate.Session().Status()).Envelope())
}
