package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/inhalebay/internal/repository"
)

// StoreHandler resolves store codes.
type StoreHandler struct {
	stores *repository.StoreRepository
}

// NewStoreHandler constructs StoreHandler.
func NewStoreHandler(db *gorm.DB) *StoreHandler {
	return &StoreHandler{stores: repository.NewStoreRepository(db)}
}

// StoreByCode returns the id of the store with the given numeric code.
func (h *StoreHandler) StoreByCode(c *fiber.Ctx) error {
	code, err := strconv.Atoi(c.Params("code"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "store code must be numeric")
	}
	res := h.stores.StoreIDByCode(c.UserContext(), code)
	if !res.Success() {
		return resultError(res.Status, res.Message)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"store_id":   res.Data,
			"store_code": code,
		},
	})
}
