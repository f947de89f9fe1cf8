package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/inhalebay/internal/config"
	"github.com/example/inhalebay/internal/dialogs"
	"github.com/example/inhalebay/internal/editor"
	"github.com/example/inhalebay/internal/models"
	"github.com/example/inhalebay/internal/repository"
	"github.com/example/inhalebay/internal/tableview"
	"github.com/example/inhalebay/internal/utils"
	"github.com/example/inhalebay/internal/views"
)

// CustomerHandler serves the customers screen.
type CustomerHandler struct {
	customers    *repository.CustomerRepository
	transactions *repository.TransactionRepository
	stores       *repository.StoreRepository
	cfg          *config.Config
}

// NewCustomerHandler constructs CustomerHandler.
func NewCustomerHandler(db *gorm.DB, cfg *config.Config) *CustomerHandler {
	return &CustomerHandler{
		customers:    repository.NewCustomerRepository(db),
		transactions: repository.NewTransactionRepository(db),
		stores:       repository.NewStoreRepository(db),
		cfg:          cfg,
	}
}

func (h *CustomerHandler) table(c *fiber.Ctx) (*tableview.Table[models.Customer], utils.ListParams) {
	params := utils.ParseListParams(c, h.cfg.PageSize)
	tbl := views.Customers(h.customers, params.Limit)
	tbl.SetPage(params.Page)
	applyParams(tbl, params)
	return tbl, params
}

func (h *CustomerHandler) panel(tbl *tableview.Table[models.Customer]) *editor.Panel[models.Customer, uuid.UUID] {
	return editor.NewPanel[models.Customer, uuid.UUID](editor.NewCustomerForm(nil), h.customers, h.stores, h.cfg.StoreCode, tbl)
}

func parseCustomerID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid customer id")
	}
	return id, nil
}

// ListCustomers returns one page of customers.
func (h *CustomerHandler) ListCustomers(c *fiber.Ctx) error {
	tbl, params := h.table(c)
	return listResponse(c, tbl, params)
}

// GetCustomer returns a single customer.
func (h *CustomerHandler) GetCustomer(c *fiber.Ctx) error {
	id, err := parseCustomerID(c)
	if err != nil {
		return err
	}
	res := h.customers.Get(c.UserContext(), id)
	if !res.Success() {
		return resultError(res.Status, res.Message)
	}
	return c.JSON(res.Envelope())
}

// CustomerDetail renders the customer detail dialog.
func (h *CustomerHandler) CustomerDetail(c *fiber.Ctx) error {
	id, err := parseCustomerID(c)
	if err != nil {
		return err
	}
	dialog := dialogs.NewCustomerDialog(h.customers)
	dialog.Open(c.UserContext(), id)
	return c.JSON(fiber.Map{
		"success": dialog.Result().Success(),
		"data":    dialog.View(),
		"message": dialog.Result().Message,
	})
}

// FindByPhone looks a customer up by phone number.
func (h *CustomerHandler) FindByPhone(c *fiber.Ctx) error {
	phone := strings.TrimSpace(c.Params("phone"))
	if phone == "" {
		return fiber.NewError(fiber.StatusBadRequest, "phone number is required")
	}
	res := h.customers.FindByPhone(c.UserContext(), phone)
	if !res.Success() {
		return resultError(res.Status, res.Message)
	}
	return c.JSON(res.Envelope())
}

// CustomerTransactions lists a customer's transactions, leaving out ?exclude.
func (h *CustomerHandler) CustomerTransactions(c *fiber.Ctx) error {
	id, err := parseCustomerID(c)
	if err != nil {
		return err
	}
	exclude, err := strconv.ParseInt(c.Query("exclude", "0"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid exclude id")
	}
	limit := c.QueryInt("limit", repository.OtherTransactionsLimit)
	if limit <= 0 || limit > repository.OtherTransactionsLimit {
		limit = repository.OtherTransactionsLimit
	}

	res := h.transactions.OthersForCustomer(c.UserContext(), id, exclude, limit)
	if !res.Success() {
		return resultError(res.Status, res.Message)
	}
	return c.JSON(res.Envelope())
}

// CreateCustomer adds a customer to the configured store.
func (h *CustomerHandler) CreateCustomer(c *fiber.Ctx) error {
	tbl, _ := h.table(c)
	panel := h.panel(tbl)
	panel.OpenAdd()

	form := panel.Form().(*editor.CustomerForm)
	if err := c.BodyParser(form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if form.PointsDelta != "" {
		form.ApplyPointsDelta(string(form.PointsDelta))
	}
	if err := form.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return mutationResponse(c, fiber.StatusCreated, panel.Save(c.UserContext()), tbl)
}

// UpdateCustomer edits a customer. Points only move through points_delta.
func (h *CustomerHandler) UpdateCustomer(c *fiber.Ctx) error {
	id, err := parseCustomerID(c)
	if err != nil {
		return err
	}
	current := h.customers.Get(c.UserContext(), id)
	if !current.Success() {
		return resultError(current.Status, current.Message)
	}

	tbl, _ := h.table(c)
	panel := h.panel(tbl)
	panel.OpenEdit(*current.Data)

	form := panel.Form().(*editor.CustomerForm)
	if err := c.BodyParser(form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if form.PointsDelta != "" {
		form.ApplyPointsDelta(string(form.PointsDelta))
	}
	if err := form.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return mutationResponse(c, fiber.StatusOK, panel.Save(c.UserContext()), tbl)
}

// DeleteCustomer removes a customer.
func (h *CustomerHandler) DeleteCustomer(c *fiber.Ctx) error {
	id, err := parseCustomerID(c)
	if err != nil {
		return err
	}
	tbl, _ := h.table(c)
	dialog := editor.NewDeleteDialog[uuid.UUID](h.customers, tbl)
	dialog.Request(id)
	return mutationResponse(c, fiber.StatusOK, dialog.Confirm(c.UserContext()), tbl)
}
