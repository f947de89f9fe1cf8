package handlers

import (
	"strconv"

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

// TransactionHandler serves the customer transactions screen.
type TransactionHandler struct {
	transactions *repository.TransactionRepository
	cfg          *config.Config
}

// NewTransactionHandler constructs TransactionHandler.
func NewTransactionHandler(db *gorm.DB, cfg *config.Config) *TransactionHandler {
	return &TransactionHandler{
		transactions: repository.NewTransactionRepository(db),
		cfg:          cfg,
	}
}

func (h *TransactionHandler) table(c *fiber.Ctx) (*tableview.Table[models.CustomerTransaction], utils.ListParams) {
	params := utils.ParseListParams(c, h.cfg.PageSize)
	tbl := views.Transactions(h.transactions, params.Limit)
	tbl.SetPage(params.Page)
	applyParams(tbl, params)
	return tbl, params
}

func parseTransactionID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid transaction id")
	}
	return id, nil
}

// ListTransactions returns one page of transactions, newest first.
func (h *TransactionHandler) ListTransactions(c *fiber.Ctx) error {
	tbl, params := h.table(c)
	return listResponse(c, tbl, params)
}

// GetTransaction returns one transaction with its display label.
func (h *TransactionHandler) GetTransaction(c *fiber.Ctx) error {
	id, err := parseTransactionID(c)
	if err != nil {
		return err
	}
	res := h.transactions.Get(c.UserContext(), id)
	if !res.Success() {
		return resultError(res.Status, res.Message)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    dialogs.Labeled(*res.Data),
	})
}

// TransactionDetail renders the transaction dialog for a row of ?page.
func (h *TransactionHandler) TransactionDetail(c *fiber.Ctx) error {
	id, err := parseTransactionID(c)
	if err != nil {
		return err
	}

	tbl, _ := h.table(c)
	tbl.Load(c.UserContext())
	if tbl.Failed() {
		return fiber.NewError(fiber.StatusInternalServerError, tbl.Message())
	}

	customerID := uuid.Nil
	if tx, ok := tbl.Find(views.TransactionKey(models.CustomerTransaction{ID: id})); ok {
		customerID = tx.CustomerID
	} else if raw := c.Query("customer_id"); raw != "" {
		if parsed, err := uuid.Parse(raw); err == nil {
			customerID = parsed
		}
	}

	dialog := dialogs.NewTransactionDialog(h.transactions)
	dialog.Open(c.UserContext(), tbl.Rows(), id, customerID)

	others := dialog.OthersResult()
	return c.JSON(fiber.Map{
		"success": dialog.Main() != nil,
		"data":    dialog.View(),
		"message": others.Message,
	})
}

type createTransactionRequest struct {
	TransactionType string        `json:"transaction_type"`
	PointsChanged   editor.Number `json:"points_changed"`
	NetPoints       editor.Number `json:"net_points"`
	RewardID        *int64        `json:"reward_id"`
	CustomerID      string        `json:"customer_id"`
}

// CreateTransaction records a ledger row.
func (h *TransactionHandler) CreateTransaction(c *fiber.Ctx) error {
	var req createTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	switch req.TransactionType {
	case models.TransactionSignup, models.TransactionVisit, models.TransactionRedeemReward:
	default:
		return fiber.NewError(fiber.StatusBadRequest, "unknown transaction type")
	}
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid customer id")
	}
	points, err := strconv.Atoi(string(req.PointsChanged))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "points_changed must be a whole number")
	}
	net, err := strconv.Atoi(string(req.NetPoints))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "net_points must be a whole number")
	}

	tbl, _ := h.table(c)
	res := h.transactions.Create(c.UserContext(), &models.CustomerTransaction{
		TransactionType: req.TransactionType,
		PointsChanged:   points,
		NetPoints:       net,
		RewardID:        req.RewardID,
		CustomerID:      customerID,
	})
	tbl.Invalidate(c.UserContext())

	return mutationResponse(c, fiber.StatusCreated, res, tbl)
}

// DeleteTransaction removes a ledger row.
func (h *TransactionHandler) DeleteTransaction(c *fiber.Ctx) error {
	id, err := parseTransactionID(c)
	if err != nil {
		return err
	}
	tbl, _ := h.table(c)
	dialog := editor.NewDeleteDialog[int64](h.transactions, tbl)
	dialog.Request(id)
	return mutationResponse(c, fiber.StatusOK, dialog.Confirm(c.UserContext()), tbl)
}
