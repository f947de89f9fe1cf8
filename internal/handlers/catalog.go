package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/inhalebay/internal/config"
	"github.com/example/inhalebay/internal/editor"
	"github.com/example/inhalebay/internal/models"
	"github.com/example/inhalebay/internal/repository"
	"github.com/example/inhalebay/internal/tableview"
	"github.com/example/inhalebay/internal/utils"
	"github.com/example/inhalebay/internal/views"
)

// catalogResource is one store-owned configuration table keyed by a serial id.
type catalogResource[T any] struct {
	repo     *repository.Repository[T, int64]
	newForm  func() editor.Form[T, int64]
	newTable func(views.Lister[T], int) *tableview.Table[T]
	label    string
}

// CatalogHandler manages rewards, member tiers and screen codes.
type CatalogHandler struct {
	rewards     catalogResource[models.Reward]
	memberTiers catalogResource[models.MemberTier]
	screenCodes catalogResource[models.ScreenCode]
	stores      *repository.StoreRepository
	cfg         *config.Config
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(db *gorm.DB, cfg *config.Config) *CatalogHandler {
	return &CatalogHandler{
		rewards: catalogResource[models.Reward]{
			repo:     repository.NewRewardRepository(db),
			newForm:  func() editor.Form[models.Reward, int64] { return editor.NewRewardForm() },
			newTable: views.Rewards,
			label:    "reward",
		},
		memberTiers: catalogResource[models.MemberTier]{
			repo:     repository.NewMemberTierRepository(db),
			newForm:  func() editor.Form[models.MemberTier, int64] { return editor.NewMemberTierForm() },
			newTable: views.MemberTiers,
			label:    "member tier",
		},
		screenCodes: catalogResource[models.ScreenCode]{
			repo:     repository.NewScreenCodeRepository(db),
			newForm:  func() editor.Form[models.ScreenCode, int64] { return editor.NewScreenCodeForm() },
			newTable: views.ScreenCodes,
			label:    "screen code",
		},
		stores: repository.NewStoreRepository(db),
		cfg:    cfg,
	}
}

func parseSerialID(c *fiber.Ctx, label string) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid "+label+" id")
	}
	return id, nil
}

func (r catalogResource[T]) table(c *fiber.Ctx, pageSize int) (*tableview.Table[T], utils.ListParams) {
	params := utils.ParseListParams(c, pageSize)
	tbl := r.newTable(r.repo, params.Limit)
	tbl.SetPage(params.Page)
	applyParams(tbl, params)
	return tbl, params
}

func (r catalogResource[T]) list(c *fiber.Ctx, h *CatalogHandler) error {
	tbl, params := r.table(c, h.cfg.PageSize)
	return listResponse(c, tbl, params)
}

func (r catalogResource[T]) get(c *fiber.Ctx) error {
	id, err := parseSerialID(c, r.label)
	if err != nil {
		return err
	}
	res := r.repo.Get(c.UserContext(), id)
	if !res.Success() {
		return resultError(res.Status, res.Message)
	}
	return c.JSON(res.Envelope())
}

// save runs the create/edit panel. A zero id opens it in add mode.
func (r catalogResource[T]) save(c *fiber.Ctx, h *CatalogHandler, id int64) error {
	tbl, _ := r.table(c, h.cfg.PageSize)
	panel := editor.NewPanel[T, int64](r.newForm(), r.repo, h.stores, h.cfg.StoreCode, tbl)

	status := fiber.StatusCreated
	if id == 0 {
		panel.OpenAdd()
	} else {
		current := r.repo.Get(c.UserContext(), id)
		if !current.Success() {
			return resultError(current.Status, current.Message)
		}
		panel.OpenEdit(*current.Data)
		status = fiber.StatusOK
	}

	form := panel.Form()
	if err := c.BodyParser(form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := form.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return mutationResponse(c, status, panel.Save(c.UserContext()), tbl)
}

func (r catalogResource[T]) update(c *fiber.Ctx, h *CatalogHandler) error {
	id, err := parseSerialID(c, r.label)
	if err != nil {
		return err
	}
	return r.save(c, h, id)
}

func (r catalogResource[T]) delete(c *fiber.Ctx, h *CatalogHandler) error {
	id, err := parseSerialID(c, r.label)
	if err != nil {
		return err
	}
	tbl, _ := r.table(c, h.cfg.PageSize)
	dialog := editor.NewDeleteDialog[int64](r.repo, tbl)
	dialog.Request(id)
	return mutationResponse(c, fiber.StatusOK, dialog.Confirm(c.UserContext()), tbl)
}

// ListRewards returns paginated rewards.
func (h *CatalogHandler) ListRewards(c *fiber.Ctx) error { return h.rewards.list(c, h) }

// GetReward returns a single reward by ID.
func (h *CatalogHandler) GetReward(c *fiber.Ctx) error { return h.rewards.get(c) }

// CreateReward adds a reward to the configured store.
func (h *CatalogHandler) CreateReward(c *fiber.Ctx) error { return h.rewards.save(c, h, 0) }

// UpdateReward edits a reward.
func (h *CatalogHandler) UpdateReward(c *fiber.Ctx) error { return h.rewards.update(c, h) }

// DeleteReward removes a reward.
func (h *CatalogHandler) DeleteReward(c *fiber.Ctx) error { return h.rewards.delete(c, h) }

func (h *CatalogHandler) ListMemberTiers(c *fiber.Ctx) error  { return h.memberTiers.list(c, h) }
func (h *CatalogHandler) GetMemberTier(c *fiber.Ctx) error    { return h.memberTiers.get(c) }
func (h *CatalogHandler) CreateMemberTier(c *fiber.Ctx) error { return h.memberTiers.save(c, h, 0) }
func (h *CatalogHandler) UpdateMemberTier(c *fiber.Ctx) error { return h.memberTiers.update(c, h) }
func (h *CatalogHandler) DeleteMemberTier(c *fiber.Ctx) error { return h.memberTiers.delete(c, h) }

func (h *CatalogHandler) ListScreenCodes(c *fiber.Ctx) error  { return h.screenCodes.list(c, h) }
func (h *CatalogHandler) GetScreenCode(c *fiber.Ctx) error    { return h.screenCodes.get(c) }
func (h *CatalogHandler) CreateScreenCode(c *fiber.Ctx) error { return h.screenCodes.save(c, h, 0) }
func (h *CatalogHandler) UpdateScreenCode(c *fiber.Ctx) error { return h.screenCodes.update(c, h) }
func (h *CatalogHandler) DeleteScreenCode(c *fiber.Ctx) error { return h.screenCodes.delete(c, h) }
