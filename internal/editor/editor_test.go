package editor

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/example/inhalebay/internal/database"
	"github.com/example/inhalebay/internal/models"
	"github.com/example/inhalebay/internal/repository"
	"github.com/example/inhalebay/internal/testutil"
	"github.com/example/inhalebay/internal/views"
)

const storeCode = 5751

type fixture struct {
	customers *repository.CustomerRepository
	rewards   *repository.RewardRepository
	stores    *repository.StoreRepository
	store     *models.Store
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	clock := testutil.NewClock()
	conn := testutil.OpenDB(t, clock)
	store, err := database.Seed(conn, storeCode, "Test Bay")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	customers := repository.NewCustomerRepository(conn)
	customers.SetClock(clock.Now)
	return fixture{
		customers: customers,
		rewards:   repository.NewRewardRepository(conn),
		stores:    repository.NewStoreRepository(conn),
		store:     store,
	}
}

// countingWriter records calls and delegates to the wrapped writer.
type countingWriter[T any, K comparable] struct {
	Writer[T, K]
	creates, updates int
}

func (w *countingWriter[T, K]) Create(ctx context.Context, rec *T) repository.Result[*T] {
	w.creates++
	return w.Writer.Create(ctx, rec)
}

func (w *countingWriter[T, K]) Update(ctx context.Context, id K, fields map[string]any) repository.Result[*T] {
	w.updates++
	return w.Writer.Update(ctx, id, fields)
}

type countingTable struct{ n int }

func (c *countingTable) Invalidate(context.Context) { c.n++ }

func TestPanelAddCreatesUnderConfiguredStore(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	table := views.Customers(fx.customers, 20)
	table.Load(ctx)

	panel := NewPanel[models.Customer, uuid.UUID](NewCustomerForm(nil), fx.customers, fx.stores, storeCode, table)
	panel.OpenAdd()
	form := panel.Form().(*CustomerForm)
	form.Name = "Ava"
	form.PhoneNumber = "+15551230000"

	res := panel.Save(ctx)
	if !res.Success() {
		t.Fatalf("save: %s", res.Message)
	}
	if res.Data.StoreID != fx.store.ID {
		t.Errorf("store id = %s, want %s", res.Data.StoreID, fx.store.ID)
	}
	if res.Data.MembershipLevel != models.MembershipNew || !res.Data.IsActive || res.Data.JoinDate == nil {
		t.Errorf("defaults not applied: %+v", res.Data)
	}
	if table.FetchCount() != 2 {
		t.Errorf("fetches = %d, want 2", table.FetchCount())
	}
	if len(table.Rows()) != 1 || table.Rows()[0].ID != res.Data.ID {
		t.Errorf("refetched rows = %v", table.Rows())
	}
	if panel.IsOpen() {
		t.Error("panel still open after save")
	}
}

func TestPanelUnknownStoreCodeSkipsCreate(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	writer := &countingWriter[models.Customer, uuid.UUID]{Writer: fx.customers}
	table := &countingTable{}

	panel := NewPanel[models.Customer, uuid.UUID](NewCustomerForm(nil), writer, fx.stores, 9999, table)
	panel.OpenAdd()
	panel.Form().(*CustomerForm).Name = "Nobody"

	res := panel.Save(ctx)
	if res.Success() {
		t.Fatal("save succeeded with unknown store code")
	}
	if res.Message != "No store found with the provided store code." {
		t.Errorf("message = %q", res.Message)
	}
	if writer.creates != 0 {
		t.Errorf("create called %d times", writer.creates)
	}
	if table.n != 1 {
		t.Errorf("invalidations = %d, want 1", table.n)
	}
	if !panel.IsOpen() {
		t.Error("panel closed after failed save")
	}
}

func TestPanelEditUpdatesAndAppliesPointsDelta(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	created := fx.customers.Create(ctx, &models.Customer{
		StoreID: fx.store.ID, Name: "Ben", PhoneNumber: "+1", CurrentPoints: 30, LifetimePoints: 100,
		MembershipLevel: models.MembershipRegular, IsActive: true,
	})
	if !created.Success() {
		t.Fatalf("create: %s", created.Message)
	}

	writer := &countingWriter[models.Customer, uuid.UUID]{Writer: fx.customers}
	table := &countingTable{}
	panel := NewPanel[models.Customer, uuid.UUID](NewCustomerForm(nil), writer, fx.stores, storeCode, table)
	panel.OpenEdit(*created.Data)

	form := panel.Form().(*CustomerForm)
	if !form.ApplyPointsDelta("-5") {
		t.Fatal("delta rejected")
	}
	if form.ApplyPointsDelta("five") {
		t.Error("non-numeric delta applied")
	}
	if form.PointsDelta != "" {
		t.Error("delta input not cleared")
	}
	form.MembershipLevel = models.MembershipVIP

	res := panel.Save(ctx)
	if !res.Success() {
		t.Fatalf("save: %s", res.Message)
	}
	if writer.updates != 1 || writer.creates != 0 {
		t.Errorf("updates %d creates %d", writer.updates, writer.creates)
	}
	if res.Data.CurrentPoints != 25 || res.Data.LifetimePoints != 95 {
		t.Errorf("points = %d/%d, want 25/95", res.Data.CurrentPoints, res.Data.LifetimePoints)
	}
	if res.Data.MembershipLevel != models.MembershipVIP || res.Data.Name != "Ben" {
		t.Errorf("row = %+v", res.Data)
	}
	if table.n != 1 {
		t.Errorf("invalidations = %d", table.n)
	}
}

func TestPanelRejectsNonNumericInput(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	writer := &countingWriter[models.Reward, int64]{Writer: fx.rewards}
	table := &countingTable{}

	panel := NewPanel[models.Reward, int64](NewRewardForm(), writer, fx.stores, storeCode, table)
	panel.OpenAdd()
	form := panel.Form().(*RewardForm)
	form.Title = "Free drink"
	form.UnlockPoints = "ten"

	res := panel.Save(ctx)
	if res.Status != repository.StatusFailure || res.Message != "Unlock points must be a whole number." {
		t.Errorf("result = %+v", res)
	}
	if writer.creates != 0 || table.n != 0 {
		t.Errorf("creates %d invalidations %d, want none", writer.creates, table.n)
	}

	form.UnlockPoints = "100"
	res = panel.Save(ctx)
	if !res.Success() {
		t.Fatalf("save: %s", res.Message)
	}
	if res.Data.UnlockPoints == nil || *res.Data.UnlockPoints != 100 || res.Data.DaysLeft != nil {
		t.Errorf("reward = %+v", res.Data)
	}
}

func TestFormsDecodeNumbersAndStrings(t *testing.T) {
	form := NewMemberTierForm()
	body := `{"member_tier_name":"Gold","value_type":"points","value":250}`
	if err := json.Unmarshal([]byte(body), form); err != nil {
		t.Fatal(err)
	}
	if err := form.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if form.Fields()["value"] != 250 {
		t.Errorf("value = %v", form.Fields()["value"])
	}

	codes := NewScreenCodeForm()
	if err := json.Unmarshal([]byte(`{"screen_name":"Bar","screen_code":"4321"}`), codes); err != nil {
		t.Fatal(err)
	}
	if err := codes.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if rec := codes.Record(uuid.Nil); rec.ScreenCode != 4321 {
		t.Errorf("screen code = %d", rec.ScreenCode)
	}

	form.ValueType = "weeks"
	if err := form.Validate(); err == nil {
		t.Error("unknown value type accepted")
	}
}

func TestCustomerFormRecordUsesClock(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	form := NewCustomerForm(func() time.Time { return at })
	form.MembershipLevel = "platinum"
	if err := form.Validate(); err == nil {
		t.Error("unknown membership level accepted")
	}
	form.MembershipLevel = ""
	rec := form.Record(uuid.Nil)
	if rec.JoinDate == nil || !rec.JoinDate.Equal(at) {
		t.Errorf("join date = %v", rec.JoinDate)
	}
}

func TestDeleteDialog(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t)
	c := fx.customers.Create(ctx, &models.Customer{Name: "Del", PhoneNumber: "+9"})
	if !c.Success() {
		t.Fatalf("create: %s", c.Message)
	}
	table := &countingTable{}
	d := NewDeleteDialog[uuid.UUID](fx.customers, table)

	if res := d.Confirm(ctx); res.Success() {
		t.Error("confirm without request succeeded")
	}

	d.Request(c.Data.ID)
	d.Cancel()
	if d.IsOpen() || table.n != 0 {
		t.Error("cancel left dialog open or refetched")
	}

	d.Request(c.Data.ID)
	if res := d.Confirm(ctx); !res.Success() {
		t.Fatalf("confirm: %s", res.Message)
	}
	if table.n != 1 {
		t.Errorf("invalidations = %d", table.n)
	}
	if got := fx.customers.Get(ctx, c.Data.ID); got.Status != repository.StatusNotFound {
		t.Errorf("get after delete = %s", got.Status)
	}
}

func TestCustomerFormKeepsStoredLevel(t *testing.T) {
	form := NewCustomerForm(nil)
	form.Load(models.Customer{Name: "Legacy"})
	form.Name = "Renamed"

	if level := form.Fields()["membership_level"]; level != "" {
		t.Errorf("edit wrote membership_level %q", level)
	}

	form.Reset()
	if level := form.Record(uuid.New()).MembershipLevel; level != models.MembershipNew {
		t.Errorf("new customer level = %q", level)
	}
}
