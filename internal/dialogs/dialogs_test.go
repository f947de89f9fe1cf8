package dialogs

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/example/inhalebay/internal/models"
	"github.com/example/inhalebay/internal/repository"
	"github.com/example/inhalebay/internal/testutil"
)

type countingGetter struct {
	calls int
	res   repository.Result[*models.Customer]
}

func (g *countingGetter) Get(context.Context, uuid.UUID) repository.Result[*models.Customer] {
	g.calls++
	return g.res
}

func TestCustomerDialogFetchesOnce(t *testing.T) {
	c := &models.Customer{Name: "Lina"}
	getter := &countingGetter{res: repository.OK(c)}
	d := NewCustomerDialog(getter)

	if v := d.View(); v.Placeholder != LoadingText {
		t.Errorf("before open: %+v", v)
	}

	d.Open(context.Background(), uuid.New())
	if getter.calls != 1 {
		t.Errorf("Get called %d times", getter.calls)
	}
	if v := d.View(); v.Customer != c || v.Placeholder != "" {
		t.Errorf("after open: %+v", v)
	}
}

func TestCustomerDialogKeepsPlaceholderOnFailure(t *testing.T) {
	getter := &countingGetter{res: repository.NotFound[*models.Customer]("Customer not found.")}
	d := NewCustomerDialog(getter)
	d.Open(context.Background(), uuid.New())

	if getter.calls != 1 {
		t.Errorf("Get called %d times", getter.calls)
	}
	if v := d.View(); v.Placeholder != LoadingText || v.Customer != nil {
		t.Errorf("view = %+v", v)
	}
	if d.Result().Status != repository.StatusNotFound {
		t.Errorf("status = %s", d.Result().Status)
	}
}

func TestTransactionDialogScenario(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewTransactionRepository(testutil.OpenDB(t, testutil.NewClock()))
	customer := uuid.New()

	seed := []models.CustomerTransaction{
		{TransactionType: models.TransactionVisit, PointsChanged: 0, CustomerID: customer},
		{TransactionType: models.TransactionVisit, PointsChanged: 5, CustomerID: customer},
		{TransactionType: models.TransactionRedeemReward, PointsChanged: -50, CustomerID: customer},
		{TransactionType: models.TransactionVisit, PointsChanged: 3, CustomerID: uuid.New()},
	}
	for i := range seed {
		if res := repo.Create(ctx, &seed[i]); !res.Success() {
			t.Fatalf("create: %s", res.Message)
		}
	}

	page := repo.List(ctx, 1, 20)
	if !page.Success() {
		t.Fatalf("list: %s", page.Message)
	}

	d := NewTransactionDialog(repo)
	d.Open(ctx, page.Data, seed[1].ID, customer)

	view := d.View()
	if view.Transaction == nil || view.Transaction.ID != seed[1].ID {
		t.Fatalf("main = %+v", view.Transaction)
	}
	if view.Transaction.TransactionDisplay != "Visit" {
		t.Errorf("main label = %q", view.Transaction.TransactionDisplay)
	}

	if len(view.Others) != 2 {
		t.Fatalf("others = %d, want 2", len(view.Others))
	}
	if view.Others[0].ID != seed[2].ID || view.Others[1].ID != seed[0].ID {
		t.Errorf("others order = %d, %d; want %d, %d", view.Others[0].ID, view.Others[1].ID, seed[2].ID, seed[0].ID)
	}
	if view.Others[0].TransactionDisplay != "Redeem Reward" || view.Others[1].TransactionDisplay != "Return" {
		t.Errorf("other labels = %q, %q", view.Others[0].TransactionDisplay, view.Others[1].TransactionDisplay)
	}
}

func TestTransactionDialogMissingFromPage(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewTransactionRepository(testutil.OpenDB(t, testutil.NewClock()))

	d := NewTransactionDialog(repo)
	d.Open(ctx, []models.CustomerTransaction{{ID: 1}}, 99, uuid.New())

	view := d.View()
	if view.Message != NoDetailsText || view.Transaction != nil {
		t.Errorf("view = %+v", view)
	}
	if view.Others == nil || len(view.Others) != 0 {
		t.Errorf("others = %#v", view.Others)
	}
}

func TestTransactionDialogCapsOthers(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewTransactionRepository(testutil.OpenDB(t, testutil.NewClock()))
	customer := uuid.New()
	for i := 0; i < 25; i++ {
		tx := models.CustomerTransaction{TransactionType: models.TransactionVisit, PointsChanged: i, CustomerID: customer}
		if res := repo.Create(ctx, &tx); !res.Success() {
			t.Fatalf("create: %s", res.Message)
		}
	}

	d := NewTransactionDialog(repo)
	d.Open(ctx, nil, 1, customer)
	if got := len(d.Others()); got != repository.OtherTransactionsLimit {
		t.Errorf("others = %d, want %d", got, repository.OtherTransactionsLimit)
	}
	for _, tx := range d.Others() {
		if tx.ID == 1 {
			t.Error("excluded transaction returned")
		}
	}
}
