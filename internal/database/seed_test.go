package database_test

import (
	"testing"

	"github.com/example/inhalebay/internal/database"
	"github.com/example/inhalebay/internal/models"
	"github.com/example/inhalebay/internal/testutil"
)

func TestSeedIsIdempotent(t *testing.T) {
	conn := testutil.OpenDB(t, nil)

	first, err := database.Seed(conn, 5751, "Inhale Bay")
	if err != nil {
		t.Fatal(err)
	}
	second, err := database.Seed(conn, 5751, "Inhale Bay")
	if err != nil {
		t.Fatal(err)
	}
	if first.ID != second.ID {
		t.Errorf("store recreated: %s != %s", first.ID, second.ID)
	}

	var codes, tiers int64
	conn.Model(&models.StoreDeviceCode{}).Count(&codes)
	conn.Model(&models.MemberTier{}).Count(&tiers)
	if codes != 2 || tiers != 4 {
		t.Errorf("codes = %d, tiers = %d", codes, tiers)
	}
}
