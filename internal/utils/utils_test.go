package utils

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/example/inhalebay/internal/repository"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("secret", "admin", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	name, err := ParseToken("secret", token)
	if err != nil || name != "admin" {
		t.Fatalf("ParseToken = %q, %v", name, err)
	}
	if _, err := ParseToken("other", token); err == nil {
		t.Error("token accepted with wrong secret")
	}

	expired, _ := GenerateToken("secret", "admin", -time.Minute)
	if _, err := ParseToken("secret", expired); err == nil {
		t.Error("expired token accepted")
	}
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatal(err)
	}
	if !CheckPassword(hash, "hunter2") || CheckPassword(hash, "hunter3") {
		t.Error("CheckPassword mismatch")
	}
	if CheckPassword("", "") {
		t.Error("empty hash matched")
	}
	if _, err := HashPassword("abc"); !errors.Is(err, ErrPasswordTooShort) {
		t.Errorf("short password: %v", err)
	}
}

func TestParseListParams(t *testing.T) {
	app := fiber.New()
	var got ListParams
	app.Get("/", func(c *fiber.Ctx) error {
		got = ParseListParams(c, 20)
		return c.SendStatus(fiber.StatusNoContent)
	})

	req := httptest.NewRequest("GET", "/?page=3&limit=0&sort=points:desc,name&filter=name:ann&filter=transaction_display:Redeem%20Reward&filter=bad&hide=avatar_name,%20created_at&select=1,2", nil)
	if _, err := app.Test(req); err != nil {
		t.Fatal(err)
	}

	if got.Page != 3 || got.Limit != 20 {
		t.Errorf("pagination = %+v", got.Pagination)
	}
	if len(got.Sort) != 2 || got.Sort[0].Key != "points" || !got.Sort[0].Desc || got.Sort[1].Key != "name" || got.Sort[1].Desc {
		t.Errorf("sort = %+v", got.Sort)
	}
	if len(got.Filters) != 2 || got.Filters["name"] != "ann" || got.Filters["transaction_display"] != "Redeem Reward" {
		t.Errorf("filters = %v", got.Filters)
	}
	if len(got.Hide) != 2 || got.Hide[1] != "created_at" {
		t.Errorf("hide = %v", got.Hide)
	}
	if len(got.Select) != 2 {
		t.Errorf("select = %v", got.Select)
	}
}

func TestParsePaginationDefaults(t *testing.T) {
	app := fiber.New()
	var got Pagination
	app.Get("/", func(c *fiber.Ctx) error {
		got = ParsePagination(c, 0)
		return nil
	})
	if _, err := app.Test(httptest.NewRequest("GET", "/?page=-2", nil)); err != nil {
		t.Fatal(err)
	}
	if got.Page != 1 || got.Limit != 20 {
		t.Errorf("pagination = %+v", got)
	}
}

func TestParsePaginationBounds(t *testing.T) {
	app := fiber.New()
	var got Pagination
	app.Get("/", func(c *fiber.Ctx) error {
		got = ParsePagination(c, 20)
		return nil
	})

	tests := []struct {
		query     string
		wantPage  int
		wantLimit int
	}{
		{"limit=1099511627776", 1, repository.MaxPageSize},
		{"limit=100", 1, 100},
		{"limit=101", 1, repository.MaxPageSize},
		{"page=9223372036854775807&limit=50", repository.MaxPage, 50},
		{"page=99999999999999999999999", 1, 20},
	}
	for _, tt := range tests {
		if _, err := app.Test(httptest.NewRequest("GET", "/?"+tt.query, nil)); err != nil {
			t.Fatal(err)
		}
		if got.Page != tt.wantPage || got.Limit != tt.wantLimit {
			t.Errorf("%s: pagination = %+v", tt.query, got)
		}
	}
}
