package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/example/inhalebay/internal/database"
	"github.com/example/inhalebay/internal/kiosk"
	"github.com/example/inhalebay/internal/testutil"
)

func TestSetAndShowDeviceCode(t *testing.T) {
	ctx := context.Background()
	db := testutil.OpenDB(t, testutil.NewClock())
	if _, err := database.Seed(db, 5751, "Test Bay"); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := setDeviceCode(ctx, db, 5751, "client", "0042", &out); err != nil {
		t.Fatalf("set: %v", err)
	}

	out.Reset()
	if err := showDeviceCodes(ctx, db, kiosk.Devices, &out); err != nil {
		t.Fatalf("show: %v", err)
	}
	if got := out.String(); got != "client: 0042\nhandler: 1234\n" {
		t.Errorf("show output = %q", got)
	}
}

func TestSetDeviceCodeRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	db := testutil.OpenDB(t, testutil.NewClock())
	if _, err := database.Seed(db, 5751, "Test Bay"); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := setDeviceCode(ctx, db, 5751, "printer", "1234", &out); !errors.Is(err, kiosk.ErrUnknownDevice) {
		t.Errorf("unknown device: %v", err)
	}
	if err := setDeviceCode(ctx, db, 5751, "client", "12", &out); !errors.Is(err, kiosk.ErrMalformedCode) {
		t.Errorf("short code: %v", err)
	}
	err := setDeviceCode(ctx, db, 1, "client", "1234", &out)
	if err == nil || !strings.Contains(err.Error(), "No store found") {
		t.Errorf("unknown store: %v", err)
	}
}

func TestHashPasswordCommand(t *testing.T) {
	cmd := hashPasswordCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"secret"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "$2a$") {
		t.Errorf("hash = %q", out.String())
	}
}
