// Package testutil provides an in-memory database and a controllable clock
// for package tests.
package testutil

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/inhalebay/internal/database"
)

var dbCounter atomic.Int64

// Clock is a manual clock. Every call to Now advances it by Step so rows
// created in sequence get distinct timestamps.
type Clock struct {
	mu   sync.Mutex
	now  time.Time
	Step time.Duration
}

// NewClock starts a clock at a fixed instant.
func NewClock() *Clock {
	return &Clock{
		now:  time.Date(2025, time.January, 15, 9, 0, 0, 0, time.UTC),
		Step: time.Second,
	}
}

// Now returns the current instant and advances the clock.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.Step)
	return t
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// OpenDB returns a migrated in-memory SQLite database private to the test.
func OpenDB(t *testing.T, clock *Clock) *gorm.DB {
	t.Helper()

	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
	if clock != nil {
		cfg.NowFunc = clock.Now
	}

	dsn := fmt.Sprintf("file:inhalebay_test_%d?mode=memory&cache=shared", dbCounter.Add(1))
	conn, err := gorm.Open(sqlite.Open(dsn), cfg)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return conn
}
