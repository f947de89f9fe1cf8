package kiosk

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/example/inhalebay/internal/models"
)

// Flags is the persisted unlock state of each device class. It only seeds a
// Session at startup.
type Flags struct {
	ClientLockCode  bool `yaml:"client_lock_code"`
	HandlerLockCode bool `yaml:"handler_lock_code"`
}

func (f Flags) get(device string) bool {
	switch device {
	case models.DeviceClient:
		return f.ClientLockCode
	case models.DeviceHandler:
		return f.HandlerLockCode
	}
	return false
}

func (f *Flags) set(device string, v bool) {
	switch device {
	case models.DeviceClient:
		f.ClientLockCode = v
	case models.DeviceHandler:
		f.HandlerLockCode = v
	}
}

// FlagStore persists Flags.
type FlagStore interface {
	Load() (Flags, error)
	Save(Flags) error
}

// FlagFile keeps Flags in a YAML file.
type FlagFile struct {
	mu   sync.Mutex
	path string
}

func NewFlagFile(path string) *FlagFile {
	return &FlagFile{path: path}
}

// Load reads the file. A missing file yields all devices locked.
func (f *FlagFile) Load() (Flags, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var flags Flags
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return flags, nil
	}
	if err != nil {
		return flags, fmt.Errorf("read kiosk state: %w", err)
	}
	if err := yaml.Unmarshal(data, &flags); err != nil {
		return Flags{}, fmt.Errorf("parse kiosk state: %w", err)
	}
	return flags, nil
}

// Save replaces the file atomically.
func (f *FlagFile) Save(flags Flags) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := yaml.Marshal(flags)
	if err != nil {
		return fmt.Errorf("encode kiosk state: %w", err)
	}
	if dir := filepath.Dir(f.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create kiosk state dir: %w", err)
		}
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write kiosk state: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("write kiosk state: %w", err)
	}
	return nil
}
