package kiosk

import (
	"log"
	"sync"

	"github.com/example/inhalebay/internal/models"
)

// Devices lists the device classes a kiosk can run as.
var Devices = []string{models.DeviceClient, models.DeviceHandler}

// ValidDevice reports whether device is a known device class.
func ValidDevice(device string) bool {
	_, ok := canonicalDevice(device)
	return ok
}

// canonicalDevice returns the package constant equal to device. Strings taken
// from a request may share buffers the server reuses, so only the constants
// are ever stored.
func canonicalDevice(device string) (string, bool) {
	switch device {
	case models.DeviceClient:
		return models.DeviceClient, true
	case models.DeviceHandler:
		return models.DeviceHandler, true
	}
	return "", false
}

// Session holds which device classes are unlocked. It is the source of truth
// while the process runs; the FlagStore only mirrors it.
type Session struct {
	mu       sync.RWMutex
	unlocked map[string]bool
	store    FlagStore
}

// NewSession rehydrates from store. A nil store keeps the session in memory.
func NewSession(store FlagStore) (*Session, error) {
	s := &Session{unlocked: map[string]bool{}, store: store}
	if store == nil {
		return s, nil
	}
	flags, err := store.Load()
	if err != nil {
		return nil, err
	}
	for _, d := range Devices {
		s.unlocked[d] = flags.get(d)
	}
	return s, nil
}

func (s *Session) Authenticated(device string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unlocked[device]
}

// Status returns the unlock state of every device class.
func (s *Session) Status() map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]bool, len(Devices))
	for _, d := range Devices {
		out[d] = s.unlocked[d]
	}
	return out
}

// set records the state of device and mirrors the whole session to the
// store. The lock is held across the save so the file never ends up with an
// older snapshot than memory.
func (s *Session) set(device string, v bool) {
	device, ok := canonicalDevice(device)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.unlocked[device] = v
	if s.store == nil {
		return
	}
	var flags Flags
	for _, d := range Devices {
		flags.set(d, s.unlocked[d])
	}
	if err := s.store.Save(flags); err != nil {
		log.Printf("[Kiosk] Failed to persist state: %v", err)
	}
}
