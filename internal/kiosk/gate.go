// Package kiosk locks the client and handler kiosk screens behind the
// numeric code stored for their device class.
package kiosk

import (
	"context"
	"errors"
	"log"
	"regexp"
	"strconv"

	"github.com/example/inhalebay/internal/repository"
)

var (
	ErrUnknownDevice = errors.New("Unknown device.")
	ErrMalformedCode = errors.New("Code must be 4 digits.")
	ErrWrongCode     = errors.New("Invalid code. Please try again.")
)

// LookupError reports that the stored code could not be read.
type LookupError struct {
	Status  repository.Status
	Message string
}

func (e *LookupError) Error() string { return e.Message }

var codePattern = regexp.MustCompile(`^[0-9]{4}$`)

// CodeSource returns the code configured for a device class.
type CodeSource interface {
	CodeFor(ctx context.Context, deviceType string) repository.Result[int]
}

// Notifier hears about unlock attempts.
type Notifier interface {
	KioskUnlocked(device string)
	PINRejected(device string)
}

// Gate checks entered codes and records the outcome in a Session.
type Gate struct {
	codes    CodeSource
	session  *Session
	notifier Notifier
}

func NewGate(codes CodeSource, session *Session, notifier Notifier) *Gate {
	return &Gate{codes: codes, session: session, notifier: notifier}
}

func (g *Gate) Session() *Session { return g.session }

// Login unlocks device when entry equals its stored code.
func (g *Gate) Login(ctx context.Context, device, entry string) error {
	device, ok := canonicalDevice(device)
	if !ok {
		return ErrUnknownDevice
	}
	if !codePattern.MatchString(entry) {
		return ErrMalformedCode
	}

	res := g.codes.CodeFor(ctx, device)
	if !res.Success() {
		return &LookupError{Status: res.Status, Message: res.Message}
	}

	n, _ := strconv.Atoi(entry)
	if n != res.Data {
		log.Printf("[Kiosk] Rejected code for %s device", device)
		if g.notifier != nil {
			g.notifier.PINRejected(device)
		}
		return ErrWrongCode
	}

	g.session.set(device, true)
	log.Printf("[Kiosk] %s device unlocked", device)
	if g.notifier != nil {
		g.notifier.KioskUnlocked(device)
	}
	return nil
}

// Logout locks device again.
func (g *Gate) Logout(device string) error {
	device, ok := canonicalDevice(device)
	if !ok {
		return ErrUnknownDevice
	}
	g.session.set(device, false)
	return nil
}

func (g *Gate) Authenticated(device string) bool {
	return g.session.Authenticated(device)
}
