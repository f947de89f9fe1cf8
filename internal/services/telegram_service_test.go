package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

func TestKioskNotifications(t *testing.T) {
	var (
		mu       sync.Mutex
		messages []telegramMessage
		paths    []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var msg telegramMessage
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		mu.Lock()
		messages = append(messages, msg)
		paths = append(paths, r.URL.Path)
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	svc := NewTelegramService("token123", "42", "Test Bay")
	svc.SetAPIBase(srv.URL)

	svc.KioskUnlocked("client")
	svc.PINRejected("handler")
	svc.Wait()

	if len(messages) != 2 {
		t.Fatalf("got %d messages, want 2", len(messages))
	}
	for i, msg := range messages {
		if msg.ChatID != "42" || msg.ParseMode != "HTML" {
			t.Errorf("message %d = %+v", i, msg)
		}
		if paths[i] != "/bottoken123/sendMessage" {
			t.Errorf("path %d = %s", i, paths[i])
		}
		if !strings.Contains(msg.Text, "Test Bay") {
			t.Errorf("message %d missing store name: %s", i, msg.Text)
		}
	}
}

func TestSendMessageReportsStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	svc := NewTelegramService("token", "1", "Bay")
	svc.SetAPIBase(srv.URL)
	if err := svc.SendToAdmin("hello"); err == nil {
		t.Error("expected error for 403")
	}
}

func TestUnconfiguredServiceIsSilent(t *testing.T) {
	svc := NewTelegramService("", "", "Bay")
	if err := svc.SendToAdmin("hello"); err != nil {
		t.Errorf("SendToAdmin = %v", err)
	}
	svc.KioskUnlocked("client")
	svc.Wait()
}
