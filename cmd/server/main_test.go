package main

import (
	"net"
	"net/http"
	"os"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

type waitRecorder struct {
	waited atomic.Bool
}

func (w *waitRecorder) Wait() { w.waited.Store(true) }

func TestRunDrainsOnSignal(t *testing.T) {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

	addrc := make(chan string, 1)
	app.Hooks().OnListen(func(data fiber.ListenData) error {
		addrc <- net.JoinHostPort(data.Host, data.Port)
		return nil
	})

	stop := make(chan os.Signal, 1)
	notices := &waitRecorder{}
	done := make(chan error, 1)
	go func() { done <- run(app, "127.0.0.1:0", stop, notices) }()

	var addr string
	select {
	case addr = <-addrc:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}

	// wait until the server accepts connections
	client := &http.Client{Timeout: time.Second}
	deadline := time.Now().Add(5 * time.Second)
	for {
		resp, err := client.Get("http://" + addr + "/ping")
		if err == nil {
			resp.Body.Close()
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("server not reachable: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	stop <- syscall.SIGTERM
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(15 * time.Second):
		t.Fatal("run did not return after the signal")
	}
	if !notices.waited.Load() {
		t.Error("pending notifications were not awaited")
	}
}
