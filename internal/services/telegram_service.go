package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"
)

const defaultTelegramAPI = "https://api.telegram.org"

// TelegramService handles sending notifications to Telegram.
type TelegramService struct {
	botToken    string
	adminChatID string
	storeName   string
	apiBase     string
	client      *http.Client
	now         func() time.Time
	wg          sync.WaitGroup
}

// NewTelegramService creates a new TelegramService.
func NewTelegramService(botToken, adminChatID, storeName string) *TelegramService {
	return &TelegramService{
		botToken:    botToken,
		adminChatID: adminChatID,
		storeName:   storeName,
		apiBase:     defaultTelegramAPI,
		client:      &http.Client{Timeout: 10 * time.Second},
		now:         time.Now,
	}
}

// SetAPIBase points the service at another Bot API host.
func (s *TelegramService) SetAPIBase(base string) {
	s.apiBase = strings.TrimRight(base, "/")
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SendMessage sends a message to specified chat.
func (s *TelegramService) SendMessage(chatID, text string) error {
	if s.botToken == "" {
		log.Println("[Telegram] Bot token not configured")
		return nil
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.apiBase, s.botToken)

	body, err := json.Marshal(telegramMessage{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		return err
	}

	resp, err := s.client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("[Telegram] Failed to send message: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[Telegram] Unexpected status: %d", resp.StatusCode)
		return fmt.Errorf("telegram returned status %d", resp.StatusCode)
	}

	return nil
}

// SendToAdmin sends a message to the admin chat.
func (s *TelegramService) SendToAdmin(text string) error {
	if s.adminChatID == "" {
		log.Println("[Telegram] Admin chat ID not configured")
		return nil
	}
	return s.SendMessage(s.adminChatID, text)
}

// KioskUnlocked reports a successful kiosk code entry. Delivery happens in
// the background.
func (s *TelegramService) KioskUnlocked(device string) {
	s.notify(fmt.Sprintf("<b>🔓 Kiosk unlocked</b>\n<b>Store:</b> %s\n<b>Device:</b> %s\n<b>Time:</b> %s",
		s.storeName, device, s.now().Format(time.DateTime)))
}

// PINRejected reports a wrong kiosk code entry.
func (s *TelegramService) PINRejected(device string) {
	s.notify(fmt.Sprintf("<b>⚠️ Wrong kiosk code</b>\n<b>Store:</b> %s\n<b>Device:</b> %s\n<b>Time:</b> %s",
		s.storeName, device, s.now().Format(time.DateTime)))
}

func (s *TelegramService) notify(text string) {
	if s.botToken == "" || s.adminChatID == "" {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.SendToAdmin(text); err != nil {
			log.Printf("[Telegram] Kiosk notification failed: %v", err)
		}
	}()
}

// Wait blocks until pending notifications are delivered.
func (s *TelegramService) Wait() {
	s.wg.Wait()
}
