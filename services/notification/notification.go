package notification

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/olahol/melody"
)

// Toast types shown by the dashboard.
const (
	ToastSuccess = "success"
	ToastError   = "error"
	ToastInfo    = "info"
	// ToastRefresh asks open views to reload their data.
	ToastRefresh = "refresh"
)

// SessionKey is the melody session key holding the dashboard session id.
const SessionKey = "sid"

type Toast struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type Service interface {
	// SendMessage broadcasts to every connected dashboard.
	SendMessage(message string) error
	// Notify sends a toast to the sockets of one dashboard session.
	Notify(sessionID string, toast Toast) error
	Broadcast(toast Toast) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

func (s *MelodyService) Notify(sessionID string, toast Toast) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	msg, err := NewMessageBuilder(toast.Type, toast.Message).Build()
	if err != nil {
		return err
	}
	return s.m.BroadcastFilter(msg, func(q *melody.Session) bool {
		sid, ok := q.Get(SessionKey)
		return ok && sid == sessionID
	})
}

func (s *MelodyService) Broadcast(toast Toast) error {
	msg, err := NewMessageBuilder(toast.Type, toast.Message).Build()
	if err != nil {
		return err
	}
	return s.SendMessage(string(msg))
}

// Nop drops every message; used when no websocket hub is running.
type Nop struct{}

func (Nop) SendMessage(string) error   { return nil }
func (Nop) Notify(string, Toast) error { return nil }
func (Nop) Broadcast(Toast) error      { return nil }

type MessageBuilder struct {
	toastType string
	message   string
}

func NewMessageBuilder(toastType, message string) *MessageBuilder {
	return &MessageBuilder{
		toastType: toastType,
		message:   message,
	}
}

func (b *MessageBuilder) Build() ([]byte, error) {
	return json.Marshal(Toast{Type: b.toastType, Message: b.message})
}
