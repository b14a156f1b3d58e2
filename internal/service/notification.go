package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// NotificationType represents the type of notification.
type NotificationType string

const (
	NotificationAssignmentRejected NotificationType = "ASSIGNMENT_REJECTED"
)

const subscriberBuffer = 16

// Notification represents an alert for the presentation layer.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Data      map[string]any   `json:"data,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

// Notifier receives user-visible error notifications from the dispatcher.
type Notifier interface {
	NotifyAssignmentRejected(ctx context.Context, packageName, vehicleName string) error
}

// Ensure NotificationService implements Notifier.
var _ Notifier = (*NotificationService)(nil)

// NotificationService fans notifications out to live subscribers.
// Delivery is best-effort: with no subscriber attached, or a subscriber whose
// buffer is full, the notification is dropped rather than queued.
type NotificationService struct {
	mu          sync.RWMutex
	subscribers map[string]chan Notification
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService() *NotificationService {
	return &NotificationService{
		subscribers: make(map[string]chan Notification),
	}
}

// Subscribe registers a listener. The returned cancel func unregisters it and
// closes the channel.
func (s *NotificationService) Subscribe() (<-chan Notification, func()) {
	id := uuid.New().String()
	ch := make(chan Notification, subscriberBuffer)

	s.mu.Lock()
	s.subscribers[id] = ch
	s.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers, id)
			s.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// SubscriberCount returns the number of attached listeners.
func (s *NotificationService) SubscriberCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subscribers)
}

// NotifyAssignmentRejected publishes the capacity/availability alert.
func (s *NotificationService) NotifyAssignmentRejected(ctx context.Context, packageName, vehicleName string) error {
	notification := Notification{
		ID:      uuid.New().String(),
		Type:    NotificationAssignmentRejected,
		Title:   "Assignment Rejected",
		Message: AssignmentRejectedMessage,
		Data: map[string]any{
			"package": packageName,
			"vehicle": vehicleName,
		},
		CreatedAt: time.Now(),
	}
	return s.send(ctx, notification)
}

// send logs the notification and offers it to every subscriber without blocking.
func (s *NotificationService) send(ctx context.Context, notification Notification) error {
	log.Printf("[NOTIFICATION] Type=%s, Title=%s, Message=%s",
		notification.Type, notification.Title, notification.Message)

	s.mu.RLock()
	defer s.mu.RUnlock()

	for id, ch := range s.subscribers {
		select {
		case ch <- notification:
		default:
			log.Printf("[NOTIFICATION] dropped for subscriber=%s (buffer full)", id)
		}
	}
	return nil
}
