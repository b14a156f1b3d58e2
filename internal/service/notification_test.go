package service

import (
	"context"
	"testing"
	"time"
)

func TestNotificationService_DropsWithoutSubscribers(t *testing.T) {
	t.Parallel()

	s := NewNotificationService()
	if err := s.NotifyAssignmentRejected(context.Background(), "PKG1", "Vehicle01"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A listener attached afterwards must not see the earlier alert.
	ch, cancel := s.Subscribe()
	defer cancel()

	select {
	case n := <-ch:
		t.Errorf("expected no queued notification, got %+v", n)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestNotificationService_DeliversToSubscribers(t *testing.T) {
	t.Parallel()

	s := NewNotificationService()
	first, cancelFirst := s.Subscribe()
	second, cancelSecond := s.Subscribe()
	defer cancelFirst()
	defer cancelSecond()

	_ = s.NotifyAssignmentRejected(context.Background(), "PKG1", "Vehicle01")

	for i, ch := range []<-chan Notification{first, second} {
		select {
		case n := <-ch:
			if n.Type != NotificationAssignmentRejected {
				t.Errorf("subscriber %d: type = %s", i, n.Type)
			}
			if n.Message != AssignmentRejectedMessage {
				t.Errorf("subscriber %d: message = %q", i, n.Message)
			}
			if n.ID == "" {
				t.Errorf("subscriber %d: missing id", i)
			}
		case <-time.After(time.Second):
			t.Fatalf("subscriber %d: notification not delivered", i)
		}
	}
}

func TestNotificationService_FullBufferDoesNotBlock(t *testing.T) {
	t.Parallel()

	s := NewNotificationService()
	_, cancel := s.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberBuffer*3; i++ {
			_ = s.NotifyAssignmentRejected(context.Background(), "PKG1", "Vehicle01")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("notify blocked on a full subscriber")
	}
}

func TestNotificationService_CancelUnsubscribes(t *testing.T) {
	t.Parallel()

	s := NewNotificationService()
	ch, cancel := s.Subscribe()
	if s.SubscriberCount() != 1 {
		t.Fatalf("expected 1 subscriber, got %d", s.SubscriberCount())
	}

	cancel()
	cancel()

	if s.SubscriberCount() != 0 {
		t.Errorf("expected 0 subscribers, got %d", s.SubscriberCount())
	}
	if _, open := <-ch; open {
		t.Error("channel should be closed after cancel")
	}
}
