package mailer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubMailer struct {
	mu    sync.Mutex
	sent  []string
	err   error
	stall time.Duration
}

func (m *stubMailer) Send(ctx context.Context, to, subject, body string) error {
	if m.stall > 0 {
		select {
		case <-time.After(m.stall):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, to)
	return nil
}

func (m *stubMailer) sentTo() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.sent...)
}

func TestDispatcherDeliversQueuedJobs(t *testing.T) {
	mail := &stubMailer{}
	d := NewDispatcher(mail, 2, 8, time.Second, zap.NewNop())

	for _, to := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		assert.True(t, d.Enqueue(Job{To: to, Subject: "hi", Body: "<p>hi</p>"}))
	}
	d.Close()

	assert.ElementsMatch(t, []string{"a@example.com", "b@example.com", "c@example.com"}, mail.sentTo())
}

func TestDispatcherDropsWhenQueueFull(t *testing.T) {
	mail := &stubMailer{stall: 200 * time.Millisecond}
	d := NewDispatcher(mail, 1, 1, time.Second, zap.NewNop())
	defer d.Close()

	accepted := 0
	for i := 0; i < 10; i++ {
		if d.Enqueue(Job{To: "x@example.com"}) {
			accepted++
		}
	}
	assert.Less(t, accepted, 10)
}

func TestDispatcherSurvivesSendFailure(t *testing.T) {
	mail := &stubMailer{err: errors.New("smtp down")}
	d := NewDispatcher(mail, 1, 4, time.Second, zap.NewNop())

	assert.True(t, d.Enqueue(Job{To: "a@example.com"}))
	assert.True(t, d.Enqueue(Job{To: "b@example.com"}))
	d.Close()

	assert.Empty(t, mail.sentTo())
}

func TestDispatcherTimesOutSlowSend(t *testing.T) {
	mail := &stubMailer{stall: time.Second}
	d := NewDispatcher(mail, 1, 4, 20*time.Millisecond, zap.NewNop())

	start := time.Now()
	d.Enqueue(Job{To: "slow@example.com"})
	d.Close()

	assert.Less(t, time.Since(start), 500*time.Millisecond)
	assert.Empty(t, mail.sentTo())
}
