package notifier

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"abohawa-api/internal/domain/entity"
	"abohawa-api/internal/domain/gateway/queue"
	"abohawa-api/internal/observability"
	"abohawa-api/pkg/bus"
)

type fakeSender struct {
	sent []entity.AlertEvent
	err  error
}

func (f *fakeSender) SendMessage(queueName string, body any) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, body.(entity.AlertEvent))
	return nil
}

func (f *fakeSender) SendMessageBatch(queueName string, messages []queue.BatchMessage) (*queue.BatchResult, error) {
	return &queue.BatchResult{}, nil
}

func TestForwardsOnlyWarningAlerts(t *testing.T) {
	sender := &fakeSender{}
	alertBus := bus.New[entity.AlertEvent]()
	notifier := NewQueueNotifier("weather-alerts", sender, observability.NewMetricsForTesting())
	notifier.Attach(alertBus)

	now := time.Now()
	alertBus.Publish(entity.NewAlertEvent("weather.error.refresh-failed", "failed", entity.AlertWarning, now))
	alertBus.Publish(entity.NewAlertEvent("geolocation.error.unresolved", "no fix", entity.AlertError, now))
	alertBus.Publish(entity.NewAlertEvent("app.started", "up", entity.AlertInfo, now))

	assert.Len(t, sender.sent, 1)
	assert.Equal(t, "weather.error.refresh-failed", sender.sent[0].MessageKey)
}

func TestQueueFailureDoesNotPanicThePublisher(t *testing.T) {
	sender := &fakeSender{err: errors.New("queue unreachable")}
	alertBus := bus.New[entity.AlertEvent]()
	notifier := NewQueueNotifier("weather-alerts", sender, observability.NewMetricsForTesting())
	notifier.Attach(alertBus)

	assert.NotPanics(t, func() {
		alertBus.Publish(entity.NewAlertEvent("weather.error.refresh-failed", "failed", entity.AlertWarning, time.Now()))
	})
}

func TestDetachStopsForwarding(t *testing.T) {
	sender := &fakeSender{}
	alertBus := bus.New[entity.AlertEvent]()
	notifier := NewQueueNotifier("weather-alerts", sender, observability.NewMetricsForTesting())
	notifier.Attach(alertBus)
	notifier.Detach(alertBus)

	alertBus.Publish(entity.NewAlertEvent("weather.error.refresh-failed", "failed", entity.AlertWarning, time.Now()))
	assert.Empty(t, sender.sent)
}
