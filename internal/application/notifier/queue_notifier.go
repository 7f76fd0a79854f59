package notifier

import (
	"abohawa-api/internal/domain/entity"
	"abohawa-api/internal/domain/gateway/queue"
	"abohawa-api/internal/observability"
	"abohawa-api/pkg/bus"
	"abohawa-api/pkg/log"
)

// QueueNotifier forwards warning-class alert events from the bus to the
// notification queue. Forwarding is best effort: a queue failure is logged
// and never propagates back into the publishing cycle.
type QueueNotifier struct {
	queueName    string
	queueSender  queue.Sender
	metrics      *observability.Metrics
	subscription *bus.Subscription[entity.AlertEvent]
}

func NewQueueNotifier(queueName string, queueSender queue.Sender, metrics *observability.Metrics) *QueueNotifier {
	return &QueueNotifier{
		queueName:   queueName,
		queueSender: queueSender,
		metrics:     metrics,
	}
}

// Attach subscribes the notifier to the alert bus.
func (n *QueueNotifier) Attach(alertBus *bus.Bus[entity.AlertEvent]) {
	n.subscription = alertBus.Subscribe(n.forward)
}

// Detach removes the notifier's subscription.
func (n *QueueNotifier) Detach(alertBus *bus.Bus[entity.AlertEvent]) {
	if n.subscription != nil {
		alertBus.Unsubscribe(n.subscription)
		n.subscription = nil
	}
}

func (n *QueueNotifier) forward(event entity.AlertEvent) {
	if event.Kind != entity.AlertWarning {
		return
	}

	if err := n.queueSender.SendMessage(n.queueName, event); err != nil {
		log.Warnf("Failed to forward alert %s to queue %s: %v", event.MessageKey, n.queueName, err)
		return
	}

	n.metrics.AlertsForwarded.Inc()
	log.Infof("Alert %s forwarded to queue %s", event.MessageKey, n.queueName)
}
