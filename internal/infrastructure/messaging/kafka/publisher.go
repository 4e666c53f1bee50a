package kafka

import (
	"context"

	"github.com/turtacn/MolCanvas/internal/domain/molecule"
	"github.com/turtacn/MolCanvas/internal/infrastructure/monitoring/logging"
)

const publisherSource = "molcanvas-api"

// EventPublisher adapts the Producer to the molecule.EventPublisher port.
// Events for the same document share a partition key so consumers observe
// them in order.
type EventPublisher struct {
	producer *Producer
	topic    string
	logger   logging.Logger
}

var _ molecule.EventPublisher = (*EventPublisher)(nil)

// NewEventPublisher builds a publisher writing to topic.  An empty topic
// falls back to DefaultTopic.
func NewEventPublisher(producer *Producer, topic string, log logging.Logger) *EventPublisher {
	if topic == "" {
		topic = DefaultTopic
	}
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &EventPublisher{producer: producer, topic: topic, logger: log}
}

// Publish wraps the domain event in an envelope and delivers it.
func (p *EventPublisher) Publish(ctx context.Context, ev molecule.DomainEvent) error {
	env, err := NewEventEnvelope(ev.EventType(), publisherSource, ev)
	if err != nil {
		return err
	}
	msg, err := env.ToMessage(p.topic, eventKey(ev))
	if err != nil {
		return err
	}
	if err := p.producer.Publish(ctx, msg); err != nil {
		return err
	}
	p.logger.Debug("domain event published",
		logging.String("event_type", ev.EventType()),
		logging.String("event_id", env.EventID))
	return nil
}

// eventKey extracts the partition key from the event.  Unknown event shapes
// get a nil key and land on an arbitrary partition.
func eventKey(ev molecule.DomainEvent) []byte {
	switch e := ev.(type) {
	case molecule.DocumentSavedEvent:
		return []byte(e.DocumentID)
	case molecule.DocumentExportedEvent:
		return []byte(e.DocumentID)
	case molecule.DocumentDeletedEvent:
		return []byte(e.DocumentID)
	default:
		return nil
	}
}

//Personal.AI order the ending
