// Package kafka publishes molecule domain events to a Kafka bus.
package kafka

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/turtacn/MolCanvas/pkg/errors"
)

// DefaultTopic receives all molecule lifecycle events when no topic is
// configured.
const DefaultTopic = "molcanvas.molecules"

// Event types carried on the molecule topic.
const (
	EventMoleculeSaved    = "molecule.saved"
	EventMoleculeExported = "molecule.exported"
	EventMoleculeDeleted  = "molecule.deleted"
)

// Message is the transport-level message handed to the Producer.
type Message struct {
	Topic     string
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Timestamp time.Time
}

// EventEnvelope is the wire format shared by all published events.
type EventEnvelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	Source        string          `json:"source"`
	Timestamp     time.Time       `json:"timestamp"`
	SchemaVersion string          `json:"schema_version"`
	Payload       json.RawMessage `json:"payload"`
}

// NewEventEnvelope wraps payload in a versioned envelope.
func NewEventEnvelope(eventType, source string, payload interface{}) (*EventEnvelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSerialization, "failed to marshal event payload")
	}
	return &EventEnvelope{
		EventID:       uuid.New().String(),
		EventType:     eventType,
		Source:        source,
		Timestamp:     time.Now().UTC(),
		SchemaVersion: "v1",
		Payload:       data,
	}, nil
}

// DecodePayload unmarshals the envelope payload into target.
func (e *EventEnvelope) DecodePayload(target interface{}) error {
	if len(e.Payload) == 0 || string(e.Payload) == "null" {
		return errors.New(errors.ErrCodeValidation, "event envelope has no payload")
	}
	return json.Unmarshal(e.Payload, target)
}

// ToMessage serializes the envelope into a producible message.  key selects
// the partition; events for the same document should share a key so they
// stay ordered.
func (e *EventEnvelope) ToMessage(topic string, key []byte) (*Message, error) {
	val, err := json.Marshal(e)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSerialization, "failed to marshal event envelope")
	}
	return &Message{
		Topic: topic,
		Key:   key,
		Value: val,
		Headers: map[string]string{
			"event_type":     e.EventType,
			"source_service": e.Source,
			"schema_version": e.SchemaVersion,
		},
		Timestamp: e.Timestamp,
	}, nil
}

// ParseEventEnvelope decodes a raw message value back into an envelope.
func ParseEventEnvelope(value []byte) (*EventEnvelope, error) {
	if len(value) == 0 {
		return nil, errors.New(errors.ErrCodeValidation, "empty message value")
	}
	var env EventEnvelope
	if err := json.Unmarshal(value, &env); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSerialization, "failed to unmarshal event envelope")
	}
	return &env, nil
}

//Personal.AI order the ending
