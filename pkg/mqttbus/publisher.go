package mqttbus

import (
	"encoding/json"
	"fmt"
)

// Publisher is the narrow interface the services publish through, so tests
// can capture messages without a broker.
type Publisher interface {
	Publish(topic string, qos byte, retain bool, payload []byte) error
}

// Publish sends a raw payload. Waits for the broker ack at QoS > 0.
func (b *Bus) Publish(topic string, qos byte, retain bool, payload []byte) error {
	token := b.client.Publish(topic, qos, retain, payload)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("publish %s: %w", topic, token.Error())
	}
	return nil
}

// PublishJSON marshals v and publishes it.
func PublishJSON(p Publisher, topic string, qos byte, retain bool, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal for %s: %w", topic, err)
	}
	return p.Publish(topic, qos, retain, payload)
}
