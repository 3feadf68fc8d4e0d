package mqttbus

import (
	"encoding/json"
	"errors"
	"testing"
)

type capturePublisher struct {
	topic   string
	qos     byte
	retain  bool
	payload []byte
	err     error
}

func (c *capturePublisher) Publish(topic string, qos byte, retain bool, payload []byte) error {
	c.topic, c.qos, c.retain, c.payload = topic, qos, retain, payload
	return c.err
}

func TestPublishJSON(t *testing.T) {
	t.Parallel()
	p := &capturePublisher{}

	msg := map[string]any{"status": "alive", "seq": 7}
	if err := PublishJSON(p, "sunheat/status/heartbeat", 1, true, msg); err != nil {
		t.Fatalf("PublishJSON: %v", err)
	}
	if p.topic != "sunheat/status/heartbeat" || p.qos != 1 || !p.retain {
		t.Fatalf("publish args: topic=%q qos=%d retain=%v", p.topic, p.qos, p.retain)
	}

	var got map[string]any
	if err := json.Unmarshal(p.payload, &got); err != nil {
		t.Fatalf("payload not JSON: %v", err)
	}
	if got["status"] != "alive" {
		t.Fatalf("payload = %v", got)
	}
}

func TestPublishJSON_UnmarshalableValue(t *testing.T) {
	t.Parallel()
	p := &capturePublisher{}

	if err := PublishJSON(p, "t", 0, false, func() {}); err == nil {
		t.Fatalf("expected marshal error")
	}
	if p.payload != nil {
		t.Fatalf("nothing must be published on marshal failure")
	}
}

func TestPublishJSON_PropagatesPublishError(t *testing.T) {
	t.Parallel()
	p := &capturePublisher{err: errors.New("broker gone")}

	if err := PublishJSON(p, "t", 1, false, map[string]int{"a": 1}); err == nil {
		t.Fatalf("expected publish error")
	}
}
