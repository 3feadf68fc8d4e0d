// Package mqttbus wraps the paho MQTT client with the connection policy the
// controller and watchdog share: initial connect with exponential backoff,
// automatic reconnect with a capped interval, and resubscription of every
// registered topic on each successful reconnect (broker-side subscriptions
// are not assumed to survive a reconnect).
package mqttbus

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/DonHugo/sun-heat-and-ftx-sub001/internal/logger"
)

type Config struct {
	Host                 string        `mapstructure:"host"`
	Port                 int           `mapstructure:"port"`
	User                 string        `mapstructure:"user"`
	Password             string        `mapstructure:"password"`
	ClientID             string        `mapstructure:"client_id"`
	ConnectRetries       uint64        `mapstructure:"connect_retries"`
	MaxReconnectInterval time.Duration `mapstructure:"max_reconnect_interval"`
}

type subscription struct {
	qos     byte
	handler mqtt.MessageHandler
}

// Bus is a shared MQTT connection with a resubscribe registry.
type Bus struct {
	client mqtt.Client
	log    *logger.Logger

	mu   sync.Mutex
	subs map[string]subscription
}

// Connect dials the broker, retrying with exponential backoff, and returns
// a Bus that keeps itself connected until ctx is cancelled or Close is
// called.
func Connect(ctx context.Context, cfg Config, log *logger.Logger) (*Bus, error) {
	if cfg.MaxReconnectInterval <= 0 {
		cfg.MaxReconnectInterval = 2 * time.Minute
	}
	if cfg.ConnectRetries == 0 {
		cfg.ConnectRetries = 5
	}

	b := &Bus{log: log, subs: make(map[string]subscription)}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(fmt.Sprintf("tcp://%s:%d", cfg.Host, cfg.Port))
	opts.SetUsername(cfg.User)
	opts.SetPassword(cfg.Password)
	opts.SetClientID(cfg.ClientID)
	opts.SetCleanSession(true)
	opts.SetAutoReconnect(true)
	opts.SetMaxReconnectInterval(cfg.MaxReconnectInterval)
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		log.Warnw("mqtt connection lost", "err", err)
	})
	opts.SetOnConnectHandler(func(c mqtt.Client) {
		b.resubscribe(c)
	})

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxElapsedTime = 30 * time.Second

	var client mqtt.Client
	err := backoff.Retry(func() error {
		client = mqtt.NewClient(opts)
		if token := client.Connect(); token.Wait() && token.Error() != nil {
			log.Warnw("mqtt connect attempt failed", "broker", cfg.Host, "err", token.Error())
			return token.Error()
		}
		return nil
	}, backoff.WithContext(backoff.WithMaxRetries(bo, cfg.ConnectRetries-1), ctx))
	if err != nil {
		return nil, fmt.Errorf("mqtt connect after retries: %w", err)
	}

	b.client = client
	log.Infow("connected to mqtt broker", "host", cfg.Host, "port", cfg.Port, "client_id", cfg.ClientID)

	go func() {
		<-ctx.Done()
		b.Close()
	}()
	return b, nil
}

// Subscribe registers the handler and subscribes now. The registration
// survives reconnects: the on-connect hook replays it.
func (b *Bus) Subscribe(topic string, qos byte, handler mqtt.MessageHandler) error {
	b.mu.Lock()
	b.subs[topic] = subscription{qos: qos, handler: handler}
	b.mu.Unlock()

	token := b.client.Subscribe(topic, qos, handler)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("subscribe %s: %w", topic, token.Error())
	}
	b.log.Infow("subscribed", "topic", topic, "qos", qos)
	return nil
}

func (b *Bus) resubscribe(c mqtt.Client) {
	b.mu.Lock()
	subs := make(map[string]subscription, len(b.subs))
	for t, s := range b.subs {
		subs[t] = s
	}
	b.mu.Unlock()

	for topic, sub := range subs {
		if token := c.Subscribe(topic, sub.qos, sub.handler); token.Wait() && token.Error() != nil {
			b.log.Errorw("resubscribe failed", "topic", topic, "err", token.Error())
		} else {
			b.log.Infow("resubscribed", "topic", topic)
		}
	}
}

// Connected reports whether the underlying client currently has an open
// connection.
func (b *Bus) Connected() bool {
	return b.client != nil && b.client.IsConnectionOpen()
}

// Close disconnects, allowing a short drain for in-flight messages.
func (b *Bus) Close() {
	if b.client != nil && b.client.IsConnected() {
		b.client.Disconnect(250)
		b.log.Infow("mqtt connection closed")
	}
}
