// Package publish sends trace documents to an MQTT broker.
package publish

import (
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/posetrace/config"
	"github.com/matt-g-everett/posetrace/trace"
	"go.uber.org/zap"
)

// Client is the part of mqtt.Client the Streamer needs.
type Client interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// Streamer publishes serialized trace documents to a topic.
type Streamer struct {
	client   Client
	topic    string
	qos      byte
	retained bool
	pretty   bool
	timeout  time.Duration
	logger   *zap.Logger
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(cfg config.Mqtt, pretty bool, client Client, logger *zap.Logger) *Streamer {
	s := new(Streamer)
	s.client = client
	s.topic = cfg.Topics.Trace
	s.qos = cfg.QoS
	s.retained = cfg.Retained
	s.pretty = pretty
	s.timeout = 10 * time.Second
	s.logger = logger
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}

// Topic returns the topic documents are published to.
func (s *Streamer) Topic() string {
	return s.topic
}

// Send serializes doc and publishes it, waiting for the broker to accept it.
func (s *Streamer) Send(doc trace.Document) error {
	b, err := doc.Marshal(s.pretty)
	if err != nil {
		return err
	}
	return s.SendRaw(b)
}

// SendRaw publishes an already serialized document.
func (s *Streamer) SendRaw(b []byte) error {
	token := s.client.Publish(s.topic, s.qos, s.retained, b)
	if !token.WaitTimeout(s.timeout) {
		return fmt.Errorf("publish to %s: timed out after %s", s.topic, s.timeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish to %s: %w", s.topic, err)
	}

	s.logger.Debug("published trace", zap.String("topic", s.topic), zap.Int("bytes", len(b)))
	return nil
}
