// Package nats publishes tanod events to a NATS subject. The core only
// sees the EventPublisher port; wiring this adapter is optional.
package nats

import (
	"encoding/json"
	"fmt"

	"github.com/jmirasol/tanod"
	"github.com/nats-io/nats.go"
)

type Publisher struct {
	conn   *nats.Conn
	prefix string
}

var _ tanod.EventPublisher = (*Publisher)(nil)

// New wraps an established NATS connection. An optional prefix namespaces
// the subjects, e.g. prefix "auth" publishes "auth.user.registered".
func New(conn *nats.Conn, prefix string) *Publisher {
	return &Publisher{conn: conn, prefix: prefix}
}

func (p *Publisher) Publish(subject string, payload any) error {
	if p.conn == nil || !p.conn.IsConnected() {
		return nats.ErrConnectionClosed
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode event payload: %w", err)
	}

	if p.prefix != "" {
		subject = p.prefix + "." + subject
	}
	return p.conn.Publish(subject, data)
}
