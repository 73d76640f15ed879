// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package nats contains a NATS fault report publisher.
package nats

import (
	"context"
	"encoding/json"

	"github.com/absmach/errcheck/pkg/messaging"
	broker "github.com/nats-io/nats.go"
)

const maxReconnects = -1

var _ messaging.Publisher = (*publisher)(nil)

type publisher struct {
	conn *broker.Conn
}

// NewPublisher returns a new NATS fault report publisher.
func NewPublisher(url string) (messaging.Publisher, error) {
	conn, err := broker.Connect(url, broker.MaxReconnects(maxReconnects))
	if err != nil {
		return nil, err
	}

	ret := &publisher{
		conn: conn,
	}
	return ret, nil
}

func (pub *publisher) Publish(ctx context.Context, topic string, rep messaging.Report) error {
	if topic == "" {
		return messaging.ErrEmptyTopic
	}

	payload, err := json.Marshal(rep)
	if err != nil {
		return err
	}

	return pub.conn.Publish(topic, payload)
}

func (pub *publisher) Close() error {
	pub.conn.Close()
	return nil
}
