// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package mqtt contains an MQTT fault report publisher.
package mqtt

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/absmach/errcheck/pkg/messaging"
	mqtt "github.com/eclipse/paho.mqtt.golang"
)

var errPublishTimeout = errors.New("failed to publish due to timeout reached")

var _ messaging.Publisher = (*publisher)(nil)

type publisher struct {
	client  mqtt.Client
	timeout time.Duration
}

const (
	qosKey      = ctxKey("qos")
	publisherID = "errcheck-fault-publisher"
)

type ctxKey string

// NewPublisher returns a new MQTT fault report publisher.
func NewPublisher(address, username, password string, timeout time.Duration) (messaging.Publisher, error) {
	client, err := newClient(address, username, password, publisherID, timeout)
	if err != nil {
		return nil, err
	}

	ret := publisher{
		client:  client,
		timeout: timeout,
	}
	return ret, nil
}

func (pub publisher) Publish(ctx context.Context, topic string, rep messaging.Report) error {
	if topic == "" {
		return messaging.ErrEmptyTopic
	}

	payload, err := json.Marshal(rep)
	if err != nil {
		return err
	}

	token := pub.client.Publish(topic, qos(ctx), false, payload)
	if token.Error() != nil {
		return token.Error()
	}

	if ok := token.WaitTimeout(pub.timeout); !ok {
		return errPublishTimeout
	}

	return token.Error()
}

func (pub publisher) Close() error {
	pub.client.Disconnect(uint(pub.timeout.Milliseconds()))
	return nil
}

// WithQoS overrides the default QoS of 1 for publishes made with the
// returned context.
func WithQoS(ctx context.Context, qos byte) context.Context {
	return context.WithValue(ctx, qosKey, qos)
}

// Return QoS defaulting to 1 for compatibility reasons.
func qos(ctx context.Context) byte {
	val := ctx.Value(qosKey)
	if val != nil {
		if ret, ok := val.(byte); ok {
			return ret
		}
	}
	return 1
}

func newClient(address, username, password, id string, timeout time.Duration) (mqtt.Client, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(address).
		SetUsername(username).
		SetPassword(password).
		SetClientID(id).
		SetCleanSession(true)
	client := mqtt.NewClient(opts)
	token := client.Connect()
	if token.Error() != nil {
		return nil, token.Error()
	}

	if ok := token.WaitTimeout(timeout); !ok {
		return nil, messaging.ErrConnect
	}

	return client, token.Error()
}
