package smsgateway

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"perfectbank-backend/pkg/id"
)

// Gateway abstracts an outbound SMS provider. Implementations return the
// provider's message id on acceptance.
type Gateway interface {
	Send(ctx context.Context, msisdn, message string) (string, error)
}

var ErrNoDestination = errors.New("smsgateway: no destination number")

// Simulated accepts every message with a valid destination and only logs
// it. It stands in for a real provider until one is integrated.
type Simulated struct{}

func NewSimulated() *Simulated { return &Simulated{} }

func (*Simulated) Send(ctx context.Context, msisdn, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if msisdn == "" {
		return "", ErrNoDestination
	}
	msgID := id.NewID32()
	logrus.WithFields(logrus.Fields{
		"msisdn":     msisdn,
		"message_id": msgID,
		"length":     len(message),
	}).Info("sms accepted by simulated gateway")
	return msgID, nil
}
