package notifiers

import (
	"context"
	"fmt"
	"log/slog"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// PushResult is the explicit outcome of a dispatch attempt. Failures are
// logged by the caller and never propagate past the per-alert boundary.
type PushResult struct {
	OK  bool
	Err error
}

// PushSender delivers a notification to a single device token.
type PushSender interface {
	Send(ctx context.Context, token, title, body string, payload map[string]string) PushResult
}

// FCMSender sends pushes through Firebase Cloud Messaging. A sender built
// without credentials stays disabled and reports every send as failed.
type FCMSender struct {
	client *messaging.Client
}

func NewFCMSender(ctx context.Context, credentialsJSON string) (*FCMSender, error) {
	if credentialsJSON == "" {
		slog.Warn("no firebase credentials configured, push disabled")
		return &FCMSender{}, nil
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsJSON([]byte(credentialsJSON)))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("init messaging client: %w", err)
	}

	return &FCMSender{client: client}, nil
}

func (s *FCMSender) Send(ctx context.Context, token, title, body string, payload map[string]string) PushResult {
	if s.client == nil {
		return PushResult{Err: fmt.Errorf("push sender not initialized")}
	}
	if token == "" {
		return PushResult{Err: fmt.Errorf("empty push token")}
	}

	message := &messaging.Message{
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data:  payload,
		Token: token,
	}

	_, err := s.client.Send(ctx, message)
	if err != nil {
		if messaging.IsUnregistered(err) {
			slog.Debug("push token unregistered", "error", err)
			return PushResult{Err: fmt.Errorf("token unregistered: %w", err)}
		}
		return PushResult{Err: fmt.Errorf("send push: %w", err)}
	}

	return PushResult{OK: true}
}
