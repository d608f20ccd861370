package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/paimonbot/paimonbot/internal/service"
)

// WebhookNotifier delivers scheduled replies to the bot frontend by POSTing
// them to a configured webhook.
type WebhookNotifier struct {
	client *http.Client
	url    string
}

// NewWebhookNotifier creates a webhook-backed Notifier.
func NewWebhookNotifier(client *http.Client, url string) *WebhookNotifier {
	if client == nil {
		client = http.DefaultClient
	}
	return &WebhookNotifier{client: client, url: url}
}

// notification is the webhook payload.
type notification struct {
	UserID string         `json:"user_id"`
	Reply  *service.Reply `json:"reply"`
}

// Notify posts the reply. Any non-2xx response is an error so the caller
// can log the failed delivery.
func (n *WebhookNotifier) Notify(ctx context.Context, userID string, reply *service.Reply) error {
	payload, err := json.Marshal(notification{UserID: userID, Reply: reply})
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("deliver notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("deliver notification: unexpected status %d", resp.StatusCode)
	}
	return nil
}
