package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"affiliate-server/internal/observability"
)

const relayTimeout = 30 * time.Second

// RelayClient is the secondary delivery channel: a plain HTTP mail relay that accepts a JSON
// message and answers with the id it assigned.
type RelayClient struct {
	url        string
	token      string
	httpClient *http.Client
	logger     *observability.Logger
}

type relayRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type relayResponse struct {
	ID string `json:"id"`
}

func NewRelayClient(url, token string, logger *observability.Logger) (*RelayClient, error) {
	if url == "" {
		return nil, fmt.Errorf("mail relay url is empty")
	}
	return &RelayClient{
		url:   url,
		token: token,
		httpClient: &http.Client{
			Timeout: relayTimeout,
		},
		logger: logger,
	}, nil
}

func (c *RelayClient) Name() string {
	return "relay"
}

// SendEmail posts the message to the relay. Any non-2xx answer is an error.
func (c *RelayClient) SendEmail(ctx context.Context, from, to, subject, htmlContent string) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_to", Value: to},
		observability.Field{Key: "email_subject", Value: subject},
		observability.Field{Key: "mail_channel", Value: c.Name()},
	)

	body, err := json.Marshal(relayRequest{From: from, To: []string{to}, Subject: subject, HTML: htmlContent})
	if err != nil {
		return "", fmt.Errorf("failed to marshal relay request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.InfoWithError(ctx, "mail relay request failed", err)
		return "", fmt.Errorf("mail relay request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := fmt.Errorf("mail relay returned status %d: %s", resp.StatusCode, string(respBody))
		c.logger.InfoWithError(ctx, "mail relay rejected message", err)
		return "", err
	}

	var parsed relayResponse
	if len(respBody) > 0 {
		// relays that answer with an empty body are accepted
		_ = json.Unmarshal(respBody, &parsed)
	}

	c.logger.Info(ctx, "email relayed successfully")
	return parsed.ID, nil
}
