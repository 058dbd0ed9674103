package mail

import (
	"context"
	"fmt"

	"affiliate-server/internal/observability"

	"github.com/resendlabs/resend-go"
)

// ResendClient is the primary delivery channel.
type ResendClient struct {
	client *resend.Client
	logger *observability.Logger
}

func NewResendClient(apiKey string, logger *observability.Logger) (*ResendClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend api key is empty")
	}
	client := resend.NewClient(apiKey)
	if client == nil {
		return nil, fmt.Errorf("failed to create Resend client")
	}

	return &ResendClient{
		client: client,
		logger: logger,
	}, nil
}

func (c *ResendClient) Name() string {
	return "resend"
}

// SendEmail sends one HTML email and returns the provider message id.
func (c *ResendClient) SendEmail(ctx context.Context, from, to, subject, htmlContent string) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_to", Value: to},
		observability.Field{Key: "email_subject", Value: subject},
		observability.Field{Key: "mail_channel", Value: c.Name()},
	)

	res, err := c.client.Emails.Send(&resend.SendEmailRequest{
		From:    from,
		To:      []string{to},
		Subject: subject,
		Html:    htmlContent,
	})
	if err != nil {
		c.logger.InfoWithError(ctx, "failed to send email", err)
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	c.logger.Info(ctx, "email sent successfully")
	return res.Id, nil
}
