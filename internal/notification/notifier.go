package notification

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"affiliate-server/internal/observability"
	"affiliate-server/internal/store"

	"github.com/shopspring/decimal"
)

// MessageSender is satisfied by Dispatcher.
type MessageSender interface {
	Send(ctx context.Context, msg Message) (Outcome, error)
}

// Notifier composes the affiliate program emails and fans them out to the affiliate and the
// configured admins.
type Notifier struct {
	sender         MessageSender
	admins         []string
	commissionRate decimal.Decimal
	logger         *observability.Logger
}

func NewNotifier(sender MessageSender, admins []string, commissionRate decimal.Decimal, logger *observability.Logger) *Notifier {
	return &Notifier{sender: sender, admins: admins, commissionRate: commissionRate, logger: logger}
}

// ConversionDetails is what the conversion emails show.
type ConversionDetails struct {
	Conversion store.Conversion
	// Affiliate is nil when the profile could not be loaded; only admins are notified then.
	Affiliate *store.Affiliate
}

// NotifyRegistration sends the welcome email and the admin announcement.
func (n *Notifier) NotifyRegistration(ctx context.Context, affiliate store.Affiliate, links []store.ReferralLink) error {
	welcome, err := render(templateAffiliateWelcome, map[string]interface{}{
		"Name":              affiliate.Name,
		"Links":             links,
		"CommissionPercent": n.commissionRate.Shift(2).String(),
	})
	if err != nil {
		return err
	}
	announcement, err := render(templateAdminNewAffiliate, map[string]interface{}{
		"Name":    affiliate.Name,
		"Email":   affiliate.Email,
		"Website": deref(affiliate.Website),
	})
	if err != nil {
		return err
	}

	key := "registration:" + affiliate.UserID.String()
	msgs := []Message{{
		Recipient:      affiliate.Email,
		Subject:        "Welcome to the affiliate program",
		HTML:           welcome,
		IdempotencyKey: key,
	}}
	msgs = append(msgs, n.adminMessages("New affiliate: "+affiliate.Name, announcement, key)...)
	return n.sendAll(ctx, msgs)
}

// NotifyConversion tells the affiliate about the commission and the admins about the sale.
func (n *Notifier) NotifyConversion(ctx context.Context, details ConversionDetails) error {
	c := details.Conversion
	data := map[string]interface{}{
		"RefCode":    c.RefCode,
		"Package":    c.PackageName,
		"BookingID":  c.BookingID,
		"Purchase":   c.PurchaseAmount.StringFixed(2),
		"Commission": c.CommissionAmount.StringFixed(2),
		"Currency":   c.Currency,
		"Name":       "unknown affiliate",
		"Email":      "",
	}
	if details.Affiliate != nil {
		data["Name"] = details.Affiliate.Name
		data["Email"] = details.Affiliate.Email
	}

	key := "conversion:" + c.ID.String()
	var msgs []Message
	if details.Affiliate != nil {
		html, err := render(templateAffiliateConversion, data)
		if err != nil {
			return err
		}
		msgs = append(msgs, Message{
			Recipient:      details.Affiliate.Email,
			Subject:        fmt.Sprintf("You earned %s %s", c.CommissionAmount.StringFixed(2), c.Currency),
			HTML:           html,
			IdempotencyKey: key,
		})
	}

	html, err := render(templateAdminConversion, data)
	if err != nil {
		return err
	}
	msgs = append(msgs, n.adminMessages("New affiliate conversion: "+c.RefCode, html, key)...)
	return n.sendAll(ctx, msgs)
}

func (n *Notifier) adminMessages(subject, html, key string) []Message {
	msgs := make([]Message, 0, len(n.admins))
	for _, admin := range n.admins {
		msgs = append(msgs, Message{Recipient: admin, Subject: subject, HTML: html, IdempotencyKey: key})
	}
	return msgs
}

// sendAll sends every message concurrently and waits for all of them. Queued counts as handled;
// only Failed outcomes are reported.
func (n *Notifier) sendAll(ctx context.Context, msgs []Message) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for _, msg := range msgs {
		wg.Add(1)
		go func(msg Message) {
			defer wg.Done()
			outcome, err := n.sender.Send(ctx, msg)
			if outcome == Failed {
				if err == nil {
					err = fmt.Errorf("delivery to %s failed", msg.Recipient)
				}
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}(msg)
	}
	wg.Wait()
	return errors.Join(errs...)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
