package notifier

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"zenithstays/internal/pkg/config"
	"zenithstays/internal/pkg/errs"
)

const twilioAPIBase = "https://api.twilio.com/2010-04-01"

// TwilioNotifier sends SMS (and WhatsApp when a sender number is configured)
// through Twilio's REST API. With missing or placeholder credentials it runs
// in simulation mode and only logs the message, which keeps local
// development working without an account.
type TwilioNotifier struct {
	httpClient   *http.Client
	logger       *slog.Logger
	sid          string
	authToken    string
	fromPhone    string
	whatsAppFrom string
	enabled      bool
}

func NewTwilioNotifier(cfg config.NotifierConfig, logger *slog.Logger) *TwilioNotifier {
	if logger == nil {
		logger = slog.Default()
	}

	enabled := cfg.TwilioSID != "" && cfg.TwilioAuthToken != "" && cfg.TwilioPhone != "" &&
		!strings.Contains(cfg.TwilioSID, "your_twilio_sid") &&
		!strings.Contains(cfg.TwilioAuthToken, "your_token")

	if !enabled {
		logger.Info("twilio disabled (missing or placeholder credentials), using console simulation")
	}

	return &TwilioNotifier{
		httpClient:   &http.Client{Timeout: cfg.RequestTimeout},
		logger:       logger,
		sid:          cfg.TwilioSID,
		authToken:    cfg.TwilioAuthToken,
		fromPhone:    cfg.TwilioPhone,
		whatsAppFrom: "whatsapp:" + cfg.TwilioWhatsApp,
		enabled:      enabled,
	}
}

func (n *TwilioNotifier) NotifyOwner(ctx context.Context, owner Owner, details StayDetails) error {
	if owner.Phone == "" {
		return errs.New("owner has no phone number")
	}

	body := n.messageBody(details)

	if !n.enabled {
		n.logger.Info("[simulated sms/whatsapp]",
			"to", owner.Phone,
			"owner", owner.Username,
			"message", body)
		return nil
	}

	if err := n.sendMessage(ctx, n.fromPhone, owner.Phone, body); err != nil {
		return errs.Wrap(err, "failed to send sms")
	}

	// WhatsApp is optional; sandbox numbers require the recipient to join
	// first, so a failure here is expected and non-fatal.
	if n.whatsAppFrom != "whatsapp:" {
		if err := n.sendMessage(ctx, n.whatsAppFrom, "whatsapp:"+owner.Phone, body); err != nil {
			n.logger.Warn("whatsapp delivery failed", "to", owner.Phone, "error", err.Error())
		}
	}

	n.logger.Info("sms sent", "to", owner.Phone)
	return nil
}

func (n *TwilioNotifier) sendMessage(ctx context.Context, from, to, body string) error {
	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", twilioAPIBase, n.sid)

	form := url.Values{}
	form.Set("From", from)
	form.Set("To", to)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(n.sid, n.authToken)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errs.New(fmt.Sprintf("twilio returned %d: %s", resp.StatusCode, string(respBody)))
	}
	return nil
}

func (n *TwilioNotifier) messageBody(details StayDetails) string {
	const dateLayout = "2006-01-02"
	return fmt.Sprintf(
		"New ZenithStays application!\nLocation: %s\nDates: %s - %s\nGuests: %d\n\nLogin to your dashboard to accept and send an offer!",
		details.Location,
		details.CheckInDate.Format(dateLayout),
		details.CheckOutDate.Format(dateLayout),
		details.Guests,
	)
}

var _ Notifier = (*TwilioNotifier)(nil)
