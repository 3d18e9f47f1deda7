package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/jwalitptl/directory-web/pkg/circuitbreaker"
	apperrors "github.com/jwalitptl/directory-web/pkg/errors"
)

const DefaultBrevoEndpoint = "https://api.brevo.com/v3/smtp/email"

type BrevoConfig struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

type brevoPayload struct {
	Sender      Address   `json:"sender"`
	To          []Address `json:"to"`
	ReplyTo     Address   `json:"replyTo"`
	Subject     string    `json:"subject"`
	HTMLContent string    `json:"htmlContent"`
}

// BrevoSender posts transactional email to the Brevo v3 API.
type BrevoSender struct {
	endpoint string
	apiKey   string
	from     Address
	to       Address
	client   *http.Client
	cb       *circuitbreaker.CircuitBreaker
	logger   *zerolog.Logger
}

func NewBrevoSender(cfg BrevoConfig, from, to Address, logger *zerolog.Logger) *BrevoSender {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultBrevoEndpoint
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &BrevoSender{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		from:     from,
		to:       to,
		client:   &http.Client{Timeout: cfg.Timeout},
		cb: circuitbreaker.NewCircuitBreaker(circuitbreaker.Settings{
			Name:        "brevo",
			MaxFailures: 5,
			Timeout:     30 * time.Second,
		}),
		logger: logger,
	}
}

func (s *BrevoSender) Provider() string {
	return "brevo"
}

func (s *BrevoSender) Send(ctx context.Context, msg *Message) error {
	body, err := json.Marshal(brevoPayload{
		Sender:      s.from,
		To:          []Address{s.to},
		ReplyTo:     msg.ReplyTo,
		Subject:     msg.Subject,
		HTMLContent: msg.HTML,
	})
	if err != nil {
		return fmt.Errorf("failed to encode brevo payload: %w", err)
	}

	return s.cb.Execute(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("failed to build brevo request: %w", err)
		}
		req.Header.Set("api-key", s.apiKey)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")

		resp, err := s.client.Do(req)
		if err != nil {
			return fmt.Errorf("brevo request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			s.logger.Error().
				Int("status", resp.StatusCode).
				RawJSON("response", jsonOrString(detail)).
				Msg("Brevo error")
			return apperrors.NewUpstream("brevo", fmt.Errorf("%w: status %d", ErrProvider, resp.StatusCode))
		}
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	})
}

// jsonOrString keeps a valid JSON error body as is and quotes anything else.
func jsonOrString(b []byte) []byte {
	if json.Valid(b) {
		return b
	}
	quoted, _ := json.Marshal(string(b))
	return quoted
}
