package services

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dragonpearl/reservation-app/config"
)

// SMSSender delivers an outbound text message.
type SMSSender interface {
	Send(to, body string) error
}

// TwilioClient talks to the Twilio Messages API over plain HTTP.
type TwilioClient struct {
	cfg        config.TwilioConfig
	httpClient *http.Client
}

func NewTwilioClient(cfg config.TwilioConfig) *TwilioClient {
	return &TwilioClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ValidateConfig reports which Twilio settings are missing.
func (tc *TwilioClient) ValidateConfig() error {
	if tc.cfg.AccountSID == "" {
		return fmt.Errorf("TWILIO_ACCOUNT_SID is not set")
	}
	if tc.cfg.AuthToken == "" {
		return fmt.Errorf("TWILIO_AUTH_TOKEN is not set")
	}
	if tc.cfg.FromNumber == "" {
		return fmt.Errorf("TWILIO_FROM_NUMBER is not set")
	}
	return nil
}

func (tc *TwilioClient) Send(to, body string) error {
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", tc.cfg.BaseURL, tc.cfg.AccountSID)

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", tc.cfg.FromNumber)
	form.Set("Body", body)

	req, err := http.NewRequest("POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("error creating request: %v", err)
	}
	req.SetBasicAuth(tc.cfg.AccountSID, tc.cfg.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := tc.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error making request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("Twilio API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	return nil
}
