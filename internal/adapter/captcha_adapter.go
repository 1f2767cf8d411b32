package adapter

import (
	"NovedadesAPI/internal/config"
	"NovedadesAPI/internal/helper"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// CaptchaAdapter verifies Turnstile tokens for anonymous submissions.
type CaptchaAdapter struct {
	httpClient *http.Client
	cfg        *config.AppConfig
}

func NewCaptchaAdapter(cfg *config.AppConfig, httpClient *http.Client) *CaptchaAdapter {
	return &CaptchaAdapter{
		httpClient: httpClient,
		cfg:        cfg,
	}
}

type turnstileVerifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

func (c *CaptchaAdapter) Verify(token string, ip string) error {
	url := "https://challenges.cloudflare.com/turnstile/v0/siteverify"

	payload := map[string]string{
		"secret":   c.cfg.TurnstileSecretKey,
		"response": token,
		"remoteip": ip,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal captcha payload: %w", err)
	}

	operation := func() (*http.Response, bool, error) {
		resp, err := c.httpClient.Post(url, "application/json", bytes.NewReader(jsonPayload))
		if err != nil || resp.StatusCode != http.StatusOK {
			retry := helper.ShouldRetryHTTP(resp, err)
			if err == nil {
				err = fmt.Errorf("captcha endpoint returned status %d", resp.StatusCode)
			}
			if resp != nil {
				resp.Body.Close()
			}
			return nil, retry, err
		}
		return resp, false, nil
	}

	resp, err := helper.RetryWithBackoff(operation, 3, 500*time.Millisecond)
	if err != nil {
		return fmt.Errorf("failed to verify captcha: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read captcha response: %w", err)
	}

	var verifyResp turnstileVerifyResponse
	if err := json.Unmarshal(body, &verifyResp); err != nil {
		return fmt.Errorf("failed to decode captcha response: %w", err)
	}

	if !verifyResp.Success {
		return fmt.Errorf("captcha verification failed: %v", verifyResp.ErrorCodes)
	}

	return nil
}
