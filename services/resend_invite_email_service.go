package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
)

// ResendClient handles email sending via Resend API
type ResendClient struct {
	apiKey string
	from   string
}

// NewResendClient creates a new Resend client
func NewResendClient() *ResendClient {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		log.Fatal("RESEND_API_KEY environment variable not set")
	}

	from := os.Getenv("RESEND_FROM_EMAIL")
	if from == "" {
		from = "noreply@platewise.app" // Default from address
	}

	return &ResendClient{
		apiKey: apiKey,
		from:   from,
	}
}

// OperatorInviteEmailData holds data for operator invite email
type OperatorInviteEmailData struct {
	OperatorName   string
	OperatorEmail  string
	RestaurantName string
	InviteLink     string
}

// SendOperatorInviteEmail sends an operator invite email via Resend
func (r *ResendClient) SendOperatorInviteEmail(data OperatorInviteEmailData) error {
	htmlBody := r.buildOperatorInviteHTML(data)

	payload := map[string]interface{}{
		"from":    r.from,
		"to":      data.OperatorEmail,
		"subject": fmt.Sprintf("You've been invited to the %s dashboard", data.RestaurantName),
		"html":    htmlBody,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[resend] failed to marshal payload: %v", err)
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonPayload))
	if err != nil {
		log.Printf("[resend] failed to create request: %v", err)
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.apiKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Printf("[resend] request failed: %v", err)
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("[resend] unexpected status %d: %s", resp.StatusCode, string(body))
		return fmt.Errorf("resend returned status %d", resp.StatusCode)
	}

	log.Printf("[resend] operator invite sent to %s", data.OperatorEmail)
	return nil
}

// buildOperatorInviteHTML renders the invite email with inline styles
func (r *ResendClient) buildOperatorInviteHTML(data OperatorInviteEmailData) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 560px; margin: 0 auto; padding: 24px;">
  <h2 style="color: #1a1a1a;">Hi %s,</h2>
  <p style="color: #444; line-height: 1.6;">
    You've been invited to view the analytics dashboard for <strong>%s</strong> on Platewise.
  </p>
  <p style="color: #444; line-height: 1.6;">
    Click the button below to set your password and activate your account.
    The link expires in 7 days.
  </p>
  <p style="text-align: center; margin: 32px 0;">
    <a href="%s" style="background: #16a34a; color: #fff; padding: 12px 28px; border-radius: 6px; text-decoration: none; font-weight: bold;">
      Accept invite
    </a>
  </p>
  <p style="color: #888; font-size: 12px;">
    If you weren't expecting this invite you can ignore this email.
  </p>
</div>`,
		data.OperatorName, data.RestaurantName, data.InviteLink)
}
