package telnyx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// FailedSID is the sentinel handed back when a send produces no provider
// message ID. SendMessage never returns an error: callers detect failure
// by comparing against this constant.
const FailedSID = "FAILED"

type Client struct {
	apiKey     string
	profileID  string
	fromNumber string
	baseURL    string
	http       *http.Client
}

func NewClient(apiKey, profileID, fromNumber, baseURL string) *Client {
	if baseURL == "" {
		baseURL = "https://api.telnyx.com"
	}
	return &Client{
		apiKey:     apiKey,
		profileID:  profileID,
		fromNumber: fromNumber,
		baseURL:    baseURL,
		http:       &http.Client{Timeout: 10 * time.Second},
	}
}

// SendMessage posts one SMS through the Telnyx v2 messages API and returns
// the provider message ID. Transport errors, non-2xx statuses and malformed
// responses are logged here and collapse into FailedSID.
func (c *Client) SendMessage(ctx context.Context, to, text string) string {
	url := fmt.Sprintf("%s/v2/messages", c.baseURL)

	payload := sendMessageRequest{
		From:               c.fromNumber,
		To:                 to,
		Text:               text,
		MessagingProfileID: c.profileID,
		Type:               "SMS",
		UseProfileWebhooks: true,
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		log.Printf("❌ Telnyx: failed to marshal payload: %v", err)
		return FailedSID
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		log.Printf("❌ Telnyx: failed to build request: %v", err)
		return FailedSID
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("❌ Telnyx send failed: %v", err)
		return FailedSID
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("❌ Telnyx rejected send (status %d): %s", resp.StatusCode, string(body))
		return FailedSID
	}

	var response sendMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		log.Printf("❌ Telnyx: failed to decode response: %v", err)
		return FailedSID
	}

	if response.Data.ID == "" {
		log.Printf("❌ Telnyx: response carried no message id")
		return FailedSID
	}

	log.Printf("✅ Telnyx message %s sent to %s", response.Data.ID, to)
	return response.Data.ID
}
