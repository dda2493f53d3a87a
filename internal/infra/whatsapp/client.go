package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"postify/internal/pkg/config"
	"postify/internal/pkg/errs"
)

const rawResponseLimit = 200

// Client delivers media posts over the WhatsApp gateway's send-media
// endpoint.
type Client struct {
	http *http.Client
	url  string
}

func NewClient(cfg config.WhatsAppConfig) *Client {
	return &Client{
		http: &http.Client{Timeout: cfg.Timeout},
		url:  cfg.SendMediaURL,
	}
}

type sendMediaRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Caption string `json:"caption"`
}

// SendMedia posts the base64 image with its caption to the gateway and
// returns the gateway's response body. Only transport failures are errors;
// any HTTP answer counts as a delivery attempt, and non-JSON bodies are
// preserved, truncated, for the job record.
func (c *Client) SendMedia(ctx context.Context, phone, imageBase64, caption string) (map[string]any, error) {
	payload, err := json.Marshal(sendMediaRequest{
		Phone:   phone,
		Message: imageBase64,
		Caption: caption,
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode send-media payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build send-media request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "failed to reach whatsapp gateway")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read whatsapp gateway response")
	}

	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err == nil {
		return decoded, nil
	}

	return map[string]any{
		"status":       "sent",
		"status_code":  resp.StatusCode,
		"raw_response": rawExcerpt(body),
	}, nil
}

func rawExcerpt(body []byte) string {
	if len(body) == 0 {
		return "empty"
	}
	if len(body) > rawResponseLimit {
		return string(body[:rawResponseLimit])
	}
	return string(body)
}
