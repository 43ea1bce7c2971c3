package clients

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const formspreeBaseURL = "https://formspree.io"

// FormspreeClient relays a submitted quote request to the agency inbox via a
// fixed Formspree form.
type FormspreeClient struct {
	BaseURL string
	FormID  string
	HTTP    *http.Client
}

func NewFormspreeClient(formID string) *FormspreeClient {
	return &FormspreeClient{
		BaseURL: formspreeBaseURL,
		FormID:  formID,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Submit posts the flat field set to /f/{formID}. Formspree answers JSON when
// asked to, which avoids the HTML redirect flow meant for browsers.
func (c *FormspreeClient) Submit(ctx context.Context, fields url.Values) error {
	endpoint := fmt.Sprintf("%s/f/%s", c.BaseURL, c.FormID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(fields.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("submit form: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("submit form: unexpected status %s", resp.Status)
	}
	return nil
}
