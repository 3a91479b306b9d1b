package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"esim_bridge/internal/domain/entities"
	"esim_bridge/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrMissingEmailAPIURL = errors.New("missing EMAIL_API_URL")
var ErrMissingEmailAPIKey = errors.New("missing EMAIL_API_KEY")
var ErrMissingEmailFrom = errors.New("missing EMAIL_FROM")
var ErrEmailNotifierNotConfigured = errors.New("email notifier not configured")

const requestTimeout = 15 * time.Second

// EmailAPINotifier delivers transactional email through an HTTP email
// provider. Mock mode (EMAIL_MOCK) logs the message and fabricates an id,
// which keeps local runs and tests off the wire.

type EmailAPINotifier struct {
	baseURL    string
	apiKey     string
	from       string
	httpClient *http.Client
	mockMode   bool
}

var _ interfaces.INotifier = (*EmailAPINotifier)(nil)

func NewEmailAPINotifier(baseURL, apiKey, from string) (*EmailAPINotifier, error) {
	if isEmailMockEnabled() {
		log.Printf("[email][notifier] mock mode enabled")
		return &EmailAPINotifier{from: from, mockMode: true}, nil
	}

	if strings.TrimSpace(baseURL) == "" {
		log.Printf("[email][notifier] missing EMAIL_API_URL")
		return nil, ErrMissingEmailAPIURL
	}
	if strings.TrimSpace(apiKey) == "" {
		log.Printf("[email][notifier] missing EMAIL_API_KEY")
		return nil, ErrMissingEmailAPIKey
	}
	if strings.TrimSpace(from) == "" {
		log.Printf("[email][notifier] missing EMAIL_FROM")
		return nil, ErrMissingEmailFrom
	}
	log.Printf("[email][notifier] client initialized from=%s", from)

	return &EmailAPINotifier{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		from:       from,
		httpClient: &http.Client{Timeout: requestTimeout},
	}, nil
}

func (n *EmailAPINotifier) Send(ctx context.Context, msg entities.Notification) (string, error) {
	if n != nil && n.mockMode {
		id := "mock-msg-" + uuid.NewString()
		log.Printf("[email][notifier] mock send to=%s subject=%q message_id=%s", msg.To, msg.Subject, id)
		return id, nil
	}
	if n == nil || n.httpClient == nil {
		return "", ErrEmailNotifierNotConfigured
	}
	log.Printf("[email][notifier] send start to=%s subject=%q", msg.To, msg.Subject)

	payload, err := json.Marshal(map[string]string{
		"from":    n.from,
		"to":      msg.To,
		"subject": msg.Subject,
		"html":    msg.HTMLBody,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL+"/send", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+n.apiKey)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		log.Printf("[email][notifier] send failed to=%s err=%v", msg.To, err)
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("[email][notifier] send rejected to=%s status=%d", msg.To, resp.StatusCode)
		return "", fmt.Errorf("email provider returned status %d", resp.StatusCode)
	}

	var decoded struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", err
	}
	log.Printf("[email][notifier] send success to=%s message_id=%s", msg.To, decoded.ID)

	return decoded.ID, nil
}

func isEmailMockEnabled() bool {
	for _, key := range []string{"EMAIL_MOCK", "NOTIFIER_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
