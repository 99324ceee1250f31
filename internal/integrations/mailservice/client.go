package mailservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент функции отправки писем с подтверждением записи
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента mailservice
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendConfirmation отправляет письмо с подтверждением записи
func (c *Client) SendConfirmation(ctx context.Context, req *ConfirmationRequest) error {
	url := fmt.Sprintf("%s/functions/send-appointment-confirmation", c.baseURL)

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var result ConfirmationResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if !result.Success {
		return fmt.Errorf("%w: function reported failure: %s", ErrInvalidResponse, result.Message)
	}

	return nil
}

// SendConfirmationWithGracefulDegradation отправляет письмо с graceful degradation
// Подтверждение - побочный эффект: запись уже создана, поэтому любая ошибка
// заворачивается в ErrServiceDegraded и наверху только логируется
func (c *Client) SendConfirmationWithGracefulDegradation(ctx context.Context, req *ConfirmationRequest) error {
	c.log.Info("Sending confirmation email to %s for %s at %s", req.Email, req.Date, req.TimeSlot)

	if err := c.SendConfirmation(ctx, req); err != nil {
		c.log.Error("MailService unavailable, applying graceful degradation for email=%s: %v", req.Email, err)
		return fmt.Errorf("%w: email=%s, error=%v", ErrServiceDegraded, req.Email, err)
	}

	c.log.Info("Confirmation email sent to %s", req.Email)
	return nil
}
