package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client fire-and-forget клиент диспетчера уведомлений
//
// Публикация события никогда не блокирует и не роняет вызвавшую
// операцию: доставка выполняется в отдельной горутине, ошибки только
// логируются. Откат бизнес-операции из-за недоступности диспетчера
// недопустим.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	log        Logger
}

// NewClient создает новый экземпляр клиента диспетчера уведомлений
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		timeout: timeout,
		log:     log,
	}
}

// Emit публикует событие и сразу возвращает управление
func (c *Client) Emit(eventKind string, payload interface{}) {
	event := Event{
		ID:         uuid.NewString(),
		Kind:       eventKind,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}

	go c.deliver(event)
}

func (c *Client) deliver(event Event) {
	body, err := json.Marshal(event)
	if err != nil {
		c.log.Error("notifier: failed to marshal event kind=%s id=%s: %v", event.Kind, event.ID, err)
		return
	}

	// Доставка не привязана к контексту запроса - запрос уже завершен
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	url := c.baseURL + "/internal/events"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		c.log.Error("notifier: failed to create request for event kind=%s id=%s: %v", event.Kind, event.ID, err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("notifier: failed to deliver event kind=%s id=%s: %v", event.Kind, event.ID, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		c.log.Warn("notifier: dispatcher rejected event kind=%s id=%s: status=%d", event.Kind, event.ID, resp.StatusCode)
		return
	}

	c.log.Info("notifier: delivered event kind=%s id=%s", event.Kind, event.ID)
}
