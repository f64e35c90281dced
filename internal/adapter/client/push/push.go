package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/platemate/deliverycore/internal/adapter/config"
	"github.com/platemate/deliverycore/internal/core/port"
	"github.com/platemate/deliverycore/internal/metrics"
)

const requestTimeout = 5 * time.Second

// Client delivers push notifications through the gateway, best effort.
// Schedule never blocks the caller and delivery failures are only logged;
// a lost notification must never fail the operation that triggered it.
type Client struct {
	logger *zap.Logger
	host   string
	queue  chan port.PushNotification
	http   *http.Client
}

func NewClient(cfg *config.Push, log *zap.Logger) (*Client, error) {
	return &Client{
		host:   cfg.HostString,
		logger: log,
		queue:  make(chan port.PushNotification, 64),
		http:   &http.Client{Timeout: requestTimeout},
	}, nil
}

func (c *Client) Schedule(n port.PushNotification) {
	select {
	case c.queue <- n:
	default:
		c.logger.Warn("push queue full, dropping notification",
			zap.String("title", n.Title))
		metrics.PushDeliveries.WithLabelValues("dropped").Inc()
	}
}

// StartWorkers launches the delivery workers. They drain the queue until
// ctx is cancelled.
func (c *Client) StartWorkers(ctx context.Context, workers int) {
	for i := 0; i < workers; i++ {
		go func() {
			for {
				select {
				case n := <-c.queue:
					if err := c.deliver(ctx, n); err != nil {
						c.logger.Error("push delivery failed", zap.Error(err))
						metrics.PushDeliveries.WithLabelValues("error").Inc()
						continue
					}
					metrics.PushDeliveries.WithLabelValues("ok").Inc()
				case <-ctx.Done():
					c.logger.Debug("push worker finished")
					return
				}
			}
		}()
	}
}

type pushRequest struct {
	To    string            `json:"to"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

func (c *Client) deliver(ctx context.Context, n port.PushNotification) error {
	payload, err := json.Marshal(pushRequest{
		To:    n.Token,
		Title: n.Title,
		Body:  n.Body,
		Data:  n.Data,
	})
	if err != nil {
		return fmt.Errorf("encode push request: %w", err)
	}

	requestStr := "http://" + c.host + "/api/push"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestStr, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("error on %s : %w", requestStr, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request error %s : %w", requestStr, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("bad response %v for request %s", resp.StatusCode, requestStr)
	}
	return nil
}
