package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/campus_safety/internal/config"
	"github.com/shenikar/campus_safety/pkg/metrics"
	"github.com/sirupsen/logrus"
)

const signatureHeader = "X-Webhook-Signature"

// Worker забирает SOS события из очереди Redis и доставляет их на WEBHOOK_URL
type Worker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	httpClient  *http.Client
	url         string
	secret      string
	maxRetries  int
	baseDelay   time.Duration
	sleep       func(ctx context.Context, d time.Duration) error
}

func NewWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
		url:        cfg.WebhookURL,
		secret:     cfg.WebhookSecret,
		maxRetries: cfg.WebhookMaxRetries,
		baseDelay:  cfg.WebhookBaseDelay,
		sleep:      sleepCtx,
	}
}

// Start запускает горутину обработки очереди до отмены ctx
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting sos webhook worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping sos webhook worker.")
				return
			default:
			}

			// BRPOP - блокирующее извлечение с хвоста очереди, 0 - бесконечное ожидание
			result, err := w.redisClient.BRPop(ctx, 0, sosQueueKey).Result()
			if err != nil {
				if errors.Is(err, context.Canceled) {
					continue
				}
				w.logger.WithError(err).Error("Failed to pop sos event from Redis")
				_ = w.sleep(ctx, w.baseDelay)
				continue
			}

			// result[0] - ключ, result[1] - значение
			w.process(ctx, []byte(result[1]))
		}
	}()
}

func (w *Worker) process(ctx context.Context, payload []byte) {
	var event SOSEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		w.logger.WithError(err).Error("Failed to unmarshal sos event from Redis")
		metrics.RecordWebhookDelivery("malformed")
		return
	}

	log := w.logger.WithField("log_id", event.LogID)
	if w.url == "" {
		log.Warn("Webhook URL is not configured. Skipping webhook delivery.")
		metrics.RecordWebhookDelivery("skipped")
		return
	}

	if err := w.deliver(ctx, payload); err != nil {
		log.WithError(err).Error("Failed to deliver sos webhook")
		metrics.RecordWebhookDelivery("failed")
		return
	}
	log.Info("Webhook delivered successfully.")
	metrics.RecordWebhookDelivery("delivered")
}

// deliver делает до maxRetries попыток, удваивая паузу после каждой неудачной
func (w *Worker) deliver(ctx context.Context, payload []byte) error {
	attempts := max(w.maxRetries, 1)
	delay := w.baseDelay

	var lastErr error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			w.logger.WithError(lastErr).Warnf("Retrying webhook in %v. Retries left: %d", delay, attempts-i)
			if err := w.sleep(ctx, delay); err != nil {
				return err
			}
			delay *= 2
		}

		lastErr = w.send(ctx, payload)
		if lastErr == nil {
			return nil
		}
	}
	return fmt.Errorf("webhook: giving up after %d attempts: %w", attempts, lastErr)
}

func (w *Worker) send(ctx context.Context, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// HMAC подпись, если WEBHOOK_SECRET задан
	if w.secret != "" {
		req.Header.Set(signatureHeader, generateHMACSHA256(payload, w.secret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook responded with status code %d", resp.StatusCode)
	}
	return nil
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
