// Package retry реализует экспоненциальный повтор вызовов внешнего оракула
// при ограничении частоты (HTTP 429 / исчерпание квоты).
package retry

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/shenikar/campus_safety/pkg/metrics"
	"github.com/sirupsen/logrus"
)

const (
	DefaultRetries      = 3
	DefaultInitialDelay = time.Second
)

// ErrRateLimited - признак ограничения частоты со стороны оракула
var ErrRateLimited = errors.New("rate limited")

// RateLimitError помечает ошибку как временную (повторяемую)
type RateLimitError struct {
	Err error
}

func (e *RateLimitError) Error() string {
	if e.Err == nil {
		return ErrRateLimited.Error()
	}
	return e.Err.Error()
}

func (e *RateLimitError) Unwrap() error { return e.Err }

func (e *RateLimitError) Is(target error) bool { return target == ErrRateLimited }

// IsRateLimit определяет, сигнализирует ли ошибка об ограничении частоты:
// ErrRateLimited в цепочке, код 429 или упоминание квоты в тексте.
func IsRateLimit(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	var coded interface{ StatusCode() int }
	if errors.As(err, &coded) && coded.StatusCode() == http.StatusTooManyRequests {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota")
}

// Policy - параметры повтора. Нулевые Retries означают одну попытку без повторов.
type Policy struct {
	Retries      int
	InitialDelay time.Duration
	Operation    string
	Logger       *logrus.Logger
	// Sleep подменяется в тестах; по умолчанию ожидание таймером с учетом ctx.
	Sleep func(ctx context.Context, d time.Duration) error
}

// DefaultPolicy: 3 повтора, начальная задержка 1s
func DefaultPolicy(operation string, logger *logrus.Logger) Policy {
	return Policy{
		Retries:      DefaultRetries,
		InitialDelay: DefaultInitialDelay,
		Operation:    operation,
		Logger:       logger,
	}
}

// WithOperation возвращает копию политики с другим именем операции
func (p Policy) WithOperation(operation string) Policy {
	p.Operation = operation
	return p
}

// Do вызывает fn; при ограничении частоты ждет delay и повторяет с retries-1 и delay*2.
// Любая другая ошибка, как и ограничение при исчерпанном бюджете, возвращается без изменений.
func Do[T any](ctx context.Context, p Policy, fn func(ctx context.Context) (T, error)) (T, error) {
	sleep := p.Sleep
	if sleep == nil {
		sleep = timerSleep
	}

	retries, delay := p.Retries, p.InitialDelay
	for {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		if !IsRateLimit(err) || retries <= 0 {
			var zero T
			return zero, err
		}

		if p.Logger != nil {
			p.Logger.WithFields(logrus.Fields{
				"operation":    p.Operation,
				"delay":        delay.String(),
				"retries_left": retries,
			}).WithError(err).Warn("Quota hit, retrying oracle call")
		}
		metrics.RecordOracleRetry(p.Operation)

		if sleepErr := sleep(ctx, delay); sleepErr != nil {
			var zero T
			return zero, sleepErr
		}
		retries--
		delay *= 2
	}
}

func timerSleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
