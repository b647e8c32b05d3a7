package llm

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// LoggingClient decorates a Client with structured request logging.
type LoggingClient struct {
	inner Client
	log   *logrus.Logger
}

// WithLogging wraps a Client so every completion is logged with its
// model, latency, token usage, and outcome.
func WithLogging(c Client, log *logrus.Logger) *LoggingClient {
	return &LoggingClient{inner: c, log: log}
}

func (l *LoggingClient) Complete(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Complete(ctx, req)
	elapsed := time.Since(start)

	fields := logrus.Fields{
		"purpose":    PurposeFrom(ctx),
		"model":      req.Model,
		"latency_ms": elapsed.Milliseconds(),
	}
	if err != nil {
		l.log.WithFields(fields).WithError(err).Warn("completion failed")
		return nil, err
	}

	fields["served_by"] = resp.Model
	fields["tokens_in"] = resp.Usage.InputTokens
	fields["tokens_out"] = resp.Usage.OutputTokens
	l.log.WithFields(fields).Debug("completion ok")
	return resp, nil
}

func (l *LoggingClient) Models(ctx context.Context) ([]ModelInfo, error) {
	return l.inner.Models(ctx)
}

func (l *LoggingClient) ModelID() string {
	return l.inner.ModelID()
}
