package application

import (
	"context"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

func nowUTC() time.Time {
	return time.Now().UTC()
}

// orDiscard keeps use cases usable without a configured logger (tests, tools).
func orDiscard(logger *logrus.Logger) *logrus.Logger {
	if logger != nil {
		return logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func invalidateView(ctx context.Context, cache ViewCache, logger *logrus.Logger, id int64) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, id); err != nil {
		logger.WithError(err).WithField("user_id", id).Warn("user view cache invalidate failed")
	}
}
