package workers

import (
	"time"

	"github.com/pocketdiary/diary-server/internal/config"
	"github.com/pocketdiary/diary-server/internal/logger"
	"github.com/pocketdiary/diary-server/internal/utils"
)

const defaultKeepAliveInterval = 5 * time.Minute

// keepAliveWorker periodically GETs the configured liveness URL so free-tier
// hosting does not idle the process out. Failures are logged and the next
// tick tries again; the worker never stops the application.
type keepAliveWorker struct {
	client   *utils.HTTPClient
	url      string
	interval time.Duration

	logger *logger.Logger
}

func newKeepAliveWorker(cfg config.Workers, logger *logger.Logger) *keepAliveWorker {
	interval := cfg.KeepAliveInterval
	if interval <= 0 {
		interval = defaultKeepAliveInterval
	}

	return &keepAliveWorker{
		client:   utils.NewHTTPClient(),
		url:      cfg.KeepAliveURL,
		interval: interval,
		logger:   logger,
	}
}

func (k *keepAliveWorker) Run() {
	go func() {
		ticker := time.NewTicker(k.interval)
		defer ticker.Stop()

		k.logger.Info().Str("url", k.url).Dur("interval", k.interval).Msg("keep-alive worker started")

		for range ticker.C {
			k.ping()
		}
	}()
}

func (k *keepAliveWorker) ping() {
	resp, err := k.client.R().Get(k.url)
	if err != nil {
		k.logger.Err(err).Msg("keep-alive ping failed")
		return
	}

	k.logger.Debug().Int("status", resp.StatusCode()).Msg("keep-alive ping")
}
