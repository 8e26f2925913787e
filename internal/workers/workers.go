package workers

import (
	"github.com/pocketdiary/diary-server/internal/config"
	"github.com/pocketdiary/diary-server/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the background workers enabled by cfg. A worker whose
// configuration is absent is simply not started.
func NewWorkers(cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.KeepAliveURL != "" {
		w.workers = append(w.workers, newKeepAliveWorker(cfg, logger))
	}

	return w
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
