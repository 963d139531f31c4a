/*
scheduler.go - Periodic export writer

PURPOSE:
  Rewrites the export file on a fixed interval so an external reader
  always finds a recent copy of the registry on disk, without anyone
  calling POST /api/staff/export.

DESIGN:
  - Runs a background goroutine with a configurable interval
  - Writes once immediately on start, then on every tick
  - Takes the handler's read lock, so writes never observe a half-applied
    mutation
  - A failed write is logged and retried on the next tick

CONFIGURATION:
  - Interval: STAFF_EXPORT_INTERVAL (0 disables the scheduler)

USAGE:
  scheduler := NewExportScheduler(handler, cfg.Export.Interval)
  scheduler.Start()
  // ... later
  scheduler.Stop()

SEE ALSO:
  - handlers.go: ExportFile endpoint (manual export)
  - export/export.go: atomic file writer
*/
package api

import (
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// ExportScheduler periodically writes the export file of a Handler.
type ExportScheduler struct {
	Handler  *Handler
	Interval time.Duration

	ticker *time.Ticker
	stop   chan struct{}
	runs   atomic.Int64
	wg     sync.WaitGroup
	mu     sync.Mutex
}

// NewExportScheduler creates a scheduler. A non-positive interval
// leaves it disabled.
func NewExportScheduler(h *Handler, interval time.Duration) *ExportScheduler {
	return &ExportScheduler{
		Handler:  h,
		Interval: interval,
	}
}

// Enabled reports whether Start will launch the background loop.
func (s *ExportScheduler) Enabled() bool {
	return s.Interval > 0
}

// Start begins the scheduler.
func (s *ExportScheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.Enabled() {
		s.Handler.logger.Info("export scheduler disabled")
		return
	}
	if s.ticker != nil {
		return
	}

	s.ticker = time.NewTicker(s.Interval)
	s.stop = make(chan struct{})
	s.wg.Add(1)

	go s.run()

	s.Handler.logger.Info("export scheduler started",
		zap.Duration("interval", s.Interval),
		zap.String("path", s.Handler.ExportPath))
}

// Stop stops the scheduler and waits for an in-flight write.
func (s *ExportScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ticker != nil {
		s.ticker.Stop()
		close(s.stop)
		s.wg.Wait()
		s.ticker = nil
		s.Handler.logger.Info("export scheduler stopped")
	}
}

// Runs returns how many writes have been attempted.
func (s *ExportScheduler) Runs() int {
	return int(s.runs.Load())
}

func (s *ExportScheduler) run() {
	defer s.wg.Done()

	// Run immediately on start
	s.writeOnce()

	for {
		select {
		case <-s.ticker.C:
			s.writeOnce()
		case <-s.stop:
			return
		}
	}
}

func (s *ExportScheduler) writeOnce() {
	h := s.Handler
	h.mu.RLock()
	defer h.mu.RUnlock()

	s.runs.Add(1)
	if _, err := h.Exporter.WriteFile(h.ExportPath, h.registry.ExportAll()); err != nil {
		h.logger.Error("scheduled export failed", zap.Error(err))
	}
}
