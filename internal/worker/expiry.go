package worker

import (
	"context"
	"sync"
	"time"

	"gamevault/internal/service"

	"github.com/rs/zerolog"
)

// ReservationExpiryWorker periodically cancels reservations past their latest purchase date.
type ReservationExpiryWorker struct {
	service  service.ExpiryService
	interval time.Duration
	logger   zerolog.Logger
	stopChan chan struct{}
	stopOnce sync.Once
	wg       *sync.WaitGroup
}

func NewReservationExpiryWorker(svc service.ExpiryService, interval time.Duration, logger zerolog.Logger) *ReservationExpiryWorker {
	return &ReservationExpiryWorker{
		service:  svc,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
		wg:       &sync.WaitGroup{},
	}
}

func (w *ReservationExpiryWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Info().Dur("interval", w.interval).Msg("Reservation expiry worker started")

		for {
			select {
			case <-ticker.C:
				w.logger.Debug().Msg("Running reservation expiry task")
				if err := w.service.CancelExpiredReservations(ctx); err != nil {
					w.logger.Error().Err(err).Msg("Failed to run reservation expiry task")
				}
			case <-w.stopChan:
				w.logger.Info().Msg("Reservation expiry worker stopping")
				return
			case <-ctx.Done():
				w.logger.Info().Msg("Reservation expiry worker stopping (context done)")
				return
			}
		}
	}()
}

func (w *ReservationExpiryWorker) Stop() {
	w.stopOnce.Do(func() { close(w.stopChan) })
	w.wg.Wait()
}
