package services

import (
	"context"
	"time"

	"github.com/resumevault/resume-vault/src/logging"
	"github.com/resumevault/resume-vault/src/repositories"
	"github.com/rs/zerolog"
)

// CleanupService periodically sweeps expired admin sessions. Verify
// already double-checks expiry on every lookup, so the sweep only bounds
// how long dead rows linger.
type CleanupService struct {
	sessions repositories.SessionRepository
	interval time.Duration
	done     chan struct{}
	log      zerolog.Logger
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(sessions repositories.SessionRepository) *CleanupService {
	return &CleanupService{
		sessions: sessions,
		interval: 1 * time.Hour,
		done:     make(chan struct{}),
		log:      logging.NewLogger("session-cleanup"),
	}
}

// Start runs the sweep loop until the context is cancelled or Stop is called.
func (cs *CleanupService) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(cs.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				cs.log.Info().Msg("session cleanup stopped")
				return
			case <-cs.done:
				cs.log.Info().Msg("session cleanup stopped")
				return
			case <-ticker.C:
				cs.sweep(ctx)
			}
		}
	}()

	cs.log.Info().Msg("session cleanup started")
}

// Stop terminates the sweep loop.
func (cs *CleanupService) Stop() {
	close(cs.done)
}

func (cs *CleanupService) sweep(ctx context.Context) {
	deleted, err := cs.sessions.DeleteExpired(ctx)
	if err != nil {
		cs.log.Error().Err(err).Msg("session sweep failed")
		return
	}
	if deleted > 0 {
		cs.log.Info().Int64("deleted", deleted).Msg("swept expired sessions")
	}
}
