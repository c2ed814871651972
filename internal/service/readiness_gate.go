package service

import (
	"context"
	"time"

	"github.com/KDR9MGR/digital-payments-core/internal/domain/transfer"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ReadinessGate decides whether a peer-to-peer transfer may proceed based on
// both parties' capability flags in the account directory. It holds no state
// across calls: every check reflects the directory at call time.
type ReadinessGate struct {
	directory     transfer.CapabilityLookup
	lookupTimeout time.Duration
	logger        zerolog.Logger
}

// NewReadinessGate creates a new ReadinessGate.
func NewReadinessGate(directory transfer.CapabilityLookup, lookupTimeout time.Duration, logger zerolog.Logger) *ReadinessGate {
	return &ReadinessGate{
		directory:     directory,
		lookupTimeout: lookupTimeout,
		logger:        logger,
	}
}

// Check computes a fresh readiness decision. The two directory reads are
// independent and issued concurrently; a failed or timed-out read degrades
// to not-ready for that side so the caller always gets a definite answer.
func (g *ReadinessGate) Check(ctx context.Context, senderID, recipientID string) transfer.ReadinessDecision {
	if recipientID == "" {
		return transfer.ReadinessDecision{CanSend: false, Reason: transfer.ReasonMissingRecipient}
	}

	lookupCtx := ctx
	if g.lookupTimeout > 0 {
		var cancel context.CancelFunc
		lookupCtx, cancel = context.WithTimeout(ctx, g.lookupTimeout)
		defer cancel()
	}

	var sender, recipient *transfer.AccountCapability
	eg, egCtx := errgroup.WithContext(lookupCtx)
	eg.Go(func() error {
		sender = g.fetch(egCtx, senderID)
		return nil
	})
	eg.Go(func() error {
		recipient = g.fetch(egCtx, recipientID)
		return nil
	})
	_ = eg.Wait()

	return transfer.Decide(sender, recipient)
}

// fetch turns any lookup failure into absence.
func (g *ReadinessGate) fetch(ctx context.Context, id string) *transfer.AccountCapability {
	c, err := g.directory.Lookup(ctx, id)
	if err != nil {
		g.logger.Warn().Err(err).Str("account_id", id).Msg("capability lookup failed, treating as absent")
		return nil
	}
	return c
}
