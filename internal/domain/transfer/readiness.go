package transfer

import "context"

// Reason explains a gate decision. The vocabulary is fixed and surfaced
// verbatim to clients.
type Reason string

const (
	ReasonMissingRecipient  Reason = "missing-recipient"
	ReasonSenderNotReady    Reason = "sender-not-ready"
	ReasonRecipientNotReady Reason = "recipient-not-ready"
	ReasonReady             Reason = "ready"
)

// AccountCapability mirrors the account directory's per-user capability
// flags. Both must be true before money can move on that side.
type AccountCapability struct {
	ChargesEnabled bool
	PayoutsEnabled bool
}

// Ready reports whether both capability flags are set.
func (c AccountCapability) Ready() bool {
	return c.ChargesEnabled && c.PayoutsEnabled
}

// ReadinessDecision is the outcome of a single gate check. It is recomputed
// on every call and must never be cached beyond it.
type ReadinessDecision struct {
	CanSend bool
	Reason  Reason
}

// CapabilityLookup is the account directory port. A nil capability with a
// nil error means the directory has no record for the id; the gate treats a
// lookup error the same way.
type CapabilityLookup interface {
	Lookup(ctx context.Context, id string) (*AccountCapability, error)
}

// Decide applies the readiness rules to two already-fetched capability
// records. Evaluation order: sender first, then recipient. An absent record
// means not-ready, never an error.
func Decide(sender, recipient *AccountCapability) ReadinessDecision {
	if sender == nil || !sender.Ready() {
		return ReadinessDecision{CanSend: false, Reason: ReasonSenderNotReady}
	}
	if recipient == nil || !recipient.Ready() {
		return ReadinessDecision{CanSend: false, Reason: ReasonRecipientNotReady}
	}
	return ReadinessDecision{CanSend: true, Reason: ReasonReady}
}
