package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KDR9MGR/digital-payments-core/internal/domain/transfer"
	"github.com/KDR9MGR/digital-payments-core/internal/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newTestGate(dir transfer.CapabilityLookup) *ReadinessGate {
	return NewReadinessGate(dir, 2*time.Second, zerolog.Nop())
}

func TestReadinessGate_BothReady(t *testing.T) {
	dir := testutil.NewMockDirectory()
	dir.SetCapability("alice", transfer.AccountCapability{ChargesEnabled: true, PayoutsEnabled: true})
	dir.SetCapability("bob", transfer.AccountCapability{ChargesEnabled: true, PayoutsEnabled: true})

	d := newTestGate(dir).Check(context.Background(), "alice", "bob")
	assert.True(t, d.CanSend)
	assert.Equal(t, transfer.ReasonReady, d.Reason)
}

func TestReadinessGate_MissingRecipient(t *testing.T) {
	dir := testutil.NewMockDirectory()
	dir.SetCapability("alice", transfer.AccountCapability{ChargesEnabled: true, PayoutsEnabled: true})

	d := newTestGate(dir).Check(context.Background(), "alice", "")
	assert.False(t, d.CanSend)
	assert.Equal(t, transfer.ReasonMissingRecipient, d.Reason)
}

func TestReadinessGate_SenderNotReady(t *testing.T) {
	dir := testutil.NewMockDirectory()
	dir.SetCapability("alice", transfer.AccountCapability{ChargesEnabled: true, PayoutsEnabled: false})
	dir.SetCapability("bob", transfer.AccountCapability{ChargesEnabled: true, PayoutsEnabled: true})

	d := newTestGate(dir).Check(context.Background(), "alice", "bob")
	assert.False(t, d.CanSend)
	assert.Equal(t, transfer.ReasonSenderNotReady, d.Reason)
}

func TestReadinessGate_RecipientNotReady(t *testing.T) {
	dir := testutil.NewMockDirectory()
	dir.SetCapability("alice", transfer.AccountCapability{ChargesEnabled: true, PayoutsEnabled: true})
	dir.SetCapability("bob", transfer.AccountCapability{ChargesEnabled: false, PayoutsEnabled: true})

	d := newTestGate(dir).Check(context.Background(), "alice", "bob")
	assert.False(t, d.CanSend)
	assert.Equal(t, transfer.ReasonRecipientNotReady, d.Reason)
}

func TestReadinessGate_UnknownSenderTreatedAsNotReady(t *testing.T) {
	dir := testutil.NewMockDirectory()
	dir.SetCapability("bob", transfer.AccountCapability{ChargesEnabled: true, PayoutsEnabled: true})

	d := newTestGate(dir).Check(context.Background(), "ghost", "bob")
	assert.False(t, d.CanSend)
	assert.Equal(t, transfer.ReasonSenderNotReady, d.Reason)
}

// A sender failing both checks still reports sender-not-ready before any
// recipient verdict.
func TestReadinessGate_SenderEvaluatedFirst(t *testing.T) {
	dir := testutil.NewMockDirectory()

	d := newTestGate(dir).Check(context.Background(), "ghost", "phantom")
	assert.False(t, d.CanSend)
	assert.Equal(t, transfer.ReasonSenderNotReady, d.Reason)
}

func TestReadinessGate_LookupFailureDegradesToNotReady(t *testing.T) {
	dir := testutil.NewMockDirectory()
	dir.LookupFunc = func(ctx context.Context, id string) (*transfer.AccountCapability, error) {
		return nil, errors.New("directory unavailable")
	}

	d := newTestGate(dir).Check(context.Background(), "alice", "bob")
	assert.False(t, d.CanSend)
	assert.Equal(t, transfer.ReasonSenderNotReady, d.Reason)
}

func TestReadinessGate_SlowLookupBoundedByTimeout(t *testing.T) {
	dir := testutil.NewMockDirectory()
	dir.LookupFunc = func(ctx context.Context, id string) (*transfer.AccountCapability, error) {
		select {
		case <-time.After(5 * time.Second):
			return &transfer.AccountCapability{ChargesEnabled: true, PayoutsEnabled: true}, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	gate := NewReadinessGate(dir, 50*time.Millisecond, zerolog.Nop())

	start := time.Now()
	d := gate.Check(context.Background(), "alice", "bob")
	assert.Less(t, time.Since(start), time.Second)
	assert.False(t, d.CanSend)
	assert.Equal(t, transfer.ReasonSenderNotReady, d.Reason)
}
