package transfer_test

import (
	"testing"

	"github.com/KDR9MGR/digital-payments-core/internal/domain/transfer"
	"github.com/stretchr/testify/assert"
)

func caps(charges, payouts bool) *transfer.AccountCapability {
	return &transfer.AccountCapability{ChargesEnabled: charges, PayoutsEnabled: payouts}
}

func TestAccountCapability_Ready(t *testing.T) {
	assert.True(t, caps(true, true).Ready())
	assert.False(t, caps(true, false).Ready())
	assert.False(t, caps(false, true).Ready())
	assert.False(t, caps(false, false).Ready())
}

func TestDecide_BothReady(t *testing.T) {
	d := transfer.Decide(caps(true, true), caps(true, true))
	assert.True(t, d.CanSend)
	assert.Equal(t, transfer.ReasonReady, d.Reason)
}

func TestDecide_SenderNotReady(t *testing.T) {
	d := transfer.Decide(caps(true, false), caps(true, true))
	assert.False(t, d.CanSend)
	assert.Equal(t, transfer.ReasonSenderNotReady, d.Reason)

	// Sender is evaluated first even when the recipient is also unready.
	d = transfer.Decide(caps(false, false), caps(false, false))
	assert.Equal(t, transfer.ReasonSenderNotReady, d.Reason)
}

func TestDecide_RecipientNotReady(t *testing.T) {
	d := transfer.Decide(caps(true, true), caps(false, true))
	assert.False(t, d.CanSend)
	assert.Equal(t, transfer.ReasonRecipientNotReady, d.Reason)
}

func TestDecide_AbsentRecordsMeanNotReady(t *testing.T) {
	d := transfer.Decide(nil, caps(true, true))
	assert.Equal(t, transfer.ReasonSenderNotReady, d.Reason)

	d = transfer.Decide(caps(true, true), nil)
	assert.Equal(t, transfer.ReasonRecipientNotReady, d.Reason)
}
