package vault

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	domainErrors "github.com/KDR9MGR/digital-payments-core/internal/domain/errors"
	"github.com/google/uuid"
)

type MockVault struct {
	name        string
	failureRate float64 // 0.0 to 1.0
	latency     time.Duration
	timeoutRate float64 // 0.0 to 1.0
}

type MockVaultOption func(*MockVault)

func WithFailureRate(rate float64) MockVaultOption {
	return func(v *MockVault) { v.failureRate = rate }
}

func WithLatency(d time.Duration) MockVaultOption {
	return func(v *MockVault) { v.latency = d }
}

func WithTimeoutRate(rate float64) MockVaultOption {
	return func(v *MockVault) { v.timeoutRate = rate }
}

func NewMockVault(name string, opts ...MockVaultOption) *MockVault {
	v := &MockVault{
		name:        name,
		failureRate: 0.0,
		latency:     100 * time.Millisecond,
		timeoutRate: 0.0,
	}
	for _, o := range opts {
		o(v)
	}
	return v
}

func (v *MockVault) Name() string { return v.name }

func (v *MockVault) Tokenize(ctx context.Context, req TokenizeRequest) (*TokenizeResult, error) {
	// Simulate latency
	select {
	case <-time.After(v.latency):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	// Simulate timeout
	if rand.Float64() < v.timeoutRate {
		return nil, domainErrors.ErrVaultTimeout
	}

	// Simulate rejection
	if rand.Float64() < v.failureRate {
		return &TokenizeResult{
			Status:       "failed",
			ErrorMessage: fmt.Sprintf("%s: simulated tokenization failure for card %s", v.name, req.MaskedPAN),
		}, domainErrors.ErrVaultRejected
	}

	return &TokenizeResult{
		PaymentMethodID: fmt.Sprintf("%s_pm_%s", v.name, uuid.New().String()[:8]),
		Status:          "success",
	}, nil
}
