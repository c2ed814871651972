package vault

import (
	"time"

	domainErrors "github.com/KDR9MGR/digital-payments-core/internal/domain/errors"
	"github.com/sony/gobreaker/v2"
)

type Factory struct {
	vaults          map[string]Tokenizer
	circuitBreakers map[string]*gobreaker.CircuitBreaker[*TokenizeResult]
}

func NewFactory(vaults ...Tokenizer) *Factory {
	f := &Factory{
		vaults:          make(map[string]Tokenizer),
		circuitBreakers: make(map[string]*gobreaker.CircuitBreaker[*TokenizeResult]),
	}

	if len(vaults) == 0 {
		f.Register(NewMockVault("stripe",
			WithLatency(200*time.Millisecond),
			WithFailureRate(0.05),
		))
	} else {
		for _, v := range vaults {
			f.Register(v)
		}
	}

	return f
}

func (f *Factory) Register(v Tokenizer) {
	f.vaults[v.Name()] = v
	f.circuitBreakers[v.Name()] = gobreaker.NewCircuitBreaker[*TokenizeResult](gobreaker.Settings{
		Name:        v.Name(),
		MaxRequests: 10,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 10 && failureRatio >= 0.6
		},
	})
}

func (f *Factory) Get(name string) (Tokenizer, *gobreaker.CircuitBreaker[*TokenizeResult], error) {
	v, ok := f.vaults[name]
	if !ok {
		return nil, nil, domainErrors.ErrVaultNotFound
	}
	return v, f.circuitBreakers[name], nil
}
