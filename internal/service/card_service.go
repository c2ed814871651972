package service

import (
	"context"
	"fmt"
	"time"

	"github.com/KDR9MGR/digital-payments-core/internal/domain/card"
	domainErrors "github.com/KDR9MGR/digital-payments-core/internal/domain/errors"
	"github.com/KDR9MGR/digital-payments-core/internal/vault"
	"github.com/KDR9MGR/digital-payments-core/pkg/retry"
	"github.com/rs/zerolog"
)

// CardService orchestrates field validation, duplicate detection, and the
// hand-off of a sanitized card reference to the external tokenization vault.
// It never stores a raw PAN and never lets one past the validation boundary.
type CardService struct {
	fingerprintKey []byte
	vaultFactory   *vault.Factory
	retryCfg       retry.Config
	logger         zerolog.Logger
}

// NewCardService creates a new CardService.
func NewCardService(fingerprintKey []byte, vaultFactory *vault.Factory, retryCfg retry.Config, logger zerolog.Logger) *CardService {
	return &CardService{
		fingerprintKey: fingerprintKey,
		vaultFactory:   vaultFactory,
		retryCfg:       retryCfg,
		logger:         logger,
	}
}

// ValidateAndTokenize checks a card input in a fixed fail-fast order: PAN
// length/format, Luhn, brand, expiry, CVV, holder name, duplicate
// fingerprint. Exactly one error is surfaced per failed call and no field
// beyond the failing one is interpreted as validated. The caller's
// fingerprint set is only read; on success the caller is responsible for
// adding the new fingerprint and handing the result to the vault.
func (s *CardService) ValidateAndTokenize(ctx context.Context, input card.Input, existing card.FingerprintSet) (*card.ValidatedCard, error) {
	pan := card.NormalizePAN(input.PAN)

	// 1. PAN length/format
	if len(pan) < card.PanMinLength || len(pan) > card.PanMaxLength {
		return nil, domainErrors.ErrInvalidPan
	}

	// 2. Luhn (also rejects non-digit content)
	if !card.IsLuhnValid(pan) {
		return nil, domainErrors.ErrInvalidPan
	}

	// 3. Brand must resolve, and the full PAN length must fit it
	brand := card.DetectBrand(pan)
	if brand == card.BrandUnknown || !brand.ValidPanLength(len(pan)) {
		return nil, domainErrors.ErrInvalidPan
	}

	// 4. Expiry
	if !card.ValidateExpiry(input.ExpMonth, input.ExpYear, time.Now()) {
		return nil, domainErrors.ErrInvalidExpiry
	}

	// 5. CVV length depends on the resolved brand
	if !card.ValidateCVV(input.CVV, brand) {
		return nil, domainErrors.ErrInvalidCvv
	}

	// 6. Holder name
	if !card.ValidateHolderName(input.HolderName) {
		return nil, domainErrors.ErrInvalidHolderName
	}

	// 7. Duplicate fingerprint, always last in the order
	fp := card.ComputeFingerprint(pan, s.fingerprintKey)
	if existing != nil {
		dup, err := existing.Contains(ctx, fp)
		if err != nil {
			return nil, fmt.Errorf("fingerprint lookup: %w", err)
		}
		if dup {
			return nil, domainErrors.ErrDuplicateCard
		}
	}

	return &card.ValidatedCard{
		Brand:       brand,
		LuhnValid:   true,
		ExpiryValid: true,
		CvvValid:    true,
		MaskedPAN:   card.MaskPAN(pan),
		Fingerprint: fp,
	}, nil
}

// EnrollCard hands a validated card's sanitized reference to the named
// vault and returns its opaque payment-method identifier. The call goes
// through the vault's circuit breaker with bounded exponential backoff.
func (s *CardService) EnrollCard(ctx context.Context, vaultName string, vc *card.ValidatedCard, expMonth, expYear int) (string, error) {
	v, breaker, err := s.vaultFactory.Get(vaultName)
	if err != nil {
		return "", err
	}

	result, err := retry.DoWithResult(ctx, s.retryCfg, func() (*vault.TokenizeResult, error) {
		return breaker.Execute(func() (*vault.TokenizeResult, error) {
			return v.Tokenize(ctx, vault.TokenizeRequest{
				Brand:       string(vc.Brand),
				MaskedPAN:   vc.MaskedPAN,
				Fingerprint: string(vc.Fingerprint),
				ExpMonth:    expMonth,
				ExpYear:     expYear,
			})
		})
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("vault", vaultName).Msg("vault tokenize failed")
		return "", fmt.Errorf("vault tokenize: %w", err)
	}

	return result.PaymentMethodID, nil
}
