package card_test

import (
	"testing"

	"github.com/KDR9MGR/digital-payments-core/internal/domain/card"
	"github.com/stretchr/testify/assert"
)

func TestDetectBrand_FullPans(t *testing.T) {
	cases := map[string]card.Brand{
		"4532015112830366": card.BrandVisa,
		"4222222222222":    card.BrandVisa,
		"5555555555554444": card.BrandMastercard,
		"2221000000000009": card.BrandMastercard,
		"378282246310005":  card.BrandAmericanExpress,
		"341111111111111":  card.BrandAmericanExpress,
		"6011111111111117": card.BrandDiscover,
		"6511111111111119": card.BrandDiscover,
		"6445111111111111": card.BrandDiscover,
		"3530111333300000": card.BrandJCB,
		"9999999999999999": card.BrandUnknown,
	}
	for pan, want := range cases {
		assert.Equal(t, want, card.DetectBrand(pan), "pan %s", pan)
	}
}

func TestDetectBrand_PartialInput(t *testing.T) {
	// Detection must work while the number is still being typed.
	assert.Equal(t, card.BrandVisa, card.DetectBrand("4532"))
	assert.Equal(t, card.BrandAmericanExpress, card.DetectBrand("37"))
	assert.Equal(t, card.BrandMastercard, card.DetectBrand("5412"))
	assert.Equal(t, card.BrandMastercard, card.DetectBrand("2221"))
	assert.Equal(t, card.BrandDiscover, card.DetectBrand("6011"))
	assert.Equal(t, card.BrandJCB, card.DetectBrand("3530"))
	assert.Equal(t, card.BrandUnknown, card.DetectBrand("1"))
	assert.Equal(t, card.BrandUnknown, card.DetectBrand(""))
}

func TestDetectBrand_StableUnderPrefixing(t *testing.T) {
	// If a 4-digit prefix classifies, every longer PAN sharing it must
	// classify the same way.
	prefixes := []string{"4532", "5412", "2221", "3782", "6011", "6511", "6445", "3530"}
	for _, prefix := range prefixes {
		fromPrefix := card.DetectBrand(prefix)
		if fromPrefix == card.BrandUnknown {
			continue
		}
		full := prefix + "015112830366"
		assert.Equal(t, fromPrefix, card.DetectBrand(full[:16]), "prefix %s", prefix)
	}
}

func TestBrand_CVVLength(t *testing.T) {
	assert.Equal(t, 4, card.BrandAmericanExpress.CVVLength())
	assert.Equal(t, 3, card.BrandVisa.CVVLength())
	assert.Equal(t, 3, card.BrandMastercard.CVVLength())
	assert.Equal(t, 3, card.BrandUnknown.CVVLength())
}

func TestBrand_ValidPanLength(t *testing.T) {
	assert.True(t, card.BrandVisa.ValidPanLength(13))
	assert.True(t, card.BrandVisa.ValidPanLength(16))
	assert.False(t, card.BrandVisa.ValidPanLength(15))
	assert.True(t, card.BrandAmericanExpress.ValidPanLength(15))
	assert.False(t, card.BrandAmericanExpress.ValidPanLength(16))
	assert.True(t, card.BrandMastercard.ValidPanLength(16))
	assert.False(t, card.BrandMastercard.ValidPanLength(19))
	assert.True(t, card.BrandDiscover.ValidPanLength(19))
	assert.True(t, card.BrandJCB.ValidPanLength(16))
}
