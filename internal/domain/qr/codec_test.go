package qr_test

import (
	"testing"

	domainErrors "github.com/KDR9MGR/digital-payments-core/internal/domain/errors"
	"github.com/KDR9MGR/digital-payments-core/internal/domain/qr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip_BankAccount(t *testing.T) {
	p := qr.NewBankAccountPayload("First National", "123456789012", "FN-ROUTE-7")
	encoded := qr.Encode(p)

	decoded, err := qr.Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, p, decoded)
}

func TestRoundTrip_User(t *testing.T) {
	p := qr.UserPayload{UserID: "usr_8f2c1a"}
	decoded, err := qr.Decode(qr.Encode(p))
	require.NoError(t, err)
	assert.Equal(t, p, decoded)
}

func TestRoundTrip_SeparatorInsideField(t *testing.T) {
	p := qr.NewBankAccountPayload("Pipe | Bank", "987654321", "a|b|c")
	decoded, err := qr.Decode(qr.Encode(p))
	require.NoError(t, err)
	assert.Equal(t, p, decoded)
}

func TestEncode_NeverCarriesFullAccountNumber(t *testing.T) {
	p := qr.NewBankAccountPayload("First National", "123456789012", "FN-ROUTE-7")
	assert.Equal(t, "********9012", p.MaskedAccountNumber)
	assert.NotContains(t, qr.Encode(p), "123456789012")
}

func TestDecode_ForeignStrings(t *testing.T) {
	cases := []string{
		"not-a-valid-qr-string",
		"",
		"https://example.com/pay?u=1",
		"otherscheme|1|user|abc",
	}
	for _, s := range cases {
		_, err := qr.Decode(s)
		assert.ErrorIs(t, err, domainErrors.ErrUnrecognizedScheme, "input %q", s)
	}
}

func TestDecode_UnsupportedVersion(t *testing.T) {
	_, err := qr.Decode("dpqr|2|user|abc")
	assert.ErrorIs(t, err, domainErrors.ErrUnsupportedVersion)

	_, err = qr.Decode("dpqr|99|bank|a|b|c")
	assert.ErrorIs(t, err, domainErrors.ErrUnsupportedVersion)
}

func TestDecode_MalformedFields(t *testing.T) {
	cases := []string{
		"dpqr|x|user|abc",      // non-numeric version
		"dpqr|1|user",          // missing field
		"dpqr|1|user|",         // empty user id
		"dpqr|1|user|abc|extra",
		"dpqr|1|bank|only|two",
		"dpqr|1|bank||****1234|hint", // empty bank name
		"dpqr|1|coupon|abc",          // unknown payload type
		"dpqr|1|user|%zz",            // broken escape
	}
	for _, s := range cases {
		_, err := qr.Decode(s)
		assert.ErrorIs(t, err, domainErrors.ErrMalformedField, "input %q", s)
	}
}

func TestMaskAccountNumber(t *testing.T) {
	assert.Equal(t, "********9012", qr.MaskAccountNumber("123456789012"))
	assert.Equal(t, "****", qr.MaskAccountNumber("1234"))
	assert.Equal(t, "**", qr.MaskAccountNumber("12"))
}
