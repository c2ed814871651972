package qr

import (
	"net/url"
	"strconv"
	"strings"

	domainErrors "github.com/KDR9MGR/digital-payments-core/internal/domain/errors"
)

// Wire format: schemeTag|version|type|field... with per-field
// percent-escaping so the separator can appear inside field values.
const (
	schemeTag = "dpqr"
	version   = "1"
	separator = "|"
)

// Encode renders a payload as a single QR/clipboard string. It is total:
// every payload constructible by this package encodes.
func Encode(p Payload) string {
	switch v := p.(type) {
	case BankAccountPayload:
		return strings.Join([]string{
			schemeTag, version, string(TypeBankAccount),
			escape(v.BankName), escape(v.MaskedAccountNumber), escape(v.RoutingHint),
		}, separator)
	case UserPayload:
		return strings.Join([]string{
			schemeTag, version, string(TypeUser),
			escape(v.UserID),
		}, separator)
	default:
		// The union is closed; nothing else implements Payload.
		return ""
	}
}

// Decode parses a QR string back into a payload. It never panics: foreign
// strings yield ErrUnrecognizedScheme, known-scheme strings from a newer
// encoder yield ErrUnsupportedVersion, and anything structurally wrong
// yields ErrMalformedField.
func Decode(s string) (Payload, error) {
	parts := strings.Split(s, separator)
	if len(parts) < 3 || parts[0] != schemeTag {
		return nil, domainErrors.ErrUnrecognizedScheme
	}

	if parts[1] != version {
		if _, err := strconv.Atoi(parts[1]); err != nil {
			return nil, domainErrors.ErrMalformedField
		}
		return nil, domainErrors.ErrUnsupportedVersion
	}

	switch PayloadType(parts[2]) {
	case TypeBankAccount:
		if len(parts) != 6 {
			return nil, domainErrors.ErrMalformedField
		}
		bankName, err := unescape(parts[3])
		if err != nil {
			return nil, err
		}
		masked, err := unescape(parts[4])
		if err != nil {
			return nil, err
		}
		routingHint, err := unescape(parts[5])
		if err != nil {
			return nil, err
		}
		if bankName == "" || masked == "" {
			return nil, domainErrors.ErrMalformedField
		}
		return BankAccountPayload{
			BankName:            bankName,
			MaskedAccountNumber: masked,
			RoutingHint:         routingHint,
		}, nil

	case TypeUser:
		if len(parts) != 4 {
			return nil, domainErrors.ErrMalformedField
		}
		userID, err := unescape(parts[3])
		if err != nil {
			return nil, err
		}
		if userID == "" {
			return nil, domainErrors.ErrMalformedField
		}
		return UserPayload{UserID: userID}, nil

	default:
		return nil, domainErrors.ErrMalformedField
	}
}

func escape(field string) string {
	return url.QueryEscape(field)
}

func unescape(field string) (string, error) {
	v, err := url.QueryUnescape(field)
	if err != nil {
		return "", domainErrors.ErrMalformedField
	}
	return v, nil
}
