package qr

import "strings"

// PayloadType discriminates the two payload shapes a payment QR can carry.
type PayloadType string

const (
	TypeBankAccount PayloadType = "bank"
	TypeUser        PayloadType = "user"
)

// Payload is the tagged union carried by a payment QR string. The union is
// closed: only BankAccountPayload and UserPayload implement it.
type Payload interface {
	Type() PayloadType
}

// BankAccountPayload identifies a bank account for payment routing. Only the
// masked account number is ever carried; the full number never reaches an
// encoded string.
type BankAccountPayload struct {
	BankName            string
	MaskedAccountNumber string
	RoutingHint         string
}

func (BankAccountPayload) Type() PayloadType { return TypeBankAccount }

// UserPayload identifies a user by their opaque identifier.
type UserPayload struct {
	UserID string
}

func (UserPayload) Type() PayloadType { return TypeUser }

// NewBankAccountPayload masks the account number before it can be encoded.
func NewBankAccountPayload(bankName, accountNumber, routingHint string) BankAccountPayload {
	return BankAccountPayload{
		BankName:            bankName,
		MaskedAccountNumber: MaskAccountNumber(accountNumber),
		RoutingHint:         routingHint,
	}
}

// MaskAccountNumber keeps only the last four characters for display.
func MaskAccountNumber(n string) string {
	if len(n) <= 4 {
		return strings.Repeat("*", len(n))
	}
	return strings.Repeat("*", len(n)-4) + n[len(n)-4:]
}
