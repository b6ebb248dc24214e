package models

// ItemKind defines the semantic type of a vault item.
// The value determines which secure fields the item carries.
type ItemKind int

const (
	// Login represents authentication credentials: a password and an
	// optional note.
	Login ItemKind = 1

	// SecureNote represents a free-form secret text.
	SecureNote ItemKind = 2

	// PaymentCard represents payment card information.
	// All card attributes except the mask are secure fields.
	PaymentCard ItemKind = 3
)

// FieldName names a secure field (SIF) of an item.
type FieldName string

const (
	FieldPassword       FieldName = "password"
	FieldNote           FieldName = "note"
	FieldCardNumber     FieldName = "card_number"
	FieldSecurityCode   FieldName = "security_code"
	FieldExpirationDate FieldName = "expiration_date"
)

// Fields returns the secure fields of the kind in display order.
// Unknown kinds carry no secure fields.
func (k ItemKind) Fields() []FieldName {
	switch k {
	case Login:
		return []FieldName{FieldPassword, FieldNote}
	case SecureNote:
		return []FieldName{FieldNote}
	case PaymentCard:
		return []FieldName{FieldCardNumber, FieldSecurityCode, FieldExpirationDate, FieldNote}
	default:
		return nil
	}
}

func (k ItemKind) String() string {
	switch k {
	case Login:
		return "login"
	case SecureNote:
		return "secure_note"
	case PaymentCard:
		return "payment_card"
	default:
		return "unknown"
	}
}

// SecurityTier classifies how long, if ever, an item's cleartext may be
// cached locally. TopSecret > HighlySecret > Secret.
type SecurityTier int

const (
	// Secret fields are always decryptable from local key material.
	Secret SecurityTier = 1

	// HighlySecret fields become decryptable after a fetch from the
	// companion device and expire after the item's reset budget.
	HighlySecret SecurityTier = 2

	// TopSecret fields require a fetch per access and are never cached.
	TopSecret SecurityTier = 3
)

func (t SecurityTier) String() string {
	switch t {
	case Secret:
		return "secret"
	case HighlySecret:
		return "highly_secret"
	case TopSecret:
		return "top_secret"
	default:
		return "unknown"
	}
}
