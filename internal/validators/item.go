package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sif-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldKind targets the item kind.
	FieldKind = "kind"

	// FieldSecurityTier targets the security tier.
	FieldSecurityTier = "security_tier"

	// FieldName targets the public display name.
	FieldName = "name"

	// FieldSecrets targets the cleartext secrets of a template.
	FieldSecrets = "secrets"
)

// ItemValidator implements [Validator] for item identities and templates,
// by value or pointer.
type ItemValidator struct{}

// NewItemValidator returns an [ItemValidator] as a [Validator].
func NewItemValidator() Validator {
	return &ItemValidator{}
}

// Validate dispatches on the type of obj. With no fields every rule of the
// type is checked.
func (v *ItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ItemID:
		return v.validateItemID(value)
	case *models.ItemID:
		return v.validateItemID(*value)

	case models.ItemTemplate:
		return v.validateTemplate(value, fields...)
	case *models.ItemTemplate:
		return v.validateTemplate(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ItemValidator) validateItemID(id models.ItemID) error {
	if id.DeviceID == "" || id.VaultID == "" || id.ItemID == "" {
		return ErrEmptyItemID
	}
	return nil
}

func (v *ItemValidator) validateTemplate(tmpl models.ItemTemplate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKind, FieldSecurityTier, FieldName, FieldSecrets}
	}

	for _, f := range fields {
		switch f {
		case FieldKind:
			if len(tmpl.Kind.Fields()) == 0 {
				return fmt.Errorf("%w: %d", ErrInvalidKind, tmpl.Kind)
			}
		case FieldSecurityTier:
			if tmpl.SecurityTier < models.Secret || tmpl.SecurityTier > models.TopSecret {
				return fmt.Errorf("%w: %d", ErrInvalidTier, tmpl.SecurityTier)
			}
		case FieldName:
			if tmpl.Content.Name == "" {
				return ErrEmptyName
			}
		case FieldSecrets:
			probe := models.Item{Kind: tmpl.Kind}
			for field := range tmpl.Secrets {
				if !probe.HasField(field) {
					return fmt.Errorf("%w: %s", ErrUnsupportedSecret, field)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
