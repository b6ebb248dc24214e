package tui

import (
	"strings"

	"github.com/MKhiriev/go-sif-keeper/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("  ctrl+c: выход"))

	return b.String()
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func kindName(k models.ItemKind) string {
	switch k {
	case models.Login:
		return "Логин"
	case models.SecureNote:
		return "Заметка"
	case models.PaymentCard:
		return "Банковская карта"
	default:
		return "Неизвестно"
	}
}

func kindIcon(k models.ItemKind) string {
	switch k {
	case models.Login:
		return "[P]"
	case models.SecureNote:
		return "[T]"
	case models.PaymentCard:
		return "[C]"
	default:
		return "[?]"
	}
}

func tierName(t models.SecurityTier) string {
	switch t {
	case models.Secret:
		return "секретно"
	case models.HighlySecret:
		return "совершенно секретно"
	case models.TopSecret:
		return "особой важности"
	default:
		return "неизвестно"
	}
}

func fieldLabel(f models.FieldName) string {
	switch f {
	case models.FieldPassword:
		return "Пароль"
	case models.FieldNote:
		return "Заметка"
	case models.FieldCardNumber:
		return "Номер карты"
	case models.FieldSecurityCode:
		return "CVV"
	case models.FieldExpirationDate:
		return "Срок"
	default:
		return string(f)
	}
}

// availabilityMark shows whether an item's fields can be decrypted now.
func availabilityMark(item models.Item) string {
	switch {
	case item.SecurityTier == models.Secret:
		return " "
	case item.SIFAvailable:
		return "●"
	default:
		return "○"
	}
}

func renderDisplayState(st models.DisplayState) string {
	switch st.Kind {
	case models.DisplayHidden:
		return hiddenStyle.Render("скрыто")
	case models.DisplayMasked:
		return st.Value
	case models.DisplayPlain:
		return plainStyle.Render(st.Value)
	case models.DisplayError:
		return errorStyle.Render("ошибка: " + decryptErrorText(st.ErrKind))
	default:
		return "-"
	}
}

// cardMask builds the public mask shown instead of a card number.
func cardMask(number string) string {
	digits := make([]rune, 0, len(number))
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) < 4 {
		return ""
	}
	return "•••• " + string(digits[len(digits)-4:])
}
