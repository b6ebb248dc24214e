package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"

	"github.com/MKhiriev/go-sif-keeper/models"
)

type detailModel struct {
	item     models.Item
	idx      int
	revealed map[models.FieldName]bool
	states   map[models.FieldName]models.DisplayState

	// expiry is the elapsed fraction of the reset budget; hasExpiry is
	// false when no timer is armed.
	expiry    float64
	hasExpiry bool

	fetching bool
	spinner  spinner.Model
	progress progress.Model
	status   string
}

func newDetailModel(item models.Item) detailModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return detailModel{
		item:     item,
		revealed: make(map[models.FieldName]bool),
		states:   make(map[models.FieldName]models.DisplayState),
		spinner:  s,
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(30), progress.WithoutPercentage()),
	}
}

func (m detailModel) fields() []models.FieldName {
	return m.item.Kind.Fields()
}

func (m detailModel) currentField() (models.FieldName, bool) {
	fields := m.fields()
	if m.idx < 0 || m.idx >= len(fields) {
		return "", false
	}
	return fields[m.idx], true
}

// mergeStates applies freshly computed display states. A revealed
// TopSecret value is one-shot: the grant is gone once it has been shown,
// so the shown cleartext stays until the user hides it.
func (m *detailModel) mergeStates(states map[models.FieldName]models.DisplayState) {
	for field, st := range states {
		prev, ok := m.states[field]
		if ok && m.item.SecurityTier == models.TopSecret && m.revealed[field] &&
			prev.Kind == models.DisplayPlain && st.Kind != models.DisplayPlain {
			continue
		}
		m.states[field] = st
	}
}

// refreshReveal tells, per field, whether a periodic refresh may decrypt.
// TopSecret fields are never decrypted by a refresh.
func (m detailModel) refreshReveal() map[models.FieldName]bool {
	out := make(map[models.FieldName]bool, len(m.fields()))
	for _, f := range m.fields() {
		out[f] = m.revealed[f] && m.item.SecurityTier != models.TopSecret
	}
	return out
}

func (m detailModel) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Тип:        %s\n", kindName(m.item.Kind))
	fmt.Fprintf(&b, "Уровень:    %s\n", tierName(m.item.SecurityTier))
	switch m.item.Kind {
	case models.Login:
		fmt.Fprintf(&b, "Логин:      %s\n", valueOrDash(m.item.Content.Username))
		if len(m.item.Content.URIs) > 0 {
			fmt.Fprintf(&b, "URI:        %s\n", m.item.Content.URIs[0])
		}
	case models.PaymentCard:
		fmt.Fprintf(&b, "Владелец:   %s\n", valueOrDash(m.item.Content.CardHolder))
	}
	b.WriteString("\n")

	for i, field := range m.fields() {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		value := "-"
		if st, ok := m.states[field]; ok {
			value = renderDisplayState(st)
		}
		fmt.Fprintf(&b, "%s%-12s %s\n", cursor, fieldLabel(field)+":", value)
	}

	switch {
	case m.fetching:
		b.WriteString("\n" + m.spinner.View() + " Ожидаем подтверждения на компаньоне...\n")
	case m.hasExpiry:
		b.WriteString("\nДоступ истекает: " + m.progress.ViewAs(1-m.expiry) + "\n")
	case m.item.SecurityTier != models.Secret && !m.item.SIFAvailable:
		b.WriteString("\n" + hiddenStyle.Render("Поля скрыты, нажмите f для запроса к компаньону") + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage(strings.ToUpper(m.item.Content.Name),
		b.String(),
		"space: показать/скрыть  f: запросить  e: изменить  c: копировать  d: удалить  esc: назад")
}

func valueOrDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
