package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-sif-keeper/models"
)

var (
	createKinds = []models.ItemKind{models.Login, models.SecureNote, models.PaymentCard}
	createTiers = []models.SecurityTier{models.Secret, models.HighlySecret, models.TopSecret}
)

var (
	errNameRequired        = errors.New("name is required")
	errInvalidResetMinutes = errors.New("reset minutes must be a positive integer")
)

type inputTarget int

const (
	targetName inputTarget = iota
	targetUsername
	targetURI
	targetCardHolder
	targetSecret
	targetResetMinutes
)

type createInput struct {
	label  string
	target inputTarget
	field  models.FieldName
	input  textinput.Model
}

// createModel is the new item form. The first two rows pick the kind and
// the tier with left/right; the rest are text inputs for the chosen kind.
type createModel struct {
	kindIdx    int
	tierIdx    int
	inputs     []createInput
	focus      int
	submitting bool
}

func newCreateModel() createModel {
	m := createModel{tierIdx: 1}
	m.rebuildInputs()
	return m
}

func (m createModel) kind() models.ItemKind     { return createKinds[m.kindIdx] }
func (m createModel) tier() models.SecurityTier { return createTiers[m.tierIdx] }
func (m createModel) rows() int                 { return 2 + len(m.inputs) }

// rebuildInputs lays out the inputs of the current kind, keeping values
// typed into inputs that survive the change.
func (m *createModel) rebuildInputs() {
	old := make(map[string]string, len(m.inputs))
	for _, in := range m.inputs {
		old[in.label] = in.input.Value()
	}

	inputs := []createInput{newCreateInput("Название", targetName, "")}
	switch m.kind() {
	case models.Login:
		inputs = append(inputs,
			newCreateInput("Логин", targetUsername, ""),
			newCreateInput("URI", targetURI, ""))
	case models.PaymentCard:
		inputs = append(inputs, newCreateInput("Владелец", targetCardHolder, ""))
	}
	for _, f := range m.kind().Fields() {
		inputs = append(inputs, newCreateInput(fieldLabel(f), targetSecret, f))
	}
	inputs = append(inputs, newCreateInput("Доступ, мин", targetResetMinutes, ""))

	for i := range inputs {
		if v, ok := old[inputs[i].label]; ok {
			inputs[i].input.SetValue(v)
		}
	}
	m.inputs = inputs
	if m.focus >= m.rows() {
		m.focus = m.rows() - 1
	}
	m.applyFocus()
}

func newCreateInput(label string, target inputTarget, field models.FieldName) createInput {
	in := textinput.New()
	in.Width = 40
	in.CharLimit = 1024
	if target == targetSecret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	if target == targetResetMinutes {
		in.Placeholder = "по умолчанию"
		in.CharLimit = 6
	}
	return createInput{label: label, target: target, field: field, input: in}
}

func (m *createModel) applyFocus() {
	for i := range m.inputs {
		if i == m.focus-2 {
			m.inputs[i].input.Focus()
		} else {
			m.inputs[i].input.Blur()
		}
	}
}

func (m *createModel) focusNext() {
	m.focus = (m.focus + 1) % m.rows()
	m.applyFocus()
}

func (m *createModel) focusPrev() {
	m.focus = (m.focus - 1 + m.rows()) % m.rows()
	m.applyFocus()
}

// shift moves the selector under focus. It reports false when the focus
// is on a text input.
func (m *createModel) shift(delta int) bool {
	switch m.focus {
	case 0:
		m.kindIdx = (m.kindIdx + delta + len(createKinds)) % len(createKinds)
		m.rebuildInputs()
		return true
	case 1:
		m.tierIdx = (m.tierIdx + delta + len(createTiers)) % len(createTiers)
		return true
	default:
		return false
	}
}

func (m createModel) toTemplate() (models.ItemTemplate, error) {
	tmpl := models.ItemTemplate{
		Kind:         m.kind(),
		SecurityTier: m.tier(),
		Secrets:      make(map[models.FieldName]string),
	}

	for _, in := range m.inputs {
		value := in.input.Value()
		switch in.target {
		case targetName:
			tmpl.Content.Name = strings.TrimSpace(value)
		case targetUsername:
			tmpl.Content.Username = strings.TrimSpace(value)
		case targetURI:
			if uri := strings.TrimSpace(value); uri != "" {
				tmpl.Content.URIs = []string{uri}
			}
		case targetCardHolder:
			tmpl.Content.CardHolder = strings.TrimSpace(value)
		case targetSecret:
			if value != "" {
				tmpl.Secrets[in.field] = value
			}
		case targetResetMinutes:
			value = strings.TrimSpace(value)
			if value == "" {
				continue
			}
			minutes, err := strconv.ParseUint(value, 10, 32)
			if err != nil || minutes == 0 {
				return models.ItemTemplate{}, errInvalidResetMinutes
			}
			v := uint32(minutes)
			tmpl.SIFResetMinutes = &v
		}
	}

	if tmpl.Content.Name == "" {
		return models.ItemTemplate{}, errNameRequired
	}
	if number, ok := tmpl.Secrets[models.FieldCardNumber]; ok {
		tmpl.Content.CardMask = cardMask(number)
	}
	return tmpl, nil
}

func (m createModel) View() string {
	var b strings.Builder

	selector := func(row int, label, value string) {
		cursor := "  "
		if m.focus == row {
			cursor = "> "
		}
		b.WriteString(cursor + label + ": ‹ " + value + " ›\n")
	}
	selector(0, "Тип    ", kindName(m.kind()))
	selector(1, "Уровень", tierName(m.tier()))
	b.WriteString("\n")

	for i, in := range m.inputs {
		cursor := "  "
		if m.focus == i+2 {
			cursor = "> "
		}
		b.WriteString(cursor + in.label + ": [" + in.input.View() + "]\n")
	}

	if m.submitting {
		b.WriteString("\nСохраняем...\n")
	}

	return renderPage("НОВАЯ ЗАПИСЬ", b.String(), "tab: следующее поле  ←/→: выбрать  enter: сохранить  esc: отмена")
}
