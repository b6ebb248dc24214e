package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/MKhiriev/go-sif-keeper/models"
)

type listModel struct {
	items   []models.Item
	idx     int
	loading bool
	spinner spinner.Model
	status  string
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s, loading: true}
}

func (m listModel) current() (models.Item, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Item{}, false
	}
	return m.items[m.idx], true
}

func (m *listModel) setItems(items []models.Item) {
	m.items = items
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m listModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " Загрузка...\n")
	case len(m.items) == 0:
		b.WriteString("Нет записей\n")
	default:
		for i, item := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			fmt.Fprintf(&b, "%s%s %s %-32s %s\n",
				cursor, kindIcon(item.Kind), availabilityMark(item),
				fitText(item.Content.Name, 32), helpStyle.Render(tierName(item.SecurityTier)))
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage("SIF KEEPER",
		b.String(),
		"enter: открыть  n: новая  d: удалить  r: обновить  L: заблокировать  v: о программе  q: выход")
}
