package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-sif-keeper/models"
)

// editModel edits one secure field. Every change is staged right away;
// the field manager re-encrypts it in the background.
type editModel struct {
	id     models.ItemID
	name   string
	field  models.FieldName
	input  textinput.Model
	staged string
	saving bool
}

func newEditModel(item models.Item, field models.FieldName, value string) editModel {
	in := textinput.New()
	in.CharLimit = 1024
	in.Width = 48
	in.SetValue(value)
	in.Focus()

	return editModel{
		id:     item.ID,
		name:   item.Content.Name,
		field:  field,
		input:  in,
		staged: value,
	}
}

// changed reports a value that has not been staged yet.
func (m editModel) changed() bool {
	return m.input.Value() != m.staged
}

func (m editModel) View() string {
	data := fieldLabel(m.field) + ": " + draftStyle.Render(m.input.View())
	if m.saving {
		data += "\n\nСохраняем..."
	}
	return renderPage("РЕДАКТИРОВАНИЕ: "+m.name, data, "enter: сохранить  esc: отменить")
}
