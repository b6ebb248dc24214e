package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-sif-keeper/models"
)

const (
	tickInterval      = 500 * time.Millisecond
	statusLifetime    = 2 * time.Second
	clipboardLifetime = 30 * time.Second
)

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

func (m appModel) cmdOpenVault(password string) tea.Cmd {
	ctx, vault := m.ctx, m.deps.vault
	return func() tea.Msg {
		created, err := vault.Open(ctx, password)
		return vaultOpenedMsg{created: created, err: err}
	}
}

func (m appModel) cmdLockVault() tea.Cmd {
	ctx, vault := m.ctx, m.deps.vault
	return func() tea.Msg {
		vault.Lock(ctx)
		return vaultLockedMsg{}
	}
}

func (m appModel) cmdLoadList() tea.Cmd {
	ctx, items := m.ctx, m.deps.items
	return func() tea.Msg {
		list, err := items.LoadAll(ctx)
		return listLoadedMsg{items: list, err: err}
	}
}

// cmdDisplay computes display states of the given fields. reveal[field]
// asks for cleartext and may block on decryption.
func (m appModel) cmdDisplay(id models.ItemID, reveal map[models.FieldName]bool) tea.Cmd {
	ctx, fields := m.ctx, m.deps.fields
	return func() tea.Msg {
		states := make(map[models.FieldName]models.DisplayState, len(reveal))
		for field, r := range reveal {
			states[field] = fields.DisplayValue(ctx, id, field, r)
		}
		return displayMsg{id: id, states: states}
	}
}

func (m appModel) cmdFetch(id models.ItemID) tea.Cmd {
	ctx, fields := m.ctx, m.deps.fields
	return func() tea.Msg {
		return fetchDoneMsg{id: id, err: fields.Fetch(ctx, id, 0)}
	}
}

func (m appModel) cmdBeginEdit(id models.ItemID, field models.FieldName) tea.Cmd {
	ctx, fields := m.ctx, m.deps.fields
	return func() tea.Msg {
		value, err := fields.BeginEdit(ctx, id, field)
		return editOpenedMsg{id: id, field: field, value: value, err: err}
	}
}

func (m appModel) cmdStage(id models.ItemID, value string) tea.Cmd {
	ctx, fields := m.ctx, m.deps.fields
	return func() tea.Msg {
		return stagedMsg{err: fields.Stage(ctx, id, value)}
	}
}

func (m appModel) cmdCommitEdit(id models.ItemID) tea.Cmd {
	ctx, fields := m.ctx, m.deps.fields
	return func() tea.Msg {
		return editClosedMsg{id: id, committed: true, err: fields.CommitEdit(ctx, id)}
	}
}

func (m appModel) cmdCancelEdit(id models.ItemID) tea.Cmd {
	ctx, fields := m.ctx, m.deps.fields
	return func() tea.Msg {
		return editClosedMsg{id: id, err: fields.CancelEdit(ctx, id)}
	}
}

func (m appModel) cmdCreateItem(tmpl models.ItemTemplate) tea.Cmd {
	ctx, items := m.ctx, m.deps.items
	return func() tea.Msg {
		id, err := items.Create(ctx, tmpl)
		return itemCreatedMsg{id: id, err: err}
	}
}

func (m appModel) cmdDeleteItem(id models.ItemID) tea.Cmd {
	ctx, items := m.ctx, m.deps.items
	return func() tea.Msg {
		return itemDeletedMsg{err: items.Delete(ctx, id)}
	}
}

// cmdCopy decrypts a field and puts it on the clipboard. The clipboard is
// cleared again after clipboardLifetime unless it changed meanwhile.
func (m appModel) cmdCopy(id models.ItemID, field models.FieldName) tea.Cmd {
	ctx, fields := m.ctx, m.deps.fields
	return func() tea.Msg {
		value, err := fields.GetOrDecrypt(ctx, id, field)
		if err != nil {
			return copiedMsg{err: err}
		}
		if err := clipboardWrite(value); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		time.AfterFunc(clipboardLifetime, func() {
			if current, err := clipboard.ReadAll(); err == nil && current == value {
				_ = clipboardWrite("")
			}
		})
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusLifetime, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func cmdTick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
