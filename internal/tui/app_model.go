package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-sif-keeper/models"
)

type screen int

const (
	screenLogin screen = iota
	screenList
	screenDetail
	screenEdit
	screenCreate
)

type appModel struct {
	ctx           context.Context
	deps          deps
	buildInfo     models.AppBuildInfo
	currentScreen screen

	login  loginModel
	list   listModel
	detail detailModel
	edit   editModel
	create createModel

	showBuildInfo bool
	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete models.ItemID
	quitByUser    bool
}

func newAppModel(ctx context.Context, d deps, buildInfo models.AppBuildInfo) appModel {
	return appModel{
		ctx:           ctx,
		deps:          d,
		buildInfo:     buildInfo,
		currentScreen: screenLogin,
		login:         newLoginModel(),
		list:          newListModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, cmdTick())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitByUser = true
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showBuildInfo {
			m.showBuildInfo = false
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete.IsZero() {
					return m, nil
				}
				id := m.pendingDelete
				m.pendingDelete = models.ItemID{}
				return m, m.cmdDeleteItem(id)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = models.ItemID{}
			}
			return m, nil
		}
	case spinner.TickMsg:
		var listCmd, detailCmd tea.Cmd
		m.list.spinner, listCmd = m.list.spinner.Update(msg)
		m.detail.spinner, detailCmd = m.detail.spinner.Update(msg)
		return m, tea.Batch(listCmd, detailCmd)
	case tickMsg:
		return m.refresh()
	case vaultOpenedMsg:
		m.login.submitting = false
		if msg.err != nil {
			m.login.status = errorStyle.Render(humanizeError(msg.err))
			return m, nil
		}
		m.login.input.SetValue("")
		m.login.status = ""
		m.currentScreen = screenList
		m.list.loading = true
		if msg.created {
			m.list.status = "Создано новое хранилище"
		}
		return m, tea.Batch(m.cmdLoadList(), m.list.spinner.Tick, cmdClearStatus())
	case vaultLockedMsg:
		m.login = newLoginModel()
		m.list = newListModel()
		m.detail = detailModel{}
		m.currentScreen = screenLogin
		return m, textinput.Blink
	case listLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.list.setItems(msg.items)
		return m, nil
	case displayMsg:
		if m.currentScreen == screenDetail && m.detail.item.ID == msg.id {
			m.detail.mergeStates(msg.states)
		}
		return m, nil
	case fetchDoneMsg:
		if m.detail.item.ID != msg.id {
			return m, nil
		}
		m.detail.fetching = false
		if msg.err != nil {
			m.detail.status = errorStyle.Render(humanizeError(msg.err))
			return m, cmdClearStatus()
		}
		if item, ok := m.deps.fields.Item(msg.id); ok {
			m.detail.item = item
		}
		return m, m.cmdDisplay(msg.id, m.detail.refreshReveal())
	case editOpenedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.edit = newEditModel(m.detail.item, msg.field, msg.value)
		m.currentScreen = screenEdit
		return m, textinput.Blink
	case stagedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
		}
		return m, nil
	case editClosedMsg:
		m.edit.saving = false
		m.currentScreen = screenDetail
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
		} else if msg.committed {
			m.detail.status = "Сохранено"
		}
		if item, ok := m.deps.fields.Item(msg.id); ok {
			m.detail.item = item
		}
		return m, tea.Batch(m.cmdDisplay(msg.id, m.detail.refreshReveal()), cmdClearStatus())
	case itemCreatedMsg:
		m.create.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.currentScreen = screenList
		m.list.loading = true
		m.list.status = "Запись создана"
		return m, tea.Batch(m.cmdLoadList(), m.list.spinner.Tick, cmdClearStatus())
	case itemDeletedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.currentScreen = screenList
		m.list.setItems(m.deps.fields.Items())
		return m, nil
	case copiedMsg:
		status := "Скопировано!"
		if msg.err != nil {
			status = errorStyle.Render(humanizeError(msg.err))
		}
		if m.currentScreen == screenDetail {
			m.detail.status = status
		}
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.detail.status = ""
		m.list.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenEdit:
		return m.updateEdit(msg)
	case screenCreate:
		return m.updateCreate(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenLogin:
		body = m.login.View()
	case screenList:
		body = m.list.View()
	case screenDetail:
		body = m.detail.View()
	case screenEdit:
		body = m.edit.View()
	case screenCreate:
		body = m.create.View()
	}

	if m.showBuildInfo {
		body += "\n\n" + renderBuildInfoWindow(m.buildInfo)
	}
	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// refresh runs on every tick. Items the field manager expired meanwhile
// lose their availability mark, and the detail screen re-renders its
// fields without spending TopSecret grants.
func (m appModel) refresh() (tea.Model, tea.Cmd) {
	next := cmdTick()

	switch m.currentScreen {
	case screenList:
		if !m.list.loading {
			m.list.setItems(m.deps.fields.Items())
		}
	case screenDetail:
		id := m.detail.item.ID
		item, ok := m.deps.fields.Item(id)
		if !ok {
			m.currentScreen = screenList
			m.list.setItems(m.deps.fields.Items())
			return m, next
		}
		m.detail.item = item
		m.detail.expiry, m.detail.hasExpiry = m.deps.fields.ExpiryProgress(id)
		if m.detail.fetching {
			return m, next
		}
		return m, tea.Batch(next, m.cmdDisplay(id, m.detail.refreshReveal()))
	}
	return m, next
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.login.submitting {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.quitByUser = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.enter):
			m.login.submitting = true
			m.login.status = ""
			return m, m.cmdOpenVault(m.login.input.Value())
		}
	}

	var cmd tea.Cmd
	m.login.input, cmd = m.login.input.Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.items)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		item, ok := m.list.current()
		if !ok {
			return m, nil
		}
		return m.openDetail(item)
	case key.Matches(keyMsg, keys.newItem):
		m.create = newCreateModel()
		m.currentScreen = screenCreate
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.delete):
		item, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.askDelete(item)
	case key.Matches(keyMsg, keys.reload):
		m.list.loading = true
		return m, tea.Batch(m.cmdLoadList(), m.list.spinner.Tick)
	case key.Matches(keyMsg, keys.lock):
		return m, m.cmdLockVault()
	case key.Matches(keyMsg, keys.about):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) openDetail(item models.Item) (tea.Model, tea.Cmd) {
	m.detail = newDetailModel(item)
	m.detail.expiry, m.detail.hasExpiry = m.deps.fields.ExpiryProgress(item.ID)
	m.currentScreen = screenDetail
	return m, m.cmdDisplay(item.ID, m.detail.refreshReveal())
}

func (m *appModel) askDelete(item models.Item) {
	m.pendingDelete = item.ID
	m.confirm = confirmModel{message: item.Content.Name}
	m.showConfirm = true
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	id := m.detail.item.ID
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
		m.list.setItems(m.deps.fields.Items())
	case key.Matches(keyMsg, keys.up):
		if m.detail.idx > 0 {
			m.detail.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.detail.idx < len(m.detail.fields())-1 {
			m.detail.idx++
		}
	case key.Matches(keyMsg, keys.reveal):
		field, ok := m.detail.currentField()
		if !ok {
			return m, nil
		}
		reveal := !m.detail.revealed[field]
		m.detail.revealed[field] = reveal
		if !reveal {
			// drop the shown cleartext right away
			delete(m.detail.states, field)
		}
		return m, m.cmdDisplay(id, map[models.FieldName]bool{field: reveal})
	case key.Matches(keyMsg, keys.fetch):
		if m.detail.fetching || m.detail.item.SecurityTier == models.Secret {
			return m, nil
		}
		m.detail.fetching = true
		return m, tea.Batch(m.cmdFetch(id), m.detail.spinner.Tick)
	case key.Matches(keyMsg, keys.edit):
		field, ok := m.detail.currentField()
		if !ok {
			return m, nil
		}
		return m, m.cmdBeginEdit(id, field)
	case key.Matches(keyMsg, keys.copy):
		field, ok := m.detail.currentField()
		if !ok {
			return m, nil
		}
		return m, m.cmdCopy(id, field)
	case key.Matches(keyMsg, keys.delete):
		m.askDelete(m.detail.item)
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.edit.saving {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.edit.saving = true
			return m, m.cmdCancelEdit(m.edit.id)
		case key.Matches(keyMsg, keys.enter):
			m.edit.saving = true
			if m.edit.changed() {
				// the last keystroke must be staged before the commit
				value := m.edit.input.Value()
				m.edit.staged = value
				return m, tea.Sequence(m.cmdStage(m.edit.id, value), m.cmdCommitEdit(m.edit.id))
			}
			return m, m.cmdCommitEdit(m.edit.id)
		}
	}

	var cmd tea.Cmd
	m.edit.input, cmd = m.edit.input.Update(msg)
	if m.edit.saving || !m.edit.changed() {
		return m, cmd
	}
	value := m.edit.input.Value()
	m.edit.staged = value
	return m, tea.Batch(cmd, m.cmdStage(m.edit.id, value))
}

func (m appModel) updateCreate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.create.submitting {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab), keyMsg.Type == tea.KeyDown:
			m.create.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab), keyMsg.Type == tea.KeyUp:
			m.create.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.left):
			if m.create.shift(-1) {
				return m, nil
			}
		case key.Matches(keyMsg, keys.right):
			if m.create.shift(1) {
				return m, nil
			}
		case key.Matches(keyMsg, keys.enter):
			tmpl, err := m.create.toTemplate()
			if err != nil {
				m.showErrorf(humanizeError(err))
				return m, nil
			}
			m.create.submitting = true
			return m, m.cmdCreateItem(tmpl)
		}
	}

	if m.create.focus < 2 {
		return m, nil
	}
	var cmd tea.Cmd
	i := m.create.focus - 2
	m.create.inputs[i].input, cmd = m.create.inputs[i].input.Update(msg)
	return m, cmd
}
