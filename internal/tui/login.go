// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// loginModel asks for the master password. The vault is created on first
// use, so there is no separate registration screen.
type loginModel struct {
	input      textinput.Model
	submitting bool
	status     string
}

func newLoginModel() loginModel {
	passwordInput := textinput.New()
	passwordInput.Placeholder = "мастер-пароль"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'
	passwordInput.Focus()

	return loginModel{input: passwordInput}
}

func (m loginModel) View() string {
	data := "Мастер-пароль: " + m.input.View()
	if m.submitting {
		data += "\n\nОткрываем хранилище..."
	}
	if m.status != "" {
		data += "\n\n" + m.status
	}
	return renderPage("SIF KEEPER: ВХОД", data, "enter: открыть  esc: выход")
}
