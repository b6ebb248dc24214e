package tui

import (
	"time"

	"github.com/MKhiriev/go-sif-keeper/models"
)

type vaultOpenedMsg struct {
	created bool
	err     error
}

type vaultLockedMsg struct{}

type listLoadedMsg struct {
	items []models.Item
	err   error
}

type displayMsg struct {
	id     models.ItemID
	states map[models.FieldName]models.DisplayState
}

type fetchDoneMsg struct {
	id  models.ItemID
	err error
}

type editOpenedMsg struct {
	id    models.ItemID
	field models.FieldName
	value string
	err   error
}

type stagedMsg struct {
	err error
}

type editClosedMsg struct {
	id        models.ItemID
	committed bool
	err       error
}

type itemCreatedMsg struct {
	id  models.ItemID
	err error
}

type itemDeletedMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}

type tickMsg time.Time
