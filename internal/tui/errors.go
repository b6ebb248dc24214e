// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-sif-keeper/internal/service"
	"github.com/MKhiriev/go-sif-keeper/models"
)

var errorMessages = []struct {
	target  error
	message string
}{
	{service.ErrEmptyMasterPassword, "Введите мастер-пароль"},
	{service.ErrWrongMasterPassword, "Неверный мастер-пароль"},
	{service.ErrDecryptNotFetched, "Нужно подтверждение на устройстве-компаньоне (f)"},
	{service.ErrDecryptDenied, "Уровень секретности запрещает расшифровку"},
	{service.ErrDecryptCrypto, "Не удалось расшифровать поле"},
	{service.ErrFetchTimeout, "Компаньон не ответил вовремя"},
	{service.ErrFetchDenied, "Компаньон отказал в доступе"},
	{service.ErrEditInProgress, "Уже редактируется другое поле"},
	{service.ErrEditCancelled, "Редактирование отменено"},
	{service.ErrNotEditing, "Нет открытого редактирования"},
	{service.ErrWriterClosed, "Хранилище закрывается, изменения не принимаются"},
	{service.ErrPersistConflict, "Запись изменена в другом месте, откройте её заново"},
	{service.ErrFieldNotSupported, "Поле не поддерживается этим типом записи"},
	{service.ErrInvalidItem, "Некорректные данные записи"},
	{service.ErrItemNotLoaded, "Запись не загружена"},
	{errNameRequired, "Название обязательно"},
	{errInvalidResetMinutes, "Время доступа: целое положительное число минут"},
}

// humanizeError turns a service error into a message for the user.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}
	for _, e := range errorMessages {
		if errors.Is(err, e.target) {
			return e.message
		}
	}
	if errors.Is(err, service.ErrFetchTransport) || errors.Is(err, service.ErrDecryptTransport) {
		return humanizeCompanionUnavailableError(err)
	}
	return err.Error()
}

func humanizeCompanionUnavailableError(err error) string {
	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") {
		return "Отсутствует сеть или компаньон недоступен"
	}
	return "Ошибка связи с компаньоном: " + err.Error()
}

func decryptErrorText(kind models.DecryptErrorKind) string {
	switch kind {
	case models.DecryptDenied:
		return "доступ запрещён"
	case models.DecryptNotFetched:
		return "нужен запрос к компаньону"
	case models.DecryptTransport:
		return "ошибка связи"
	case models.DecryptCrypto:
		return "повреждённые данные"
	default:
		return "ошибка"
	}
}
