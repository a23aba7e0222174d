package editing

import (
	"errors"

	"github.com/pwnflow/pwnflow-cli/internal/models"
)

var errNoCommitFunc = errors.New("no commit function registered")

// ApplyServerValue решает, может ли входящее серверное значение перезаписать
// то, что сейчас видит пользователь. Возвращает true, если вызывающая
// сторона должна применить значение (например, пропатчить кэш).
//
// Правило: если поле в фокусе И по нему открыта сессия редактирования -
// обновление подавляется, чтобы не затереть набираемый текст. Во всех
// остальных случаях серверное значение побеждает, а сессия (если была)
// закрывается. Это эвристика, а не протокол разрешения конфликтов:
// одновременные правки двух клиентов сводятся к last-write-wins.
func (s *Store) ApplyServerValue(entityID, field, serverValue string) bool {
	ref := models.FieldRef{EntityID: entityID, Field: field}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, hasSession := s.sessions[ref]

	if s.focused[ref] && hasSession {
		s.logger.Debug("Suppressing server update for field being edited",
			"entity_id", entityID,
			"field", field)
		return false
	}

	if !hasSession && s.lastApplied[ref] == serverValue {
		// То же значение уже применялось - перерисовка не нужна
		return false
	}

	if hasSession {
		// Поле не в фокусе: серверное значение вытесняет локальное
		if sess.timer != nil {
			sess.timer.Stop()
		}
		delete(s.sessions, ref)
	}

	s.lastApplied[ref] = serverValue
	return true
}

// ResetEntity сбрасывает все сессии и маркеры сущности. Вызывается при
// удалении сущности на сервере.
func (s *Store) ResetEntity(entityID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for ref, sess := range s.sessions {
		if ref.EntityID == entityID {
			if sess.timer != nil {
				sess.timer.Stop()
			}
			delete(s.sessions, ref)
		}
	}
	for ref := range s.focused {
		if ref.EntityID == entityID {
			delete(s.focused, ref)
		}
	}
	for ref := range s.lastApplied {
		if ref.EntityID == entityID {
			delete(s.lastApplied, ref)
		}
	}
}
