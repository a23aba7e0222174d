package cache

// entrySnapshot хранит значение ключа и факт его присутствия в кэше
type entrySnapshot struct {
	value   any
	present bool
}

// Tx - optimistic-транзакция над кэшем: перед мутацией снимается снапшот
// затронутых ключей, после ответа сервера транзакция либо подтверждается,
// либо откатывается ровно к снапшоту.
type Tx struct {
	store    *Store
	saved    map[Key]entrySnapshot
	finished bool
}

// Begin снимает снапшот перечисленных ключей и открывает транзакцию.
// Модификации выполняются обычными Set поверх открытой транзакции.
func (s *Store) Begin(keys ...Key) *Tx {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := make(map[Key]entrySnapshot, len(keys))
	for _, key := range keys {
		value, ok := s.entries[key]
		saved[key] = entrySnapshot{value: value, present: ok}
	}
	return &Tx{store: s, saved: saved}
}

// Commit подтверждает транзакцию: оптимистичные значения уже заменены
// серверными самим вызывающим, снапшот больше не нужен.
func (t *Tx) Commit() {
	t.finished = true
	t.saved = nil
}

// Rollback восстанавливает все затронутые ключи ровно в состояние на
// момент Begin. Повторный вызов после Commit/Rollback - no-op.
func (t *Tx) Rollback() {
	if t.finished {
		return
	}
	t.finished = true

	t.store.mu.Lock()
	var watchers []chan struct{}
	for key, snap := range t.saved {
		if snap.present {
			t.store.entries[key] = snap.value
		} else {
			delete(t.store.entries, key)
		}
		watchers = append(watchers, t.store.watchers[key]...)
	}
	t.store.mu.Unlock()

	notifyAll(watchers)
	t.saved = nil
}
