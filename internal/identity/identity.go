// Package identity содержит identity map: не более одного живого экземпляра
// на идентификатор строки в пределах владельца карты.
//
// Карта не синхронизирована. Её время жизни совпадает с временем жизни
// сессии, которая её создала.
package identity

// Map сопоставляет идентификатор строки живому экземпляру
type Map[T any] struct {
	items map[int64]T
}

// New создаёт пустую карту
func New[T any]() *Map[T] {
	return &Map[T]{items: make(map[int64]T)}
}

// Get возвращает экземпляр, зарегистрированный под id
func (m *Map[T]) Get(id int64) (T, bool) {
	item, ok := m.items[id]
	return item, ok
}

// Put регистрирует экземпляр под id, заменяя прежний
func (m *Map[T]) Put(id int64, item T) {
	m.items[id] = item
}

// Evict удаляет экземпляр из карты
func (m *Map[T]) Evict(id int64) {
	delete(m.items, id)
}

func (m *Map[T]) Len() int {
	return len(m.items)
}

// Reset очищает карту, например после удаления таблицы
func (m *Map[T]) Reset() {
	clear(m.items)
}
