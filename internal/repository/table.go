package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/org-structure-records/internal/domain"
	"github.com/org-structure-records/internal/identity"
	"gorm.io/gorm"
)

// record - сущность, которой хранилище назначает идентификатор
type record interface {
	ID() int64
	AssignID(id int64)
}

// row - модель GORM для строки таблицы
type row interface {
	key() int64
}

// table реализует общий шаблон: одна строка таблицы - один живой экземпляр
// в identity map сессии.
type table[E record, R row] struct {
	db    *gorm.DB
	name  string
	cache *identity.Map[E]

	toRow   func(e E) R
	load    func(ctx context.Context, r R) (E, error)
	refresh func(ctx context.Context, e E, r R) error
}

func (t *table[E, R]) createTable(ctx context.Context) error {
	m := t.db.WithContext(ctx).Migrator()
	if m.HasTable(new(R)) {
		return nil
	}
	if err := m.CreateTable(new(R)); err != nil {
		return t.storageErr("create table", err)
	}
	return nil
}

func (t *table[E, R]) dropTable(ctx context.Context) error {
	if err := t.db.WithContext(ctx).Migrator().DropTable(new(R)); err != nil {
		return t.storageErr("drop table", err)
	}
	t.cache.Reset()
	return nil
}

// save вставляет строку, назначает сгенерированный id и регистрирует экземпляр
func (t *table[E, R]) save(ctx context.Context, e E) error {
	if e.ID() != 0 {
		return fmt.Errorf("save %s %d: %w", t.name, e.ID(), domain.ErrAlreadyPersisted)
	}

	r := t.toRow(e)
	if err := t.db.WithContext(ctx).Create(&r).Error; err != nil {
		return t.storageErr("insert", err)
	}

	e.AssignID(r.key())
	t.cache.Put(r.key(), e)
	return nil
}

func (t *table[E, R]) update(ctx context.Context, e E) error {
	if e.ID() == 0 {
		return fmt.Errorf("update %s: %w", t.name, domain.ErrNotPersisted)
	}

	r := t.toRow(e)
	result := t.db.WithContext(ctx).Model(&r).Select("*").Omit("id").Updates(&r)
	if result.Error != nil {
		return t.storageErr("update", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("update %s %d: %w", t.name, e.ID(), domain.ErrRecordMissing)
	}
	return nil
}

// delete удаляет строку, вытесняет экземпляр из карты и сбрасывает его id
func (t *table[E, R]) delete(ctx context.Context, e E) error {
	id := e.ID()
	if id == 0 {
		return fmt.Errorf("delete %s: %w", t.name, domain.ErrNotPersisted)
	}

	result := t.db.WithContext(ctx).Delete(new(R), id)
	if result.Error != nil {
		return t.storageErr("delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("delete %s %d: %w", t.name, id, domain.ErrRecordMissing)
	}

	t.cache.Evict(id)
	e.AssignID(0)
	return nil
}

// reconcile возвращает закэшированный экземпляр, обновлённый значениями строки,
// или создаёт и регистрирует новый
func (t *table[E, R]) reconcile(ctx context.Context, r R) (E, error) {
	if cached, ok := t.cache.Get(r.key()); ok {
		if err := t.refresh(ctx, cached, r); err != nil {
			var zero E
			return zero, err
		}
		return cached, nil
	}

	e, err := t.load(ctx, r)
	if err != nil {
		var zero E
		return zero, err
	}
	e.AssignID(r.key())
	t.cache.Put(r.key(), e)
	return e, nil
}

// first находит одну строку; отсутствие строки не является ошибкой
func (t *table[E, R]) first(ctx context.Context, query any, args ...any) (E, error) {
	var zero E
	var r R

	err := t.db.WithContext(ctx).Where(query, args...).Take(&r).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, nil
		}
		return zero, t.storageErr("select", err)
	}

	return t.reconcile(ctx, r)
}

// find возвращает все строки, подходящие под условие, в порядке хранилища
func (t *table[E, R]) find(ctx context.Context, query any, args ...any) ([]E, error) {
	var rows []R

	tx := t.db.WithContext(ctx)
	if query != nil {
		tx = tx.Where(query, args...)
	}
	if err := tx.Find(&rows).Error; err != nil {
		return nil, t.storageErr("select", err)
	}

	result := make([]E, 0, len(rows))
	for _, r := range rows {
		e, err := t.reconcile(ctx, r)
		if err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	return result, nil
}

func (t *table[E, R]) exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := t.db.WithContext(ctx).Model(new(R)).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, t.storageErr("count", err)
	}
	return count > 0, nil
}

func (t *table[E, R]) storageErr(op string, err error) error {
	return &domain.StorageError{Op: op + " " + t.name, Err: err}
}
