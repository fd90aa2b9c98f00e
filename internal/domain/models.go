package domain

import (
	"fmt"
	"time"
)

// Department представляет подразделение, на которое ссылаются сотрудники.
// Подразделения не проходят через identity map.
type Department struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"type:varchar(200);not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName задаёт имя таблицы для GORM
func (Department) TableName() string {
	return "departments"
}

// Validate проверяет поля подразделения перед записью
func (d *Department) Validate() error {
	if err := validate.Var(d.Name, "required"); err != nil {
		return invalid("name", "must not be empty")
	}
	if err := validate.Var(d.Name, "max=200"); err != nil {
		return invalid("name", "must be at most 200 characters")
	}
	return nil
}

func (d *Department) String() string {
	return fmt.Sprintf("Department %d: %s", d.ID, d.Name)
}
