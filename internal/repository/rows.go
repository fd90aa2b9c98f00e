package repository

import "github.com/org-structure-records/internal/domain"

// employeeRow - строка таблицы employees
type employeeRow struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"type:text"`
	JobTitle     string `gorm:"type:text"`
	DepartmentID int64  `gorm:"index"`

	Department *domain.Department `gorm:"foreignKey:DepartmentID"`
}

// TableName задаёт имя таблицы для GORM
func (employeeRow) TableName() string {
	return "employees"
}

func (r employeeRow) key() int64 {
	return r.ID
}

func (r employeeRow) fields() domain.EmployeeFields {
	return domain.EmployeeFields{
		Name:         r.Name,
		JobTitle:     r.JobTitle,
		DepartmentID: r.DepartmentID,
	}
}

func employeeToRow(e *domain.Employee) employeeRow {
	return employeeRow{
		ID:           e.ID(),
		Name:         e.Name(),
		JobTitle:     e.JobTitle(),
		DepartmentID: e.DepartmentID(),
	}
}

// reviewRow - строка таблицы reviews
type reviewRow struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Year       int    `gorm:"type:int"`
	Summary    string `gorm:"type:text"`
	EmployeeID int64  `gorm:"index"`

	Employee *employeeRow `gorm:"foreignKey:EmployeeID"`
}

// TableName задаёт имя таблицы для GORM
func (reviewRow) TableName() string {
	return "reviews"
}

func (r reviewRow) key() int64 {
	return r.ID
}

func (r reviewRow) fields() domain.ReviewFields {
	return domain.ReviewFields{
		Year:       r.Year,
		Summary:    r.Summary,
		EmployeeID: r.EmployeeID,
	}
}

func reviewToRow(r *domain.Review) reviewRow {
	return reviewRow{
		ID:         r.ID(),
		Year:       r.Year(),
		Summary:    r.Summary(),
		EmployeeID: r.EmployeeID(),
	}
}
