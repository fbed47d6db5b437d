package model

import (
	"database/sql/driver"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// EmailList упорядоченный список email-адресов участников.
// В PostgreSQL хранится как text[], в SQLite — литералом массива в text.
type EmailList []string

// Value кодирует список в литерал массива PostgreSQL.
func (l EmailList) Value() (driver.Value, error) {
	if l == nil {
		return pq.StringArray{}.Value()
	}
	return pq.StringArray(l).Value()
}

// Scan разбирает литерал массива ({a,b}) из []byte или string.
func (l *EmailList) Scan(src any) error {
	var arr pq.StringArray
	if err := arr.Scan(src); err != nil {
		return err
	}
	*l = EmailList(arr)
	return nil
}

// GormDataType общий тип колонки для gorm.
func (EmailList) GormDataType() string {
	return "text[]"
}

// GormDBDataType тип колонки в зависимости от диалекта.
func (EmailList) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}
