package repo

import (
	"ShoppingList/internal/model"
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// InitDB открывает пул соединений по строке подключения и создаёт таблицы, если их нет.
// Поддерживаются PostgreSQL (postgresql://..., key=value) и SQLite (sqlite://path, file:..., :memory:).
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(dialectorFor(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if err := Migrate(db); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// Migrate идемпотентно создаёт таблицы lists и items.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.List{}, &model.Item{}); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

// CloseDB закрывает пул соединений под gorm.
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dialectorFor(dsn string) gorm.Dialector {
	switch {
	case strings.HasPrefix(dsn, "sqlite://"):
		return gormsqlite.Dialector{DriverName: "sqlite", DSN: strings.TrimPrefix(dsn, "sqlite://")}
	case strings.HasPrefix(dsn, "file:"), dsn == ":memory:":
		return gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	default:
		return postgres.Open(dsn)
	}
}
