// Package database открывает подключение GORM к SQLite или PostgreSQL
// и применяет миграции goose.
package database

import (
	"embed"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/org-structure-records/internal/config"
	"github.com/pressly/goose/v3"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

//go:embed migrations
var embedMigrations embed.FS

// Поддерживаемые драйверы
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

const sqliteForeignKeys = "_foreign_keys=on"

var gooseDialects = map[string]string{
	DriverSQLite:   "sqlite3",
	DriverPostgres: "postgres",
}

// Open подключается к БД, повторяя попытки, пока база не станет доступна
func Open(cfg config.DatabaseConfig, logger *slog.Logger) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	attempts := max(cfg.ConnectAttempts, 1)

	var db *gorm.DB
	for attempt := 1; attempt <= attempts; attempt++ {
		db, err = gorm.Open(dialector, &gorm.Config{
			Logger: NewGormLogger(logger),
		})
		if err == nil {
			if err = ping(db); err == nil {
				break
			}
		}

		logger.Warn("database is not ready",
			slog.String("driver", cfg.Driver),
			slog.Int("attempt", attempt),
			slog.Any("error", err),
		)
		if attempt < attempts {
			time.Sleep(time.Second)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
	}

	if cfg.Driver == DriverSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql.DB: %w", err)
		}
		// одно соединение: in-memory база живёт внутри соединения, а запись в файл не конкурирует
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// Migrate применяет встроенные миграции для драйвера
func Migrate(db *gorm.DB, driver string, logger *slog.Logger) error {
	dialect, ok := gooseDialects[driver]
	if !ok {
		return fmt.Errorf("unsupported driver %q", driver)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(slog.NewLogLogger(logger.Handler(), slog.LevelInfo))

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if err := goose.Up(sqlDB, "migrations/"+driver); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// NewGormLogger направляет журнал GORM в slog.
// Пустой результат поиска - штатный исход, поэтому ErrRecordNotFound не логируется.
func NewGormLogger(logger *slog.Logger) gormlogger.Interface {
	return gormlogger.New(
		slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

func dialectorFor(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case DriverSQLite:
		return sqlite.Open(SQLiteDSN(cfg.Path)), nil
	case DriverPostgres:
		return postgres.Open(cfg.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
	}
}

// SQLiteDSN добавляет к пути параметр, включающий проверку внешних ключей.
// Без него SQLite игнорирует REFERENCES.
func SQLiteDSN(path string) string {
	if strings.Contains(path, sqliteForeignKeys) {
		return path
	}
	if strings.Contains(path, "?") {
		return path + "&" + sqliteForeignKeys
	}
	return path + "?" + sqliteForeignKeys
}

func ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
