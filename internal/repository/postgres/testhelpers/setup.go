package testhelpers

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

// serviceTables - таблицы сервиса, очищаемые между тестами
var serviceTables = []string{
	"route_cost_ledger",
	"directions_cache",
}

// TestDB - подключение к тестовой БД
type TestDB struct {
	DB     *sqlx.DB
	Logger *zap.Logger
}

// SetupTestDB подключается к тестовой БД (TEST_DATABASE_URL или TEST_DB_*).
// Если БД недоступна, тест пропускается
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s connect_timeout=2",
			getEnv("TEST_DB_HOST", "localhost"),
			getEnv("TEST_DB_PORT", "5433"),
			getEnv("TEST_DB_USER", "postgres"),
			getEnv("TEST_DB_PASSWORD", "postgres"),
			getEnv("TEST_DB_NAME", "supply_routes_test"),
			getEnv("TEST_DB_SSLMODE", "disable"),
		)
	}

	var (
		db  *sqlx.DB
		err error
	)
	delay := 300 * time.Millisecond
	for attempt := 1; attempt <= 3; attempt++ {
		db, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			break
		}
		if attempt < 3 {
			t.Logf("Database not ready (attempt %d/3), waiting %v...", attempt, delay)
			time.Sleep(delay)
			delay *= 2
		}
	}
	if err != nil {
		t.Skipf("Test database not available: %v", err)
	}

	return &TestDB{
		DB:     db,
		Logger: zaptest.NewLogger(t),
	}
}

// Close закрывает подключение
func (tdb *TestDB) Close() {
	if tdb.DB != nil {
		_ = tdb.DB.Close()
	}
}

// Cleanup очищает таблицы сервиса. Отсутствующие таблицы пропускаются
func (tdb *TestDB) Cleanup(ctx context.Context) error {
	var existing []string
	for _, table := range serviceTables {
		var found bool
		if err := tdb.DB.GetContext(ctx, &found, "SELECT to_regclass($1) IS NOT NULL", table); err != nil {
			return fmt.Errorf("check table %s: %w", table, err)
		}
		if found {
			existing = append(existing, table)
		}
	}
	if len(existing) == 0 {
		return nil
	}

	_, err := tdb.DB.ExecContext(ctx, "TRUNCATE TABLE "+strings.Join(existing, ", ")+" RESTART IDENTITY")
	if err != nil {
		return fmt.Errorf("truncate service tables: %w", err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
