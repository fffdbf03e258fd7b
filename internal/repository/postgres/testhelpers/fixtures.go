package testhelpers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
)

// LoadFixtures выполняет SQL файлы из fixturesPath в одной транзакции
func LoadFixtures(db *sqlx.DB, fixturesPath string, files []string) error {
	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("begin fixtures: %w", err)
	}
	defer tx.Rollback()

	for _, file := range files {
		content, err := os.ReadFile(filepath.Join(fixturesPath, file))
		if err != nil {
			return fmt.Errorf("read fixture %s: %w", file, err)
		}

		if _, err := tx.Exec(string(content)); err != nil {
			return fmt.Errorf("load fixture %s: %w", file, err)
		}
	}

	return tx.Commit()
}

// CountLedgerRows возвращает число записей журнала по заявке
func CountLedgerRows(db *sqlx.DB, supplyRequestID int64) (int, error) {
	var n int
	err := db.Get(&n, "SELECT COUNT(*) FROM route_cost_ledger WHERE supply_request_id = $1", supplyRequestID)
	if err != nil {
		return 0, fmt.Errorf("count ledger rows for request %d: %w", supplyRequestID, err)
	}
	return n, nil
}
