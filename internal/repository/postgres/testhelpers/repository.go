package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/supply-route-service/internal/domain/repository"
	"github.com/supply-route-service/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewDirectionsCacheRepositoryForTest creates a directions cache repository with test database and logger
func NewDirectionsCacheRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.DirectionsCacheRepository {
	return postgres.NewDirectionsCacheRepository(NewDBForTest(db, logger), logger)
}

// NewRouteLedgerRepositoryForTest creates a route ledger repository with test database and logger
func NewRouteLedgerRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.RouteLedgerRepository {
	return postgres.NewRouteLedgerRepository(NewDBForTest(db, logger), logger)
}
