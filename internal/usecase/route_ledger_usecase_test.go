package usecase_test

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/supply-route-service/internal/domain"
	"github.com/supply-route-service/internal/pkg/errors"
	"github.com/supply-route-service/internal/usecase"
)

func ledgerEvent(supplyRequestID int64) *domain.SupplyRequestCreatedEvent {
	return &domain.SupplyRequestCreatedEvent{
		EventID:         uuid.New(),
		SupplyRequestID: supplyRequestID,
		NGOID:           7,
		WarehouseID:     2,
		Start:           "Yangon",
		End:             "Mandalay",
		DistanceKm:      12.34,
		DurationMinutes: 21,
		Charge:          6787,
		CreatedAt:       time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestRouteLedgerUseCase_Record(t *testing.T) {
	ctx := context.Background()

	t.Run("new entry", func(t *testing.T) {
		mockLedger := &MockRouteLedgerRepository{}
		uc := usecase.NewRouteLedgerUseCase(mockLedger, zap.NewNop())

		mockLedger.On("Record", ctx, mock.MatchedBy(func(e *domain.RouteCostEntry) bool {
			return e.SupplyRequestID == 42 && e.Origin == "Yangon" && e.Charge == 6787
		})).Return(true, nil).Once()

		require.NoError(t, uc.Record(ctx, ledgerEvent(42)))
		mockLedger.AssertExpectations(t)
	})

	t.Run("duplicate is not an error", func(t *testing.T) {
		mockLedger := &MockRouteLedgerRepository{}
		uc := usecase.NewRouteLedgerUseCase(mockLedger, zap.NewNop())

		mockLedger.On("Record", ctx, mock.Anything).Return(false, nil).Once()

		assert.NoError(t, uc.Record(ctx, ledgerEvent(42)))
	})

	t.Run("invalid event", func(t *testing.T) {
		mockLedger := &MockRouteLedgerRepository{}
		uc := usecase.NewRouteLedgerUseCase(mockLedger, zap.NewNop())

		event := ledgerEvent(0)
		err := uc.Record(ctx, event)
		assert.True(t, stderrors.Is(err, errors.ErrValidation))
		mockLedger.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
	})

	t.Run("repository error is wrapped", func(t *testing.T) {
		mockLedger := &MockRouteLedgerRepository{}
		uc := usecase.NewRouteLedgerUseCase(mockLedger, zap.NewNop())

		dbErr := fmt.Errorf("connection reset")
		mockLedger.On("Record", ctx, mock.Anything).Return(false, dbErr).Once()

		err := uc.Record(ctx, ledgerEvent(42))
		require.Error(t, err)
		assert.True(t, stderrors.Is(err, dbErr))
	})
}

func TestRouteLedgerUseCase_Report(t *testing.T) {
	ctx := context.Background()
	ngoID := int64(7)
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	t.Run("summary", func(t *testing.T) {
		mockLedger := &MockRouteLedgerRepository{}
		uc := usecase.NewRouteLedgerUseCase(mockLedger, zap.NewNop())

		filter := domain.RouteCostFilter{NGOID: &ngoID, From: &from, To: &to}
		mockLedger.On("Summary", ctx, filter).Return(&domain.RouteCostReport{
			NGOID:       &ngoID,
			Requests:    2,
			TotalCharge: 9000,
		}, nil).Once()

		report, err := uc.Report(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(2), report.Requests)
		assert.Equal(t, int64(9000), report.TotalCharge)
	})

	t.Run("inverted range", func(t *testing.T) {
		mockLedger := &MockRouteLedgerRepository{}
		uc := usecase.NewRouteLedgerUseCase(mockLedger, zap.NewNop())

		_, err := uc.Report(ctx, domain.RouteCostFilter{From: &to, To: &from})
		assert.True(t, stderrors.Is(err, errors.ErrValidation))
	})

	t.Run("repository error", func(t *testing.T) {
		mockLedger := &MockRouteLedgerRepository{}
		uc := usecase.NewRouteLedgerUseCase(mockLedger, zap.NewNop())

		mockLedger.On("Summary", ctx, domain.RouteCostFilter{}).Return(nil, fmt.Errorf("boom")).Once()

		_, err := uc.Report(ctx, domain.RouteCostFilter{})
		assert.True(t, stderrors.Is(err, errors.ErrDatabaseError))
	})
}
