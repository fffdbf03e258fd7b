package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/supply-route-service/internal/domain"
	"github.com/supply-route-service/internal/pkg/errors"
	"github.com/supply-route-service/internal/pkg/utils"
	"github.com/supply-route-service/internal/pkg/validator"
	"github.com/supply-route-service/internal/usecase"
	"github.com/supply-route-service/internal/usecase/dto"
)

// ReportHandler - отчёты по журналу стоимости доставок
type ReportHandler struct {
	ledgerUC *usecase.RouteLedgerUseCase
	logger   *zap.Logger
}

func NewReportHandler(ledgerUC *usecase.RouteLedgerUseCase, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		ledgerUC: ledgerUC,
		logger:   logger,
	}
}

// RouteCosts godoc
// @Summary Сводка стоимости доставок
// @Description Количество заявок, суммарные км, минуты и стоимость по журналу
// @Tags Reports
// @Produce json
// @Param ngo_id query int false "Фильтр по НКО"
// @Param from query string false "Начало периода (RFC3339)"
// @Param to query string false "Конец периода (RFC3339)"
// @Success 200 {object} utils.SuccessResponse{data=domain.RouteCostReport}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/reports/route-costs [get]
func (h *ReportHandler) RouteCosts(c *fiber.Ctx) error {
	var q dto.RouteCostReportQuery
	if err := c.QueryParser(&q); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&q); err != nil {
		return utils.SendError(c, err)
	}

	filter := domain.RouteCostFilter{NGOID: q.NGOID}
	if q.From != "" {
		from, _ := time.Parse(time.RFC3339, q.From)
		filter.From = &from
	}
	if q.To != "" {
		to, _ := time.Parse(time.RFC3339, q.To)
		filter.To = &to
	}

	report, err := h.ledgerUC.Report(c.UserContext(), filter)
	if err != nil {
		return utils.SendError(c, err)
	}
	report.NGOID = q.NGOID

	return utils.SendSuccess(c, report, nil)
}
