package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/billing-pos/internal/application/dto"
	"github.com/jhoicas/billing-pos/internal/application/reports"
	"github.com/jhoicas/billing-pos/internal/domain"
)

// ReportHandler maneja las peticiones HTTP de reportes y dashboard.
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// DailySales reporte de ventas de un día (hoy si no se indica fecha).
// GET /api/reports/daily-sales?date=YYYY-MM-DD
func (h *ReportHandler) DailySales(c *fiber.Ctx) error {
	report, err := h.uc.DailySales(c.Context(), c.Query("date"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha inválida, formato YYYY-MM-DD"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(report)
}

// MonthlySales reporte de ventas de un mes (mes actual si no se indica).
// GET /api/reports/monthly-sales?month=YYYY-MM
func (h *ReportHandler) MonthlySales(c *fiber.Ctx) error {
	report, err := h.uc.MonthlySales(c.Context(), c.Query("month"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "mes inválido, formato YYYY-MM"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(report)
}

// DashboardStats contadores para la pantalla inicial.
// GET /api/dashboard/stats
func (h *ReportHandler) DashboardStats(c *fiber.Ctx) error {
	stats, err := h.uc.DashboardStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(stats)
}
