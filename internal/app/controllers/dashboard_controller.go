package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eakyol/campusdesk/internal/app/models/dto"
	"github.com/eakyol/campusdesk/internal/app/services"
	"github.com/eakyol/campusdesk/internal/middleware"
)

// DashboardController serves aggregate statistics and reports
type DashboardController struct {
	statsService services.StatsService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(statsService services.StatsService) *DashboardController {
	return &DashboardController{
		statsService: statsService,
	}
}

// GetDashboardStats serves the dashboard statistics snapshot
// @Summary Get dashboard statistics
// @Description Returns student and course counts, per-course enrollment and the success rate. Counts are a best-effort snapshot.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.DashboardStats} "Dashboard statistics"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /dashboard/stats [get]
func (c *DashboardController) GetDashboardStats(ctx *gin.Context) {
	stats, err := c.statsService.DashboardStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(stats))
}

// GetReports serves the textual report counts
// @Summary Get reports
// @Description Returns the total student count and the distinct course values appearing among students
// @Tags reports
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.Report} "Report"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports [get]
func (c *DashboardController) GetReports(ctx *gin.Context) {
	report, err := c.statsService.Reports(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(report))
}
