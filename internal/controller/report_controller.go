package controller

import (
	"errors"
	"strconv"
	"ujikom_backend/internal/service"
	"ujikom_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	ReportService *service.ReportService
}

func NewReportController(reportService *service.ReportService) *ReportController {
	return &ReportController{ReportService: reportService}
}

// SiteReport godoc
// @Summary Cohort report for a job site
// @Description Aggregated statistics, distributions, chart series and the narrative conclusion
// @Tags reports
// @Produce  json
// @Security BearerAuth
// @Param   jobSite query string false "Job site, or Semua for every visible site"
// @Success 200 {object} util.Response{data=service.SiteReport}
// @Failure 403 {object} util.Response
// @Router /api/reports/site [get]
func (c *ReportController) SiteReport(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	report, err := c.ReportService.BuildSiteReport(ctx.Request.Context(), ctx.Query("jobSite"), claims)
	if err != nil {
		if errors.Is(err, util.ErrPermissionDenied) {
			util.Forbidden(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, report)
}

// ParticipantReport godoc
// @Summary Result sheet for one participant
// @Description Biodata, written breakdown, interview detail, final standing and recommendation
// @Tags reports
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Participant ID"
// @Success 200 {object} util.Response{data=service.ParticipantReport}
// @Failure 404 {object} util.Response
// @Router /api/reports/participants/{id} [get]
func (c *ReportController) ParticipantReport(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	claims := util.GetUserFromContext(ctx)
	report, err := c.ReportService.BuildParticipantReport(uint(id), claims)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrPesertaNotFound), errors.Is(err, util.ErrHasilNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, report)
}
