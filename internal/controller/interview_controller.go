package controller

import (
	"errors"
	"strconv"
	"ujikom_backend/internal/model"
	"ujikom_backend/internal/scoring"
	"ujikom_backend/internal/service"
	"ujikom_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type InterviewController struct {
	InterviewService *service.InterviewService
}

func NewInterviewController(interviewService *service.InterviewService) *InterviewController {
	return &InterviewController{InterviewService: interviewService}
}

// swagger:model InterviewSaveRequest
type InterviewSaveRequest struct {
	TanggalInterview string                    `json:"tanggalInterview"`
	Penguji          []model.InterviewExaminer `json:"penguji"`
	Penilaian        []model.InterviewAspect   `json:"penilaian" binding:"required"`
	Ringkasan        string                    `json:"ringkasan"`
	Keunggulan       string                    `json:"keunggulan"`
	Saran            string                    `json:"saran"`
}

// GetDetail godoc
// @Summary Fetch a participant's interview sheet
// @Description Seeds the default aspect structure on first open
// @Tags interview
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Participant ID"
// @Success 200 {object} util.Response{data=model.ExamResult}
// @Failure 403 {object} util.Response "Participant outside the caller's job sites"
// @Failure 404 {object} util.Response
// @Router /api/participants/{id}/interview [get]
func (c *InterviewController) GetDetail(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	result, err := c.InterviewService.GetDetail(uint(id), util.GetUserFromContext(ctx))
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
	util.Success(ctx, result)
}

// Save godoc
// @Summary Save an interview sheet
// @Description Replaces examiners and aspect scores; notes and the interview score are recomputed server-side
// @Tags interview
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Participant ID"
// @Param   body body InterviewSaveRequest true "Interview sheet"
// @Success 200 {object} util.Response{data=model.ExamResult}
// @Failure 400 {object} util.Response "Rating out of range"
// @Failure 403 {object} util.Response "Participant outside the caller's job sites"
// @Router /api/participants/{id}/interview [put]
func (c *InterviewController) Save(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req InterviewSaveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.InterviewService.Save(uint(id), service.SaveInput{
		TanggalInterview: req.TanggalInterview,
		Penguji:          req.Penguji,
		Penilaian:        req.Penilaian,
		Ringkasan:        req.Ringkasan,
		Keunggulan:       req.Keunggulan,
		Saran:            req.Saran,
	}, util.GetUserFromContext(ctx))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrPesertaNotFound), errors.Is(err, util.ErrHasilNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		case errors.Is(err, util.ErrNilaiDiLuarRentang):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, result)
}

// Analyze godoc
// @Summary Generate the interview analysis texts
// @Description Builds the templated summary, strengths and suggestions from saved ratings; nothing is persisted until the sheet is saved
// @Tags interview
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Participant ID"
// @Success 200 {object} util.Response{data=service.Analysis}
// @Failure 400 {object} util.Response "No rated items yet"
// @Failure 403 {object} util.Response "Participant outside the caller's job sites"
// @Router /api/participants/{id}/interview/analysis [post]
func (c *InterviewController) Analyze(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	analysis, err := c.InterviewService.Analyze(uint(id), util.GetUserFromContext(ctx))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrPesertaNotFound), errors.Is(err, util.ErrHasilNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		case errors.Is(err, scoring.ErrPenilaianKosong):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, analysis)
}
