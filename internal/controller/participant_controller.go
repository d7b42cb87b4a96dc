package controller

import (
	"errors"
	"strconv"
	"ujikom_backend/internal/model"
	"ujikom_backend/internal/service"
	"ujikom_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ParticipantController struct {
	ParticipantService *service.ParticipantService
}

func NewParticipantController(participantService *service.ParticipantService) *ParticipantController {
	return &ParticipantController{ParticipantService: participantService}
}

// swagger:model ParticipantRequest
type ParticipantRequest struct {
	NIK              string `json:"nik"`
	Nama             string `json:"nama"`
	Jabatan          string `json:"jabatan"`
	Grade            string `json:"grade"`
	JobSite          string `json:"jobSite"`
	Section          string `json:"section"`
	IDP              string `json:"idp"`
	TahunUjikom      int    `json:"tahunUjikom"`
	TempatLahir      string `json:"tempatLahir"`
	TanggalLahir     string `json:"tanggalLahir"`
	TanggalBergabung string `json:"tanggalBergabung"`
	Password         string `json:"password"`
}

func (r *ParticipantRequest) toModel() *model.User {
	return &model.User{
		NIK:              r.NIK,
		Nama:             r.Nama,
		Jabatan:          r.Jabatan,
		Grade:            r.Grade,
		JobSite:          r.JobSite,
		Section:          r.Section,
		IDP:              r.IDP,
		TahunUjikom:      r.TahunUjikom,
		TempatLahir:      r.TempatLahir,
		TanggalLahir:     r.TanggalLahir,
		TanggalBergabung: r.TanggalBergabung,
		Password:         r.Password,
	}
}

// List godoc
// @Summary List participants
// @Description Participants visible to the caller, optionally filtered by job site
// @Tags participants
// @Produce  json
// @Security BearerAuth
// @Param   jobSite query string false "Job site filter, or Semua"
// @Param   page query int false "Page (from 1)" default(1)
// @Param   limit query int false "Rows per page" default(20)
// @Success 200 {object} util.Response{data=util.PageResponse{list=[]model.User}}
// @Failure 403 {object} util.Response
// @Router /api/participants [get]
func (c *ParticipantController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 20
	}

	claims := util.GetUserFromContext(ctx)
	participants, total, err := c.ParticipantService.List(ctx.Query("jobSite"), page, limit, claims)
	if err != nil {
		if errors.Is(err, util.ErrPermissionDenied) {
			util.Forbidden(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, util.PageResponse{
		List:  participants,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// Get godoc
// @Summary Get one participant
// @Tags participants
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Participant ID"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response
// @Router /api/participants/{id} [get]
func (c *ParticipantController) Get(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	p, err := c.ParticipantService.Get(uint(id))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, p)
}

// Create godoc
// @Summary Register a participant
// @Description Creates the participant and their empty exam result
// @Tags participants
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body ParticipantRequest true "Participant"
// @Success 201 {object} util.Response{data=model.User}
// @Failure 409 {object} util.Response "NIK already registered"
// @Router /api/participants [post]
func (c *ParticipantController) Create(ctx *gin.Context) {
	var req ParticipantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.NIK == "" || req.Nama == "" {
		util.BadRequest(ctx, "NIK dan nama wajib diisi")
		return
	}

	claims := util.GetUserFromContext(ctx)
	p, err := c.ParticipantService.Create(req.toModel(), claims)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrNIKTerdaftar):
			util.Error(ctx, 409, err.Error())
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.BadRequest(ctx, err.Error())
		}
		return
	}
	util.Created(ctx, p)
}

// Update godoc
// @Summary Update a participant
// @Tags participants
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Participant ID"
// @Param   body body ParticipantRequest true "Fields to update"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response
// @Router /api/participants/{id} [put]
func (c *ParticipantController) Update(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req ParticipantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	p, err := c.ParticipantService.Update(uint(id), req.toModel(), req.Password, claims)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrPesertaNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrNIKTerdaftar):
			util.Error(ctx, 409, err.Error())
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.BadRequest(ctx, err.Error())
		}
		return
	}
	util.Success(ctx, p)
}

// Delete godoc
// @Summary Delete a participant
// @Description Removes the participant and their full exam result
// @Tags participants
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Participant ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/participants/{id} [delete]
func (c *ParticipantController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	claims := util.GetUserFromContext(ctx)
	if err := c.ParticipantService.Delete(uint(id), claims); err != nil {
		switch {
		case errors.Is(err, util.ErrPesertaNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}

// BulkImport godoc
// @Summary Bulk-register participants
// @Description Creates participants from parsed upload rows; bad rows are reported and skipped
// @Tags participants
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body []service.ImportRow true "Upload rows"
// @Success 200 {object} util.Response{data=service.ImportSummary}
// @Router /api/participants/bulk [post]
func (c *ParticipantController) BulkImport(ctx *gin.Context) {
	var rows []service.ImportRow
	if err := ctx.ShouldBindJSON(&rows); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if len(rows) == 0 {
		util.BadRequest(ctx, "tidak ada baris untuk diimpor")
		return
	}

	claims := util.GetUserFromContext(ctx)
	summary, err := c.ParticipantService.BulkImport(rows, claims)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}
