package controller

import (
	"errors"
	"strconv"
	"ujikom_backend/internal/model"
	"ujikom_backend/internal/service"
	"ujikom_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	QuestionService *service.QuestionService
}

func NewQuestionController(questionService *service.QuestionService) *QuestionController {
	return &QuestionController{QuestionService: questionService}
}

// swagger:model QuestionRequest
type QuestionRequest struct {
	IDP          string   `json:"idp" binding:"required"`
	Grade        string   `json:"grade" binding:"required"`
	Nilai        int      `json:"nilai"`
	Pertanyaan   string   `json:"pertanyaan" binding:"required"`
	Pilihan      []string `json:"pilihan" binding:"required"`
	JawabanBenar string   `json:"jawabanBenar" binding:"required"`
	Gambar       string   `json:"gambar"`
}

// List godoc
// @Summary List bank questions
// @Tags questions
// @Produce  json
// @Security BearerAuth
// @Param   idp query string false "IDP filter"
// @Param   grade query string false "Grade filter"
// @Success 200 {object} util.Response{data=[]model.Question}
// @Router /api/questions [get]
func (c *QuestionController) List(ctx *gin.Context) {
	questions, err := c.QuestionService.List(ctx.Query("idp"), ctx.Query("grade"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// Create godoc
// @Summary Add a bank question
// @Tags questions
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body QuestionRequest true "Question"
// @Success 201 {object} util.Response{data=model.Question}
// @Failure 400 {object} util.Response
// @Router /api/questions [post]
func (c *QuestionController) Create(ctx *gin.Context) {
	var req QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q := &model.Question{
		IDP:          req.IDP,
		Grade:        req.Grade,
		Nilai:        req.Nilai,
		Pertanyaan:   req.Pertanyaan,
		Pilihan:      req.Pilihan,
		JawabanBenar: req.JawabanBenar,
		Gambar:       req.Gambar,
	}
	if err := c.QuestionService.Create(q); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Created(ctx, q)
}

// Update godoc
// @Summary Update a bank question
// @Tags questions
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Question ID"
// @Param   body body QuestionRequest true "Question"
// @Success 200 {object} util.Response{data=model.Question}
// @Failure 404 {object} util.Response
// @Router /api/questions/{id} [put]
func (c *QuestionController) Update(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.QuestionService.Update(ctx.Request.Context(), uint(id), &model.Question{
		IDP:          req.IDP,
		Grade:        req.Grade,
		Nilai:        req.Nilai,
		Pertanyaan:   req.Pertanyaan,
		Pilihan:      req.Pilihan,
		JawabanBenar: req.JawabanBenar,
		Gambar:       req.Gambar,
	})
	if err != nil {
		if errors.Is(err, util.ErrSoalNotFound) {
			util.NotFound(ctx)
		} else {
			util.BadRequest(ctx, err.Error())
		}
		return
	}
	util.Success(ctx, q)
}

// Delete godoc
// @Summary Delete a bank question
// @Tags questions
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Question ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/questions/{id} [delete]
func (c *QuestionController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	if err := c.QuestionService.Delete(ctx.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, util.ErrSoalNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}

// DeleteByIDP godoc
// @Summary Clear a question pool
// @Description Deletes every question of one IDP, e.g. before re-importing
// @Tags questions
// @Produce  json
// @Security BearerAuth
// @Param   idp query string true "IDP"
// @Success 200 {object} util.Response{data=object}
// @Router /api/questions [delete]
func (c *QuestionController) DeleteByIDP(ctx *gin.Context) {
	idp := ctx.Query("idp")
	if idp == "" {
		util.BadRequest(ctx, "idp wajib diisi")
		return
	}

	deleted, err := c.QuestionService.DeleteByIDP(idp)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": deleted})
}

// BulkImport godoc
// @Summary Bulk-add bank questions
// @Tags questions
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body []service.QuestionImportRow true "Upload rows"
// @Success 200 {object} util.Response{data=service.ImportSummary}
// @Router /api/questions/bulk [post]
func (c *QuestionController) BulkImport(ctx *gin.Context) {
	var rows []service.QuestionImportRow
	if err := ctx.ShouldBindJSON(&rows); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if len(rows) == 0 {
		util.BadRequest(ctx, "tidak ada baris untuk diimpor")
		return
	}

	summary, err := c.QuestionService.BulkImport(rows)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}

// UploadImage godoc
// @Summary Upload a question illustration
// @Tags questions
// @Accept  mpfd
// @Produce  json
// @Security BearerAuth
// @Param   file formData file true "Image file"
// @Success 200 {object} util.Response{data=object} "Stored URL"
// @Failure 400 {object} util.Response
// @Router /api/questions/image [post]
func (c *QuestionController) UploadImage(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file wajib diunggah")
		return
	}

	src, err := file.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer src.Close()

	url, err := c.QuestionService.UploadImage(ctx.Request.Context(), file.Filename, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, gin.H{"url": url})
}
