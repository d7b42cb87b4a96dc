package controller

import (
	"errors"
	"ujikom_backend/internal/service"
	"ujikom_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ExamController struct {
	ExamService *service.ExamService
}

func NewExamController(examService *service.ExamService) *ExamController {
	return &ExamController{ExamService: examService}
}

// swagger:model SubmitRequest
type SubmitRequest struct {
	Answers map[uint]string `json:"answers" binding:"required"`
	// Auto marks a timer-expiry submission, which skips the
	// all-questions-answered check.
	Auto bool `json:"auto"`
}

// GetPaper godoc
// @Summary Fetch the caller's exam paper
// @Description Question pool for the participant's IDP and grade, without answer keys
// @Tags exam
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.ExamPaper}
// @Failure 404 {object} util.Response "No questions for this IDP and grade"
// @Failure 409 {object} util.Response "Exam already submitted"
// @Router /api/exam/paper [get]
func (c *ExamController) GetPaper(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	paper, err := c.ExamService.GetPaper(claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSoalTidakTersedia):
			util.Error(ctx, 404, err.Error())
		case errors.Is(err, util.ErrUjianSudahSelesai):
			util.Error(ctx, 409, err.Error())
		case errors.Is(err, util.ErrPesertaNotFound), errors.Is(err, util.ErrHasilNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, paper)
}

// Submit godoc
// @Summary Submit written answers
// @Description Grades and stores the submission; repeat submissions are rejected
// @Tags exam
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body SubmitRequest true "Answers keyed by question ID"
// @Success 200 {object} util.Response{data=service.SubmitOutcome}
// @Failure 400 {object} util.Response "Unanswered questions on manual submit"
// @Failure 409 {object} util.Response "Exam already submitted"
// @Router /api/exam/submit [post]
func (c *ExamController) Submit(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	outcome, err := c.ExamService.Submit(claims.UserID, req.Answers, !req.Auto)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUjianSudahSelesai):
			util.Error(ctx, 409, err.Error())
		case errors.Is(err, util.ErrSoalTidakTersedia):
			util.Error(ctx, 404, err.Error())
		case errors.Is(err, util.ErrPesertaNotFound), errors.Is(err, util.ErrHasilNotFound):
			util.NotFound(ctx)
		default:
			util.BadRequest(ctx, err.Error())
		}
		return
	}
	util.Success(ctx, outcome)
}
