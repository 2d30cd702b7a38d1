package controller

import (
	"errors"
	"quizhub_backend/internal/service"
	"quizhub_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type GradingController struct {
	Service *service.GradingService
}

func NewGradingController(svc *service.GradingService) *GradingController {
	return &GradingController{Service: svc}
}

// @Summary 提交答案并评分
// @Description 按 (question_id, choice_id) 批量提交答案，返回逐题结果与总评
// @Tags 评分
// @Accept json
// @Produce json
// @Param quizId path int true "测验ID"
// @Param body body service.SubmissionRequest true "答案列表"
// @Success 200 {object} util.Response
// @Router /api/quizzes/{quizId}/submit [post]
func (c *GradingController) SubmitQuiz(ctx *gin.Context) {
	quizID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid quiz id")
		return
	}

	var req service.SubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	report, err := c.Service.GradeSubmission(uint(quizID), req)
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, report)
}
