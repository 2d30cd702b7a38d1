package controller

import (
	"quizhub_backend/internal/service"
	"quizhub_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	Service *service.QuestionService
}

func NewQuestionController(svc *service.QuestionService) *QuestionController {
	return &QuestionController{Service: svc}
}

// @Summary 向测验添加题目
// @Tags 题目
// @Accept json
// @Produce json
// @Param id path int true "测验ID"
// @Param body body service.QuestionRequest true "题目信息"
// @Success 201 {object} util.Response
// @Router /api/quizzes/{id}/questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	quizID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid quiz id")
		return
	}

	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.Service.CreateQuestion(uint(quizID), req)
	if err != nil {
		util.NotFound(ctx)
		return
	}

	util.Created(ctx, q)
}

// @Summary 获取测验的题目列表（含选项）
// @Tags 题目
// @Produce json
// @Param id path int true "测验ID"
// @Success 200 {object} util.Response
// @Router /api/quizzes/{id}/questions [get]
func (c *QuestionController) ListQuestions(ctx *gin.Context) {
	quizID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid quiz id")
		return
	}

	qs, err := c.Service.ListQuestions(uint(quizID))
	if err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, qs)
}

// @Summary 获取题目详情
// @Tags 题目
// @Produce json
// @Param id path int true "题目ID"
// @Success 200 {object} util.Response
// @Router /api/questions/{id} [get]
func (c *QuestionController) GetQuestion(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	q, err := c.Service.GetQuestion(uint(id))
	if err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, q)
}

// @Summary 更新题目
// @Tags 题目
// @Accept json
// @Produce json
// @Param id path int true "题目ID"
// @Param body body service.QuestionRequest true "题目信息"
// @Success 200 {object} util.Response
// @Router /api/questions/{id} [put]
func (c *QuestionController) UpdateQuestion(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.Service.UpdateQuestion(uint(id), req)
	if err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, q)
}

// @Summary 删除题目（级联删除选项）
// @Tags 题目
// @Produce json
// @Param id path int true "题目ID"
// @Success 200 {object} util.Response
// @Router /api/questions/{id} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	if err := c.Service.DeleteQuestion(uint(id)); err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, gin.H{"deleted": id})
}

// @Summary 向题目添加选项
// @Tags 选项
// @Accept json
// @Produce json
// @Param id path int true "题目ID"
// @Param body body service.ChoiceRequest true "选项信息"
// @Success 201 {object} util.Response
// @Router /api/questions/{id}/choices [post]
func (c *QuestionController) CreateChoice(ctx *gin.Context) {
	questionID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid question id")
		return
	}

	var req service.ChoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	choice, err := c.Service.CreateChoice(uint(questionID), req)
	if err != nil {
		util.NotFound(ctx)
		return
	}

	util.Created(ctx, choice)
}

// @Summary 获取题目的选项列表
// @Tags 选项
// @Produce json
// @Param id path int true "题目ID"
// @Success 200 {object} util.Response
// @Router /api/questions/{id}/choices [get]
func (c *QuestionController) ListChoices(ctx *gin.Context) {
	questionID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid question id")
		return
	}

	choices, err := c.Service.ListChoices(uint(questionID))
	if err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, choices)
}

// @Summary 获取选项详情
// @Tags 选项
// @Produce json
// @Param id path int true "选项ID"
// @Success 200 {object} util.Response
// @Router /api/choices/{id} [get]
func (c *QuestionController) GetChoice(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	choice, err := c.Service.GetChoice(uint(id))
	if err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, choice)
}

// @Summary 更新选项
// @Tags 选项
// @Accept json
// @Produce json
// @Param id path int true "选项ID"
// @Param body body service.ChoiceRequest true "选项信息"
// @Success 200 {object} util.Response
// @Router /api/choices/{id} [put]
func (c *QuestionController) UpdateChoice(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req service.ChoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	choice, err := c.Service.UpdateChoice(uint(id), req)
	if err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, choice)
}

// @Summary 删除选项
// @Tags 选项
// @Produce json
// @Param id path int true "选项ID"
// @Success 200 {object} util.Response
// @Router /api/choices/{id} [delete]
func (c *QuestionController) DeleteChoice(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	if err := c.Service.DeleteChoice(uint(id)); err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, gin.H{"deleted": id})
}
