package controller

import (
	"quizhub_backend/internal/service"
	"quizhub_backend/internal/util"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	Service *service.QuizService
}

func NewQuizController(svc *service.QuizService) *QuizController {
	return &QuizController{Service: svc}
}

// @Summary 创建测验
// @Tags 测验
// @Accept json
// @Produce json
// @Param body body service.QuizRequest true "测验信息"
// @Success 201 {object} util.Response
// @Router /api/quizzes [post]
func (c *QuizController) CreateQuiz(ctx *gin.Context) {
	var req service.QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.Service.CreateQuiz(req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, quiz)
}

// @Summary 获取测验列表
// @Tags 测验
// @Produce json
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(20)
// @Param published query bool false "只看已发布"
// @Success 200 {object} util.Response
// @Router /api/quizzes [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	page := 1
	limit := 20
	if p := ctx.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}
	if l := ctx.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 {
			limit = v
		}
	}
	publishedOnly := ctx.Query("published") == "true"

	quizzes, total, err := c.Service.ListQuizzes(page, limit, publishedOnly)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  quizzes,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// @Summary 获取测验详情（嵌套题目与选项）
// @Tags 测验
// @Produce json
// @Param id path int true "测验ID"
// @Success 200 {object} util.Response
// @Router /api/quizzes/{id} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	quiz, err := c.Service.GetQuizDetail(uint(id))
	if err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, quiz)
}

// @Summary 更新测验
// @Tags 测验
// @Accept json
// @Produce json
// @Param id path int true "测验ID"
// @Param body body service.QuizRequest true "测验信息"
// @Success 200 {object} util.Response
// @Router /api/quizzes/{id} [put]
func (c *QuizController) UpdateQuiz(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req service.QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.Service.UpdateQuiz(uint(id), req)
	if err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, quiz)
}

// @Summary 删除测验（级联删除题目与选项）
// @Tags 测验
// @Produce json
// @Param id path int true "测验ID"
// @Success 200 {object} util.Response
// @Router /api/quizzes/{id} [delete]
func (c *QuizController) DeleteQuiz(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	if err := c.Service.DeleteQuiz(uint(id)); err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, gin.H{"deleted": id})
}

// @Summary 发布测验
// @Tags 测验
// @Produce json
// @Param id path int true "测验ID"
// @Success 200 {object} util.Response
// @Router /api/quizzes/{id}/publish [post]
func (c *QuizController) PublishQuiz(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	quiz, err := c.Service.PublishQuiz(uint(id))
	if err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, quiz)
}

type SchedulePublishRequest struct {
	PublishAt time.Time `json:"publishAt" binding:"required"`
}

// @Summary 排期发布测验
// @Tags 测验
// @Accept json
// @Produce json
// @Param id path int true "测验ID"
// @Param body body SchedulePublishRequest true "排期时间"
// @Success 200 {object} util.Response
// @Router /api/quizzes/{id}/schedule_publish [post]
func (c *QuizController) SchedulePublish(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req SchedulePublishRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.Service.SchedulePublish(uint(id), req.PublishAt)
	if err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, quiz)
}
