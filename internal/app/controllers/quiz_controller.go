package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tastapp/tast-backend/internal/app/models/dto"
	"github.com/tastapp/tast-backend/internal/app/services"
	"github.com/tastapp/tast-backend/internal/middleware"
)

// QuizController handles quiz submissions
type QuizController struct {
	quizService *services.QuizService
	logger      zerolog.Logger
}

// NewQuizController creates a new QuizController
func NewQuizController(quizService *services.QuizService, logger zerolog.Logger) *QuizController {
	return &QuizController{
		quizService: quizService,
		logger:      logger,
	}
}

// SubmitQuiz grades a submitted quiz. The form carries course_id,
// num_questions and one answer{i} field per answered question.
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	courseID, err := strconv.ParseInt(ctx.PostForm("course_id"), 10, 64)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Quiz submission with invalid course_id")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.ErrorCodeValidationFailed,
			"معرف الدورة غير صالح",
		).WithDetails(err.Error()))
		return
	}

	total, err := strconv.Atoi(ctx.PostForm("num_questions"))
	if err != nil {
		total = 0
	}

	answers := map[int]string{}
	for i := 0; i < total; i++ {
		if answer := ctx.PostForm(fmt.Sprintf("answer%d", i)); answer != "" {
			answers[i] = answer
		}
	}

	result, err := c.quizService.Submit(ctx.Request.Context(), courseID, total, answers)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(
		fmt.Sprintf("نتيجتك: %s", result.Score),
		result,
	))
}
