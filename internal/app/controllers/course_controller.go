package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tastapp/tast-backend/internal/app/models/dto"
	"github.com/tastapp/tast-backend/internal/app/services"
	"github.com/tastapp/tast-backend/internal/middleware"
	"github.com/tastapp/tast-backend/internal/pkg/apperrors"
)

// CourseController handles course management operations
type CourseController struct {
	courseService *services.CourseService
	logger        zerolog.Logger
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService, logger zerolog.Logger) *CourseController {
	return &CourseController{
		courseService: courseService,
		logger:        logger,
	}
}

// CreateCourse handles the multipart course creation form: course metadata
// plus the main PDF (pdfFile) and optional supplementary PDFs
// (additionalFiles).
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid create course form")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.ErrorCodeValidationFailed,
			"بيانات الدورة غير مكتملة",
		).WithDetails(err.Error()))
		return
	}

	pdfFile, err := ctx.FormFile("pdfFile")
	if err != nil {
		c.logger.Warn().Err(err).Str("course", req.CourseName).Msg("Course PDF missing from form")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.ErrorCodeValidationFailed,
			"ملف PDF الخاص بالدورة مطلوب",
		).WithDetails(err.Error()))
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.ErrorCodeValidationFailed,
			"تعذر قراءة نموذج الرفع",
		).WithDetails(err.Error()))
		return
	}
	additionalFiles := form.File["additionalFiles"]

	details, err := c.courseService.Create(ctx.Request.Context(), &req, pdfFile, additionalFiles)
	if err != nil {
		middleware.HandleAPIError(ctx, annotateCreateError(err, &req))
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(
		fmt.Sprintf("تم إنشاء الدورة '%s' بنجاح", details.Name),
		details,
	))
}

// annotateCreateError attaches the submitted form fields and the
// underlying error message to a failed course creation so the response
// carries the request context. Plain errors are wrapped so the detail
// survives the central error mapping; their status stays whatever the
// wrapped error maps to.
func annotateCreateError(err error, req *dto.CreateCourseRequest) error {
	msg := err.Error()

	var customErr *apperrors.CustomError
	if !errors.As(err, &customErr) {
		customErr = apperrors.NewCustomError(err, "")
		err = customErr
	}

	if customErr.Details == nil {
		customErr.WithDetails(map[string]interface{}{
			"courseName":   req.CourseName,
			"numQuestions": req.NumQuestions,
			"questionType": req.QuestionType,
			"language":     req.Language,
			"error":        msg,
		})
	}
	return err
}

// GetCourse returns a single course with its questions.
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrValidationFailed, "invalid course ID"))
		return
	}

	course, err := c.courseService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("تم جلب الدورة بنجاح", course))
}

// ListCourses returns all courses without their questions.
func (c *CourseController) ListCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("تم جلب الدورات بنجاح", courses))
}

// UploadQuestions is a placeholder for importing externally authored
// question banks. The form is accepted but processing is not implemented.
func (c *CourseController) UploadQuestions(ctx *gin.Context) {
	middleware.HandleAPIError(ctx, apperrors.ErrNotImplemented)
}
