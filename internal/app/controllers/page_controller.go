package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tastapp/tast-backend/internal/app/models/dto"
	"github.com/tastapp/tast-backend/internal/app/services"
	"github.com/tastapp/tast-backend/internal/middleware"
)

// PageController serves the dashboard endpoints backing the landing,
// admin and student pages.
type PageController struct {
	courseService *services.CourseService
	logger        zerolog.Logger
}

// NewPageController creates a new PageController
func NewPageController(courseService *services.CourseService, logger zerolog.Logger) *PageController {
	return &PageController{
		courseService: courseService,
		logger:        logger,
	}
}

// Home returns the landing payload.
func (c *PageController) Home(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("مرحبا بكم في منصة الاختبارات", gin.H{
		"login": "/login",
	}))
}

// AdminDashboard returns the course list for the admin dashboard.
func (c *PageController) AdminDashboard(ctx *gin.Context) {
	courses, err := c.courseService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("لوحة تحكم المشرف", gin.H{
		"courses": courses,
	}))
}

// StudentDashboard returns the course list for the student dashboard.
func (c *PageController) StudentDashboard(ctx *gin.Context) {
	courses, err := c.courseService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("قائمة الدورات المتاحة", gin.H{
		"courses": courses,
	}))
}
