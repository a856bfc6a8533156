// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tastapp/tast-backend/internal/app/models/dto"
	"github.com/tastapp/tast-backend/internal/app/services"
	"github.com/tastapp/tast-backend/internal/middleware"
)

// AuthController handles authentication related operations
type AuthController struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Login authenticates a user and returns an access token. Credentials are
// accepted as a form post or JSON body.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.ErrorCodeValidationFailed,
			"اسم المستخدم وكلمة المرور مطلوبان",
		).WithDetails(err.Error()))
		return
	}

	tokenResponse, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("تم تسجيل الدخول بنجاح", tokenResponse))
}

// Logout acknowledges a logout. Tokens are stateless, so the client simply
// discards its copy.
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("تم تسجيل الخروج بنجاح", nil))
}
