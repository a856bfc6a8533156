package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tastapp/tast-backend/internal/app/models/dto"
	"github.com/tastapp/tast-backend/internal/pkg/apperrors"
	"github.com/tastapp/tast-backend/internal/pkg/logger"
)

// HandleAPIError maps application errors to HTTP responses. Messages are
// the Arabic text shown to users; details carry the underlying error for
// debuggability.
func HandleAPIError(c *gin.Context, err error) {
	var customErr *apperrors.CustomError
	var details interface{}
	if errors.As(err, &customErr) {
		if customErr.Message != "" {
			details = customErr.Message
		}
		if customErr.Details != nil {
			details = customErr.Details
		}
	}

	respond := func(status int, code, message string) {
		resp := dto.NewErrorResponse(code, message)
		if details != nil {
			resp = resp.WithDetails(details)
		}
		c.AbortWithStatusJSON(status, resp)
	}

	switch {
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrInvalidFormat):
		respond(http.StatusBadRequest, dto.ErrorCodeValidationFailed, "البيانات المدخلة غير صالحة")
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "اسم المستخدم أو كلمة المرور غير صحيحة")
	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "انتهت صلاحية الجلسة، يرجى تسجيل الدخول مجددا")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		respond(http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "جلسة غير صالحة")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(http.StatusForbidden, dto.ErrorCodeForbidden, "ليست لديك صلاحية الوصول")
	case errors.Is(err, apperrors.ErrCourseNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeNotFound, "الدورة غير موجودة")
	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeNotFound, "المورد المطلوب غير موجود")
	case errors.Is(err, apperrors.ErrUsernameExists),
		errors.Is(err, apperrors.ErrResourceAlreadyExists):
		respond(http.StatusConflict, dto.ErrorCodeConflict, "الاسم مستخدم من قبل")
	case errors.Is(err, apperrors.ErrNotImplemented):
		respond(http.StatusNotImplemented, dto.ErrorCodeNotImplemented, "هذه الخاصية غير متاحة حاليا")
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		// Unexpected failures still echo the underlying message so the
		// admin can see what went wrong without server access
		if details == nil {
			details = err.Error()
		}
		respond(http.StatusInternalServerError, dto.ErrorCodeInternalServer, "حدث خطأ غير متوقع، يرجى المحاولة لاحقا")
	}
}
