package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eakyol/campusdesk/internal/app/models/dto"
	"github.com/eakyol/campusdesk/internal/pkg/apperrors"
	"github.com/eakyol/campusdesk/internal/pkg/logger"
)

// HandleAPIError translates domain errors to HTTP responses at the
// controller boundary. Validation and conflict failures map to 400,
// missing records to 404, everything else to 500 with the detail kept
// server-side.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrBadRequest, apperrors.ErrInvalidStudentID, apperrors.ErrInvalidCourseID):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
	case apperrors.Is(err, apperrors.ErrEmailAlreadyExists, apperrors.ErrCourseAlreadyExists):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error())))
	case apperrors.Is(err, apperrors.ErrConflict, apperrors.ErrCourseHasStudents):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeResourceConflict, err.Error())))
	case apperrors.Is(err, apperrors.ErrResourceNotFound, apperrors.ErrStudentNotFound, apperrors.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())))
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}
