package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eakyol/campusdesk/internal/app/models"
	"github.com/eakyol/campusdesk/internal/app/models/dto"
	"github.com/eakyol/campusdesk/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }

func validCreateStudentRequest() *dto.CreateStudentRequest {
	return &dto.CreateStudentRequest{
		Name:           "Ana Silva",
		Email:          "ana@example.com",
		Course:         "CS101",
		EnrollmentDate: "2024-01-01",
	}
}

func TestValidateCreateStudent(t *testing.T) {
	t.Run("valid-request-defaults-to-active", func(t *testing.T) {
		student, err := validateCreateStudent(validCreateStudentRequest())
		require.NoError(t, err)
		assert.Equal(t, "Ana Silva", student.Name)
		assert.Equal(t, "ana@example.com", student.Email)
		assert.Equal(t, "CS101", student.Course)
		assert.Equal(t, models.StatusActive, student.Status)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), student.EnrollmentDate)
	})
	t.Run("accepts-rfc3339-date", func(t *testing.T) {
		req := validCreateStudentRequest()
		req.EnrollmentDate = "2024-01-01T10:30:00Z"
		student, err := validateCreateStudent(req)
		require.NoError(t, err)
		assert.Equal(t, 2024, student.EnrollmentDate.Year())
	})
	t.Run("lowercases-email", func(t *testing.T) {
		req := validCreateStudentRequest()
		req.Email = "Ana@Example.COM"
		student, err := validateCreateStudent(req)
		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", student.Email)
	})
	t.Run("explicit-inactive-status", func(t *testing.T) {
		req := validCreateStudentRequest()
		req.Status = "inactive"
		student, err := validateCreateStudent(req)
		require.NoError(t, err)
		assert.Equal(t, models.StatusInactive, student.Status)
	})
	t.Run("missing-name", func(t *testing.T) {
		req := validCreateStudentRequest()
		req.Name = "   "
		_, err := validateCreateStudent(req)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
	t.Run("name-too-short", func(t *testing.T) {
		req := validCreateStudentRequest()
		req.Name = "A"
		_, err := validateCreateStudent(req)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
	t.Run("invalid-email", func(t *testing.T) {
		req := validCreateStudentRequest()
		req.Email = "not-an-email"
		_, err := validateCreateStudent(req)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
	t.Run("missing-course", func(t *testing.T) {
		req := validCreateStudentRequest()
		req.Course = ""
		_, err := validateCreateStudent(req)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
	t.Run("invalid-date", func(t *testing.T) {
		req := validCreateStudentRequest()
		req.EnrollmentDate = "01/01/2024"
		_, err := validateCreateStudent(req)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
	t.Run("invalid-status", func(t *testing.T) {
		req := validCreateStudentRequest()
		req.Status = "graduated"
		_, err := validateCreateStudent(req)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
	t.Run("nil-request", func(t *testing.T) {
		_, err := validateCreateStudent(nil)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}

func TestBuildStudentUpdate(t *testing.T) {
	t.Run("only-supplied-fields", func(t *testing.T) {
		fields, err := buildStudentUpdate(&dto.UpdateStudentRequest{
			Name: strPtr("New Name"),
		})
		require.NoError(t, err)
		assert.Equal(t, "New Name", fields["name"])
		assert.NotContains(t, fields, "email")
		assert.NotContains(t, fields, "course")
		assert.NotContains(t, fields, "status")
		assert.NotContains(t, fields, "enrollment_date")
		// created_at is never part of an update
		assert.NotContains(t, fields, "created_at")
	})
	t.Run("empty-update-is-allowed", func(t *testing.T) {
		fields, err := buildStudentUpdate(&dto.UpdateStudentRequest{})
		require.NoError(t, err)
		assert.Empty(t, fields)
	})
	t.Run("all-fields", func(t *testing.T) {
		fields, err := buildStudentUpdate(&dto.UpdateStudentRequest{
			Name:           strPtr("New Name"),
			Email:          strPtr("new@example.com"),
			Course:         strPtr("CS202"),
			EnrollmentDate: strPtr("2024-06-15"),
			Status:         strPtr("inactive"),
		})
		require.NoError(t, err)
		assert.Len(t, fields, 5)
		assert.Equal(t, models.StatusInactive, fields["status"])
		assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), fields["enrollment_date"])
	})
	t.Run("blank-name-rejected", func(t *testing.T) {
		_, err := buildStudentUpdate(&dto.UpdateStudentRequest{Name: strPtr("  ")})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
	t.Run("invalid-email-rejected", func(t *testing.T) {
		_, err := buildStudentUpdate(&dto.UpdateStudentRequest{Email: strPtr("nope")})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
	t.Run("invalid-status-rejected", func(t *testing.T) {
		_, err := buildStudentUpdate(&dto.UpdateStudentRequest{Status: strPtr("dropped")})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}

func TestParseEnrollmentDate(t *testing.T) {
	t.Run("date-only", func(t *testing.T) {
		d, err := parseEnrollmentDate("2023-09-15")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2023, 9, 15, 0, 0, 0, 0, time.UTC), d)
	})
	t.Run("rfc3339", func(t *testing.T) {
		_, err := parseEnrollmentDate("2023-09-15T08:00:00+02:00")
		assert.NoError(t, err)
	})
	t.Run("garbage", func(t *testing.T) {
		_, err := parseEnrollmentDate("next tuesday")
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
	})
}
