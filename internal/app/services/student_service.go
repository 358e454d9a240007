package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/eakyol/campusdesk/internal/app/models"
	"github.com/eakyol/campusdesk/internal/app/models/dto"
	"github.com/eakyol/campusdesk/internal/app/repositories"
	"github.com/eakyol/campusdesk/internal/pkg/apperrors"
	"github.com/eakyol/campusdesk/internal/pkg/validation"
)

// enrollmentDateLayouts are the accepted formats for enrollment dates.
var enrollmentDateLayouts = []string{time.RFC3339, "2006-01-02"}

// StudentService defines the interface for student-related operations
type StudentService interface {
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
	GetStudentByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error)
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error)
	UpdateStudent(ctx context.Context, id primitive.ObjectID, req *dto.UpdateStudentRequest) (*models.Student, error)
	DeleteStudent(ctx context.Context, id primitive.ObjectID) error
	SearchStudents(ctx context.Context, term string) ([]*models.Student, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo *repositories.StudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
	}
}

// parseEnrollmentDate parses an enrollment date in any accepted layout.
func parseEnrollmentDate(value string) (time.Time, error) {
	for _, layout := range enrollmentDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperrors.NewValidationError("enrollmentDate must be an ISO date (YYYY-MM-DD)")
}

// validateCreateStudent validates creation input and builds the student
// document. It runs before any persistence call.
func validateCreateStudent(req *dto.CreateStudentRequest) (*models.Student, error) {
	if req == nil {
		return nil, apperrors.NewValidationError("request body is required")
	}
	if validation.IsBlank(req.Name) {
		return nil, apperrors.NewValidationError("name is required")
	}
	if n := len(strings.TrimSpace(req.Name)); n < validation.NameMinLength || n > validation.NameMaxLength {
		return nil, apperrors.NewValidationError("name must be between 2 and 100 characters")
	}
	if validation.IsBlank(req.Email) {
		return nil, apperrors.NewValidationError("email is required")
	}
	if !validation.IsValidEmail(req.Email) {
		return nil, apperrors.NewValidationError("email format is invalid")
	}
	if validation.IsBlank(req.Course) {
		return nil, apperrors.NewValidationError("course is required")
	}

	enrollmentDate, err := parseEnrollmentDate(req.EnrollmentDate)
	if err != nil {
		return nil, err
	}

	status := models.StatusActive
	if req.Status != "" {
		status = models.Status(req.Status)
		if !status.Valid() {
			return nil, apperrors.NewValidationError("status must be active or inactive")
		}
	}

	return &models.Student{
		Name:           strings.TrimSpace(req.Name),
		Email:          strings.TrimSpace(strings.ToLower(req.Email)),
		Course:         strings.TrimSpace(req.Course),
		EnrollmentDate: enrollmentDate,
		Status:         status,
	}, nil
}

// buildStudentUpdate assembles the partial-update document from the supplied
// fields only.
func buildStudentUpdate(req *dto.UpdateStudentRequest) (bson.M, error) {
	if req == nil {
		return nil, apperrors.NewValidationError("request body is required")
	}

	fields := bson.M{}
	if req.Name != nil {
		if validation.IsBlank(*req.Name) {
			return nil, apperrors.NewValidationError("name cannot be empty")
		}
		fields["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		if !validation.IsValidEmail(*req.Email) {
			return nil, apperrors.NewValidationError("email format is invalid")
		}
		fields["email"] = strings.TrimSpace(strings.ToLower(*req.Email))
	}
	if req.Course != nil {
		if validation.IsBlank(*req.Course) {
			return nil, apperrors.NewValidationError("course cannot be empty")
		}
		fields["course"] = strings.TrimSpace(*req.Course)
	}
	if req.EnrollmentDate != nil {
		enrollmentDate, err := parseEnrollmentDate(*req.EnrollmentDate)
		if err != nil {
			return nil, err
		}
		fields["enrollment_date"] = enrollmentDate
	}
	if req.Status != nil {
		status := models.Status(*req.Status)
		if !status.Valid() {
			return nil, apperrors.NewValidationError("status must be active or inactive")
		}
		fields["status"] = status
	}

	return fields, nil
}

// GetAllStudents retrieves all students, newest first.
func (s *studentServiceImpl) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// GetStudentByID retrieves a student by ID
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return student, nil
}

// CreateStudent validates and persists a new student.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	student, err := validateCreateStudent(req)
	if err != nil {
		return nil, err
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// UpdateStudent applies a partial update to an existing student.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id primitive.ObjectID, req *dto.UpdateStudentRequest) (*models.Student, error) {
	fields, err := buildStudentUpdate(req)
	if err != nil {
		return nil, err
	}

	student, err := s.studentRepo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	return student, nil
}

// DeleteStudent removes a student by ID
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id primitive.ObjectID) error {
	return s.studentRepo.Delete(ctx, id)
}

// SearchStudents returns students matching the term in name, course or
// email. An empty term matches every student.
func (s *studentServiceImpl) SearchStudents(ctx context.Context, term string) ([]*models.Student, error) {
	students, err := s.studentRepo.Search(ctx, strings.TrimSpace(term))
	if err != nil {
		return nil, fmt.Errorf("error searching students: %w", err)
	}
	return students, nil
}
