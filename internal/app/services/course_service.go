package services

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/eakyol/campusdesk/internal/app/models"
	"github.com/eakyol/campusdesk/internal/app/models/dto"
	"github.com/eakyol/campusdesk/internal/app/repositories"
	"github.com/eakyol/campusdesk/internal/pkg/apperrors"
	"github.com/eakyol/campusdesk/internal/pkg/validation"
)

// CourseService defines the interface for course-related operations
type CourseService interface {
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	GetCourseByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error)
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error)
	UpdateCourse(ctx context.Context, id primitive.ObjectID, req *dto.UpdateCourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, id primitive.ObjectID) error
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo  *repositories.CourseRepository
	studentRepo *repositories.StudentRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo *repositories.CourseRepository, studentRepo *repositories.StudentRepository) CourseService {
	return &courseServiceImpl{
		courseRepo:  courseRepo,
		studentRepo: studentRepo,
	}
}

// validateCreateCourse validates creation input and builds the course
// document. It runs before any persistence call.
func validateCreateCourse(req *dto.CreateCourseRequest) (*models.Course, error) {
	if req == nil {
		return nil, apperrors.NewValidationError("request body is required")
	}
	if validation.IsBlank(req.Name) {
		return nil, apperrors.NewValidationError("name is required")
	}
	if validation.IsBlank(req.Description) {
		return nil, apperrors.NewValidationError("description is required")
	}
	if req.Duration <= 0 {
		return nil, apperrors.NewValidationError("duration must be a positive number of months")
	}

	status := models.StatusActive
	if req.Status != "" {
		status = models.Status(req.Status)
		if !status.Valid() {
			return nil, apperrors.NewValidationError("status must be active or inactive")
		}
	}

	return &models.Course{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Duration:    req.Duration,
		Status:      status,
	}, nil
}

// buildCourseUpdate assembles the partial-update document from the supplied
// fields only.
func buildCourseUpdate(req *dto.UpdateCourseRequest) (bson.M, error) {
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
	if req.Description != nil {
		if validation.IsBlank(*req.Description) {
			return nil, apperrors.NewValidationError("description cannot be empty")
		}
		fields["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Duration != nil {
		if *req.Duration <= 0 {
			return nil, apperrors.NewValidationError("duration must be a positive number of months")
		}
		fields["duration"] = *req.Duration
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

// GetAllCourses retrieves all courses ordered by name.
func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// GetCourseByID retrieves a course by ID
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return course, nil
}

// CreateCourse validates and persists a new course.
func (s *courseServiceImpl) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	course, err := validateCreateCourse(req)
	if err != nil {
		return nil, err
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// UpdateCourse applies a partial update to an existing course.
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, id primitive.ObjectID, req *dto.UpdateCourseRequest) (*models.Course, error) {
	fields, err := buildCourseUpdate(req)
	if err != nil {
		return nil, err
	}

	course, err := s.courseRepo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	return course, nil
}

// DeleteCourse removes a course unless students still reference it. The
// student course field is free text, so references are matched against both
// the course's ID and its name. Nothing is mutated on conflict.
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id primitive.ObjectID) error {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	enrolled, err := s.studentRepo.Count(ctx, bson.M{
		"course": bson.M{"$in": []string{id.Hex(), course.Name}},
	})
	if err != nil {
		return fmt.Errorf("error counting enrolled students: %w", err)
	}
	if enrolled > 0 {
		return apperrors.ErrCourseHasStudents
	}

	return s.courseRepo.Delete(ctx, id)
}
