package services

import (
	"context"
	"fmt"
	"math"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/eakyol/campusdesk/internal/app/models"
	"github.com/eakyol/campusdesk/internal/app/models/dto"
	"github.com/eakyol/campusdesk/internal/app/repositories"
)

// StatsService computes dashboard statistics and reports. The component
// counts come from separate queries, so totals and grouped sums can diverge
// under concurrent writes; the snapshot is best effort.
type StatsService interface {
	DashboardStats(ctx context.Context) (*dto.DashboardStats, error)
	Reports(ctx context.Context) (*dto.Report, error)
}

// statsServiceImpl implements the StatsService interface
type statsServiceImpl struct {
	studentRepo *repositories.StudentRepository
	courseRepo  *repositories.CourseRepository
}

// NewStatsService creates a new stats service instance
func NewStatsService(studentRepo *repositories.StudentRepository, courseRepo *repositories.CourseRepository) StatsService {
	return &statsServiceImpl{
		studentRepo: studentRepo,
		courseRepo:  courseRepo,
	}
}

// successRate returns round(graduates/total*100), or 0 when there are no
// students.
func successRate(graduates, total int64) int64 {
	if total == 0 {
		return 0
	}
	return int64(math.Round(float64(graduates) / float64(total) * 100))
}

// DashboardStats assembles the dashboard snapshot.
func (s *statsServiceImpl) DashboardStats(ctx context.Context) (*dto.DashboardStats, error) {
	totalStudents, err := s.studentRepo.Count(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error computing dashboard stats: %w", err)
	}

	activeStudents, err := s.studentRepo.Count(ctx, bson.M{"status": models.StatusActive})
	if err != nil {
		return nil, fmt.Errorf("error computing dashboard stats: %w", err)
	}

	totalCourses, err := s.courseRepo.Count(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error computing dashboard stats: %w", err)
	}

	activeCourses, err := s.courseRepo.Count(ctx, bson.M{"status": models.StatusActive})
	if err != nil {
		return nil, fmt.Errorf("error computing dashboard stats: %w", err)
	}

	// Graduates are students with inactive status.
	graduates, err := s.studentRepo.Count(ctx, bson.M{"status": models.StatusInactive})
	if err != nil {
		return nil, fmt.Errorf("error computing dashboard stats: %w", err)
	}

	perCourse, err := s.studentRepo.CountByCourse(ctx)
	if err != nil {
		return nil, fmt.Errorf("error computing dashboard stats: %w", err)
	}

	return &dto.DashboardStats{
		TotalStudents:     totalStudents,
		ActiveStudents:    activeStudents,
		TotalCourses:      totalCourses,
		ActiveCourses:     activeCourses,
		Graduates:         graduates,
		StudentsPerCourse: perCourse,
		SuccessRate:       successRate(graduates, totalStudents),
	}, nil
}

// Reports counts students and the distinct free-text course values among
// them.
func (s *statsServiceImpl) Reports(ctx context.Context) (*dto.Report, error) {
	totalStudents, err := s.studentRepo.Count(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error computing report: %w", err)
	}

	courses, err := s.studentRepo.DistinctCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("error computing report: %w", err)
	}

	perCourse, err := s.studentRepo.CountByCourse(ctx)
	if err != nil {
		return nil, fmt.Errorf("error computing report: %w", err)
	}

	return &dto.Report{
		TotalStudents:     totalStudents,
		CourseCount:       int64(len(courses)),
		StudentsPerCourse: perCourse,
	}, nil
}
