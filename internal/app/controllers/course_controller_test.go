package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/eakyol/campusdesk/internal/app/models"
	"github.com/eakyol/campusdesk/internal/app/models/dto"
	"github.com/eakyol/campusdesk/internal/pkg/apperrors"
)

// stubCourseService is a canned-response CourseService for handler tests.
type stubCourseService struct {
	courses []*models.Course
	course  *models.Course
	err     error
}

func (s *stubCourseService) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courses, s.err
}

func (s *stubCourseService) GetCourseByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.course, nil
}

func (s *stubCourseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.course, nil
}

func (s *stubCourseService) UpdateCourse(ctx context.Context, id primitive.ObjectID, req *dto.UpdateCourseRequest) (*models.Course, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.course, nil
}

func (s *stubCourseService) DeleteCourse(ctx context.Context, id primitive.ObjectID) error {
	return s.err
}

func courseRouter(svc *stubCourseService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	c := NewCourseController(svc)
	courses := router.Group("/api/courses")
	{
		courses.GET("", c.GetAllCourses)
		courses.POST("", c.CreateCourse)
		courses.GET("/:id", c.GetCourseByID)
		courses.PUT("/:id", c.UpdateCourse)
		courses.DELETE("/:id", c.DeleteCourse)
	}
	return router
}

func sampleCourse() *models.Course {
	return &models.Course{
		ID:          primitive.NewObjectID(),
		Name:        "CS101",
		Description: "Introduction to Computer Science",
		Duration:    6,
		Status:      models.StatusActive,
	}
}

func TestCourseControllerCreate(t *testing.T) {
	t.Run("returns-201-with-created-course", func(t *testing.T) {
		course := sampleCourse()
		svc := &stubCourseService{course: course}
		router := courseRouter(svc)

		payload := `{"name":"CS101","description":"Intro","duration":6}`
		req := httptest.NewRequest(http.MethodPost, "/api/courses", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		data := body["data"].(map[string]interface{})
		assert.Equal(t, "CS101", data["name"])
		assert.NotEmpty(t, data["id"])
	})
	t.Run("duplicate-name-returns-400", func(t *testing.T) {
		svc := &stubCourseService{err: apperrors.ErrCourseAlreadyExists}
		router := courseRouter(svc)

		payload := `{"name":"CS101","description":"Intro","duration":6}`
		req := httptest.NewRequest(http.MethodPost, "/api/courses", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
	t.Run("malformed-body-returns-400", func(t *testing.T) {
		svc := &stubCourseService{course: sampleCourse()}
		router := courseRouter(svc)

		req := httptest.NewRequest(http.MethodPost, "/api/courses", strings.NewReader(`{"name":`))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCourseControllerDelete(t *testing.T) {
	t.Run("enrolled-students-return-400-conflict", func(t *testing.T) {
		svc := &stubCourseService{err: apperrors.ErrCourseHasStudents}
		router := courseRouter(svc)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/courses/"+primitive.NewObjectID().Hex(), nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		errObj := body["error"].(map[string]interface{})
		assert.Contains(t, errObj["message"], "enrolled students")
	})
	t.Run("unreferenced-course-returns-confirmation", func(t *testing.T) {
		svc := &stubCourseService{}
		router := courseRouter(svc)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/courses/"+primitive.NewObjectID().Hex(), nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Course deleted successfully", body["message"])
	})
	t.Run("unknown-id-returns-404", func(t *testing.T) {
		svc := &stubCourseService{err: apperrors.ErrCourseNotFound}
		router := courseRouter(svc)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/courses/"+primitive.NewObjectID().Hex(), nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCourseControllerGetAll(t *testing.T) {
	t.Run("returns-200-with-courses", func(t *testing.T) {
		svc := &stubCourseService{courses: []*models.Course{sampleCourse()}}
		router := courseRouter(svc)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/courses", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
	t.Run("empty-collection-returns-empty-array", func(t *testing.T) {
		svc := &stubCourseService{courses: []*models.Course{}}
		router := courseRouter(svc)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/courses", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.NotNil(t, body["data"])
	})
}

func TestCourseControllerGetByID(t *testing.T) {
	t.Run("malformed-id-returns-400", func(t *testing.T) {
		svc := &stubCourseService{course: sampleCourse()}
		router := courseRouter(svc)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/courses/sql-injection", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid course ID format")
	})
	t.Run("unknown-id-returns-404", func(t *testing.T) {
		svc := &stubCourseService{err: apperrors.ErrCourseNotFound}
		router := courseRouter(svc)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/courses/"+primitive.NewObjectID().Hex(), nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
