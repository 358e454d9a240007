package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/eakyol/campusdesk/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	dashboardController *controllers.DashboardController,
	healthController *controllers.HealthController,
) {
	api := router.Group("/api")

	courses := api.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.POST("", courseController.CreateCourse)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.PUT("/:id", courseController.UpdateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)
	}

	students := api.Group("/students")
	{
		students.GET("", studentController.GetAllStudents)
		students.POST("", studentController.CreateStudent)
		// The static search segment takes priority over the :id parameter,
		// so /students/search never resolves to GetStudentByID.
		students.GET("/search", studentController.SearchStudents)
		students.GET("/:id", studentController.GetStudentByID)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
	}

	api.GET("/dashboard/stats", dashboardController.GetDashboardStats)
	api.GET("/reports", dashboardController.GetReports)

	health := router.Group("/health")
	{
		health.GET("", healthController.GetHealth)
		health.GET("/detailed", healthController.GetDetailedHealth)
	}
}
