package dto

// DashboardStats is the aggregate snapshot served by /api/dashboard/stats.
// The component counts come from separate queries and are not guaranteed to
// be mutually consistent under concurrent writes.
type DashboardStats struct {
	TotalStudents     int64            `json:"totalStudents"`
	ActiveStudents    int64            `json:"activeStudents"`
	TotalCourses      int64            `json:"totalCourses"`
	ActiveCourses     int64            `json:"activeCourses"`
	Graduates         int64            `json:"graduates"`
	StudentsPerCourse map[string]int64 `json:"studentsPerCourse"`
	SuccessRate       int64            `json:"successRate"`
}

// Report is the body served by /api/reports. CourseCount is the number of
// distinct free-text course values among students, which can differ from the
// number of course documents.
type Report struct {
	TotalStudents     int64            `json:"totalStudents"`
	CourseCount       int64            `json:"courseCount"`
	StudentsPerCourse map[string]int64 `json:"studentsPerCourse"`
}
