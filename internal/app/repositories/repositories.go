package repositories

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names used by the application.
const (
	studentsCollection = "students"
	coursesCollection  = "courses"
)

// Repositories holds all repository instances
type Repositories struct {
	StudentRepository *StudentRepository
	CourseRepository  *CourseRepository
}

// NewRepositories creates all repositories sharing the same database handle
func NewRepositories(database *mongo.Database) *Repositories {
	return &Repositories{
		StudentRepository: NewStudentRepository(database),
		CourseRepository:  NewCourseRepository(database),
	}
}

// isDuplicateKeyError checks if the error is a MongoDB unique index violation.
func isDuplicateKeyError(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
