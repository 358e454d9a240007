package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Student represents an enrolled student document.
//
// NOTE: Course is the free-text name of the course the student is enrolled
// in, not a foreign key to the courses collection. Reports group on the
// literal string values.
type Student struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email" json:"email"`
	Course         string             `bson:"course" json:"course"`
	EnrollmentDate time.Time          `bson:"enrollment_date" json:"enrollmentDate"`
	Status         Status             `bson:"status" json:"status"`
	CreatedAt      time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updatedAt"`
}
