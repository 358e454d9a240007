package models

// Status represents the lifecycle state of a student or course.
// It is a business field, not a deletion marker.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Valid reports whether the status is one of the known values.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}
