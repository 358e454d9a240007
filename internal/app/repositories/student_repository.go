package repositories

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/eakyol/campusdesk/internal/app/models"
	"github.com/eakyol/campusdesk/internal/pkg/apperrors"
	"github.com/eakyol/campusdesk/internal/pkg/logger"
)

// StudentRepository handles student collection operations
type StudentRepository struct {
	coll *mongo.Collection
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(database *mongo.Database) *StudentRepository {
	return &StudentRepository{
		coll: database.Collection(studentsCollection),
	}
}

// GetAll retrieves all students ordered by creation time, newest first.
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying students")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer cursor.Close(ctx)

	students := []*models.Student{}
	if err := cursor.All(ctx, &students); err != nil {
		logger.Error().Err(err).Msg("Error decoding student documents")
		return nil, fmt.Errorf("error decoding students: %w", err)
	}

	return students, nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error) {
	student := &models.Student{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(student)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("studentID", id.Hex()).Msg("Error fetching student")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}

	return student, nil
}

// Create inserts a new student. ID and timestamps are set here.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	now := time.Now().UTC()
	student.ID = primitive.NewObjectID()
	student.CreatedAt = now
	student.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, student); err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Msg("Error inserting student")
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// Update applies the supplied fields to an existing student and returns the
// updated document. The updated_at timestamp always advances.
func (r *StudentRepository) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Student, error) {
	fields["updated_at"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	student := &models.Student{}
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(student)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrStudentNotFound
		}
		if isDuplicateKeyError(err) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Str("studentID", id.Hex()).Msg("Error updating student")
		return nil, fmt.Errorf("error updating student: %w", err)
	}

	return student, nil
}

// Delete removes a student by ID
func (r *StudentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		logger.Error().Err(err).Str("studentID", id.Hex()).Msg("Error deleting student")
		return fmt.Errorf("error deleting student: %w", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Search returns students whose name, course or email contains the term,
// case-insensitively. An empty term matches all students.
func (r *StudentRepository) Search(ctx context.Context, term string) ([]*models.Student, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
	filter := bson.M{
		"$or": []bson.M{
			{"name": pattern},
			{"course": pattern},
			{"email": pattern},
		},
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		logger.Error().Err(err).Str("term", term).Msg("Error searching students")
		return nil, fmt.Errorf("error searching students: %w", err)
	}
	defer cursor.Close(ctx)

	students := []*models.Student{}
	if err := cursor.All(ctx, &students); err != nil {
		logger.Error().Err(err).Msg("Error decoding student documents")
		return nil, fmt.Errorf("error decoding students: %w", err)
	}

	return students, nil
}

// Count returns the number of students matching the filter.
func (r *StudentRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		logger.Error().Err(err).Msg("Error counting students")
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}

// courseCount is the shape produced by the group-by-course pipeline.
type courseCount struct {
	Course string `bson:"_id"`
	Count  int64  `bson:"count"`
}

// CountByCourse groups students by their course value and counts each group.
func (r *StudentRepository) CountByCourse(ctx context.Context) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$course"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		logger.Error().Err(err).Msg("Error aggregating students by course")
		return nil, fmt.Errorf("error grouping students by course: %w", err)
	}
	defer cursor.Close(ctx)

	var groups []courseCount
	if err := cursor.All(ctx, &groups); err != nil {
		logger.Error().Err(err).Msg("Error decoding course count groups")
		return nil, fmt.Errorf("error decoding course counts: %w", err)
	}

	counts := make(map[string]int64, len(groups))
	for _, g := range groups {
		counts[g.Course] = g.Count
	}

	return counts, nil
}

// DistinctCourses returns the distinct course values appearing among
// students. These are free-text values, not course document references.
func (r *StudentRepository) DistinctCourses(ctx context.Context) ([]string, error) {
	values, err := r.coll.Distinct(ctx, "course", bson.D{})
	if err != nil {
		logger.Error().Err(err).Msg("Error fetching distinct course values")
		return nil, fmt.Errorf("error fetching distinct courses: %w", err)
	}

	courses := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			courses = append(courses, s)
		}
	}

	return courses, nil
}
