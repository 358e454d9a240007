package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/eakyol/campusdesk/internal/app/models"
	"github.com/eakyol/campusdesk/internal/pkg/apperrors"
	"github.com/eakyol/campusdesk/internal/pkg/logger"
)

// CourseRepository handles course collection operations
type CourseRepository struct {
	coll *mongo.Collection
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(database *mongo.Database) *CourseRepository {
	return &CourseRepository{
		coll: database.Collection(coursesCollection),
	}
}

// GetAll retrieves all courses ordered alphabetically by name.
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying courses")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer cursor.Close(ctx)

	courses := []*models.Course{}
	if err := cursor.All(ctx, &courses); err != nil {
		logger.Error().Err(err).Msg("Error decoding course documents")
		return nil, fmt.Errorf("error decoding courses: %w", err)
	}

	return courses, nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error) {
	course := &models.Course{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(course)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Str("courseID", id.Hex()).Msg("Error fetching course")
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}

	return course, nil
}

// Create inserts a new course. ID and timestamps are set here.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	now := time.Now().UTC()
	course.ID = primitive.NewObjectID()
	course.CreatedAt = now
	course.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, course); err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.ErrCourseAlreadyExists
		}
		logger.Error().Err(err).Msg("Error inserting course")
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// Update applies the supplied fields to an existing course and returns the
// updated document. The updated_at timestamp always advances.
func (r *CourseRepository) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Course, error) {
	fields["updated_at"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	course := &models.Course{}
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(course)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrCourseNotFound
		}
		if isDuplicateKeyError(err) {
			return nil, apperrors.ErrCourseAlreadyExists
		}
		logger.Error().Err(err).Str("courseID", id.Hex()).Msg("Error updating course")
		return nil, fmt.Errorf("error updating course: %w", err)
	}

	return course, nil
}

// Delete removes a course by ID. The referential check against enrolled
// students belongs to the service layer.
func (r *CourseRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		logger.Error().Err(err).Str("courseID", id.Hex()).Msg("Error deleting course")
		return fmt.Errorf("error deleting course: %w", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Count returns the number of courses matching the filter.
func (r *CourseRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		logger.Error().Err(err).Msg("Error counting courses")
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return count, nil
}
