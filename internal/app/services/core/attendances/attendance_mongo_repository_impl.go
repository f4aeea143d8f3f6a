package attendances

import (
	"context"
	"hospicare-service/internal/app/contracts"
	"hospicare-service/internal/app/models"
	"hospicare-service/internal/pkg/constvars"
	"hospicare-service/internal/pkg/dto/requests"
	"hospicare-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AttendanceMongoRepository struct {
	Collection *mongo.Collection
}

func NewAttendanceMongoRepository(db *mongo.Client, dbName string) contracts.AttendanceRepository {
	return &AttendanceMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAttendances),
	}
}

func (r *AttendanceMongoRepository) Insert(ctx context.Context, attendance *models.Attendance) (string, error) {
	attendance.ID = ""
	result, err := r.Collection.InsertOne(ctx, attendance)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *AttendanceMongoRepository) FindByScheduleAndEmployee(ctx context.Context, scheduleID, employeeID string) (*models.Attendance, error) {
	filter := bson.M{"scheduleId": scheduleID, "employeeId": employeeID}

	var attendance models.Attendance
	err := r.Collection.FindOne(ctx, filter).Decode(&attendance)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &attendance, nil
}

func (r *AttendanceMongoRepository) FindByEmployee(ctx context.Context, employeeID string, queryParams *requests.QueryParams) ([]models.Attendance, error) {
	filter := bson.M{"employeeId": employeeID}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((queryParams.Page - 1) * queryParams.PageSize)).
		SetLimit(int64(queryParams.PageSize))

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var attendances []models.Attendance
	if err := cursor.All(ctx, &attendances); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return attendances, nil
}

func (r *AttendanceMongoRepository) Update(ctx context.Context, attendance *models.Attendance) error {
	objectID, err := primitive.ObjectIDFromHex(attendance.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	attendance.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"checkOutAt": attendance.CheckOutAt,
		"onLeave":    attendance.OnLeave,
		"updatedAt":  attendance.UpdatedAt,
	}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
