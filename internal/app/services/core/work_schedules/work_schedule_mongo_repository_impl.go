package workschedules

import (
	"context"
	"hospicare-service/internal/app/contracts"
	"hospicare-service/internal/app/models"
	"hospicare-service/internal/pkg/constvars"
	"hospicare-service/internal/pkg/dto/requests"
	"hospicare-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type WorkScheduleMongoRepository struct {
	Collection *mongo.Collection
}

func NewWorkScheduleMongoRepository(db *mongo.Client, dbName string) contracts.WorkScheduleRepository {
	return &WorkScheduleMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionWorkSchedules),
	}
}

func (r *WorkScheduleMongoRepository) Insert(ctx context.Context, schedule *models.WorkSchedule) (string, error) {
	schedule.ID = ""
	result, err := r.Collection.InsertOne(ctx, schedule)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *WorkScheduleMongoRepository) FindByID(ctx context.Context, scheduleID string) (*models.WorkSchedule, error) {
	objectID, err := primitive.ObjectIDFromHex(scheduleID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var schedule models.WorkSchedule
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&schedule)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &schedule, nil
}

func (r *WorkScheduleMongoRepository) FindByEmployee(ctx context.Context, employeeID string, queryParams *requests.QueryParams) ([]models.WorkSchedule, error) {
	filter := bson.M{"employeeId": employeeID}
	if queryParams.StartDate != "" && queryParams.EndDate != "" {
		filter["date"] = bson.M{"$gte": queryParams.StartDate, "$lte": queryParams.EndDate}
	} else if queryParams.Date != "" {
		filter["date"] = queryParams.Date
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "date", Value: 1}}).
		SetSkip(int64((queryParams.Page - 1) * queryParams.PageSize)).
		SetLimit(int64(queryParams.PageSize))

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var schedules []models.WorkSchedule
	if err := cursor.All(ctx, &schedules); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return schedules, nil
}
