package medicinechecks

import (
	"context"
	"hospicare-service/internal/app/contracts"
	"hospicare-service/internal/app/models"
	"hospicare-service/internal/pkg/constvars"
	"hospicare-service/internal/pkg/dto/requests"
	"hospicare-service/internal/pkg/exceptions"
	"hospicare-service/internal/pkg/utils"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MedicineCheckMongoRepository struct {
	Collection *mongo.Collection
}

func NewMedicineCheckMongoRepository(db *mongo.Client, dbName string) contracts.MedicineCheckRepository {
	return &MedicineCheckMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionMedicineChecks),
	}
}

func (r *MedicineCheckMongoRepository) Insert(ctx context.Context, check *models.MedicineCheck) (string, error) {
	check.ID = ""
	result, err := r.Collection.InsertOne(ctx, check)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *MedicineCheckMongoRepository) FindByID(ctx context.Context, checkID string) (*models.MedicineCheck, error) {
	objectID, err := primitive.ObjectIDFromHex(checkID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var check models.MedicineCheck
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&check)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &check, nil
}

func (r *MedicineCheckMongoRepository) FindAll(ctx context.Context, queryParams *requests.QueryParams) ([]models.MedicineCheck, error) {
	filter := bson.M{}
	if queryParams.Status != "" {
		filter["status"] = queryParams.Status
	}
	if queryParams.StartDate != "" && queryParams.EndDate != "" {
		startDate, err := utils.ParseDateYYYYMMDD(queryParams.StartDate)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		endDate, err := utils.ParseDateYYYYMMDD(queryParams.EndDate)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		filter["checkDate"] = bson.M{"$gte": startDate, "$lt": endDate.AddDate(0, 0, 1)}
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "checkDate", Value: -1}}).
		SetSkip(int64((queryParams.Page - 1) * queryParams.PageSize)).
		SetLimit(int64(queryParams.PageSize))

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var checks []models.MedicineCheck
	if err := cursor.All(ctx, &checks); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return checks, nil
}

func (r *MedicineCheckMongoRepository) Update(ctx context.Context, check *models.MedicineCheck) error {
	objectID, err := primitive.ObjectIDFromHex(check.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	check.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"status":    check.Status,
		"details":   check.Details,
		"updatedAt": check.UpdatedAt,
	}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
