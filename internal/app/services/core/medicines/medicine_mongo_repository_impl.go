package medicines

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

type MedicineMongoRepository struct {
	Collection *mongo.Collection
}

func NewMedicineMongoRepository(db *mongo.Client, dbName string) contracts.MedicineRepository {
	return &MedicineMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionMedicines),
	}
}

func (r *MedicineMongoRepository) Insert(ctx context.Context, medicine *models.Medicine) (string, error) {
	medicine.ID = ""
	result, err := r.Collection.InsertOne(ctx, medicine)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *MedicineMongoRepository) FindByID(ctx context.Context, medicineID string) (*models.Medicine, error) {
	objectID, err := primitive.ObjectIDFromHex(medicineID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var medicine models.Medicine
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&medicine)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &medicine, nil
}

func (r *MedicineMongoRepository) FindAll(ctx context.Context, queryParams *requests.QueryParams) ([]models.Medicine, error) {
	filter := bson.M{}
	if queryParams.Status == "active" {
		filter["isActive"] = true
	} else if queryParams.Status == "inactive" {
		filter["isActive"] = false
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(int64((queryParams.Page - 1) * queryParams.PageSize)).
		SetLimit(int64(queryParams.PageSize))

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var medicines []models.Medicine
	if err := cursor.All(ctx, &medicines); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return medicines, nil
}

func (r *MedicineMongoRepository) Update(ctx context.Context, medicine *models.Medicine) error {
	objectID, err := primitive.ObjectIDFromHex(medicine.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	medicine.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"name":             medicine.Name,
		"type":             medicine.Type,
		"ingredient":       medicine.Ingredient,
		"dosage":           medicine.Dosage,
		"contraindication": medicine.Contraindication,
		"sideEffect":       medicine.SideEffect,
		"quantity":         medicine.Quantity,
		"unitPrice":        medicine.UnitPrice,
		"unit":             medicine.Unit,
		"expirationDate":   medicine.ExpirationDate,
		"supplierName":     medicine.SupplierName,
		"updatedAt":        medicine.UpdatedAt,
	}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *MedicineMongoRepository) Disable(ctx context.Context, medicineID, reason string) error {
	objectID, err := primitive.ObjectIDFromHex(medicineID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"isActive":      false,
		"disableReason": reason,
		"updatedAt":     time.Now(),
	}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

// DecrementQuantity uses a conditional update so that stock can never go
// negative, even with concurrent dispense requests.
func (r *MedicineMongoRepository) DecrementQuantity(ctx context.Context, medicineID string, amount int) (*models.Medicine, error) {
	objectID, err := primitive.ObjectIDFromHex(medicineID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{
		"_id":      objectID,
		"isActive": true,
		"quantity": bson.M{"$gte": amount},
	}
	update := bson.M{
		"$inc": bson.M{"quantity": -amount},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var medicine models.Medicine
	err = r.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&medicine)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &medicine, nil
}
