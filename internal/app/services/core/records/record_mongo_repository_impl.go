package records

import (
	"context"
	"hospicare-service/internal/app/contracts"
	"hospicare-service/internal/app/models"
	"hospicare-service/internal/pkg/constvars"
	"hospicare-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type RecordMongoRepository struct {
	Collection *mongo.Collection
}

func NewRecordMongoRepository(db *mongo.Client, dbName string) contracts.MedicalRecordRepository {
	return &RecordMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionMedicalRecords),
	}
}

func (r *RecordMongoRepository) Insert(ctx context.Context, record *models.MedicalRecord) (string, error) {
	record.ID = ""
	result, err := r.Collection.InsertOne(ctx, record)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *RecordMongoRepository) FindByID(ctx context.Context, recordID string) (*models.MedicalRecord, error) {
	objectID, err := primitive.ObjectIDFromHex(recordID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var record models.MedicalRecord
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &record, nil
}

func (r *RecordMongoRepository) FindByAppointmentID(ctx context.Context, appointmentID string) (*models.MedicalRecord, error) {
	var record models.MedicalRecord
	err := r.Collection.FindOne(ctx, bson.M{"appointmentId": appointmentID}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &record, nil
}

func (r *RecordMongoRepository) Update(ctx context.Context, record *models.MedicalRecord) error {
	objectID, err := primitive.ObjectIDFromHex(record.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	record.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"admissionReason":    record.AdmissionReason,
		"admissionDiagnosis": record.AdmissionDiagnosis,
		"dischargeDiagnosis": record.DischargeDiagnosis,
		"labTestResult":      record.LabTestResult,
		"treatmentSummary":   record.TreatmentSummary,
		"services":           record.Services,
		"prescriptions":      record.Prescriptions,
		"status":             record.Status,
		"isPaid":             record.IsPaid,
		"updatedAt":          record.UpdatedAt,
	}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
