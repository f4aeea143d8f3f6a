package queues

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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type QueueMongoRepository struct {
	Collection *mongo.Collection
}

func NewQueueMongoRepository(db *mongo.Client, dbName string) contracts.QueueRepository {
	return &QueueMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionQueueEntries),
	}
}

func (r *QueueMongoRepository) Insert(ctx context.Context, entry *models.QueueEntry) (string, error) {
	entry.ID = ""
	result, err := r.Collection.InsertOne(ctx, entry)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *QueueMongoRepository) Delete(ctx context.Context, entryID string) error {
	objectID, err := primitive.ObjectIDFromHex(entryID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *QueueMongoRepository) UpdateStatusByAppointment(ctx context.Context, appointmentID string, status models.QueueEntryStatus) error {
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	_, err := r.Collection.UpdateOne(ctx, bson.M{"appointmentId": appointmentID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *QueueMongoRepository) CountByRoomAndDate(ctx context.Context, room, date string) (int64, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{"room": room, "date": date})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}

func (r *QueueMongoRepository) FindByRoomAndDate(ctx context.Context, room, date string) ([]models.QueueEntry, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{"room": room, "date": date}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var entries []models.QueueEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return entries, nil
}
