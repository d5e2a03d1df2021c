package shifttypes

import (
	"context"

	"rosta-service/internal/app/contracts"
	"rosta-service/internal/app/models"
	"rosta-service/internal/pkg/constvars"
	"rosta-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ShiftTypeMongoRepository struct {
	Collection *mongo.Collection
}

func NewShiftTypeMongoRepository(db *mongo.Client, dbName string) contracts.ShiftTypeRepository {
	return &ShiftTypeMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionShiftTypes),
	}
}

func (repo *ShiftTypeMongoRepository) FindAll(ctx context.Context) ([]models.ShiftType, error) {
	var shiftTypes []models.ShiftType
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &shiftTypes)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return shiftTypes, nil
}

func (repo *ShiftTypeMongoRepository) FindByID(ctx context.Context, shiftTypeID string) (*models.ShiftType, error) {
	if _, err := primitive.ObjectIDFromHex(shiftTypeID); err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var shiftType models.ShiftType
	err := repo.Collection.FindOne(ctx, bson.M{"_id": shiftTypeID}).Decode(&shiftType)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &shiftType, nil
}

func (repo *ShiftTypeMongoRepository) FindByName(ctx context.Context, name string) (*models.ShiftType, error) {
	var shiftType models.ShiftType
	err := repo.Collection.FindOne(ctx, bson.M{"name": name}).Decode(&shiftType)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &shiftType, nil
}

func (repo *ShiftTypeMongoRepository) Create(ctx context.Context, shiftType *models.ShiftType) (*models.ShiftType, error) {
	if shiftType.ID == "" {
		shiftType.ID = primitive.NewObjectID().Hex()
	}
	_, err := repo.Collection.InsertOne(ctx, shiftType)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return shiftType, nil
}

func (repo *ShiftTypeMongoRepository) UpdateByID(ctx context.Context, shiftTypeID string, shiftType *models.ShiftType) (*models.ShiftType, error) {
	if _, err := primitive.ObjectIDFromHex(shiftTypeID); err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{"$set": bson.M{
		"name":       shiftType.Name,
		"symbol":     shiftType.Symbol,
		"color":      shiftType.Color,
		"allDay":     shiftType.AllDay,
		"startClock": shiftType.StartClock,
		"endClock":   shiftType.EndClock,
		"updatedAt":  shiftType.UpdatedAt,
	}}
	_, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": shiftTypeID}, update)
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	shiftType.ID = shiftTypeID
	return shiftType, nil
}

func (repo *ShiftTypeMongoRepository) DeleteByID(ctx context.Context, shiftTypeID string) error {
	if _, err := primitive.ObjectIDFromHex(shiftTypeID); err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": shiftTypeID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
