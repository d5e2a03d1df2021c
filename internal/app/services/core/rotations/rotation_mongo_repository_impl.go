package rotations

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

type RotationMongoRepository struct {
	Collection *mongo.Collection
}

func NewRotationMongoRepository(db *mongo.Client, dbName string) contracts.RotationRepository {
	return &RotationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionRotations),
	}
}

func (repo *RotationMongoRepository) Create(ctx context.Context, rotation *models.Rotation) (*models.Rotation, error) {
	if rotation.ID == "" {
		rotation.ID = primitive.NewObjectID().Hex()
	}
	_, err := repo.Collection.InsertOne(ctx, rotation)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return rotation, nil
}

func (repo *RotationMongoRepository) FindAll(ctx context.Context) ([]models.Rotation, error) {
	return repo.find(ctx, bson.M{})
}

func (repo *RotationMongoRepository) FindActive(ctx context.Context) ([]models.Rotation, error) {
	return repo.find(ctx, bson.M{"active": true})
}

func (repo *RotationMongoRepository) find(ctx context.Context, filter bson.M) ([]models.Rotation, error) {
	var rotations []models.Rotation
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &rotations)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return rotations, nil
}

func (repo *RotationMongoRepository) FindByID(ctx context.Context, rotationID string) (*models.Rotation, error) {
	if _, err := primitive.ObjectIDFromHex(rotationID); err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var rotation models.Rotation
	err := repo.Collection.FindOne(ctx, bson.M{"_id": rotationID}).Decode(&rotation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &rotation, nil
}

func (repo *RotationMongoRepository) UpdateByID(ctx context.Context, rotationID string, rotation *models.Rotation) (*models.Rotation, error) {
	if _, err := primitive.ObjectIDFromHex(rotationID); err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{"$set": bson.M{
		"name":        rotation.Name,
		"shiftTypeId": rotation.ShiftTypeID,
		"weekdays":    rotation.Weekdays,
		"horizonDays": rotation.HorizonDays,
		"active":      rotation.Active,
		"updatedAt":   rotation.UpdatedAt,
	}}
	_, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": rotationID}, update)
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	rotation.ID = rotationID
	return rotation, nil
}

func (repo *RotationMongoRepository) DeleteByID(ctx context.Context, rotationID string) error {
	if _, err := primitive.ObjectIDFromHex(rotationID); err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": rotationID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
