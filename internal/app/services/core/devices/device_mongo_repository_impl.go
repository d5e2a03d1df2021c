package devices

import (
	"context"
	"time"

	"rosta-service/internal/app/contracts"
	"rosta-service/internal/app/models"
	"rosta-service/internal/pkg/constvars"
	"rosta-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DeviceMongoRepository struct {
	Collection *mongo.Collection
}

func NewDeviceMongoRepository(db *mongo.Client, dbName string) contracts.DeviceRepository {
	return &DeviceMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDevices),
	}
}

func (repo *DeviceMongoRepository) Create(ctx context.Context, device *models.Device) (*models.Device, error) {
	if device.ID == "" {
		device.ID = primitive.NewObjectID().Hex()
	}
	_, err := repo.Collection.InsertOne(ctx, device)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return device, nil
}

func (repo *DeviceMongoRepository) FindAll(ctx context.Context) ([]models.Device, error) {
	var devices []models.Device
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &devices)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return devices, nil
}

func (repo *DeviceMongoRepository) FindByID(ctx context.Context, deviceID string) (*models.Device, error) {
	if _, err := primitive.ObjectIDFromHex(deviceID); err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var device models.Device
	err := repo.Collection.FindOne(ctx, bson.M{"_id": deviceID}).Decode(&device)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &device, nil
}

func (repo *DeviceMongoRepository) UpdateSettingsByID(ctx context.Context, deviceID string, settings models.DeviceSettings) (*models.Device, error) {
	if _, err := primitive.ObjectIDFromHex(deviceID); err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{"$set": bson.M{
		"settings":  settings,
		"updatedAt": time.Now(),
	}}
	var device models.Device
	findOptions := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := repo.Collection.FindOneAndUpdate(ctx, bson.M{"_id": deviceID}, update, findOptions).Decode(&device)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &device, nil
}

func (repo *DeviceMongoRepository) UpdateLastSeenByID(ctx context.Context, deviceID string) error {
	if _, err := primitive.ObjectIDFromHex(deviceID); err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{"$set": bson.M{"lastSeenAt": time.Now()}}
	_, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": deviceID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
