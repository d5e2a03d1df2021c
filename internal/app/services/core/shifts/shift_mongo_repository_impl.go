package shifts

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

type ShiftMongoRepository struct {
	Collection *mongo.Collection
}

func NewShiftMongoRepository(db *mongo.Client, dbName string) contracts.ShiftRepository {
	return &ShiftMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionShifts),
	}
}

// shiftSortOrder keeps query results deterministic: by day first, then by
// insertion time within the day.
var shiftSortOrder = bson.D{{Key: "date", Value: 1}, {Key: "createdAt", Value: 1}}

func (repo *ShiftMongoRepository) Create(ctx context.Context, shift *models.Shift) (*models.Shift, error) {
	if shift.ID == "" {
		shift.ID = primitive.NewObjectID().Hex()
	}
	_, err := repo.Collection.InsertOne(ctx, shift)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return shift, nil
}

func (repo *ShiftMongoRepository) CreateMany(ctx context.Context, shifts []models.Shift) ([]models.Shift, error) {
	if len(shifts) == 0 {
		return shifts, nil
	}
	documents := make([]interface{}, len(shifts))
	for i := range shifts {
		if shifts[i].ID == "" {
			shifts[i].ID = primitive.NewObjectID().Hex()
		}
		documents[i] = shifts[i]
	}
	_, err := repo.Collection.InsertMany(ctx, documents)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return shifts, nil
}

func (repo *ShiftMongoRepository) FindByID(ctx context.Context, shiftID string) (*models.Shift, error) {
	if _, err := primitive.ObjectIDFromHex(shiftID); err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var shift models.Shift
	err := repo.Collection.FindOne(ctx, bson.M{"_id": shiftID}).Decode(&shift)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &shift, nil
}

func (repo *ShiftMongoRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]models.Shift, error) {
	var shifts []models.Shift
	filter := bson.M{"date": bson.M{"$gte": start, "$lt": end}}
	findOptions := options.Find().SetSort(shiftSortOrder)
	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &shifts)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return shifts, nil
}

func (repo *ShiftMongoRepository) FindByDates(ctx context.Context, dates []time.Time) ([]models.Shift, error) {
	if len(dates) == 0 {
		return nil, nil
	}
	var shifts []models.Shift
	filter := bson.M{"date": bson.M{"$in": dates}}
	findOptions := options.Find().SetSort(shiftSortOrder)
	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &shifts)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return shifts, nil
}

func (repo *ShiftMongoRepository) ExistsByShiftTypeID(ctx context.Context, shiftTypeID string) (bool, error) {
	countOptions := options.Count().SetLimit(1)
	count, err := repo.Collection.CountDocuments(ctx, bson.M{"shiftTypeId": shiftTypeID}, countOptions)
	if err != nil {
		return false, exceptions.ErrMongoDBFindDocument(err)
	}
	return count > 0, nil
}

func (repo *ShiftMongoRepository) DeleteByID(ctx context.Context, shiftID string) error {
	if _, err := primitive.ObjectIDFromHex(shiftID); err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": shiftID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (repo *ShiftMongoRepository) DeleteByDates(ctx context.Context, dates []time.Time) (int64, error) {
	if len(dates) == 0 {
		return 0, nil
	}
	result, err := repo.Collection.DeleteMany(ctx, bson.M{"date": bson.M{"$in": dates}})
	if err != nil {
		return 0, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount, nil
}

func (repo *ShiftMongoRepository) DeleteByRotationID(ctx context.Context, rotationID string, from time.Time) (int64, error) {
	filter := bson.M{
		"rotationId": rotationID,
		"date":       bson.M{"$gte": from},
	}
	result, err := repo.Collection.DeleteMany(ctx, filter)
	if err != nil {
		return 0, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount, nil
}
