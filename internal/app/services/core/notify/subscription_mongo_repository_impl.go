package notify

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

type SubscriptionMongoRepository struct {
	Collection *mongo.Collection
}

func NewSubscriptionMongoRepository(db *mongo.Client, dbName string) contracts.SubscriptionRepository {
	return &SubscriptionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSubscriptions),
	}
}

func (repo *SubscriptionMongoRepository) Create(ctx context.Context, subscription *models.Subscription) (*models.Subscription, error) {
	if subscription.ID == "" {
		subscription.ID = primitive.NewObjectID().Hex()
	}
	_, err := repo.Collection.InsertOne(ctx, subscription)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return subscription, nil
}

// FindPage returns one page of subscriptions in creation order plus the total
// count so the caller can build pagination links.
func (repo *SubscriptionMongoRepository) FindPage(ctx context.Context, page, pageSize int) ([]models.Subscription, int, error) {
	total, err := repo.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	pageOptions := options.Find().
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))
	subscriptions, err := repo.find(ctx, bson.M{}, pageOptions)
	if err != nil {
		return nil, 0, err
	}
	return subscriptions, int(total), nil
}

// FindActiveForEvent narrows by the active flag in the query; the event
// filter stays in Go because an empty Events list means every event.
func (repo *SubscriptionMongoRepository) FindActiveForEvent(ctx context.Context, eventType string) ([]models.Subscription, error) {
	subscriptions, err := repo.find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, err
	}
	matched := make([]models.Subscription, 0, len(subscriptions))
	for _, subscription := range subscriptions {
		if subscription.WantsEvent(eventType) {
			matched = append(matched, subscription)
		}
	}
	return matched, nil
}

func (repo *SubscriptionMongoRepository) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Subscription, error) {
	var subscriptions []models.Subscription
	findOptions := append([]*options.FindOptions{
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}),
	}, opts...)
	cursor, err := repo.Collection.Find(ctx, filter, findOptions...)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &subscriptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return subscriptions, nil
}

func (repo *SubscriptionMongoRepository) FindByID(ctx context.Context, subscriptionID string) (*models.Subscription, error) {
	if _, err := primitive.ObjectIDFromHex(subscriptionID); err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var subscription models.Subscription
	err := repo.Collection.FindOne(ctx, bson.M{"_id": subscriptionID}).Decode(&subscription)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &subscription, nil
}

func (repo *SubscriptionMongoRepository) DeleteByID(ctx context.Context, subscriptionID string) error {
	if _, err := primitive.ObjectIDFromHex(subscriptionID); err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": subscriptionID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
