package mongodb

import (
	"context"

	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/repository"
	"dashboard/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// orderRepository implements repository.OrderRepository on a mongo collection.
type orderRepository struct {
	collection *mongo.Collection
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *mongo.Database) repository.OrderRepository {
	return &orderRepository{
		collection: db.Collection(model.OrderCollectionName),
	}
}

// CreateOrder inserts the order as a schemaless document: the full submitted
// payload plus the computed order_id and final_price.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	document := bson.M{}
	for key, value := range order.Fields {
		document[key] = value
	}
	document["order_id"] = order.OrderID
	document["final_price"] = order.FinalPrice

	if _, err := repo.collection.InsertOne(ctx, document); err != nil {
		return errors.Wrap(err, "failed to insert order")
	}

	return nil
}
