package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Beka01247/sizzlesync-pos/internal/domain"
	"github.com/Beka01247/sizzlesync-pos/internal/repo"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type lineItemDoc struct {
	Name      string               `bson:"name"`
	UnitPrice primitive.Decimal128 `bson:"unit_price"`
	Quantity  int                  `bson:"quantity"`
}

type completedOrderDoc struct {
	SessionID       string               `bson:"session_id"`
	OrderNumber     int                  `bson:"order_number"`
	CustomerName    string               `bson:"customer_name"`
	TableIdentifier string               `bson:"table"`
	Items           []lineItemDoc        `bson:"items"`
	Total           primitive.Decimal128 `bson:"total"`
	CompletedAt     time.Time            `bson:"completed_at"`
	ArchivedAt      time.Time            `bson:"archived_at"`
}

type CompletedOrderRepository struct {
	collection *mongo.Collection
}

func NewCompletedOrderRepository(db *mongo.Database) *CompletedOrderRepository {
	return &CompletedOrderRepository{
		collection: db.Collection(collectionCompletedOrders),
	}
}

func (r *CompletedOrderRepository) Upsert(ctx context.Context, order *domain.ArchivedOrder) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if order.ArchivedAt.IsZero() {
		order.ArchivedAt = time.Now()
	}

	doc, err := toDoc(order)
	if err != nil {
		return err
	}

	filter := bson.M{"session_id": doc.SessionID, "order_number": doc.OrderNumber}
	update := bson.M{"$set": doc}

	if _, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return fmt.Errorf("failed to upsert completed order: %w", err)
	}

	return nil
}

func (r *CompletedOrderRepository) Get(ctx context.Context, sessionID string, orderNumber int) (*domain.ArchivedOrder, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc completedOrderDoc
	err := r.collection.FindOne(ctx, bson.M{"session_id": sessionID, "order_number": orderNumber}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repo.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get completed order: %w", err)
	}

	return fromDoc(doc)
}

func (r *CompletedOrderRepository) ListCompletedBetween(ctx context.Context, from, to time.Time, limit int) ([]domain.ArchivedOrder, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"completed_at": bson.M{"$gte": from, "$lt": to}}
	opts := options.Find().SetSort(bson.D{{Key: "completed_at", Value: 1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed orders: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []completedOrderDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode completed orders: %w", err)
	}

	orders := make([]domain.ArchivedOrder, 0, len(docs))
	for _, doc := range docs {
		order, err := fromDoc(doc)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}

	return orders, nil
}

func toDoc(order *domain.ArchivedOrder) (completedOrderDoc, error) {
	total, err := toDecimal128(order.Order.Total)
	if err != nil {
		return completedOrderDoc{}, err
	}

	items := make([]lineItemDoc, 0, len(order.Order.Items))
	for _, item := range order.Order.Items {
		price, err := toDecimal128(item.UnitPrice)
		if err != nil {
			return completedOrderDoc{}, err
		}
		items = append(items, lineItemDoc{Name: item.Name, UnitPrice: price, Quantity: item.Quantity})
	}

	return completedOrderDoc{
		SessionID:       order.SessionID,
		OrderNumber:     order.Order.OrderNumber,
		CustomerName:    order.Order.CustomerName,
		TableIdentifier: order.Order.TableIdentifier,
		Items:           items,
		Total:           total,
		CompletedAt:     order.Order.CompletedAt,
		ArchivedAt:      order.ArchivedAt,
	}, nil
}

func fromDoc(doc completedOrderDoc) (*domain.ArchivedOrder, error) {
	total, err := fromDecimal128(doc.Total)
	if err != nil {
		return nil, err
	}

	items := make([]domain.LineItem, 0, len(doc.Items))
	for _, item := range doc.Items {
		price, err := fromDecimal128(item.UnitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, domain.LineItem{Name: item.Name, UnitPrice: price, Quantity: item.Quantity})
	}

	return &domain.ArchivedOrder{
		SessionID: doc.SessionID,
		Order: domain.CompletedOrder{
			OrderNumber:     doc.OrderNumber,
			CustomerName:    doc.CustomerName,
			TableIdentifier: doc.TableIdentifier,
			Items:           items,
			Total:           total,
			CompletedAt:     doc.CompletedAt,
		},
		ArchivedAt: doc.ArchivedAt,
	}, nil
}

func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	v, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.Decimal128{}, fmt.Errorf("failed to convert amount %s: %w", d, err)
	}
	return v, nil
}

func fromDecimal128(v primitive.Decimal128) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(v.String())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to parse amount %s: %w", v, err)
	}
	return d, nil
}
