package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bistroboss/bistro-api/internal/core/domain"
	"github.com/bistroboss/bistro-api/internal/core/ports"
)

const cartsCollection = "carts"

type CartRepository struct {
	coll *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{coll: db.Collection(cartsCollection)}
}

type cartDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Email      string             `bson:"email"`
	MenuItemID string             `bson:"menu_item_id,omitempty"`
	Name       string             `bson:"name"`
	Image      string             `bson:"image,omitempty"`
	Price      float64            `bson:"price"`
}

func (d cartDoc) toDomain() domain.CartEntry {
	return domain.CartEntry{
		ID:         d.ID.Hex(),
		Email:      d.Email,
		MenuItemID: d.MenuItemID,
		Name:       d.Name,
		Image:      d.Image,
		Price:      d.Price,
	}
}

func (r *CartRepository) FindByOwner(ctx context.Context, email string) ([]domain.CartEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("find cart entries: %w", err)
	}
	defer cur.Close(ctx)

	var docs []cartDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode cart entries: %w", err)
	}

	entries := make([]domain.CartEntry, 0, len(docs))
	for _, d := range docs {
		entries = append(entries, d.toDomain())
	}
	return entries, nil
}

func (r *CartRepository) FindByID(ctx context.Context, id string) (*domain.CartEntry, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCartEntryNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc cartDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCartEntryNotFound
		}
		return nil, fmt.Errorf("find cart entry: %w", err)
	}

	entry := doc.toDomain()
	return &entry, nil
}

func (r *CartRepository) Insert(ctx context.Context, entry *domain.CartEntry) (*ports.InsertResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := cartDoc{
		Email:      entry.Email,
		MenuItemID: entry.MenuItemID,
		Name:       entry.Name,
		Image:      entry.Image,
		Price:      entry.Price,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert cart entry: %w", err)
	}

	return &ports.InsertResult{InsertedID: insertedIDHex(res.InsertedID)}, nil
}

func (r *CartRepository) DeleteByID(ctx context.Context, id string) (*ports.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCartEntryNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("delete cart entry: %w", err)
	}

	return &ports.DeleteResult{DeletedCount: res.DeletedCount}, nil
}
