package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vai-sys/DigitalDinner/entity"
)

// MenuRepository is the document-store side of the system. It implements
// services.MenuStore: lookups report a missing document as (nil, nil), so
// callers never see driver errors for the plain not-found case.
type MenuRepository struct{ col *mongo.Collection }

func NewMenuRepository(db *mongo.Database) *MenuRepository {
	return &MenuRepository{col: db.Collection("menuitems")}
}

func (r *MenuRepository) List(ctx context.Context, category string, available *bool) ([]entity.MenuItem, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	if available != nil {
		filter["available"] = *available
	}

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := []entity.MenuItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MenuRepository) GetByID(ctx context.Context, id string) (*entity.MenuItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// a malformed id can never match a document
		return nil, nil
	}
	var item entity.MenuItem
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, item)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		item.ID = oid
	}
	return nil
}

func (r *MenuRepository) Update(ctx context.Context, id string, patch *entity.MenuItemPatch) (*entity.MenuItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	set := bson.M{"updatedAt": time.Now()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Available != nil {
		set["available"] = *patch.Available
	}
	if patch.Image != nil {
		set["image"] = *patch.Image
	}

	var item entity.MenuItem
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
