package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/siteforge/siteforge-api/internal/core/domain"
)

const websitesCollection = "websites"

type MongoWebsiteRepository struct {
	coll *mongo.Collection
}

func NewWebsiteRepository(db *mongo.Database) *MongoWebsiteRepository {
	return &MongoWebsiteRepository{coll: db.Collection(websitesCollection)}
}

type mongoWebsite struct {
	ID           primitive.ObjectID    `bson:"_id,omitempty"`
	OwnerID      string                `bson:"owner"`
	BusinessType string                `bson:"business_type"`
	Industry     string                `bson:"industry"`
	Content      domain.WebsiteContent `bson:"content"`
	CreatedAt    time.Time             `bson:"created_at"`
	LastUpdated  time.Time             `bson:"last_updated"`
}

func (mw mongoWebsite) toDomain() *domain.Website {
	return &domain.Website{
		ID:           mw.ID.Hex(),
		OwnerID:      mw.OwnerID,
		BusinessType: mw.BusinessType,
		Industry:     mw.Industry,
		Content:      mw.Content,
		CreatedAt:    mw.CreatedAt.UTC(),
		LastUpdated:  mw.LastUpdated.UTC(),
	}
}

func (r *MongoWebsiteRepository) Insert(ctx context.Context, site *domain.Website) (string, error) {
	doc := mongoWebsite{
		OwnerID:      site.OwnerID,
		BusinessType: site.BusinessType,
		Industry:     site.Industry,
		Content:      site.Content,
		CreatedAt:    site.CreatedAt,
		LastUpdated:  site.LastUpdated,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert website: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *MongoWebsiteRepository) FindByID(ctx context.Context, id string) (*domain.Website, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrWebsiteNotFound
	}

	var mw mongoWebsite
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mw); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrWebsiteNotFound
		}
		return nil, fmt.Errorf("find website: %w", err)
	}
	return mw.toDomain(), nil
}

func (r *MongoWebsiteRepository) FindAll(ctx context.Context) ([]domain.Website, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list websites: %w", err)
	}
	defer cursor.Close(ctx)

	var sites []domain.Website
	for cursor.Next(ctx) {
		var mw mongoWebsite
		if err := cursor.Decode(&mw); err != nil {
			return nil, fmt.Errorf("decode website: %w", err)
		}
		sites = append(sites, *mw.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list websites: %w", err)
	}
	return sites, nil
}

func (r *MongoWebsiteRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrWebsiteNotFound
	}

	set := bson.M{}
	for key, value := range fields {
		set[key] = value
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update website: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrWebsiteNotFound
	}
	return nil
}

func (r *MongoWebsiteRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrWebsiteNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete website: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrWebsiteNotFound
	}
	return nil
}
