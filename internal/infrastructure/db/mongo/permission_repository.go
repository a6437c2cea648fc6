package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/siteforge/siteforge-api/internal/core/domain"
)

const (
	permissionsCollection = "roles_permissions"
	// permissionMapID keys the single document holding all role mappings.
	permissionMapID = "role_mappings"
)

type MongoPermissionRepository struct {
	coll *mongo.Collection
}

func NewPermissionRepository(db *mongo.Database) *MongoPermissionRepository {
	return &MongoPermissionRepository{coll: db.Collection(permissionsCollection)}
}

type permissionDoc struct {
	ID          string              `bson:"_id"`
	Permissions map[string][]string `bson:"permissions"`
}

func (r *MongoPermissionRepository) Get(ctx context.Context) (domain.RolePermissions, error) {
	var doc permissionDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": permissionMapID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPermissionMapNotFound
		}
		return nil, fmt.Errorf("get permission map: %w", err)
	}
	if len(doc.Permissions) == 0 {
		return nil, domain.ErrPermissionMapNotFound
	}
	return domain.RolePermissions(doc.Permissions), nil
}

// SeedDefault writes the default mapping with $setOnInsert upsert semantics:
// concurrent first-time resolvers race on a single atomic insert-if-absent,
// and an existing document is never overwritten.
func (r *MongoPermissionRepository) SeedDefault(ctx context.Context, defaults domain.RolePermissions) error {
	update := bson.M{"$setOnInsert": bson.M{"permissions": map[string][]string(defaults)}}

	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": permissionMapID}, update, options.Update().SetUpsert(true))
	if err != nil {
		// A duplicate-key race between two upserts means the other writer won.
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return fmt.Errorf("seed permission map: %w", err)
	}
	return nil
}
