package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/CapsLuky/api.flow.core.user/internal/models"
)

// Tenant collections. Both live in the same database and carry a
// unique index on clerk_id (created by the migrations in db/migrations).
const (
	CollectionUsers       = "users"
	CollectionUsersComgas = "users_comgas"
)

// ClerkUserRepository persists webhook-sourced users into the tenant
// collections. All operations return a boolean outcome: the webhook
// service only needs to know whether the sender should retry.
type ClerkUserRepository struct {
	db     *mongo.Database
	logger *zap.Logger
}

func NewClerkUserRepository(db *mongo.Database, logger *zap.Logger) *ClerkUserRepository {
	return &ClerkUserRepository{db: db, logger: logger}
}

func collectionName(tenant models.Tenant) string {
	if tenant == models.TenantComgas {
		return CollectionUsersComgas
	}
	return CollectionUsers
}

func (r *ClerkUserRepository) collection(tenant models.Tenant) *mongo.Collection {
	return r.db.Collection(collectionName(tenant))
}

// InsertUser inserts the user into the tenant collection. A duplicate
// key on clerk_id is reported as success: the desired post-state (the
// user exists) already holds, and Clerk redelivers events.
func (r *ClerkUserRepository) InsertUser(ctx context.Context, tenant models.Tenant, user *models.ClerkUser) bool {
	collection := r.collection(tenant)

	_, err := collection.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		r.logger.Warn("user already exists, insert skipped",
			zap.String("tenant", tenant.String()),
			zap.String("clerk_id", user.ClerkID),
			zap.String("collection", collection.Name()),
		)
		return true
	}
	if err != nil {
		r.logger.Error("failed to insert user",
			zap.String("tenant", tenant.String()),
			zap.String("clerk_id", user.ClerkID),
			zap.String("collection", collection.Name()),
			zap.Error(err),
		)
		return false
	}

	r.logger.Info("user persisted",
		zap.String("tenant", tenant.String()),
		zap.String("clerk_id", user.ClerkID),
		zap.String("collection", collection.Name()),
	)
	return true
}

// updateFields builds the $set document for UpdateUser. The field list
// is a deliberate whitelist: banned, locked, created_at and the
// second-factor flags are managed elsewhere and must survive updates.
func updateFields(user *models.ClerkUser) bson.M {
	return bson.M{
		"first_name":               user.FirstName,
		"last_name":                user.LastName,
		"image_url":                user.ImageURL,
		"email_addresses":          user.EmailAddresses,
		"phone_numbers":            user.PhoneNumbers,
		"username":                 user.Username,
		"updated_at":               user.UpdatedAt,
		"last_sign_in_at":          user.LastSignInAt,
		"external_id":              user.ExternalID,
		"primary_email_address_id": user.PrimaryEmailAddressID,
		"public_metadata":          user.PublicMetadata,
		"private_metadata":         user.PrivateMetadata,
		"unsafe_metadata":          user.UnsafeMetadata,
	}
}

// UpdateUser overwrites the whitelisted fields of the document whose
// clerk_id matches. A missing document is not a failure: the update may
// simply have outrun the corresponding create.
func (r *ClerkUserRepository) UpdateUser(ctx context.Context, tenant models.Tenant, user *models.ClerkUser) bool {
	collection := r.collection(tenant)

	filter := bson.M{"clerk_id": user.ClerkID}
	update := bson.M{"$set": updateFields(user)}

	result, err := collection.UpdateOne(ctx, filter, update)
	if err != nil {
		r.logger.Error("failed to update user",
			zap.String("tenant", tenant.String()),
			zap.String("clerk_id", user.ClerkID),
			zap.String("collection", collection.Name()),
			zap.Error(err),
		)
		return false
	}

	switch {
	case result.MatchedCount == 0:
		r.logger.Warn("no user matched for update",
			zap.String("tenant", tenant.String()),
			zap.String("clerk_id", user.ClerkID),
			zap.String("collection", collection.Name()),
		)
	case result.ModifiedCount > 0:
		r.logger.Info("user updated",
			zap.String("tenant", tenant.String()),
			zap.String("clerk_id", user.ClerkID),
			zap.String("collection", collection.Name()),
		)
	default:
		r.logger.Info("user already up to date",
			zap.String("tenant", tenant.String()),
			zap.String("clerk_id", user.ClerkID),
			zap.String("collection", collection.Name()),
		)
	}

	return true
}

// DeleteUserByClerkID removes the document whose clerk_id matches.
// Zero matches is reported as success with a warn log.
func (r *ClerkUserRepository) DeleteUserByClerkID(ctx context.Context, tenant models.Tenant, clerkID string) bool {
	collection := r.collection(tenant)

	result, err := collection.DeleteOne(ctx, bson.M{"clerk_id": clerkID})
	if err != nil {
		r.logger.Error("failed to delete user",
			zap.String("tenant", tenant.String()),
			zap.String("clerk_id", clerkID),
			zap.String("collection", collection.Name()),
			zap.Error(err),
		)
		return false
	}

	if result.DeletedCount == 0 {
		r.logger.Warn("no user matched for delete",
			zap.String("tenant", tenant.String()),
			zap.String("clerk_id", clerkID),
			zap.String("collection", collection.Name()),
		)
	} else {
		r.logger.Info("user deleted",
			zap.String("tenant", tenant.String()),
			zap.String("clerk_id", clerkID),
			zap.String("collection", collection.Name()),
		)
	}

	return true
}
