package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/multirole/auth-api/internal/core/domain"
)

const auditCollection = "audit_logs"

// MongoAuditRepository implements ports.AuditRepository; entries are
// insert-only, there is no update or delete path.
type MongoAuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *MongoAuditRepository {
	return &MongoAuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuditLog struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	UserID       string             `bson:"user_id,omitempty"`
	Username     string             `bson:"username"`
	Action       string             `bson:"action"`
	ResourceType string             `bson:"resource_type,omitempty"`
	ResourceID   string             `bson:"resource_id,omitempty"`
	Details      string             `bson:"details,omitempty"`
	IPAddress    string             `bson:"ip_address,omitempty"`
	UserAgent    string             `bson:"user_agent,omitempty"`
	RequestID    string             `bson:"request_id,omitempty"`
	Status       string             `bson:"status"`
	ErrorMessage string             `bson:"error_message,omitempty"`
	CreatedAt    time.Time          `bson:"created_at"`
}

func (r *MongoAuditRepository) Insert(ctx context.Context, entry *domain.AuditLog) error {
	doc := mongoAuditLog{
		UserID:       entry.UserID,
		Username:     entry.Username,
		Action:       entry.Action,
		ResourceType: entry.ResourceType,
		ResourceID:   entry.ResourceID,
		Details:      entry.Details,
		IPAddress:    entry.IPAddress,
		UserAgent:    entry.UserAgent,
		RequestID:    entry.RequestID,
		Status:       string(entry.Status),
		CreatedAt:    entry.CreatedAt,
		ErrorMessage: entry.ErrorMessage,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

func (r *MongoAuditRepository) FindRecent(ctx context.Context, limit, offset int) ([]domain.AuditLog, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))
	return r.find(ctx, bson.M{}, opts)
}

func (r *MongoAuditRepository) FindByUsername(ctx context.Context, username string) ([]domain.AuditLog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return r.find(ctx, bson.M{"username": username}, opts)
}

func (r *MongoAuditRepository) CountActionSince(ctx context.Context, action string, status domain.AuditStatus, since time.Time) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{
		"action":     action,
		"status":     string(status),
		"created_at": bson.M{"$gte": since},
	})
	if err != nil {
		return 0, fmt.Errorf("count audit logs: %w", err)
	}
	return n, nil
}

func (r *MongoAuditRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.AuditLog, error) {
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find audit logs: %w", err)
	}
	defer cur.Close(ctx)

	var entries []domain.AuditLog
	for cur.Next(ctx) {
		var ma mongoAuditLog
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode audit log: %w", err)
		}
		entries = append(entries, domain.AuditLog{
			ID:           ma.ID.Hex(),
			UserID:       ma.UserID,
			Username:     ma.Username,
			Action:       ma.Action,
			ResourceType: ma.ResourceType,
			ResourceID:   ma.ResourceID,
			Details:      ma.Details,
			IPAddress:    ma.IPAddress,
			UserAgent:    ma.UserAgent,
			RequestID:    ma.RequestID,
			Status:       domain.AuditStatus(ma.Status),
			ErrorMessage: ma.ErrorMessage,
			CreatedAt:    ma.CreatedAt.UTC(),
		})
	}
	return entries, cur.Err()
}
