package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/utils"
	"github.com/MKhiriev/go-user-auth/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const emailIndexName = "users_email_unique"

// userMongoRepository stores one document per account in the users
// collection. A unique index on email rejects duplicates.
type userMongoRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewUserMongoRepository ensures the unique email index exists and returns
// the repository.
func NewUserMongoRepository(ctx context.Context, db *mongo.Database, log *logger.Logger) (UserRepository, error) {
	collection := db.Collection(models.UserAccount{}.TableName())

	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName(emailIndexName),
	}
	if _, err := collection.Indexes().CreateOne(ctx, index); err != nil {
		log.Err(err).Str("func", "NewUserMongoRepository").Msg("error creating email index")
		return nil, fmt.Errorf("error creating email index: %w", err)
	}

	log.Debug().Str("collection", collection.Name()).Msg("creating mongo user repository")
	return &userMongoRepository{
		collection: collection,
		logger:     log,
	}, nil
}

func (r *userMongoRepository) FindUsersByEmail(ctx context.Context, email string) ([]models.UserAccount, error) {
	log := logger.FromContext(ctx)

	cursor, err := r.collection.Find(ctx, bson.D{{Key: "email", Value: email}})
	if err != nil {
		log.Err(err).Str("func", "*userMongoRepository.FindUsersByEmail").Msg("error querying users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	users := make([]models.UserAccount, 0, 1)
	if err = cursor.All(ctx, &users); err != nil {
		log.Err(err).Str("func", "*userMongoRepository.FindUsersByEmail").Msg("error decoding users")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

func (r *userMongoRepository) CreateUser(ctx context.Context, user models.UserAccount) (models.UserAccount, error) {
	log := logger.FromContext(ctx)

	user.ID = utils.NewID()
	// BSON dates keep millisecond precision
	user.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)

	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		log.Err(err).Str("func", "*userMongoRepository.CreateUser").Msg("error inserting user")

		if mongo.IsDuplicateKeyError(err) {
			return models.UserAccount{}, ErrUserAlreadyExists
		}
		return models.UserAccount{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}
