package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-auth/internal/logger"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const mongoConnectTimeout = 10 * time.Second

func NewConnectMongo(ctx context.Context, dsn string, log *logger.Logger) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(dsn).
		SetConnectTimeout(mongoConnectTimeout).
		SetServerSelectionTimeout(mongoConnectTimeout)

	client, err := mongo.Connect(opts)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, mongoConnectTimeout)
	defer cancel()

	if err = client.Ping(pingCtx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting database (ping)")
		_ = client.Disconnect(ctx)
		return nil, err
	}
	log.Info().Str("func", "NewConnectMongo").Msg("connected to database successfully")

	return client, nil
}
