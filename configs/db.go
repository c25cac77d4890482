package configs

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vai-sys/DigitalDinner/entity"
)

// OpenRelational connects the relational store. SQLITE_PATH switches to the
// sqlite driver for local runs; otherwise postgres is used.
func OpenRelational(cfg *Config) (*gorm.DB, error) {
	if cfg.SQLitePath != "" {
		return gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
	}
	return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
}

// OpenMongo connects the document store and pings it so an unreachable
// store fails at boot instead of on the first request.
func OpenMongo(ctx context.Context, cfg *Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return client, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.CartItem{},
		&entity.Order{},
		&entity.OrderItem{},
	)
}
