package mongodb

import (
	"context"

	"github.com/juliosilva-anagaming/Suporte-Sustenta-o/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Conn interface {
	Collection(name string) *mongo.Collection
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type Connection struct {
	client   *mongo.Client
	database string
}

// NewConnection abre uma conexão com o MongoDB aplicando os timeouts da
// configuração e valida a conexão com um ping imediato.
func NewConnection(
	ctx context.Context,
	cfg config.Mongo,
) (*Connection, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetSocketTimeout(cfg.SocketTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	// força validar conexão agora
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return &Connection{client: client, database: cfg.Database}, nil
}

func (c *Connection) Collection(name string) *mongo.Collection {
	return c.client.Database(c.database).Collection(name)
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

func (c *Connection) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
