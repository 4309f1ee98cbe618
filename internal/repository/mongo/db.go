package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Default connection timeout
const defaultTimeout = 10 * time.Second

// Gateway owns the single MongoDB client (the driver's connection pool) for
// the process. It is created once at startup and passed by reference into the
// repositories; nothing else in the application touches the driver directly.
type Gateway struct {
	uri    string
	dbName string
	client *mongo.Client
}

// NewGateway creates an unconnected Gateway for the given URI and database.
func NewGateway(uri, dbName string) *Gateway {
	return &Gateway{uri: uri, dbName: dbName}
}

// Connect establishes the MongoDB connection and verifies it with a ping.
// Connect is idempotent: once a client is live, repeat calls reuse it instead
// of opening a second pool.
func (g *Gateway) Connect(ctx context.Context) error {
	if g.client != nil {
		return nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(g.uri)
	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return err
	}

	// Connect alone does not guarantee a reachable server; ping the primary
	// with its own, shorter timeout.
	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		return err
	}

	g.client = client
	return nil
}

// Database returns a handle to the configured application database. It must
// only be called after a successful Connect.
func (g *Gateway) Database() *mongo.Database {
	return g.client.Database(g.dbName)
}

// Close gracefully disconnects the client. Safe to call on an unconnected
// Gateway.
func (g *Gateway) Close() error {
	if g.client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	err := g.client.Disconnect(ctx)
	g.client = nil
	return err
}
