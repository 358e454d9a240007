package db

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/eakyol/campusdesk/internal/config"
)

// Connection state values reported by the health endpoints.
const (
	StateConnected    = "Connected"
	StateDisconnected = "Disconnected"
)

// Mongo holds the process-wide MongoDB client and database handle.
type Mongo struct {
	Client   *mongo.Client
	Database *mongo.Database

	connected atomic.Bool
}

// NewMongo connects to MongoDB and verifies the connection with a ping.
// The client is wired with a server monitor so the connectivity flag
// tracks the driver's heartbeat results for the lifetime of the process.
func NewMongo(cfg *config.Config) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout())
	defer cancel()

	m := &Mongo{}

	clientOpts := options.Client().
		ApplyURI(cfg.Database.URI).
		SetConnectTimeout(cfg.ConnectTimeout()).
		SetServerMonitor(m.serverMonitor())

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}

	m.Client = client
	m.Database = client.Database(cfg.Database.Name)
	m.connected.Store(true)

	return m, nil
}

// serverMonitor toggles the connectivity flag from the driver's heartbeat
// events, so a lost server is reflected without an active probe.
func (m *Mongo) serverMonitor() *event.ServerMonitor {
	return &event.ServerMonitor{
		ServerHeartbeatSucceeded: func(*event.ServerHeartbeatSucceededEvent) {
			m.connected.Store(true)
		},
		ServerHeartbeatFailed: func(*event.ServerHeartbeatFailedEvent) {
			m.connected.Store(false)
		},
	}
}

// EnsureIndexes creates the unique indexes the application relies on:
// students.email and courses.name.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	studentIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		},
	}
	if _, err := m.Database.Collection("students").Indexes().CreateMany(ctx, studentIndexes); err != nil {
		return fmt.Errorf("failed to create student indexes: %w", err)
	}

	courseIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := m.Database.Collection("courses").Indexes().CreateMany(ctx, courseIndexes); err != nil {
		return fmt.Errorf("failed to create course indexes: %w", err)
	}

	return nil
}

// State returns the connectivity state as seen by this process. It is a
// cheap flag read, not an active probe.
func (m *Mongo) State() string {
	if m.connected.Load() {
		return StateConnected
	}
	return StateDisconnected
}

// Close disconnects the client.
func (m *Mongo) Close(ctx context.Context) error {
	m.connected.Store(false)
	if m.Client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := m.Client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect mongo client: %w", err)
	}
	return nil
}
