package services

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"sync"
	"time"

	_ "github.com/lib/pq"
)

// AdvertisementStore persists relay advertisements between votes.
// LoadAllAdvertisements must return advertisements in fingerprint order so
// vote computations see a deterministic input sequence.
type AdvertisementStore interface {
	SaveAdvertisement(adv *RelayAdvertisement) error
	DeleteAdvertisement(fingerprint string) error
	LoadAllAdvertisements() ([]*RelayAdvertisement, error)
}

// PostgresStore implements AdvertisementStore with PostgreSQL persistence.
type PostgresStore struct {
	db *sql.DB
}

// PostgresConfig contains PostgreSQL connection settings.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// ConnectionString returns the PostgreSQL connection string.
func (c *PostgresConfig) ConnectionString() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, sslMode)
}

// NewPostgresStore creates a new PostgreSQL-backed store.
func NewPostgresStore(config *PostgresConfig) (*PostgresStore, error) {
	db, err := sql.Open("postgres", config.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	store := &PostgresStore{db: db}
	if err := store.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return store, nil
}

func (s *PostgresStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS relay_advertisements (
		fingerprint VARCHAR(128) PRIMARY KEY,
		protocols VARCHAR(4096) NOT NULL DEFAULT '',
		version VARCHAR(64) NOT NULL DEFAULT '',
		address VARCHAR(256) NOT NULL DEFAULT '',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_advertisements_updated ON relay_advertisements(updated_at);
	`

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// SaveAdvertisement upserts a relay's advertisement by fingerprint.
func (s *PostgresStore) SaveAdvertisement(adv *RelayAdvertisement) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	query := `
	INSERT INTO relay_advertisements
		(fingerprint, protocols, version, address, updated_at)
	VALUES ($1, $2, $3, $4, NOW())
	ON CONFLICT (fingerprint) DO UPDATE SET
		protocols = EXCLUDED.protocols,
		version = EXCLUDED.version,
		address = EXCLUDED.address,
		updated_at = NOW()
	`

	_, err := s.db.ExecContext(ctx, query,
		adv.Fingerprint,
		adv.Protocols,
		adv.Version,
		adv.Address,
	)
	return err
}

// DeleteAdvertisement removes a relay's advertisement.
func (s *PostgresStore) DeleteAdvertisement(fingerprint string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.db.ExecContext(ctx, "DELETE FROM relay_advertisements WHERE fingerprint = $1", fingerprint)
	return err
}

// LoadAllAdvertisements retrieves every stored advertisement in fingerprint
// order.
func (s *PostgresStore) LoadAllAdvertisements() ([]*RelayAdvertisement, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
		SELECT fingerprint, protocols, version, address
		FROM relay_advertisements
		ORDER BY fingerprint
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var advs []*RelayAdvertisement
	for rows.Next() {
		adv := &RelayAdvertisement{}
		if err := rows.Scan(&adv.Fingerprint, &adv.Protocols, &adv.Version, &adv.Address); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		advs = append(advs, adv)
	}

	return advs, rows.Err()
}

// Close closes the database connection.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// InMemoryStore implements AdvertisementStore without a database, for tests
// and single-node setups.
type InMemoryStore struct {
	mu             sync.RWMutex
	advertisements map[string]*RelayAdvertisement
}

// NewInMemoryStore creates an in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		advertisements: make(map[string]*RelayAdvertisement),
	}
}

// SaveAdvertisement stores an advertisement in memory.
func (s *InMemoryStore) SaveAdvertisement(adv *RelayAdvertisement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *adv
	s.advertisements[adv.Fingerprint] = &copied
	return nil
}

// DeleteAdvertisement removes an advertisement from memory.
func (s *InMemoryStore) DeleteAdvertisement(fingerprint string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.advertisements, fingerprint)
	return nil
}

// LoadAllAdvertisements returns all stored advertisements in fingerprint
// order.
func (s *InMemoryStore) LoadAllAdvertisements() ([]*RelayAdvertisement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	advs := make([]*RelayAdvertisement, 0, len(s.advertisements))
	for _, adv := range s.advertisements {
		copied := *adv
		advs = append(advs, &copied)
	}
	sort.Slice(advs, func(i, j int) bool { return advs[i].Fingerprint < advs[j].Fingerprint })
	return advs, nil
}
