package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInMemoryStoreSaveAndLoad(t *testing.T) {
	store := NewInMemoryStore()

	require.NoError(t, store.SaveAdvertisement(&RelayAdvertisement{
		Fingerprint: "BBBB",
		Protocols:   "Relay=1-2",
	}))
	require.NoError(t, store.SaveAdvertisement(&RelayAdvertisement{
		Fingerprint: "AAAA",
		Protocols:   "Relay=2-3",
	}))

	advs, err := store.LoadAllAdvertisements()
	require.NoError(t, err)
	require.Len(t, advs, 2)

	// Fingerprint order, so votes see a deterministic sequence.
	require.Equal(t, "AAAA", advs[0].Fingerprint)
	require.Equal(t, "BBBB", advs[1].Fingerprint)
}

func TestInMemoryStoreUpsert(t *testing.T) {
	store := NewInMemoryStore()

	require.NoError(t, store.SaveAdvertisement(&RelayAdvertisement{
		Fingerprint: "AAAA",
		Protocols:   "Relay=1",
	}))
	require.NoError(t, store.SaveAdvertisement(&RelayAdvertisement{
		Fingerprint: "AAAA",
		Protocols:   "Relay=1-2",
	}))

	advs, err := store.LoadAllAdvertisements()
	require.NoError(t, err)
	require.Len(t, advs, 1)
	require.Equal(t, "Relay=1-2", advs[0].Protocols)
}

func TestInMemoryStoreDelete(t *testing.T) {
	store := NewInMemoryStore()

	require.NoError(t, store.SaveAdvertisement(&RelayAdvertisement{Fingerprint: "AAAA"}))
	require.NoError(t, store.DeleteAdvertisement("AAAA"))
	require.NoError(t, store.DeleteAdvertisement("missing"))

	advs, err := store.LoadAllAdvertisements()
	require.NoError(t, err)
	require.Empty(t, advs)
}

func TestInMemoryStoreReturnsCopies(t *testing.T) {
	store := NewInMemoryStore()
	require.NoError(t, store.SaveAdvertisement(&RelayAdvertisement{
		Fingerprint: "AAAA",
		Protocols:   "Relay=1",
	}))

	advs, err := store.LoadAllAdvertisements()
	require.NoError(t, err)
	advs[0].Protocols = "Relay=1-63"

	reloaded, err := store.LoadAllAdvertisements()
	require.NoError(t, err)
	require.Equal(t, "Relay=1", reloaded[0].Protocols)
}

func TestPostgresConnectionString(t *testing.T) {
	cfg := &PostgresConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "authority",
		Password: "secret",
		Database: "protover",
	}
	require.Equal(t,
		"host=db.internal port=5432 user=authority password=secret dbname=protover sslmode=disable",
		cfg.ConnectionString())

	cfg.SSLMode = "require"
	require.Contains(t, cfg.ConnectionString(), "sslmode=require")
}
