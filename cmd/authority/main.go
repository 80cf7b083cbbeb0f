// Command authority runs a standalone protocol-version directory authority.
//
// The authority collects relay advertisements over HTTP, stores them in
// PostgreSQL (or in memory for single-node setups), and publishes a signed
// consensus document listing the (protocol, version) pairs supported by at
// least the configured threshold of relays.
//
// # Usage
//
//	go run ./cmd/authority --addr=:8080 --threshold=3 --postgres-host=db.internal
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/flashbots/protover/api/httpserver"
	"github.com/flashbots/protover/cmd/common"
	"github.com/flashbots/protover/server"
	"github.com/flashbots/protover/services"
)

func main() {
	var (
		addr          = flag.String("addr", ":8080", "HTTP listen address")
		metricsAddr   = flag.String("metrics-addr", "", "Metrics listen address (disabled if empty)")
		enablePprof   = flag.Bool("pprof", false, "Enable pprof debugging API")
		threshold     = flag.Int("threshold", 1, "Vote threshold for consensus computation")
		signingKeyHex = flag.String("signing-key", "", "Ed25519 signing key (hex, generates if empty)")
		usePostgres   = flag.Bool("postgres", false, "Persist advertisements in PostgreSQL")
		pgHost        = flag.String("postgres-host", "localhost", "PostgreSQL host")
		pgPort        = flag.Int("postgres-port", 5432, "PostgreSQL port")
		pgUser        = flag.String("postgres-user", "protover", "PostgreSQL user")
		pgPassword    = flag.String("postgres-password", "", "PostgreSQL password")
		pgDatabase    = flag.String("postgres-db", "protover", "PostgreSQL database")
		pgSSLMode     = flag.String("postgres-sslmode", "", "PostgreSQL sslmode (default disable)")
	)
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	signingKey, err := common.LoadOrGenerateSigningKey(*signingKeyHex)
	if err != nil {
		fmt.Printf("Signing key error: %v\n", err)
		os.Exit(1)
	}
	pubKey, err := signingKey.PublicKey()
	if err != nil {
		fmt.Printf("Signing key error: %v\n", err)
		os.Exit(1)
	}
	log.Info("Authority identity", "publicKey", pubKey.String())

	var store services.AdvertisementStore
	if *usePostgres {
		pgStore, err := services.NewPostgresStore(&services.PostgresConfig{
			Host:     *pgHost,
			Port:     *pgPort,
			User:     *pgUser,
			Password: *pgPassword,
			Database: *pgDatabase,
			SSLMode:  *pgSSLMode,
		})
		if err != nil {
			fmt.Printf("Postgres error: %v\n", err)
			os.Exit(1)
		}
		defer pgStore.Close()
		store = pgStore
	} else {
		store = services.NewInMemoryStore()
	}

	voter := services.NewVoter(store, &services.VoterConfig{
		Threshold:  *threshold,
		SigningKey: signingKey,
		Log:        log,
	})

	handler := server.NewHandler(store, voter, log)

	srv, err := httpserver.New(&httpserver.HTTPServerConfig{
		ListenAddr:               *addr,
		MetricsAddr:              *metricsAddr,
		EnablePprof:              *enablePprof,
		Log:                      log,
		DrainDuration:            5 * time.Second,
		GracefulShutdownDuration: 10 * time.Second,
		ReadTimeout:              15 * time.Second,
		WriteTimeout:             15 * time.Second,
	}, handler)
	if err != nil {
		fmt.Printf("Create server error: %v\n", err)
		os.Exit(1)
	}

	srv.RunInBackground()
	log.Info("Authority listening", "addr", *addr, "threshold", *threshold)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down authority")
	srv.Shutdown()
}
