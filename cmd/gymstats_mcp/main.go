// Package main runs the gymstats MCP server over stdio, for local assistant clients.
// The same tools are mounted on the main service at /mcp over HTTP when mcp_enabled is set.
package main

import (
	"context"
	"flag"
	"net"
	"os"

	"github.com/2beens/fitforge/internal"
	"github.com/2beens/fitforge/internal/config"
	"github.com/2beens/fitforge/internal/db"
	gymstatsmcp "github.com/2beens/fitforge/internal/gymstats/mcp"
	"github.com/2beens/fitforge/internal/telemetry/metrics"

	"github.com/go-redis/redis/v8"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development | ddev | dockerdev]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	// stdout carries the protocol
	log.SetOutput(os.Stderr)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         os.Getenv("FITFORGE_POSTGRES_USER"),
		DBPassword:     os.Getenv("FITFORGE_POSTGRES_PASS"),
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: os.Getenv("FITFORGE_REDIS_PASS"),
	})
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Errorf("close redis client: %s", err)
		}
	}()

	metricsManager := metrics.NewManager("fitforge", "mcp", prometheus.NewRegistry())
	workoutsService := internal.NewWorkoutsService(dbPool, rdb, cfg, metricsManager)
	server := gymstatsmcp.NewServer(dbPool, workoutsService)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
