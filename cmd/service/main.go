package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/2beens/fitforge/internal"
	"github.com/2beens/fitforge/internal/config"
	"github.com/2beens/fitforge/internal/logging"
	"github.com/2beens/fitforge/pkg"

	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development | ddev | dockerdev ]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	newAPIToken := flag.Bool("new-api-token", false, "generate a new API token with its hash, and exit")
	flag.Parse()

	if *newAPIToken {
		if err := printNewAPIToken(); err != nil {
			fmt.Fprintf(os.Stderr, "generate api token: %s\n", err)
			os.Exit(1)
		}
		return
	}

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		SentryServerName: "fitforge-service",
	})

	log.Debugf("using port: %d", cfg.Port)
	log.Debugf("using server logs path: [%s]", cfg.LogsPath)

	versionInfo, err := tryGetLastCommitHash()
	if err != nil {
		log.Tracef("failed to get last commit hash / version info: %s", err)
	} else {
		log.Tracef("running version: %s", versionInfo)
	}

	apiTokenHash := os.Getenv("FITFORGE_API_TOKEN_HASH")
	if apiTokenHash == "" {
		log.Errorf("api token hash not set. use FITFORGE_API_TOKEN_HASH (see -new-api-token)")
	}

	redisPassword := os.Getenv("FITFORGE_REDIS_PASS")
	if redisPassword == "" {
		log.Errorf("redis password not set. use FITFORGE_REDIS_PASS")
	}

	honeycombEnabled := os.Getenv("HONEYCOMB_ENABLED") == "true"
	if honeycombEnabled {
		if honeycombApiKey := os.Getenv("HONEYCOMB_API_KEY"); honeycombApiKey == "" {
			log.Warnln("HONEYCOMB_API_KEY env var not set")
		}
	} else {
		log.Debugln("honeycomb tracing disabled")
	}

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			VersionInfo:             versionInfo,
			PostgresUser:            os.Getenv("FITFORGE_POSTGRES_USER"),
			PostgresPassword:        os.Getenv("FITFORGE_POSTGRES_PASS"),
			RedisPassword:           redisPassword,
			APITokenHash:            apiTokenHash,
			HoneycombTracingEnabled: honeycombEnabled,
		},
	)
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	server.Serve()

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, killing everything ...", receivedSig)
	cancel()

	server.GracefulShutdown()
}

func printNewAPIToken() error {
	token, err := pkg.GenerateRandomString(40)
	if err != nil {
		return err
	}
	hash, err := pkg.HashPassword(token)
	if err != nil {
		return err
	}
	fmt.Printf("token: %s\nhash:  %s\n", token, hash)
	return nil
}

// tryGetLastCommitHash will try to get the last commit hash
// assumes that the built main executable is in project root
func tryGetLastCommitHash() (string, error) {
	cmd := exec.Command("/usr/bin/git", "rev-parse", "HEAD")
	stdout, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return pkg.BytesToString(stdout), nil
}
