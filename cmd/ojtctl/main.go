package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/yigit/ojtportal/internal/app/services"
	"github.com/yigit/ojtportal/internal/config"
	"github.com/yigit/ojtportal/internal/pkg/apiclient"
	"github.com/yigit/ojtportal/internal/pkg/logger"
	"github.com/yigit/ojtportal/internal/pkg/session"
)

// sessionPath is where the CLI keeps its token between runs
func sessionPath() (string, error) {
	if path := config.GetEnv("OJTCTL_SESSION", ""); path != "" {
		return path, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "ojtctl", "session.json"), nil
}

func main() {
	lgr := logger.Configure(logger.Config{
		Level:     logger.ParseLevel(config.GetEnv("LOG_LEVEL", "warn")),
		Pretty:    true,
		Output:    os.Stderr,
		Component: "ojtctl",
	})

	cfg, err := config.LoadConfig(filepath.Join("configs", "config.yaml"))
	errAndDie(lgr, err)

	client, err := apiclient.New(apiclient.Config{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.APITimeout(),
		UserAgent: cfg.API.UserAgent + "-cli",
	}, apiclient.WithLogger(lgr))
	errAndDie(lgr, err)

	path, err := sessionPath()
	errAndDie(lgr, err)

	store, err := session.NewStore(context.Background(), session.NewFileStorage(path), client,
		session.WithTokenKey(cfg.Session.TokenKey),
		session.WithLogger(lgr),
	)
	errAndDie(lgr, err)

	cli := commandLine{
		store:    store,
		auth:     services.NewAuthService(lgr),
		timeLogs: services.NewTimeLogService(services.SessionAPI(client), lgr),
		out:      os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			fmt.Fprintf(os.Stderr, "error: %s\n", errorMessage(err))
		}
		os.Exit(1)
	}
}

func errAndDie(lgr zerolog.Logger, err error) {
	if err != nil {
		lgr.Fatal().Err(err).Msg("ojtctl setup failed")
	}
}
