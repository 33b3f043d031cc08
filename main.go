package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ofwtools/ofw-mock-server/config"
	"github.com/ofwtools/ofw-mock-server/internal/logger"
	"github.com/ofwtools/ofw-mock-server/internal/verify"
	"github.com/ofwtools/ofw-mock-server/server"
)

func main() {
	app := &cli.App{
		Name:  "ofw-mock-server",
		Usage: "replay captured OFW API responses for offline client development",
		Commands: []*cli.Command{
			{
				Name:  "server",
				Usage: "Start the mock server",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "port", Usage: "listening port (overrides PORT)"},
					&cli.StringFlag{Name: "data-dir", Usage: "fixture directory (overrides OFW_DATA_DIR)"},
				},
				Action: runServer,
			},
			{
				Name:  "check",
				Usage: "Verify a running mock server end to end",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "base-url", Value: "http://localhost:5000", Usage: "server to verify"},
					&cli.StringFlag{Name: "token", Usage: "bearer token (defaults to OFW_AUTH_TOKEN)"},
				},
				Action: runCheck,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalln(err)
	}
}

func runServer(c *cli.Context) error {
	cfg, err := config.InitConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}
	if port := c.String("port"); port != "" {
		cfg.AppConfig.APIPort = port
	}
	if dataDir := c.String("data-dir"); dataDir != "" {
		cfg.AppConfig.DataDir = dataDir
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		return fmt.Errorf("server setup failed: %w", err)
	}
	return srv.Run()
}

func runCheck(c *cli.Context) error {
	cfg, err := config.InitConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}
	token := c.String("token")
	if token == "" {
		token = cfg.AppConfig.AuthToken
	}

	appLogger := logger.NewAppLogger(cfg.Logger)
	appLogger.InitLogger()

	runner := verify.NewRunner(c.String("base-url"), token, appLogger)
	return runner.Run(context.Background())
}
