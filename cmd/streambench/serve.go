package main

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	"github.com/urfave/cli/v3"

	"github.com/kestrelhpc/stream"
)

func serveCmd() *cli.Command {
	var (
		addr        string
		readTimeout time.Duration
		verbose     bool
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the benchmark over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "listen address",
				Value:       "127.0.0.1:8080",
				Destination: &addr,
			},
			&cli.DurationFlag{
				Name:        "read-timeout",
				Usage:       "read timeout",
				Value:       30 * time.Second,
				Destination: &readTimeout,
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Destination: &verbose,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := newLogger(verbose)

			e := newServer()
			e.Use(middleware.RequestLogger())
			e.Use(middleware.Recover())

			log.Info("starting server", "address", addr)
			sc := echo.StartConfig{
				Address: addr,
				BeforeServeFunc: func(srv *http.Server) error {
					srv.ReadHeaderTimeout = readTimeout
					return nil
				},
			}
			return sc.Start(ctx, e)
		},
	}
}

// runMu serializes benchmark runs: concurrent kernels against the same
// machine would contend for bandwidth and corrupt each other's numbers.
var runMu sync.Mutex

// newServer builds the HTTP surface. Split from serveCmd so tests can
// exercise the handlers without binding a socket.
func newServer() *echo.Echo {
	e := echo.New()
	e.GET("/healthz", handleHealthz)
	e.GET("/info", handleInfo)
	e.POST("/run", handleRun)
	return e
}

func handleHealthz(c *echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func handleInfo(c *echo.Context) error {
	dev := stream.GetDevice()
	return c.JSON(http.StatusOK, map[string]any{
		"device":   dev.Name,
		"cores":    dev.NumCores,
		"backend":  stream.AccessBackend(),
		"features": stream.GetCPUInfo(),
	})
}

func handleRun(c *echo.Context) error {
	cfg := stream.DefaultConfig()
	if err := c.Bind(&cfg); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	runMu.Lock()
	defer runMu.Unlock()

	res, err := stream.Run(cfg)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, res)
}
