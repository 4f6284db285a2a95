package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/kestrelhpc/stream"
)

func runCmd() *cli.Command {
	var (
		configPath string
		size       int64
		numWarmup  int64
		numLoops   int64
		scalar     float64
		precision  string
		checkData  bool
		jsonOut    bool
		outputPath string
		verbose    bool
	)

	return &cli.Command{
		Name:  "run",
		Usage: "Run the memory bandwidth benchmark",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Usage:       "path to YAML configuration file",
				Destination: &configPath,
			},
			&cli.Int64Flag{
				Name:        "size",
				Usage:       "working-set size of each buffer in bytes",
				Value:       stream.DefaultBufferBytes,
				Destination: &size,
			},
			&cli.Int64Flag{
				Name:        "num-warm-up",
				Aliases:     []string{"num_warm_up"},
				Usage:       "untimed launches per kernel",
				Value:       stream.DefaultWarmupRuns,
				Destination: &numWarmup,
			},
			&cli.Int64Flag{
				Name:        "num-loops",
				Aliases:     []string{"num_loops"},
				Usage:       "timed launches per kernel",
				Value:       stream.DefaultTimedRuns,
				Destination: &numLoops,
			},
			&cli.Float64Flag{
				Name:        "scalar",
				Usage:       "multiplier for the scale and triad kernels",
				Value:       stream.DefaultScalar,
				Destination: &scalar,
			},
			&cli.StringFlag{
				Name:        "precision",
				Usage:       "float, double or both",
				Value:       "both",
				Destination: &precision,
			},
			&cli.BoolFlag{
				Name:        "check-data",
				Aliases:     []string{"check_data"},
				Usage:       "verify buffer contents against the reference computation",
				Destination: &checkData,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "print the result as JSON instead of a table",
				Destination: &jsonOut,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "write the JSON result to a file",
				Destination: &outputPath,
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Destination: &verbose,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := newLogger(verbose)

			cfg := stream.DefaultConfig()
			if configPath != "" {
				var err error
				cfg, err = stream.LoadConfig(configPath)
				if err != nil {
					return err
				}
			}

			// Flags override the config file only when set explicitly.
			if configPath == "" || cmd.IsSet("size") {
				cfg.Size = size
			}
			if configPath == "" || cmd.IsSet("num-warm-up") {
				cfg.NumWarmup = int(numWarmup)
			}
			if configPath == "" || cmd.IsSet("num-loops") {
				cfg.NumLoops = int(numLoops)
			}
			if configPath == "" || cmd.IsSet("scalar") {
				cfg.Scalar = scalar
			}
			if configPath == "" || cmd.IsSet("check-data") {
				cfg.CheckData = checkData
			}
			if configPath == "" || cmd.IsSet("precision") {
				precs, err := parsePrecision(precision)
				if err != nil {
					return err
				}
				cfg.Precisions = precs
			}

			log.Info("starting benchmark",
				"size", cfg.Size,
				"num_warm_up", cfg.NumWarmup,
				"num_loops", cfg.NumLoops,
				"backend", stream.AccessBackend(),
			)

			res, err := stream.Run(cfg)
			if err != nil {
				return err
			}
			log.Debug("benchmark complete", "id", res.ID)

			if outputPath != "" {
				if err := res.WriteFile(outputPath); err != nil {
					return err
				}
				log.Info("wrote result", "path", outputPath)
			}

			if jsonOut {
				data, err := res.JSON()
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			fmt.Print(res.Summary())
			return nil
		},
	}
}

func parsePrecision(s string) ([]stream.Precision, error) {
	switch s {
	case "float":
		return []stream.Precision{stream.PrecisionSingle}, nil
	case "double":
		return []stream.Precision{stream.PrecisionDouble}, nil
	case "both", "":
		return []stream.Precision{stream.PrecisionSingle, stream.PrecisionDouble}, nil
	default:
		return nil, fmt.Errorf("unknown precision %q (want float, double or both)", s)
	}
}
