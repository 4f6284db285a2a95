package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/kestrelhpc/stream"
)

func infoCmd() *cli.Command {
	return &cli.Command{
		Name:  "info",
		Usage: "Show device and backend information",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dev, err := stream.GetDeviceProperties(0)
			if err != nil {
				return err
			}
			fmt.Printf("device:    %s\n", dev.Name)
			fmt.Printf("cores:     %d\n", dev.NumCores)
			fmt.Printf("backend:   %s\n", stream.AccessBackend())
			fmt.Printf("features:  %s\n", stream.GetCPUInfo())
			if v, _ := stream.Version(); v != "" {
				fmt.Printf("version:   %s\n", v)
			}
			return nil
		},
	}
}
