package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var pickCmd = &cobra.Command{
	Use:   "pick <definition.yaml> <x> <y>",
	Short: "Print the hex under a pixel of the rendered map",
	Long: `Pick converts a pixel position of the image produced by "render" back to a hex,
and reports whether that hex is part of the map and what terrain it holds.

Examples:
  hexmapgen pick island.yaml 120 80`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid x %q: %w", args[1], err)
		}
		y, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid y %q: %w", args[2], err)
		}
		m, err := loadTiledMap(args[0])
		if err != nil {
			return err
		}

		res := m.pick(x, y)
		if !res.Inside {
			fmt.Fprintf(cmd.OutOrStdout(), "(%d, %d, %d) outside\n", res.Q, res.R, res.S)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "(%d, %d, %d) %s\n", res.Q, res.R, res.S, res.Kind)
		return nil
	},
}
