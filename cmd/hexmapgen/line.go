package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Travis-Britz/hexgrid"
	"github.com/spf13/cobra"
)

var lineCmd = &cobra.Command{
	Use:   "line <q,r,s> <q,r,s>",
	Short: "Print the hexes on a straight line",
	Long: `Line prints every hex on the straight line between two cube coordinates,
both ends included, one per row along with its column/row offset position.

The s component may be left out and is derived from q and r.

Examples:
  hexmapgen line 0,0,0 3,-3,0
  hexmapgen line -- -2,1 4,-1`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := parseHex(args[0])
		if err != nil {
			return err
		}
		b, err := parseHex(args[1])
		if err != nil {
			return err
		}
		for _, h := range hexgrid.Line(a, b) {
			fmt.Fprintf(cmd.OutOrStdout(), "%v\t%v\n", h, h.Offset())
		}
		return nil
	},
}

// parseHex reads "q,r,s" or "q,r".
func parseHex(s string) (hexgrid.Hex, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 && len(parts) != 3 {
		return hexgrid.Hex{}, fmt.Errorf("invalid hex %q: expected q,r,s", s)
	}
	var c [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return hexgrid.Hex{}, fmt.Errorf("invalid hex %q: %w", s, err)
		}
		c[i] = n
	}
	if len(parts) == 2 {
		c[2] = -c[0] - c[1]
	}
	if c[0]+c[1]+c[2] != 0 {
		return hexgrid.Hex{}, fmt.Errorf("invalid hex %q: q+r+s must be 0", s)
	}
	return hexgrid.NewHex(c[0], c[1], c[2]), nil
}
