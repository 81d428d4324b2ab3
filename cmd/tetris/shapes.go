package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

var flagShapeKind string

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Print the shape table",
	Long: `Print every piece kind in all four rotations, as 4x4 frames.
Rotations run clockwise from left to right.

Examples:
  tetris shapes
  tetris shapes --kind T`,
	Args: cobra.NoArgs,
	Run:  runShapes,
}

func init() {
	shapesCmd.Flags().StringVar(&flagShapeKind, "kind", "", "Only print this kind (I, L, J, O, S, T, Z)")
}

func runShapes(_ *cobra.Command, _ []string) {
	kinds := core.AllKinds()
	if flagShapeKind != "" {
		k, ok := core.ParseKind(flagShapeKind)
		if !ok {
			fail("unknown kind %q", flagShapeKind)
		}
		kinds = []core.Kind{k}
	}

	for i, k := range kinds {
		if i > 0 {
			fmt.Println()
		}
		fmt.Print(formatKind(k))
	}
}

// formatKind lays out the rotations of one kind side by side.
func formatKind(k core.Kind) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", k)

	var frames [core.Rotations][]string
	for r := range core.Rotations {
		frames[r] = strings.Split(core.Shape(k, core.Rotation(r)).String(), "\n")
	}

	for row := range core.FrameSize {
		cols := make([]string, core.Rotations)
		for r := range core.Rotations {
			cols[r] = frames[r][row]
		}
		b.WriteString(strings.Join(cols, "   "))
		b.WriteString("\n")
	}
	return b.String()
}
