package cli

import (
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/gridgraph"
)

func newBoundsCommand(in *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "bounds FILE",
		Short: "Print the bounding box of x,y or x,y,z points (one per line)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			pts2, pts3, err := parsePoints(data)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(pts3) > 0 {
				box, err := geom.BoundingRect3D(pts3...)
				if err != nil {
					return err
				}
				log.Debugf("bounds: %d 3D points", len(pts3))
				fmt.Fprintf(out, "bounds: %v\nsize: %dx%dx%d\nvolume: %d\n",
					box, box.Width(), box.Height(), box.Depth(), box.Volume())
				return nil
			}
			r, err := geom.BoundingRect2D(pts2...)
			if err != nil {
				return err
			}
			log.Debugf("bounds: %d 2D points", len(pts2))
			fmt.Fprintf(out, "bounds: %v\nsize: %dx%d\narea: %d\n", r, r.Width(), r.Height(), r.Area())
			return nil
		},
	}
}

func (in *Input) loadGrid(cmd *cobra.Command, path string) (*gridgraph.GridGraph, error) {
	data, err := readInput(cmd, path)
	if err != nil {
		return nil, err
	}
	cells, err := parseGrid(data)
	if err != nil {
		return nil, err
	}
	gg, err := gridgraph.NewGridGraph(cells, in.cfg.GridOptions())
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"width":  gg.Width(),
		"height": gg.Height(),
		"conn":   gg.Conn,
	}).Debug("grid loaded")
	return gg, nil
}

func newIslandsCommand(in *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "islands FILE",
		Short: "Count connected land regions of a digit grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gg, err := in.loadGrid(cmd, args[0])
			if err != nil {
				return err
			}
			comps, err := gg.ConnectedComponents()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "islands: %d\n", len(comps))
			for i, c := range comps {
				fmt.Fprintf(out, "island %d: size=%d first=%v\n", i, len(c), c[0])
			}
			return nil
		},
	}
}

func newBridgeCommand(in *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "bridge FILE SRC DST",
		Short: "Find the fewest water cells joining two islands",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("SRC: %w", err)
			}
			dst, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("DST: %w", err)
			}
			gg, err := in.loadGrid(cmd, args[0])
			if err != nil {
				return err
			}
			path, cost, err := gg.ExpandIsland(src, dst)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cost: %d\npath: %v\n", cost, path)
			return nil
		},
	}
}

func newPathCommand(in *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "path FILE",
		Short: "Shortest land path from the top-left to the bottom-right cell",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gg, err := in.loadGrid(cmd, args[0])
			if err != nil {
				return err
			}
			path, err := gg.ShortestPath(gg.Bounds.Min, gg.Bounds.Max)
			if err != nil {
				return err
			}
			onPath := make(map[geom.Point2D]bool, len(path))
			for _, p := range path {
				onPath[p] = true
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "steps: %d\n", len(path)-1)
			fmt.Fprint(out, gg.Render(func(p geom.Point2D, v int) rune {
				switch {
				case onPath[p]:
					return 'O'
				case v >= gg.LandThreshold:
					return '.'
				}
				return '#'
			}))
			return nil
		},
	}
}

func newDefragCommand(_ *Input) *cobra.Command {
	var show bool
	cmd := &cobra.Command{
		Use:   "defrag FILE",
		Short: "Compact whole files of a dense disk map leftward and print the checksum",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			d, err := parseDiskMap(string(data))
			if err != nil {
				return err
			}
			moved := d.compact()
			log.WithFields(log.Fields{"files": len(d.files), "moved": moved}).Debug("disk compacted")
			out := cmd.OutOrStdout()
			if show {
				fmt.Fprintln(out, d)
			}
			fmt.Fprintf(out, "checksum: %d\n", d.checksum())
			return nil
		},
	}
	cmd.Flags().BoolVar(&show, "show", false, "print the compacted block layout")
	return cmd
}

func newTraceCommand(_ *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "trace MOVES",
		Short: "Follow moves such as \"R8,U5\" or \"^^>v\" from the origin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			moves, err := parseMoves(args[0])
			if err != nil {
				return err
			}
			pos := geom.Origin2D
			box := geom.NewRect2D(pos, pos)
			visited := map[geom.Point2D]bool{pos: true}
			for _, m := range moves {
				for i := 0; i < m.steps; i++ {
					pos = m.dir.Step(pos)
					box = box.Expand(pos)
					visited[pos] = true
				}
			}
			log.Debugf("trace: %d moves", len(moves))
			fmt.Fprintf(cmd.OutOrStdout(), "end: %v\ndistance: %d\nbounds: %v\nvisited: %d\n",
				pos, geom.Origin2D.Distance(pos), box, len(visited))
			return nil
		},
	}
}

func newHexCommand(_ *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "hex MOVES",
		Short: "Follow hex steps such as \"ne,ne,s\" and report distances",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := parseHex(args[0])
			if err != nil {
				return err
			}
			pos, furthest := geom.Origin2D, 0
			for _, d := range steps {
				pos = d.Step(pos)
				furthest = max(furthest, geom.Origin2D.HexDistance(pos))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "end: %v\ndistance: %d\nfurthest: %d\n",
				pos, geom.Origin2D.HexDistance(pos), furthest)
			return nil
		},
	}
}
