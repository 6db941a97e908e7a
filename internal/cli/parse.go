package cli

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridkit/direction"
	"github.com/katalvlaran/gridkit/geom"
)

var (
	errBadCell      = errors.New("unrecognized grid cell")
	errBadPoint     = errors.New("malformed point")
	errMixedPoints  = errors.New("cannot mix 2D and 3D points")
	errBadMoveCount = errors.New("malformed move count")
)

// readInput reads path, or stdin when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

func splitFields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// parsePoints reads one point per line as "x,y" or "x,y,z". Blank lines are
// skipped; every line must have the same dimension.
func parsePoints(data []byte) ([]geom.Point2D, []geom.Point3D, error) {
	var (
		pts2 []geom.Point2D
		pts3 []geom.Point3D
	)
	sc := bufio.NewScanner(bytes.NewReader(data))
	for line := 1; sc.Scan(); line++ {
		fields := splitFields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		nums := make([]int, len(fields))
		for i, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: line %d: %q", errBadPoint, line, f)
			}
			nums[i] = n
		}
		switch len(nums) {
		case 2:
			pts2 = append(pts2, geom.Pt(nums[0], nums[1]))
		case 3:
			pts3 = append(pts3, geom.Pt3(nums[0], nums[1], nums[2]))
		default:
			return nil, nil, fmt.Errorf("%w: line %d has %d coordinates", errBadPoint, line, len(nums))
		}
		if len(pts2) > 0 && len(pts3) > 0 {
			return nil, nil, fmt.Errorf("%w: line %d", errMixedPoints, line)
		}
	}
	return pts2, pts3, sc.Err()
}

// parseGrid reads a character grid: digits are their value, '#' is 1 and
// '.' is 0. Trailing blank lines are ignored.
func parseGrid(data []byte) ([][]int, error) {
	var grid [][]int
	sc := bufio.NewScanner(bytes.NewReader(data))
	for y := 0; sc.Scan(); y++ {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		row := make([]int, 0, len(line))
		x := 0
		for _, r := range line {
			switch {
			case r >= '0' && r <= '9':
				row = append(row, int(r-'0'))
			case r == '#':
				row = append(row, 1)
			case r == '.':
				row = append(row, 0)
			default:
				return nil, fmt.Errorf("%w: %q at %v", errBadCell, r, geom.Pt(x, y))
			}
			x++
		}
		grid = append(grid, row)
	}
	return grid, sc.Err()
}

type move struct {
	dir   direction.Dir4
	steps int
}

// parseMoves accepts comma or space separated tokens. A token is either a
// direction glyph followed by a count ("R8", "^3") or a run of glyphs
// ("^^>v"), each one step.
func parseMoves(s string) ([]move, error) {
	var out []move
	for _, tok := range splitFields(s) {
		runes := []rune(tok)
		d, err := direction.FromArrow(runes[0])
		if err != nil {
			return nil, err
		}
		rest := string(runes[1:])
		if rest != "" && unicode.IsDigit(runes[1]) {
			n, err := strconv.Atoi(rest)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", errBadMoveCount, tok)
			}
			out = append(out, move{d, n})
			continue
		}
		out = append(out, move{d, 1})
		for _, r := range runes[1:] {
			if d, err = direction.FromArrow(r); err != nil {
				return nil, err
			}
			out = append(out, move{d, 1})
		}
	}
	return out, nil
}

// parseHex reads comma-separated hex steps such as "ne,ne,s".
func parseHex(s string) ([]direction.Dir6, error) {
	var out []direction.Dir6
	for _, tok := range splitFields(s) {
		d, err := direction.ParseDir6(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
