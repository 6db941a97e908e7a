package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridkit/ilist"
)

var errBadDiskMap = errors.New("malformed disk map")

const freeSpan = -1

// span is a run of blocks on a disk: a file's blocks, or free space when id
// is freeSpan.
type span struct {
	id   int
	size int
}

// disk is a block layout as a linked list of spans. files[id] is the node
// index holding file id.
type disk struct {
	spans *ilist.List[span]
	files []int
}

// parseDiskMap reads a dense disk map: digits alternate between a file
// length and a free-space length, starting with file 0.
func parseDiskMap(s string) (*disk, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty", errBadDiskMap)
	}
	d := &disk{spans: ilist.New[span]()}
	for i, r := range s {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("%w: %q at offset %d", errBadDiskMap, r, i)
		}
		size := int(r - '0')
		if i%2 == 0 {
			d.files = append(d.files, d.spans.Append(span{id: len(d.files), size: size}))
			continue
		}
		if size > 0 {
			d.spans.Append(span{id: freeSpan, size: size})
		}
	}
	return d, nil
}

// compact moves each whole file, highest id first, into the leftmost free
// span before it that can hold it. A file that fits nowhere stays put.
// It returns the number of files moved.
func (d *disk) compact() int {
	moved := 0
	for id := len(d.files) - 1; id >= 0; id-- {
		at := d.files[id]
		f, _ := d.spans.Value(at)
		free, ok := d.spans.FirstIndex(
			func(_ int, s span) bool { return s.id == freeSpan && s.size >= f.size },
			func(i int, _ span) bool { return i == at },
		)
		if !ok {
			continue
		}
		s, _ := d.spans.Value(free)
		d.files[id], _ = d.spans.InsertBefore(free, f)
		d.spans.Set(free, span{id: freeSpan, size: s.size - f.size})
		d.spans.Set(at, span{id: freeSpan, size: f.size})
		moved++
	}
	return moved
}

// checksum sums block position times file id over every file block.
func (d *disk) checksum() int {
	sum, pos := 0, 0
	for _, s := range d.spans.All() {
		if s.id != freeSpan {
			// positions pos..pos+size-1
			sum += s.id * (s.size*pos + s.size*(s.size-1)/2)
		}
		pos += s.size
	}
	return sum
}

// String draws one rune per block: the file id modulo 10, or '.' for free.
func (d *disk) String() string {
	var sb strings.Builder
	for _, s := range d.spans.All() {
		c := byte('.')
		if s.id != freeSpan {
			c = byte('0' + s.id%10)
		}
		for range s.size {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}
