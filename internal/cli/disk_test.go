package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskCompact(t *testing.T) {
	tests := []struct {
		name     string
		diskMap  string
		before   string
		after    string
		moved    int
		checksum int
	}{
		{
			name:     "sample",
			diskMap:  "2333133121414131402",
			before:   "00...111...2...333.44.5555.6666.777.888899",
			after:    "00992111777.44.333....5555.6666.....8888..",
			moved:    4,
			checksum: 2858,
		},
		{
			name:     "nothing fits",
			diskMap:  "12345",
			before:   "0..111....22222",
			after:    "0..111....22222",
			checksum: 132,
		},
		{
			name:     "single file",
			diskMap:  "3\n",
			before:   "000",
			after:    "000",
			checksum: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := parseDiskMap(tt.diskMap)
			require.NoError(t, err)
			assert.Equal(t, tt.before, d.String())

			assert.Equal(t, tt.moved, d.compact())
			assert.Equal(t, tt.after, d.String())
			assert.Equal(t, tt.checksum, d.checksum())
		})
	}
}

func TestDiskCompactSplitsFreeSpan(t *testing.T) {
	// file 1 (one block) lands at the front of the three-block gap.
	d, err := parseDiskMap("131")
	require.NoError(t, err)
	assert.Equal(t, 1, d.compact())
	assert.Equal(t, "01...", d.String())
	assert.Equal(t, 4, d.spans.Len())

	// files[] follows the moved file
	f, ok := d.spans.Value(d.files[1])
	require.True(t, ok)
	assert.Equal(t, span{id: 1, size: 1}, f)
}

func TestParseDiskMapErrors(t *testing.T) {
	for _, in := range []string{"", "  \n", "12a3"} {
		_, err := parseDiskMap(in)
		assert.ErrorIs(t, err, errBadDiskMap, "input %q", in)
	}
}
