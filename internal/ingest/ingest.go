// Package ingest loads whitespace-separated "x y" coordinate pairs into
// a pkg/pointset.PointSet, the way the reference implementation's file
// constructor does — minus its off-by-one bug at end of stream.
package ingest

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/go-sod/pointset/pkg/geom"
	"github.com/go-sod/pointset/pkg/pointset"
)

// LoadFile opens path and loads it via Load. An unreadable file loads
// zero points rather than failing, the same as the reference
// implementation's file constructor.
func LoadFile(path string, set pointset.PointSet) int {
	f, err := os.Open(path)
	if err != nil {
		return 0
	}
	defer f.Close()
	return Load(f, set)
}

// Load reads whitespace-separated "x y" coordinate pairs from r and
// Puts each into set, returning the count loaded. There is no error
// return: malformed input, a partial trailing pair, or an unreadable
// stream all just stop the ingest silently at that point, leaving
// whatever was already inserted.
//
// The reference implementation's constructor reads with
// while (stream) { stream >> x >> y; put(Point(x, y)); }, which checks
// the stream's good-bit before attempting a read rather than after: at
// end of file this appends one spurious point built from whatever x, y
// held from the previous iteration (or zero). Load instead treats a
// failed or partial read of a coordinate pair as the end of input and
// inserts nothing for it.
func Load(r io.Reader, set pointset.PointSet) int {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	n := 0
	for {
		x, ok := nextFloat(scanner)
		if !ok {
			return n
		}

		y, ok := nextFloat(scanner)
		if !ok {
			return n
		}

		set.Put(geom.New(x, y))
		n++
	}
}

func nextFloat(scanner *bufio.Scanner) (float64, bool) {
	if !scanner.Scan() {
		return 0, false
	}
	v, err := strconv.ParseFloat(scanner.Text(), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
