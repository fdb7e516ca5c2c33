// Package render formats points, rectangles, and whole point sets as
// text, the thin output-side adapter spec.md scopes as ambient rather
// than core.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-sod/pointset/pkg/geom"
	"github.com/go-sod/pointset/pkg/pointset"
)

// Point writes p.String() to w.
func Point(w io.Writer, p geom.Point) error {
	_, err := fmt.Fprintln(w, p.String())
	return err
}

// Rect writes r.String() to w.
func Rect(w io.Writer, r geom.Rect) error {
	_, err := fmt.Fprintln(w, r.String())
	return err
}

// Iterator writes every point an Iterator yields, one per line.
func Iterator(w io.Writer, it pointset.Iterator) error {
	for {
		p, ok := it.Next()
		if !ok {
			return nil
		}
		if err := Point(w, p); err != nil {
			return err
		}
	}
}

// IteratorString renders every point an Iterator yields as a
// comma-joined single line, e.g. "(1, 2), (3, 4)". Useful for log lines
// and JSON-free debug output.
func IteratorString(it pointset.Iterator) string {
	var parts []string
	for {
		p, ok := it.Next()
		if !ok {
			break
		}
		parts = append(parts, p.String())
	}
	return strings.Join(parts, ", ")
}

// Set writes every point held by set, in its natural traversal order,
// one per line, the whole sequence surrounded by "{ " and " }": "{ "
// leads straight into the first point's line and " }" is appended right
// after the last point's newline, matching the reference
// implementation's rbtree::operator<< (`strm << "{ "; ... strm << point
// << endl; ... strm << " }";` — never a bare brace on its own line).
func Set(w io.Writer, set pointset.PointSet) error {
	if _, err := io.WriteString(w, "{ "); err != nil {
		return err
	}
	if err := Iterator(w, set.Begin()); err != nil {
		return err
	}
	_, err := io.WriteString(w, " }")
	return err
}
