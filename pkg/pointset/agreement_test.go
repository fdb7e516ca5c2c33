package pointset_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/go-sod/pointset/pkg/geom"
	"github.com/go-sod/pointset/pkg/pointset/bruteforce"
	"github.com/go-sod/pointset/pkg/pointset/kdpointset"
)

func genPoint(t *rapid.T) geom.Point {
	x := rapid.Float64Range(-500, 500).Draw(t, "x")
	y := rapid.Float64Range(-500, 500).Draw(t, "y")
	return geom.New(x, y)
}

func drainSorted(it interface{ Next() (geom.Point, bool) }) []geom.Point {
	var out []geom.Point
	for {
		p, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// TestCrossBackendAgreement checks that the k-d tree and brute-force
// implementations of PointSet answer Contains, Range, and NearestK
// identically over the same randomly generated point set — the common
// contract both backends are meant to satisfy.
func TestCrossBackendAgreement(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		pts := rapid.SliceOfN(rapid.Custom(genPoint), 1, 80).Draw(t, "points")

		bf := bruteforce.New()
		kd := kdpointset.New()
		for _, p := range pts {
			bf.Put(p)
			kd.Put(p)
		}
		require.Equal(t, bf.Size(), kd.Size())

		probe := genPoint(t)
		require.Equal(t, bf.Contains(probe), kd.Contains(probe))

		minX := rapid.Float64Range(-500, 500).Draw(t, "minx")
		minY := rapid.Float64Range(-500, 500).Draw(t, "miny")
		w := rapid.Float64Range(0, 300).Draw(t, "w")
		h := rapid.Float64Range(0, 300).Draw(t, "h")
		rect := geom.NewRect(geom.New(minX, minY), geom.New(minX+w, minY+h))

		require.Equal(t, drainSorted(bf.Range(rect)), drainSorted(kd.Range(rect)))

		k := rapid.IntRange(1, len(pts)).Draw(t, "k")
		require.Equal(t, drainSorted(bf.NearestK(probe, k)), drainSorted(kd.NearestK(probe, k)))
	})
}
