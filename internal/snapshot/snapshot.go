// Package snapshot persists a point set's contents to a bbolt bucket so
// a daemon instance can reload its data across restarts. This is
// ordinary file-adapter plumbing around the core, not a copy-on-write
// or deletion feature — reload works by replaying inserts into a fresh
// PointSet.
package snapshot

import (
	"bytes"
	"fmt"

	xdr2 "github.com/davecgh/go-xdr/xdr2"
	bolt "go.etcd.io/bbolt"

	"github.com/go-sod/pointset/internal/byteutil"
	"github.com/go-sod/pointset/internal/database"
	"github.com/go-sod/pointset/pkg/geom"
	"github.com/go-sod/pointset/pkg/pointset"
)

const bucketName = "points"

// xdrPoint is the wire shape stored in the bucket: the XDR codec needs
// plain exported fields, not geom.Point's methods.
type xdrPoint struct {
	X float64
	Y float64
}

// Save encodes every point in set and writes it under name in db's
// points bucket, overwriting any existing snapshot of that name.
func Save(db *database.DB, name string, set pointset.PointSet) error {
	var points []xdrPoint
	it := set.Begin()
	for {
		p, ok := it.Next()
		if !ok {
			break
		}
		points = append(points, xdrPoint{X: p.X, Y: p.Y})
	}

	buf := byteutil.GetBytesBuf()
	defer byteutil.PutBytesBuf(buf)
	buf.Reset()
	if _, err := xdr2.Marshal(buf, points); err != nil {
		return fmt.Errorf("encoding snapshot %s: %w", name, err)
	}

	return db.DB.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		if err != nil {
			return fmt.Errorf("creating bucket %s: %w", bucketName, err)
		}
		return bucket.Put([]byte(name), buf.Bytes())
	})
}

// Load replays the points previously saved under name into set, via
// Put, and returns how many were loaded. A missing snapshot is not an
// error — it loads zero points into set unchanged.
func Load(db *database.DB, name string, set pointset.PointSet) (int, error) {
	var data []byte
	err := db.DB.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket == nil {
			return nil
		}
		if v := bucket.Get([]byte(name)); v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("reading snapshot %s: %w", name, err)
	}
	if data == nil {
		return 0, nil
	}

	var points []xdrPoint
	if _, err := xdr2.Unmarshal(bytes.NewReader(data), &points); err != nil {
		return 0, fmt.Errorf("decoding snapshot %s: %w", name, err)
	}
	for _, p := range points {
		set.Put(geom.New(p.X, p.Y))
	}
	return len(points), nil
}
