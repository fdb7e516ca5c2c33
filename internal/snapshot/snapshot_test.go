package snapshot

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-sod/pointset/internal/database"
	"github.com/go-sod/pointset/pkg/geom"
	"github.com/go-sod/pointset/pkg/pointset/bruteforce"
)

func openTestDB(t *testing.T) *database.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pointset.db")
	db, err := database.NewFromEnv(context.Background(), &database.Config{FileName: path})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close(context.Background()))
	})
	return db
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	db := openTestDB(t)

	src := bruteforce.New()
	pts := []geom.Point{geom.New(1, 2), geom.New(-3, 4.5), geom.New(0, 0)}
	for _, p := range pts {
		src.Put(p)
	}

	require.NoError(t, Save(db, "default", src))

	dst := bruteforce.New()
	n, err := Load(db, "default", dst)
	require.NoError(t, err)
	require.Equal(t, len(pts), n)
	require.Equal(t, len(pts), dst.Size())
	for _, p := range pts {
		require.True(t, dst.Contains(p))
	}
}

func TestLoadMissingSnapshotIsNotError(t *testing.T) {
	db := openTestDB(t)
	dst := bruteforce.New()
	n, err := Load(db, "does-not-exist", dst)
	require.NoError(t, err)
	require.Equal(t, 0, n)
	require.True(t, dst.Empty())
}
