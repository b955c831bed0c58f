package cache

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	mandel "github.com/marben/smooth_mandel"
	bolt "go.etcd.io/bbolt"
)

func mustOpen(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "renders.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestCacheRoundTrip(t *testing.T) {
	c := mustOpen(t)
	s := mandel.FullSet.Settings(12, 9, 18, 3)

	if _, ok, err := c.Get(s); ok || err != nil {
		t.Fatalf("Get on empty cache = %v, %v", ok, err)
	}

	img, err := mandel.Render(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Put(s, img); err != nil {
		t.Fatal(err)
	}

	got, ok, err := c.Get(s)
	if err != nil || !ok {
		t.Fatalf("Get = %v, %v", ok, err)
	}
	if got.Rect != img.Rect || !bytes.Equal(got.Pix, img.Pix) {
		t.Errorf("cached frame differs from rendered frame")
	}

	other := s
	other.MaxIterations++
	if _, ok, _ := c.Get(other); ok {
		t.Errorf("hit for different settings")
	}
}

func TestCachePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "renders.db")
	s := mandel.SeahorseValley.Settings(5, 5, 50, 2)
	img, err := mandel.Render(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}

	c, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Put(s, img); err != nil {
		t.Fatal(err)
	}
	c.Close()

	c, err = Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	got, ok, err := c.Get(s)
	if err != nil || !ok || !bytes.Equal(got.Pix, img.Pix) {
		t.Errorf("reopened cache: ok=%v err=%v", ok, err)
	}
}

func TestCachePutRejectsMismatchedImage(t *testing.T) {
	c := mustOpen(t)
	s := mandel.FullSet.Settings(4, 4, 18, 3)
	img := mandel.NewImage(mandel.FullSet.Settings(5, 4, 18, 3).Bounds())
	if err := c.Put(s, img); err == nil {
		t.Errorf("Put accepted an image of the wrong size")
	}
}

func TestCacheCorruptEntry(t *testing.T) {
	c := mustOpen(t)
	s := mandel.FullSet.Settings(4, 4, 18, 3)
	err := c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketRenders)).Put(Key(s), []byte{4, 4, 1, 2, 3})
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := c.Get(s); !errors.Is(err, ErrCorrupt) {
		t.Errorf("Get = %v, want ErrCorrupt", err)
	}
}

func TestKeyDistinguishesFields(t *testing.T) {
	base := mandel.FullSet.Settings(4, 4, 18, 3)
	variants := []func(*mandel.Settings){
		func(s *mandel.Settings) { s.TopLeft.Re += 0.5 },
		func(s *mandel.Settings) { s.TopLeft.Im += 0.5 },
		func(s *mandel.Settings) { s.BottomRight.Re += 0.5 },
		func(s *mandel.Settings) { s.BottomRight.Im += 0.5 },
		func(s *mandel.Settings) { s.Width++ },
		func(s *mandel.Settings) { s.Height++ },
		func(s *mandel.Settings) { s.MaxIterations++ },
		func(s *mandel.Settings) { s.EscapeRadius++ },
	}
	seen := map[string]bool{string(Key(base)): true}
	for i, modify := range variants {
		s := base
		modify(&s)
		k := string(Key(s))
		if seen[k] {
			t.Errorf("variant %d collides", i)
		}
		seen[k] = true
	}
	if !bytes.Equal(Key(base), Key(base)) {
		t.Errorf("Key is not deterministic")
	}
}
