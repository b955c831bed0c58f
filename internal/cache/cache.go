// Package cache stores rendered frames in a bbolt database, keyed by the
// settings that produced them. Rendering is deterministic, so a frame never
// goes stale.
package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"math"
	"time"

	mandel "github.com/marben/smooth_mandel"
	bolt "go.etcd.io/bbolt"
)

const bucketRenders = "renders"

// keyVersion changes whenever the pixel formula changes.
const keyVersion = 1

var ErrCorrupt = errors.New("corrupt cache entry")

type Cache struct {
	db *bolt.DB
}

// Open opens or creates the cache file at path.
func Open(path string) (*Cache, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("bolt.Open %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketRenders))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize %s: %w", path, err)
	}
	return &Cache{db}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

// Key is the SHA-256 of a canonical encoding of s.
func Key(s mandel.Settings) []byte {
	var buf [1 + 6*8 + 3*4]byte
	b := buf[:0]
	b = append(b, keyVersion)
	for _, f := range []float64{s.TopLeft.Re, s.TopLeft.Im, s.BottomRight.Re, s.BottomRight.Im, s.EscapeRadius} {
		b = binary.BigEndian.AppendUint64(b, math.Float64bits(f))
	}
	b = binary.BigEndian.AppendUint32(b, s.Width)
	b = binary.BigEndian.AppendUint32(b, s.Height)
	b = binary.BigEndian.AppendUint32(b, s.MaxIterations)
	sum := sha256.Sum256(b)
	return sum[:]
}

// Get returns the frame rendered for s, if present.
func (c *Cache) Get(s mandel.Settings) (*mandel.Image, bool, error) {
	var img *mandel.Image
	err := c.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketRenders)).Get(Key(s))
		if v == nil {
			return nil
		}
		var err error
		img, err = unmarshalImage(v, s)
		return err
	})
	if err != nil {
		return nil, false, err
	}
	return img, img != nil, nil
}

// Put stores img as the frame for s.
func (c *Cache) Put(s mandel.Settings, img *mandel.Image) error {
	if img.Rect != s.Bounds() {
		return fmt.Errorf("image bounds %v do not match settings %v", img.Rect, s.Bounds())
	}
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketRenders)).Put(Key(s), marshalImage(img))
	})
}

func marshalImage(img *mandel.Image) []byte {
	b := make([]byte, 0, 2*binary.MaxVarintLen64+len(img.Pix))
	b = binary.AppendUvarint(b, uint64(img.Rect.Dx()))
	b = binary.AppendUvarint(b, uint64(img.Rect.Dy()))
	return append(b, img.Pix...)
}

// unmarshalImage copies v, which is only valid inside the transaction.
func unmarshalImage(v []byte, s mandel.Settings) (*mandel.Image, error) {
	w, n := binary.Uvarint(v)
	if n <= 0 {
		return nil, ErrCorrupt
	}
	v = v[n:]
	h, n := binary.Uvarint(v)
	if n <= 0 {
		return nil, ErrCorrupt
	}
	v = v[n:]
	if w != uint64(s.Width) || h != uint64(s.Height) || uint64(len(v)) != 3*w*h {
		return nil, fmt.Errorf("%w: %dx%d with %d bytes for %dx%d frame", ErrCorrupt, w, h, len(v), s.Width, s.Height)
	}
	img := mandel.NewImage(image.Rect(0, 0, int(w), int(h)))
	copy(img.Pix, v)
	return img, nil
}
