package facestore

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/hupe1980/facestore/blobstore"
	"github.com/hupe1980/facestore/codec"
	"github.com/hupe1980/facestore/model"
)

// Ext is the filename extension of persisted reference faces.
const Ext = ".face"

// loadConcurrency bounds parallel blob reads during LoadAll.
const loadConcurrency = 8

// Store is a two-tier face-embedding store: an in-memory index over a
// durable backing store. Safe for concurrent use.
//
// Names are sanitized at every public boundary, so the memory index and the
// backing store always agree on keys: Get("Grace Hopper") and
// Get("Grace_Hopper") address the same reference.
//
// Vector slices returned by Store are shared with the index and must be
// treated as immutable.
type Store struct {
	mu    sync.RWMutex
	faces map[string][]model.Vector // sanitized key -> embeddings
	sf    singleflight.Group

	blobs     blobstore.BlobStore
	codec     codec.Codec
	detector  Detector
	sanitizer Sanitizer
	logger    *Logger
}

// New creates a Store whose backing store is the given directory
// (one file per reference, created lazily on the first persisted Add).
func New(dir string, optFns ...Option) *Store {
	opts := options{
		codec:     codec.Default,
		sanitizer: SanitizeName,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.blobs == nil {
		opts.blobs = blobstore.NewLocalStore(dir)
	}
	if opts.logger == nil {
		opts.logger = NewTextLogger(slog.LevelInfo)
	}

	return &Store{
		faces:     make(map[string][]model.Vector),
		blobs:     opts.blobs,
		codec:     opts.codec,
		detector:  opts.detector,
		sanitizer: opts.sanitizer,
		logger:    opts.logger,
	}
}

// Get returns the embeddings stored for name.
//
// A cached reference is served from memory without touching the backing
// store. On a miss the record is read from the backing store, decoded, and
// cached. A name present in neither tier fails with ErrNotFound.
func (s *Store) Get(ctx context.Context, name string) ([]model.Vector, error) {
	key := s.sanitizer(name)

	s.mu.RLock()
	vectors, ok := s.faces[key]
	s.mu.RUnlock()
	if ok {
		return vectors, nil
	}

	return s.loadKey(ctx, key, name)
}

// loadKey reads one record from the backing store and populates the index.
// Concurrent misses for the same key are collapsed into a single read.
func (s *Store) loadKey(ctx context.Context, key, name string) ([]model.Vector, error) {
	v, err, _ := s.sf.Do(key, func() (any, error) {
		// A racing Add or an earlier flight may have populated the index.
		s.mu.RLock()
		vectors, ok := s.faces[key]
		s.mu.RUnlock()
		if ok {
			return vectors, nil
		}

		data, err := s.blobs.Get(ctx, key+Ext)
		if err != nil {
			if errors.Is(err, blobstore.ErrNotFound) {
				err = fmt.Errorf("%w: %q (add the reference face first)", ErrNotFound, name)
			} else {
				err = fmt.Errorf("failed to read reference face %q: %w", key, err)
			}
			s.logger.LogLoad(ctx, key, 0, err)
			return nil, err
		}

		vectors, err = codec.Unmarshal(data)
		if err != nil {
			err = fmt.Errorf("failed to decode reference face %q: %w", key, err)
			s.logger.LogLoad(ctx, key, 0, err)
			return nil, err
		}

		s.mu.Lock()
		s.faces[key] = vectors
		s.mu.Unlock()

		s.logger.LogLoad(ctx, key, len(vectors), nil)
		return vectors, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]model.Vector), nil
}

// GetBatch returns one entry per requested name, keyed by the caller's raw
// names. The first failing lookup aborts the batch; references loaded before
// the failure stay cached.
func (s *Store) GetBatch(ctx context.Context, names []string) (map[string][]model.Vector, error) {
	result := make(map[string][]model.Vector, len(names))
	for _, name := range names {
		vectors, err := s.Get(ctx, name)
		if err != nil {
			return nil, err
		}
		result[name] = vectors
	}
	return result, nil
}

// LoadAll loads every persisted record into the memory index and returns a
// snapshot of the full index, keyed by sanitized key. Records already cached
// are re-read; decode is deterministic, so that is harmless. The first
// failing load aborts.
func (s *Store) LoadAll(ctx context.Context) (map[string][]model.Vector, error) {
	blobNames, err := s.blobs.List(ctx, Ext)
	if err != nil {
		err = fmt.Errorf("failed to list reference faces: %w", err)
		s.logger.LogLoadAll(ctx, 0, err)
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(loadConcurrency)

	for _, blobName := range blobNames {
		key := strings.TrimSuffix(blobName, Ext)
		g.Go(func() error {
			_, err := s.loadKey(gctx, key, key)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.LogLoadAll(ctx, 0, err)
		return nil, err
	}

	s.mu.RLock()
	snapshot := make(map[string][]model.Vector, len(s.faces))
	for key, vectors := range s.faces {
		snapshot[key] = vectors
	}
	s.mu.RUnlock()

	s.logger.LogLoadAll(ctx, len(snapshot), nil)
	return snapshot, nil
}

// Add registers a reference face under name, replacing any previous entry
// for the same sanitized key wholesale. With persist=true the encoded record
// is also written to the backing store, overwriting an existing record of the
// same key (reported as a notice, not an error).
//
// Returns the sanitized key and the encoded bytes, so callers can reuse the
// serialized form without re-reading the backing store.
func (s *Store) Add(ctx context.Context, name string, vectors []model.Vector, persist bool) (string, []byte, error) {
	if len(vectors) == 0 {
		err := fmt.Errorf("%w: refusing to add %q", ErrNoFaceDetected, name)
		s.logger.LogAdd(ctx, name, 0, persist, err)
		return "", nil, err
	}

	key := s.sanitizer(name)

	s.mu.Lock()
	s.faces[key] = model.CloneVectors(vectors)
	s.mu.Unlock()

	encoded, err := s.codec.Marshal(vectors)
	if err != nil {
		err = fmt.Errorf("failed to encode reference face %q: %w", key, err)
		s.logger.LogAdd(ctx, key, len(vectors), persist, err)
		return "", nil, err
	}

	if persist {
		if err := s.persist(ctx, key, encoded); err != nil {
			s.logger.LogAdd(ctx, key, len(vectors), persist, err)
			return "", nil, err
		}
	}

	s.logger.LogAdd(ctx, key, len(vectors), persist, nil)
	return key, encoded, nil
}

func (s *Store) persist(ctx context.Context, key string, encoded []byte) error {
	blobName := key + Ext

	exists, err := s.blobs.Exists(ctx, blobName)
	if err != nil {
		return fmt.Errorf("failed to stat reference face %q: %w", key, err)
	}
	if exists {
		s.logger.WarnContext(ctx, "reference face already exists, overwriting",
			"name", key,
		)
	}

	if err := s.blobs.Put(ctx, blobName, encoded); err != nil {
		return fmt.Errorf("failed to persist reference face %q: %w", key, err)
	}
	return nil
}

// AddImage runs the configured detector on img and registers the detected
// embeddings under name via Add. Fails with ErrNoDetector when no detector
// is wired, and with ErrNoFaceDetected when the detector finds nothing.
func (s *Store) AddImage(ctx context.Context, name string, img image.Image, persist bool) (string, []byte, error) {
	if s.detector == nil {
		return "", nil, ErrNoDetector
	}

	vectors, err := s.detector.Detect(ctx, img)
	if err != nil {
		err = fmt.Errorf("face detection failed for %q: %w", name, err)
		s.logger.LogAdd(ctx, name, 0, persist, err)
		return "", nil, err
	}

	return s.Add(ctx, name, vectors, persist)
}

// Len returns the number of references currently held in the memory index.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.faces)
}
