package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/debashishc/electoralcollege/internal/logging"
	"github.com/debashishc/electoralcollege/types"
)

var snapshotsBucket = []byte("snapshots")

const (
	defaultFileMode = 0o600
	defaultTimeout  = time.Second
)

// Snapshot is one persisted analysis.
type Snapshot struct {
	// ID is assigned by Save when empty.
	ID string `json:"id"`

	// CreatedAt is assigned by Save when zero.
	CreatedAt time.Time `json:"createdAt"`

	// Notes is free text supplied by the caller.
	Notes string `json:"notes,omitempty"`

	// Input is the scenario that was analyzed.
	Input types.PartialResult `json:"input"`

	// Analysis is the analysis of Input.
	Analysis types.ElectionAnalysis `json:"analysis"`
}

// Options configures Open. The zero value is usable.
type Options struct {
	// Timeout bounds the wait for the database file lock (default 1s).
	Timeout time.Duration

	// ReadOnly opens the database without write access.
	ReadOnly bool

	// Logger receives debug output (default: no-op).
	Logger types.Logger

	// Now supplies creation timestamps (default: time.Now).
	Now func() time.Time
}

// Store is a snapshot database. It is safe for concurrent use.
type Store struct {
	db     *bolt.DB
	logger types.Logger
	now    func() time.Time
}

// Open opens or creates the snapshot database at path.
//
// Parameters:
//   - path: Database file path
//   - opts: Optional settings (nil for defaults)
//
// Returns:
//   - *Store: Open store; call Close when done
//   - error: Open or initialization error
func Open(path string, opts *Options) (*Store, error) {
	var o Options
	if opts != nil {
		o = *opts
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.Logger == nil {
		o.Logger = logging.NewNop()
	}
	if o.Now == nil {
		o.Now = time.Now
	}

	db, err := bolt.Open(path, defaultFileMode, &bolt.Options{Timeout: o.Timeout, ReadOnly: o.ReadOnly})
	if err != nil {
		return nil, fmt.Errorf("open snapshot store: %w", err)
	}

	if !o.ReadOnly {
		err = db.Update(func(tx *bolt.Tx) error {
			_, err := tx.CreateBucketIfNotExists(snapshotsBucket)
			return err
		})
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("init snapshot store: %w", err)
		}
	}

	return &Store{db: db, logger: o.Logger, now: o.Now}, nil
}

// Close releases the database file.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores snap, assigning an ID and timestamp when missing. Saving an
// existing ID replaces that snapshot.
//
// Returns:
//   - Snapshot: The stored snapshot with ID and CreatedAt populated
//   - error: Encoding or write error
func (s *Store) Save(snap Snapshot) (Snapshot, error) {
	if snap.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return Snapshot{}, fmt.Errorf("generate snapshot id: %w", err)
		}
		snap.ID = id.String()
	} else if _, err := uuid.Parse(snap.ID); err != nil {
		return Snapshot{}, fmt.Errorf("%w: snapshot id %q: %w", types.ErrMalformedInput, snap.ID, err)
	}
	if snap.CreatedAt.IsZero() {
		snap.CreatedAt = s.now().UTC().Round(0)
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return Snapshot{}, fmt.Errorf("encode snapshot %s: %w", snap.ID, err)
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		return bucket(tx).Put([]byte(snap.ID), data)
	})
	if err != nil {
		return Snapshot{}, fmt.Errorf("save snapshot %s: %w", snap.ID, err)
	}

	s.logger.Debug("snapshot saved", "id", snap.ID, "bytes", len(data), "has_winner", snap.Analysis.HasWinner)

	return snap, nil
}

// Get returns the snapshot with the given ID.
//
// Returns:
//   - Snapshot: The stored snapshot
//   - error: ErrSnapshotNotFound if absent, or a decode error
func (s *Store) Get(id string) (Snapshot, error) {
	var snap Snapshot
	err := s.db.View(func(tx *bolt.Tx) error {
		b := bucket(tx)
		if b == nil {
			return notFound(id)
		}
		data := b.Get([]byte(id))
		if data == nil {
			return notFound(id)
		}

		return decode(data, &snap)
	})
	if err != nil {
		return Snapshot{}, err
	}

	return snap, nil
}

// List returns every snapshot, oldest first.
func (s *Store) List() ([]Snapshot, error) {
	out := make([]Snapshot, 0)
	err := s.db.View(func(tx *bolt.Tx) error {
		b := bucket(tx)
		if b == nil {
			return nil
		}

		return b.ForEach(func(_, v []byte) error {
			var snap Snapshot
			if err := decode(v, &snap); err != nil {
				return err
			}
			out = append(out, snap)

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Delete removes the snapshot with the given ID.
//
// Returns:
//   - error: ErrSnapshotNotFound if absent
func (s *Store) Delete(id string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := bucket(tx)
		if b.Get([]byte(id)) == nil {
			return notFound(id)
		}

		return b.Delete([]byte(id))
	})
	if err != nil {
		return err
	}

	s.logger.Debug("snapshot deleted", "id", id)

	return nil
}

// Len returns the number of stored snapshots.
func (s *Store) Len() (int, error) {
	n := 0
	err := s.db.View(func(tx *bolt.Tx) error {
		if b := bucket(tx); b != nil {
			n = b.Stats().KeyN
		}

		return nil
	})

	return n, err
}

func bucket(tx *bolt.Tx) *bolt.Bucket {
	return tx.Bucket(snapshotsBucket)
}

func decode(data []byte, snap *Snapshot) error {
	if err := json.Unmarshal(data, snap); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}

	return nil
}

func notFound(id string) error {
	return fmt.Errorf("%w: %s", types.ErrSnapshotNotFound, id)
}

// IsNotFound reports whether err means a snapshot does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, types.ErrSnapshotNotFound)
}
