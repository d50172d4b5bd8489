package archive

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/dgraph-io/badger/v4"
	"github.com/klauspost/compress/gzip"

	"github.com/hailam/checkerplay/internal/board"
)

// PuzzleArchive is a persistent cache of solved principal variations,
// keyed by the hash of the root position that produced them. Adapted
// from the teacher's Storage (same BadgerDB open/close shape), but the
// JSON preferences/statistics blobs are replaced with a gzip-compressed
// board sequence (board.WriteSequence/ReadSequence) so a repeated
// --inputfile run skips the search entirely.
type PuzzleArchive struct {
	db *badger.DB
}

// Open opens (creating if necessary) the puzzle archive in the
// platform data directory.
func Open() (*PuzzleArchive, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return OpenAt(dbDir)
}

// OpenAt opens the puzzle archive at an explicit directory, bypassing
// platform path resolution. Tests use this to point at a temp dir.
func OpenAt(dir string) (*PuzzleArchive, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &PuzzleArchive{db: db}, nil
}

// Close closes the underlying database.
func (a *PuzzleArchive) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func archiveKey(rootHash uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, rootHash)
	return key
}

// Put stores the principal variation solved from a root position whose
// hash is rootHash, encoded with board.WriteSequence ("---"-separated,
// not the blank-line format --outputfile writes) and compressed with
// gzip.
func (a *PuzzleArchive) Put(rootHash uint64, pv []*board.Position) error {
	var raw bytes.Buffer
	if err := board.WriteSequence(&raw, pv); err != nil {
		return err
	}

	var compressed bytes.Buffer
	gw := gzip.NewWriter(&compressed)
	if _, err := gw.Write(raw.Bytes()); err != nil {
		gw.Close()
		return err
	}
	if err := gw.Close(); err != nil {
		return err
	}

	return a.db.Update(func(txn *badger.Txn) error {
		return txn.Set(archiveKey(rootHash), compressed.Bytes())
	})
}

// Get retrieves a previously archived principal variation for
// rootHash. The second return value is false if nothing is archived
// for that hash.
func (a *PuzzleArchive) Get(rootHash uint64) ([]*board.Position, bool, error) {
	var pv []*board.Position

	err := a.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(archiveKey(rootHash))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			gr, err := gzip.NewReader(bytes.NewReader(val))
			if err != nil {
				return err
			}
			defer gr.Close()

			raw, err := io.ReadAll(gr)
			if err != nil {
				return err
			}
			pv, err = board.ReadSequence(bytes.NewReader(raw))
			return err
		})
	})
	if err != nil {
		return nil, false, err
	}
	if pv == nil {
		return nil, false, nil
	}
	return pv, true, nil
}
