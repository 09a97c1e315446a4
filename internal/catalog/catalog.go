package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Snapshot is an immutable summary of the indexed document corpus, written
// by the upload pipeline. Clients and Years keep their stored order: filter
// extraction resolves ambiguous queries by first match in that order.
type Snapshot struct {
	StoreID  string
	Uploaded int
	Clients  []string
	Years    []string
}

// snapshotFile mirrors the on-disk store_config.json shape.
type snapshotFile struct {
	StoreID string `json:"store_id"`
	Stats   struct {
		Uploaded int      `json:"uploaded"`
		Clients  []string `json:"clients"`
		Years    []string `json:"years"`
	} `json:"stats"`
}

// Reader loads catalog snapshots from a JSON file.
type Reader struct {
	path string
}

// NewReader creates a Reader for the given snapshot file path.
func NewReader(path string) *Reader {
	return &Reader{path: path}
}

// Path returns the configured snapshot file path.
func (r *Reader) Path() string { return r.path }

// Load reads the snapshot file. A missing or undecodable file yields
// (nil, nil): "nothing indexed yet" is a normal state, not an error.
// Callers must treat a nil Snapshot as absent and skip extraction.
func (r *Reader) Load() (*Snapshot, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading catalog snapshot %s: %w", r.path, err)
	}

	var sf snapshotFile
	if err := json.Unmarshal(data, &sf); err != nil {
		// A half-written or corrupt snapshot is indistinguishable from an
		// unindexed corpus for our purposes.
		return nil, nil
	}

	return &Snapshot{
		StoreID:  sf.StoreID,
		Uploaded: sf.Stats.Uploaded,
		Clients:  sf.Stats.Clients,
		Years:    sf.Stats.Years,
	}, nil
}
