package codec

import (
	"errors"
	"fmt"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"

	"github.com/cwmp-model/cwmp-go/pkg/model"
	"github.com/cwmp-model/cwmp-go/pkg/paramtree"
)

// SnapshotVersion is the current snapshot envelope version.
const SnapshotVersion = 1

// ErrFingerprintMismatch is returned when a restored tree does not hash
// to the fingerprint recorded in its snapshot.
var ErrFingerprintMismatch = errors.New("snapshot fingerprint mismatch")

// Snapshot is a CBOR envelope around an encoded entity tree.
// CBOR encoding uses integer keys for compactness.
type Snapshot struct {
	// ID uniquely identifies the snapshot.
	ID uuid.UUID `cbor:"1,keyasint"`

	// Root is the root object name, e.g. "STBService".
	Root string `cbor:"2,keyasint"`

	// CreatedAt is when the snapshot was taken.
	CreatedAt time.Time `cbor:"3,keyasint"`

	// Fingerprint is the tree fingerprint at snapshot time.
	Fingerprint uint64 `cbor:"4,keyasint"`

	// Payload is the CBOR-encoded root entity.
	Payload cbor.RawMessage `cbor:"5,keyasint"`

	// Version is the envelope version.
	Version uint8 `cbor:"6,keyasint"`
}

// NewSnapshot encodes node into a new snapshot.
func NewSnapshot(node model.Node) (*Snapshot, error) {
	tree, err := paramtree.New(node, "")
	if err != nil {
		return nil, err
	}
	payload, err := encMode.Marshal(node)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", node.ObjectName(), err)
	}
	return &Snapshot{
		ID:          uuid.New(),
		Root:        node.ObjectName(),
		CreatedAt:   time.Now().UTC(),
		Fingerprint: tree.Fingerprint(),
		Payload:     payload,
		Version:     SnapshotVersion,
	}, nil
}

// Marshal encodes the envelope.
func (s *Snapshot) Marshal() ([]byte, error) {
	return encMode.Marshal(s)
}

// UnmarshalSnapshot decodes an envelope without decoding its payload.
func UnmarshalSnapshot(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := decMode.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	if s.Version > SnapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", s.Version)
	}
	return &s, nil
}

// Restore decodes the payload into node and verifies the fingerprint.
func (s *Snapshot) Restore(node model.Node) error {
	if s.Root != node.ObjectName() {
		return fmt.Errorf("%w: snapshot of %s, want %s", ErrRootMismatch, s.Root, node.ObjectName())
	}
	if err := decMode.Unmarshal(s.Payload, node); err != nil {
		return fmt.Errorf("decoding %s: %w", s.Root, err)
	}
	tree, err := paramtree.New(node, "")
	if err != nil {
		return err
	}
	if got := tree.Fingerprint(); got != s.Fingerprint {
		return fmt.Errorf("%w: %016x, recorded %016x", ErrFingerprintMismatch, got, s.Fingerprint)
	}
	return nil
}
