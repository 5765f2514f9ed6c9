package diag

import (
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"blang/internal/source"
)

// Snapshot schema version - increment when the payload format changes.
const snapshotSchema uint16 = 1

// ErrSnapshotSchema indicates a snapshot written by an incompatible version.
// Callers treat it as a cache miss, not a failure.
var ErrSnapshotSchema = errors.New("diagnostic snapshot schema mismatch")

type snapshotNote struct {
	File  uint32
	Start uint32
	End   uint32
	Msg   string
}

type snapshotItem struct {
	Severity uint8
	Code     uint16
	Message  string
	File     uint32
	Start    uint32
	End      uint32
	Notes    []snapshotNote
}

type snapshot struct {
	Schema uint16
	Items  []snapshotItem
}

// EncodeBag serialises a Bag into a versioned msgpack payload, so the driver
// can cache per-file diagnostics between runs.
func EncodeBag(bag *Bag) ([]byte, error) {
	snap := snapshot{Schema: snapshotSchema}
	if bag != nil {
		snap.Items = make([]snapshotItem, 0, bag.Len())
		for _, d := range bag.Items() {
			item := snapshotItem{
				Severity: uint8(d.Severity),
				Code:     uint16(d.Code),
				Message:  d.Message,
				File:     uint32(d.Primary.File),
				Start:    d.Primary.Start,
				End:      d.Primary.End,
			}
			for _, n := range d.Notes {
				item.Notes = append(item.Notes, snapshotNote{
					File:  uint32(n.Span.File),
					Start: n.Span.Start,
					End:   n.Span.End,
					Msg:   n.Msg,
				})
			}
			snap.Items = append(snap.Items, item)
		}
	}
	return msgpack.Marshal(snap)
}

// DecodeBag restores a Bag from a snapshot payload.
func DecodeBag(data []byte) (*Bag, error) {
	var snap snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode diagnostic snapshot: %w", err)
	}
	if snap.Schema != snapshotSchema {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSnapshotSchema, snap.Schema, snapshotSchema)
	}
	bag := NewBag(len(snap.Items))
	for _, item := range snap.Items {
		d := Diagnostic{
			Severity: Severity(item.Severity),
			Code:     Code(item.Code),
			Message:  item.Message,
			Primary: source.Span{
				File:  source.FileID(item.File),
				Start: item.Start,
				End:   item.End,
			},
		}
		for _, n := range item.Notes {
			d.Notes = append(d.Notes, Note{
				Span: source.Span{
					File:  source.FileID(n.File),
					Start: n.Start,
					End:   n.End,
				},
				Msg: n.Msg,
			})
		}
		bag.Add(d)
	}
	return bag, nil
}
