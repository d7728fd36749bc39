package protocol

import (
	"fmt"

	"github.com/loom-ui/loom/pkg/dom"
)

// EncodeOps encodes a batch of host-tree mutations.
// Payload format: varint count, then per mutation the op byte followed
// by the fields that op carries (see decodeOp).
func EncodeOps(muts []dom.Mutation) []byte {
	e := NewEncoder()
	e.WriteUvarint(uint64(len(muts)))
	for i := range muts {
		encodeOp(e, &muts[i])
	}
	return e.Bytes()
}

func encodeOp(e *Encoder, m *dom.Mutation) {
	e.WriteByte(byte(m.Op))
	e.WriteUvarint(m.Node)

	switch m.Op {
	case dom.OpCreateElement:
		e.WriteString(m.Tag)
	case dom.OpCreateText, dom.OpSetText:
		e.WriteString(m.Value)
	case dom.OpSetAttr:
		e.WriteString(m.Key)
		e.WriteString(m.Value)
	case dom.OpRemoveAttr, dom.OpAddListener, dom.OpRemoveListener:
		e.WriteString(m.Key)
	case dom.OpInsert, dom.OpRemove:
		e.WriteUvarint(m.Parent)
		e.WriteUvarint(uint64(m.Index))
	case dom.OpReplace:
		e.WriteUvarint(m.Parent)
		e.WriteUvarint(m.Other)
		e.WriteUvarint(uint64(m.Index))
	}
}

// DecodeOps decodes a batch of host-tree mutations.
func DecodeOps(payload []byte) ([]dom.Mutation, error) {
	d := NewDecoder(payload)

	count, err := d.ReadUvarint()
	if err != nil {
		return nil, err
	}
	if count > MaxOpsPerFrame {
		return nil, ErrCollectionTooLarge
	}

	muts := make([]dom.Mutation, 0, count)
	for i := uint64(0); i < count; i++ {
		m, err := decodeOp(d)
		if err != nil {
			return nil, err
		}
		muts = append(muts, m)
	}
	return muts, nil
}

func decodeOp(d *Decoder) (dom.Mutation, error) {
	var m dom.Mutation

	opByte, err := d.ReadByte()
	if err != nil {
		return m, err
	}
	m.Op = dom.Op(opByte)

	if m.Node, err = d.ReadUvarint(); err != nil {
		return m, err
	}

	switch m.Op {
	case dom.OpCreateElement:
		m.Tag, err = d.ReadString()
	case dom.OpCreateText, dom.OpSetText:
		m.Value, err = d.ReadString()
	case dom.OpSetAttr:
		if m.Key, err = d.ReadString(); err != nil {
			return m, err
		}
		m.Value, err = d.ReadString()
	case dom.OpRemoveAttr, dom.OpAddListener, dom.OpRemoveListener:
		m.Key, err = d.ReadString()
	case dom.OpInsert, dom.OpRemove:
		if m.Parent, err = d.ReadUvarint(); err != nil {
			return m, err
		}
		var idx uint64
		idx, err = d.ReadUvarint()
		m.Index = int(idx)
	case dom.OpReplace:
		if m.Parent, err = d.ReadUvarint(); err != nil {
			return m, err
		}
		if m.Other, err = d.ReadUvarint(); err != nil {
			return m, err
		}
		var idx uint64
		idx, err = d.ReadUvarint()
		m.Index = int(idx)
	default:
		return m, ErrUnknownOp
	}

	return m, err
}

// FrameOpsBatches encodes mutations into one or more op frames, each
// within MaxPayloadSize. The final frame carries FlagFinal so the
// client knows the batch is complete and can apply it atomically.
//
// A single mutation whose encoding alone exceeds MaxPayloadSize cannot
// be framed; that is an ErrFrameTooLarge rather than a corrupt header.
func FrameOpsBatches(muts []dom.Mutation) ([][]byte, error) {
	if len(muts) == 0 {
		return nil, nil
	}

	var frames [][]byte
	start := 0
	for start < len(muts) {
		end := len(muts)
		payload := EncodeOps(muts[start:end])
		// Halve the batch until it fits.
		for len(payload) > MaxPayloadSize && end-start > 1 {
			end = start + (end-start)/2
			payload = EncodeOps(muts[start:end])
		}
		if len(payload) > MaxPayloadSize {
			return nil, fmt.Errorf("%w: %s op for node %d",
				ErrFrameTooLarge, muts[start].Op, muts[start].Node)
		}
		f := NewFrame(FrameOps, payload)
		if end == len(muts) {
			f.Flags = FlagFinal
		}
		frames = append(frames, f.Encode())
		start = end
	}
	return frames, nil
}
