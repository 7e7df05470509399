// Package proto holds the im.* RPC messages and service descriptors.
//
// Messages are plain structs that read and write the protobuf wire format
// directly through protowire. Field numbers follow declaration order in
// each message, so any protobuf client using the same numbering can talk
// to the server.
package proto

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// WireMessage is implemented by every request and response type.
type WireMessage interface {
	AppendWire(b []byte) []byte
	UnmarshalWire(b []byte) error
}

// encoder appends fields, omitting zero values the way proto3 does.
type encoder struct {
	b []byte
}

func (e *encoder) varint(num protowire.Number, v uint64) {
	if v == 0 {
		return
	}
	e.b = protowire.AppendTag(e.b, num, protowire.VarintType)
	e.b = protowire.AppendVarint(e.b, v)
}

func (e *encoder) bool(num protowire.Number, v bool) {
	e.varint(num, protowire.EncodeBool(v))
}

func (e *encoder) int64(num protowire.Number, v int64) {
	e.varint(num, uint64(v))
}

func (e *encoder) int32(num protowire.Number, v int32) {
	e.varint(num, uint64(int64(v)))
}

func (e *encoder) string(num protowire.Number, v string) {
	if v == "" {
		return
	}
	e.b = protowire.AppendTag(e.b, num, protowire.BytesType)
	e.b = protowire.AppendString(e.b, v)
}

// message writes m even when it encodes to nothing, so presence survives.
func (e *encoder) message(num protowire.Number, m WireMessage) {
	e.b = protowire.AppendTag(e.b, num, protowire.BytesType)
	e.b = protowire.AppendBytes(e.b, m.AppendWire(nil))
}

func (e *encoder) packedInt64(num protowire.Number, vs []int64) {
	if len(vs) == 0 {
		return
	}
	var packed []byte
	for _, v := range vs {
		packed = protowire.AppendVarint(packed, uint64(v))
	}
	e.b = protowire.AppendTag(e.b, num, protowire.BytesType)
	e.b = protowire.AppendBytes(e.b, packed)
}

var errWireType = errors.New("proto: wrong wire type")

// decoder walks the fields of one message. Callers loop on next and
// read the current field with one of the typed accessors, or skip it.
type decoder struct {
	b   []byte
	num protowire.Number
	typ protowire.Type
	err error
}

func (d *decoder) next() bool {
	if d.err != nil || len(d.b) == 0 {
		return false
	}
	num, typ, n := protowire.ConsumeTag(d.b)
	if n < 0 {
		d.err = protowire.ParseError(n)
		return false
	}
	d.num, d.typ, d.b = num, typ, d.b[n:]
	return true
}

func (d *decoder) fail(err error) {
	if d.err == nil {
		d.err = fmt.Errorf("field %d: %w", d.num, err)
	}
	d.b = nil
}

func (d *decoder) varint() uint64 {
	if d.typ != protowire.VarintType {
		d.fail(errWireType)
		return 0
	}
	v, n := protowire.ConsumeVarint(d.b)
	if n < 0 {
		d.fail(protowire.ParseError(n))
		return 0
	}
	d.b = d.b[n:]
	return v
}

func (d *decoder) bool() bool {
	return protowire.DecodeBool(d.varint())
}

func (d *decoder) int64() int64 {
	return int64(d.varint())
}

func (d *decoder) int32() int32 {
	return int32(d.varint())
}

func (d *decoder) bytes() []byte {
	if d.typ != protowire.BytesType {
		d.fail(errWireType)
		return nil
	}
	v, n := protowire.ConsumeBytes(d.b)
	if n < 0 {
		d.fail(protowire.ParseError(n))
		return nil
	}
	d.b = d.b[n:]
	return v
}

func (d *decoder) string() string {
	return string(d.bytes())
}

func (d *decoder) message(m WireMessage) {
	b := d.bytes()
	if d.err != nil {
		return
	}
	if err := m.UnmarshalWire(b); err != nil {
		d.fail(err)
	}
}

// int64s reads a repeated int64 field in either packed or unpacked form.
func (d *decoder) int64s(dst []int64) []int64 {
	if d.typ == protowire.VarintType {
		return append(dst, d.int64())
	}
	packed := d.bytes()
	for len(packed) > 0 && d.err == nil {
		v, n := protowire.ConsumeVarint(packed)
		if n < 0 {
			d.fail(protowire.ParseError(n))
			break
		}
		dst = append(dst, int64(v))
		packed = packed[n:]
	}
	return dst
}

func (d *decoder) skip() {
	n := protowire.ConsumeFieldValue(d.num, d.typ, d.b)
	if n < 0 {
		d.fail(protowire.ParseError(n))
		return
	}
	d.b = d.b[n:]
}
