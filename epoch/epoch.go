// Package epoch implements the AILL epoch framer: a write-side buffer
// that partitions an append-only byte stream into CRC-8 protected
// frames of at most 8192 payload bytes, and a read-side decoder that
// reports a CRC mismatch as a non-fatal flag rather than an error,
// since retransmission policy belongs to the layer above.
package epoch

import (
	"fmt"

	"github.com/jmpatri615/aill/wire"
)

// MaxPayload is the largest payload one epoch frame may carry.
const MaxPayload = 8192

// HeaderSize is the seq+len prefix preceding the payload.
const HeaderSize = 4

// TrailerSize is the CRC byte following the payload.
const TrailerSize = 1

// Frame is one encoded epoch: [u16 seq][u16 len][payload][u8 crc].
type Frame struct {
	Seq     uint16
	Payload []byte
}

// Encode serializes one frame's wire bytes.
func Encode(seq uint16, payload []byte) ([]byte, error) {
	if len(payload) > MaxPayload {
		return nil, &wire.RangeError{Value: len(payload), Want: fmt.Sprintf("epoch payload <= %d bytes", MaxPayload)}
	}
	w := wire.NewWriter()
	w.WriteUint16(seq)
	w.WriteUint16(uint16(len(payload)))
	w.WriteBytesRaw(payload)
	crc := wire.CRC8(w.Buf)
	w.WriteByte(crc)
	return w.Buf, nil
}

// Decoded is one parsed epoch frame plus its CRC verification result.
type Decoded struct {
	Seq     uint16
	Payload []byte
	CRCOK   bool
}

// Decode parses one epoch frame starting at buf[0]. It returns the
// decoded frame and the number of bytes consumed, or a *wire.Truncated
// error if fewer than HeaderSize+TrailerSize bytes are present or the
// declared length exceeds the remaining buffer. A CRC mismatch is
// reported via Decoded.CRCOK, not as an error; the caller decides
// whether to request retransmission.
func Decode(buf []byte) (*Decoded, int, error) {
	if len(buf) < HeaderSize+TrailerSize {
		return nil, 0, &wire.Truncated{Offset: 0, Needed: HeaderSize + TrailerSize, Have: len(buf)}
	}
	r := wire.NewReader(buf)
	seq, err := r.ReadUint16()
	if err != nil {
		return nil, 0, err
	}
	length, err := r.ReadUint16()
	if err != nil {
		return nil, 0, err
	}
	total := HeaderSize + int(length) + TrailerSize
	if len(buf) < total {
		return nil, 0, &wire.Truncated{Offset: HeaderSize, Needed: int(length) + TrailerSize, Have: len(buf) - HeaderSize}
	}
	payload := make([]byte, length)
	copy(payload, buf[HeaderSize:HeaderSize+int(length)])
	crc := buf[HeaderSize+int(length)]
	want := wire.CRC8(buf[:HeaderSize+int(length)])

	return &Decoded{Seq: seq, Payload: payload, CRCOK: crc == want}, total, nil
}

// Writer buffers application bytes and flushes complete epochs at the
// MaxPayload boundary, tracking a wrapping sequence counter.
type Writer struct {
	pending []byte
	seq     uint16
	frames  [][]byte
}

func NewWriter() *Writer { return &Writer{} }

// Write appends bytes to the pending payload, flushing a full epoch
// first whenever the append would exceed MaxPayload.
func (w *Writer) Write(b []byte) error {
	for len(b) > 0 {
		room := MaxPayload - len(w.pending)
		if room == 0 {
			if err := w.Flush(); err != nil {
				return err
			}
			room = MaxPayload
		}
		n := len(b)
		if n > room {
			n = room
		}
		w.pending = append(w.pending, b[:n]...)
		b = b[n:]
	}
	return nil
}

// Flush finalizes the current pending payload (which may be empty)
// into one epoch frame, appends it to Frames, and advances the
// sequence counter (wrapping at 65536).
func (w *Writer) Flush() error {
	frame, err := Encode(w.seq, w.pending)
	if err != nil {
		return err
	}
	w.frames = append(w.frames, frame)
	w.pending = w.pending[:0]
	w.seq++ // wraps naturally via uint16 overflow
	return nil
}

// Frames returns every flushed epoch's wire bytes so far.
func (w *Writer) Frames() [][]byte { return w.frames }

// Seq returns the next sequence number that will be used.
func (w *Writer) Seq() uint16 { return w.seq }
