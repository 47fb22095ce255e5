// Package scores keeps fixed-capacity, rank-ordered high score boards in
// flat binary files shared by concurrent players.
package scores

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"
	"unicode/utf8"
)

// Board file geometry. A record is an int64 Unix date, a uint32 score and a
// 32-byte NUL-padded name, padded to 48 bytes, little-endian.
const (
	Capacity   = 1000
	NameSize   = 32
	NameMax    = NameSize - 1
	RecordSize = 48

	offDate  = 0
	offScore = 8
	offName  = 12
)

// Record is one board entry. A zero Score marks an unused slot.
type Record struct {
	Date  time.Time
	Score uint32
	Name  string
}

// Zero reports whether r is an unused placeholder.
func (r Record) Zero() bool {
	return r.Score == 0
}

// encodeRecord writes r into buf, which must hold RecordSize bytes.
// Names longer than NameSize bytes are cut.
func encodeRecord(buf []byte, r Record) {
	clear(buf[:RecordSize])
	if r.Zero() {
		return
	}
	binary.LittleEndian.PutUint64(buf[offDate:], uint64(r.Date.Unix()))
	binary.LittleEndian.PutUint32(buf[offScore:], r.Score)
	copy(buf[offName:offName+NameSize], r.Name)
}

// decodeRecord reads a record from buf. The name ends at the first NUL or
// after NameSize bytes.
func decodeRecord(buf []byte) Record {
	score := binary.LittleEndian.Uint32(buf[offScore:])
	if score == 0 {
		return Record{}
	}
	name := buf[offName : offName+NameSize]
	for i, c := range name {
		if c == 0 {
			name = name[:i]
			break
		}
	}
	return Record{
		Date:  time.Unix(int64(binary.LittleEndian.Uint64(buf[offDate:])), 0),
		Score: score,
		Name:  string(name),
	}
}

// ReadBoard decodes up to Capacity records from r. A short input is
// zero-padded and the board ends at the first zero-score record.
func ReadBoard(r io.Reader) (*Board, error) {
	b := NewBoard()
	buf := make([]byte, RecordSize)
	for b.Len() < Capacity {
		if _, err := io.ReadFull(r, buf); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			return nil, fmt.Errorf("scores: read record %d: %w", b.Len(), err)
		}
		rec := decodeRecord(buf)
		if rec.Zero() {
			break
		}
		b.seq.Push(rec)
	}
	return b, nil
}

// MarshalBinary encodes the board as exactly Capacity records, the unused
// tail zero-filled.
func (b *Board) MarshalBinary() ([]byte, error) {
	data := make([]byte, Capacity*RecordSize)
	for i, rec := range b.seq.All() {
		encodeRecord(data[i*RecordSize:], rec)
	}
	return data, nil
}

// SanitizeName limits name to NameMax bytes without splitting a character
// and replaces control bytes with spaces.
func SanitizeName(name string) string {
	if len(name) > NameMax {
		cut := NameMax
		for cut > 0 && !utf8.RuneStart(name[cut]) {
			cut--
		}
		name = name[:cut]
	}
	out := []byte(name)
	for i, c := range out {
		if c < ' ' {
			out[i] = ' '
		}
	}
	return string(out)
}
