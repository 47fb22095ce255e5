package scores

import "github.com/vovakirdan/tui-play/internal/bounded"

// NotRanked is returned by Insert when a record does not make the board.
const NotRanked = -1

// Board is a descending, capacity-bounded list of records.
type Board struct {
	seq *bounded.Seq[Record]
}

// NewBoard returns an empty board of Capacity slots.
func NewBoard() *Board {
	return newBoard(Capacity)
}

func newBoard(capacity int) *Board {
	return &Board{seq: bounded.New[Record](capacity)}
}

// Len returns the number of ranked records.
func (b *Board) Len() int {
	return b.seq.Len()
}

// At returns the record at zero-based rank i.
func (b *Board) At(i int) Record {
	return b.seq.At(i)
}

// Records returns a copy of the ranked records, best first.
func (b *Board) Records() []Record {
	return b.seq.Slice()
}

// Insert places r before the first record with a lower score, so it
// ranks ahead of existing equal scores. On a full board the lowest record
// is dropped. Returns the zero-based rank, or NotRanked (board unchanged)
// for a zero score or one below every record of a full board.
func (b *Board) Insert(r Record) int {
	if r.Zero() {
		return NotRanked
	}
	i := 0
	for i < b.seq.Len() && b.seq.At(i).Score > r.Score {
		i++
	}
	if _, _, ok := b.seq.Insert(i, r); !ok {
		return NotRanked
	}
	return i
}

// ExcerptTop is the number of leading rows always shown.
const ExcerptTop = 15

// Line is one row of a board excerpt.
type Line struct {
	Rank      int // zero-based
	Record    Record
	Highlight bool
	Separator bool // a divider; Rank and Record are unset
}

// Excerpt selects the rows to show around rank: the top ExcerptTop rows,
// and when rank falls below them a divider followed by the rows from two
// above to two below it. rank may be NotRanked.
func (b *Board) Excerpt(rank int) []Line {
	var lines []Line
	for i, rec := range b.seq.All() {
		if i >= ExcerptTop {
			break
		}
		lines = append(lines, Line{Rank: i, Record: rec, Highlight: i == rank})
	}
	if rank < ExcerptTop || rank >= b.Len() {
		return lines
	}
	lines = append(lines, Line{Separator: true})
	for i := rank - 2; i <= rank+2 && i < b.Len(); i++ {
		lines = append(lines, Line{Rank: i, Record: b.At(i), Highlight: i == rank})
	}
	return lines
}
