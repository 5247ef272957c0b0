package game

import (
	"encoding/json"
	"sort"

	"checkers/internal/domain/board"
)

// PieceSet is the collection of pieces in play, keyed by identity.
// At most one piece occupies a square.
type PieceSet struct {
	byID map[PieceID]*Piece
}

func NewPieceSet(pieces ...Piece) PieceSet {
	s := PieceSet{byID: make(map[PieceID]*Piece, len(pieces))}
	for _, p := range pieces {
		p := p
		s.byID[p.ID] = &p
	}
	return s
}

// StartingPieces returns red p1..p12 on squares 1..12 and black p21..p32
// on squares 21..32.
func StartingPieces() PieceSet {
	pieces := make([]Piece, 0, 24)
	for i := board.Square(1); i <= 12; i++ {
		pieces = append(pieces,
			Piece{ID: NewPieceID(i), Location: i, Color: Red},
			Piece{ID: NewPieceID(i + 20), Location: i + 20, Color: Black},
		)
	}
	return NewPieceSet(pieces...)
}

func (s PieceSet) Get(id PieceID) (*Piece, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// At returns the piece standing on sq, if any.
func (s PieceSet) At(sq board.Square) (*Piece, bool) {
	for _, p := range s.byID {
		if p.Location == sq {
			return p, true
		}
	}
	return nil, false
}

func (s PieceSet) Occupied(sq board.Square) bool {
	_, ok := s.At(sq)
	return ok
}

func (s PieceSet) Remove(id PieceID) {
	delete(s.byID, id)
}

func (s PieceSet) Len() int {
	return len(s.byID)
}

func (s PieceSet) Count(c Color) int {
	n := 0
	for _, p := range s.byID {
		if p.Color == c {
			n++
		}
	}
	return n
}

// OfColor returns the pieces of c ordered by square.
func (s PieceSet) OfColor(c Color) []*Piece {
	out := make([]*Piece, 0, len(s.byID))
	for _, p := range s.byID {
		if p.Color == c {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Location < out[j].Location })
	return out
}

// List returns copies of every piece ordered by square.
func (s PieceSet) List() []Piece {
	out := make([]Piece, 0, len(s.byID))
	for _, p := range s.byID {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Location < out[j].Location })
	return out
}

func (s PieceSet) Clone() PieceSet {
	return NewPieceSet(s.List()...)
}

func (s PieceSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.List())
}

func (s *PieceSet) UnmarshalJSON(data []byte) error {
	var pieces []Piece
	if err := json.Unmarshal(data, &pieces); err != nil {
		return err
	}
	*s = NewPieceSet(pieces...)
	return nil
}
