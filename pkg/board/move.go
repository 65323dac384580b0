package board

import (
	"fmt"

	"github.com/seekerror/stdlib/pkg/lang"
)

// MoveFlag is a bitset of move metadata, as described in §3 of the data model: a move
// can be several of these simultaneously (e.g. a capturing promotion).
type MoveFlag uint8

const (
	FlagPromotion MoveFlag = 1 << iota
	FlagCastling
	FlagEnPassant
	FlagCheck
	FlagCheckmate
	FlagStalemate
)

func (f MoveFlag) Has(flag MoveFlag) bool {
	return f&flag != 0
}

// Move is a candidate (pseudo-legal, once generated) move: an origin/target pair plus,
// for pawn moves reaching the back rank, the chosen promotion piece. It carries no
// capture or check information -- that is resolved and recorded by MakeMove.
type Move struct {
	Origin, Target Square
	Promotion      Piece // NoPiece unless this is a promotion candidate.
}

// ParseMove parses a move in pure algebraic coordinate notation, such as "a2a4" or "a7a8q".
func ParseMove(str string) (Move, error) {
	runes := []rune(str)
	if len(runes) < 4 || len(runes) > 5 {
		return Move{}, fmt.Errorf("invalid move: %q", str)
	}

	origin, err := ParseSquare(runes[0], runes[1])
	if err != nil {
		return Move{}, fmt.Errorf("invalid origin in move %q: %w", str, err)
	}
	target, err := ParseSquare(runes[2], runes[3])
	if err != nil {
		return Move{}, fmt.Errorf("invalid target in move %q: %w", str, err)
	}

	m := Move{Origin: origin, Target: target}
	if len(runes) == 5 {
		promo, ok := ParsePiece(runes[4])
		if !ok || promo == Pawn || promo == King {
			return Move{}, fmt.Errorf("invalid promotion in move %q", str)
		}
		m.Promotion = promo
	}
	return m, nil
}

func (m Move) Equals(o Move) bool {
	return m.Origin == o.Origin && m.Target == o.Target && m.Promotion == o.Promotion
}

func (m Move) String() string {
	if m.Promotion.IsValid() {
		return fmt.Sprintf("%v%v%v", m.Origin, m.Target, m.Promotion)
	}
	return fmt.Sprintf("%v%v", m.Origin, m.Target)
}

// MoveRecord is the reversible result of playing a Move on a Position (§3, §4.5). It
// carries enough information -- including a snapshot of the castling rights and
// en-passant target that the move overwrote -- for UnmakeMove to restore the position
// exactly, without having to reconstruct state that is not otherwise derivable from
// the board.
type MoveRecord struct {
	Origin, Target Square
	Piece          Piece // the piece that moved (pre-promotion kind, i.e. Pawn)
	Captured       Piece // NoPiece if the move was not a capture
	Promotion      Piece // NoPiece unless FlagPromotion is set
	Flags          MoveFlag

	// Undo snapshot: the position's castling rights and en-passant target immediately
	// before this move was made.
	prevCastling    Castling
	prevEnPassant   lang.Optional[Square]
	rookOrigin      Square // for castling: the rook's pre-move square
	rookTarget      Square // for castling: the rook's post-move square
	enPassantCapSq  Square // for en-passant: the captured pawn's square (not Target)
}

func (r MoveRecord) String() string {
	s := fmt.Sprintf("%v%v", r.Origin, r.Target)
	if r.Flags.Has(FlagPromotion) {
		s += r.Promotion.String()
	}
	return s
}
