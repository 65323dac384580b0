package board

import "github.com/seekerror/stdlib/pkg/lang"

// MakeMove applies a pseudo-legal Move in place (§4.5). The boolean result reports
// whether m was well-formed given the current position (a piece of the side to move
// present on Origin). If it was, the position is mutated and the returned MoveRecord
// exactly reverses it via UnmakeMove; if not, the position is left untouched and the
// record is empty. It does not check king safety, that is LegalMoves' job.
//
// A pawn reaching its back rank with no Promotion piece set becomes a Queen.
//
// The returned record's FlagCheck/FlagCheckmate/FlagStalemate reflect the position
// the opponent now faces (§4.5 step 7): checkmate is in-check with no legal reply,
// stalemate is not-in-check with no legal reply.
func (p *Position) MakeMove(m Move) (MoveRecord, bool) {
	rec, ok := p.makeMoveRaw(m)
	if !ok {
		return rec, false
	}

	if p.IsChecked(p.sideToMove) {
		rec.Flags |= FlagCheck
		if !p.hasLegalMove(p.sideToMove) {
			rec.Flags |= FlagCheckmate
		}
	} else if !p.hasLegalMove(p.sideToMove) {
		rec.Flags |= FlagStalemate
	}

	return rec, true
}

// hasLegalMove reports whether side has any legal reply, by hypothetical application
// of each pseudo-legal candidate via makeMoveRaw -- not MakeMove, so this does not
// recurse into checkmate/stalemate detection of its own.
func (p *Position) hasLegalMove(side Color) bool {
	saved := p.sideToMove
	p.sideToMove = side
	defer func() { p.sideToMove = saved }()

	for _, m := range p.PseudoLegalMoves(side) {
		rec, ok := p.makeMoveRaw(m)
		if !ok {
			continue
		}
		safe := !p.Attacked(p.KingSquare(side), side.Opponent())
		p.UnmakeMove(rec)
		if safe {
			return true
		}
	}
	return false
}

// makeMoveRaw applies m and fills every MoveRecord field except the trailing
// check/checkmate/stalemate flags, which depend on a further legality probe that
// would otherwise recurse back into this function.
func (p *Position) makeMoveRaw(m Move) (MoveRecord, bool) {
	side := p.sideToMove
	mover, kind, ok := p.Square(m.Origin)
	if !ok || mover != side {
		return MoveRecord{}, false
	}

	rec := MoveRecord{
		Origin:         m.Origin,
		Target:         m.Target,
		Piece:          kind,
		Promotion:      m.Promotion,
		prevCastling:   p.castlingRights,
		prevEnPassant:  p.enPassantTarget,
		rookOrigin:     NoSquare,
		rookTarget:     NoSquare,
		enPassantCapSq: NoSquare,
	}

	if _, captured, ok := p.Square(m.Target); ok {
		rec.Captured = captured
	}

	epTarget, hasEP := p.enPassantTarget.V()
	isEnPassant := kind == Pawn && hasEP && m.Target == epTarget && rec.Captured == NoPiece
	isDoublePush := kind == Pawn && absRankDiff(m.Origin, m.Target) == 2
	isCastle := kind == King && absFileDiff(m.Origin, m.Target) == 2

	p.remove(m.Origin, side, kind)
	if rec.Captured != NoPiece {
		p.remove(m.Target, side.Opponent(), rec.Captured)
	}

	placed := kind
	if m.Promotion != NoPiece {
		placed = m.Promotion
		rec.Flags |= FlagPromotion
	} else if kind == Pawn && backRank(side).IsSet(m.Target) {
		placed = Queen
		rec.Promotion = Queen
		rec.Flags |= FlagPromotion
	}
	p.place(m.Target, side, placed)

	if isEnPassant {
		capSq := enPassantCaptureSquare(side, m.Target)
		rec.enPassantCapSq = capSq
		rec.Flags |= FlagEnPassant
		rec.Captured = Pawn
		p.remove(capSq, side.Opponent(), Pawn)
	}

	if isCastle {
		rec.Flags |= FlagCastling
		rookFrom, rookTo := castlingRookSquares(side, m.Target)
		rec.rookOrigin, rec.rookTarget = rookFrom, rookTo
		p.remove(rookFrom, side, Rook)
		p.place(rookTo, side, Rook)
	}

	p.castlingRights &^= castlingRightsLostBy(m.Origin, m.Target)

	if isDoublePush {
		p.enPassantTarget = lang.Some(enPassantSquareBetween(m.Origin, m.Target))
	} else {
		p.enPassantTarget = lang.Optional[Square]{}
	}

	p.sideToMove = side.Opponent()

	return rec, true
}

// UnmakeMove exactly reverses a MoveRecord previously produced by MakeMove. It must be
// called on the same Position, in strict LIFO order with any intervening MakeMove calls.
func (p *Position) UnmakeMove(rec MoveRecord) {
	side := p.sideToMove.Opponent()
	p.sideToMove = side

	placed := rec.Piece
	if rec.Flags.Has(FlagPromotion) {
		placed = rec.Promotion
	}
	p.remove(rec.Target, side, placed)
	p.place(rec.Origin, side, rec.Piece)

	if rec.Flags.Has(FlagEnPassant) {
		p.place(rec.enPassantCapSq, side.Opponent(), Pawn)
	} else if rec.Captured != NoPiece {
		p.place(rec.Target, side.Opponent(), rec.Captured)
	}

	if rec.Flags.Has(FlagCastling) {
		p.remove(rec.rookTarget, side, Rook)
		p.place(rec.rookOrigin, side, Rook)
	}

	p.castlingRights = rec.prevCastling
	p.enPassantTarget = rec.prevEnPassant
}

func absRankDiff(a, b Square) int {
	ra, rb := int(a.Rank()), int(b.Rank())
	if ra > rb {
		return ra - rb
	}
	return rb - ra
}

func absFileDiff(a, b Square) int {
	fa, fb := int(a.File()), int(b.File())
	if fa > fb {
		return fa - fb
	}
	return fb - fa
}

// enPassantSquareBetween returns the square passed over by a pawn double push, the
// square that becomes the en-passant target.
func enPassantSquareBetween(origin, target Square) Square {
	midRank := (int(origin.Rank()) + int(target.Rank())) / 2
	return NewSquare(origin.File(), Rank(midRank))
}

// enPassantCaptureSquare returns the square of the pawn captured en-passant: same file
// as the target, same rank as the capturing pawn's origin rank.
func enPassantCaptureSquare(side Color, target Square) Square {
	if side == White {
		return NewSquare(target.File(), target.Rank()-1)
	}
	return NewSquare(target.File(), target.Rank()+1)
}

// castlingRookSquares returns the rook's (origin, target) squares for a castling move
// whose king lands on target.
func castlingRookSquares(side Color, kingTarget Square) (Square, Square) {
	switch kingTarget {
	case G1:
		return H1, F1
	case C1:
		return A1, D1
	case G8:
		return H8, F8
	case C8:
		return A8, D8
	default:
		panic("invalid castling king target")
	}
}

// castlingRightsLostBy returns the castling rights that a move between origin and
// target extinguishes: a king move loses both of its side's rights; a rook move (or a
// rook being captured) from its home square loses that single right.
func castlingRightsLostBy(origin, target Square) Castling {
	var lost Castling
	lost |= rightsLostAtSquare(origin)
	lost |= rightsLostAtSquare(target)
	return lost
}

func rightsLostAtSquare(sq Square) Castling {
	switch sq {
	case E1:
		return bothRights(White)
	case E8:
		return bothRights(Black)
	case H1:
		return kingSideRight(White)
	case A1:
		return queenSideRight(White)
	case H8:
		return kingSideRight(Black)
	case A8:
		return queenSideRight(Black)
	default:
		return 0
	}
}
