package board

import "github.com/seekerror/stdlib/pkg/lang"

// pieceGenOrder fixes the deterministic piece-iteration order used by move generation
// (§5: "moves are generated in a deterministic order: piece iteration order Pawn,
// Bishop, Knight, Rook, Queen, King; squares by ascending LSB").
var pieceGenOrder = [6]Piece{Pawn, Bishop, Knight, Rook, Queen, King}

// PseudoLegalMoves enumerates every pseudo-legal move for the given side: moves
// consistent with piece movement and capture rules, not yet filtered for king safety.
func (p *Position) PseudoLegalMoves(side Color) []Move {
	var moves []Move
	for _, k := range pieceGenOrder {
		switch k {
		case Pawn:
			p.genPawnMoves(side, &moves)
		case King:
			p.genStepMoves(side, King, &moves)
			p.genCastlingMoves(side, &moves)
		case Knight:
			p.genStepMoves(side, Knight, &moves)
		default:
			p.genSlideMoves(side, k, &moves)
		}
	}
	return moves
}

// LegalMoves filters PseudoLegalMoves down to moves that do not leave the mover's own
// king in check (§4.4), by hypothetical application: each candidate is played and
// undone on this Position.
func (p *Position) LegalMoves(side Color) []Move {
	saved := p.sideToMove
	p.sideToMove = side
	defer func() { p.sideToMove = saved }()

	candidates := p.PseudoLegalMoves(side)
	legal := make([]Move, 0, len(candidates))
	for _, m := range candidates {
		rec, ok := p.makeMoveRaw(m)
		if !ok {
			continue
		}
		if !p.Attacked(p.KingSquare(side), side.Opponent()) {
			legal = append(legal, m)
		}
		p.UnmakeMove(rec)
	}
	return legal
}

// CaptureMoves returns the subset of legal moves that are captures or en-passant
// captures, used by quiescence search (§4.8) to extend only "noisy" lines.
func (p *Position) CaptureMoves(side Color) []Move {
	all := p.LegalMoves(side)
	out := make([]Move, 0, len(all))
	for _, m := range all {
		if !p.IsEmpty(m.Target) || m.Target == p.enPassantTargetForCapture(side, m) {
			out = append(out, m)
		}
	}
	return out
}

// enPassantTargetForCapture returns the position's en-passant square if m is shaped
// like a pawn diagonal move into it, else NoSquare; a small helper for CaptureMoves.
func (p *Position) enPassantTargetForCapture(side Color, m Move) Square {
	target, ok := p.enPassantTarget.V()
	if !ok || m.Target != target {
		return NoSquare
	}
	_, k, ok := p.Square(m.Origin)
	if !ok || k != Pawn {
		return NoSquare
	}
	return target
}

func startRank(side Color) Rank {
	if side == White {
		return Rank2
	}
	return Rank7
}

func (p *Position) genPawnMoves(side Color, moves *[]Move) {
	occ := p.Occupancy()
	promoRank := backRank(side)

	bb := p.pieces[side][Pawn]
	for bb != 0 {
		var sq Square
		sq, bb = bb.PopLSB()

		pushBB := BitMask(sq).ShiftForward(side) &^ occ
		if pushBB != 0 {
			target := pushBB.LSB()
			addPawnMove(moves, sq, target, promoRank)

			if sq.Rank() == startRank(side) {
				doubleBB := pushBB.ShiftForward(side) &^ occ
				if doubleBB != 0 {
					*moves = append(*moves, Move{Origin: sq, Target: doubleBB.LSB()})
				}
			}
		}

		captures := PawnCaptureTargets(side, sq) & (p.occupancy[side.Opponent()] | epMask(p.enPassantTarget))
		for captures != 0 {
			var target Square
			target, captures = captures.PopLSB()
			addPawnMove(moves, sq, target, promoRank)
		}
	}
}

func epMask(ep lang.Optional[Square]) Bitboard {
	sq, ok := ep.V()
	if !ok {
		return EmptyBitboard
	}
	return BitMask(sq)
}

func addPawnMove(moves *[]Move, origin, target Square, promoRank Bitboard) {
	if promoRank.IsSet(target) {
		for _, promo := range PromotionPieces {
			*moves = append(*moves, Move{Origin: origin, Target: target, Promotion: promo})
		}
		return
	}
	*moves = append(*moves, Move{Origin: origin, Target: target})
}

func (p *Position) genStepMoves(side Color, k Piece, moves *[]Move) {
	bb := p.pieces[side][k]
	for bb != 0 {
		var sq Square
		sq, bb = bb.PopLSB()

		var targets Bitboard
		if k == King {
			targets = KingAttacks(sq)
		} else {
			targets = KnightAttacks(sq)
		}
		targets &^= p.occupancy[side]

		for targets != 0 {
			var target Square
			target, targets = targets.PopLSB()
			*moves = append(*moves, Move{Origin: sq, Target: target})
		}
	}
}

func (p *Position) genSlideMoves(side Color, k Piece, moves *[]Move) {
	occ := p.Occupancy()
	bb := p.pieces[side][k]
	for bb != 0 {
		var sq Square
		sq, bb = bb.PopLSB()

		targets := PieceAttacks(k, sq, occ) &^ p.occupancy[side]
		for targets != 0 {
			var target Square
			target, targets = targets.PopLSB()
			*moves = append(*moves, Move{Origin: sq, Target: target})
		}
	}
}

// genCastlingMoves appends the king-by-two-files castling candidates (§4.3): path
// squares must be empty, and the king's current, transit and destination squares must
// not be attacked.
func (p *Position) genCastlingMoves(side Color, moves *[]Move) {
	occ := p.Occupancy()
	opp := side.Opponent()
	king := p.KingSquare(side)

	type candidate struct {
		right         Castling
		path          []Square
		transit, dest Square
	}

	var candidates []candidate
	if side == White {
		candidates = []candidate{
			{WhiteKingSideCastle, []Square{F1, G1}, F1, G1},
			{WhiteQueenSideCastle, []Square{B1, C1, D1}, D1, C1},
		}
	} else {
		candidates = []candidate{
			{BlackKingSideCastle, []Square{F8, G8}, F8, G8},
			{BlackQueenSideCastle, []Square{B8, C8, D8}, D8, C8},
		}
	}

	for _, c := range candidates {
		if !p.castlingRights.IsAllowed(c.right) {
			continue
		}
		blocked := false
		for _, sq := range c.path {
			if occ.IsSet(sq) {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}
		if p.Attacked(king, opp) || p.Attacked(c.transit, opp) || p.Attacked(c.dest, opp) {
			continue
		}
		*moves = append(*moves, Move{Origin: king, Target: c.dest})
	}
}
