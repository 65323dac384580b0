package board

// Piece represents a chess piece (King, Pawn, etc) with no color. 3 bits.
type Piece uint8

const (
	NoPiece Piece = iota
	Pawn
	Bishop
	Knight
	Rook
	Queen
	King
)

const (
	ZeroPiece Piece = Pawn
	NumPieces Piece = King + 1
)

// Value returns the fixed material value of the piece in centipawns.
func (p Piece) Value() int {
	switch p {
	case Pawn:
		return 100
	case Bishop:
		return 330
	case Knight:
		return 320
	case Rook:
		return 500
	case Queen:
		return 900
	case King:
		return 10000
	default:
		return 0
	}
}

// PromotionPieces lists the pieces a pawn may promote to, Queen first so that move
// ordering naturally prefers the strongest promotion when scanning generated moves.
var PromotionPieces = [4]Piece{Queen, Rook, Bishop, Knight}

func ParsePiece(r rune) (Piece, bool) {
	switch r {
	case 'p', 'P':
		return Pawn, true
	case 'b', 'B':
		return Bishop, true
	case 'n', 'N':
		return Knight, true
	case 'r', 'R':
		return Rook, true
	case 'q', 'Q':
		return Queen, true
	case 'k', 'K':
		return King, true
	default:
		return NoPiece, false
	}
}

func (p Piece) IsValid() bool {
	return Pawn <= p && p <= King
}

func (p Piece) String() string {
	switch p {
	case NoPiece:
		return " "
	case Pawn:
		return "p"
	case Bishop:
		return "b"
	case Knight:
		return "n"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return "?"
	}
}
