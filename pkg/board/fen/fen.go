// Package fen reads and writes chess positions in Forsyth-Edwards Notation.
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/SrGaabriel/caissa/pkg/board"
)

// Initial is the FEN of the standard starting position.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses a six-field FEN record into a Position plus three separate results: the
// side to move (also stored on the Position), the halfmove clock (parsed and validated
// but otherwise unused -- see the core's Open Question on the fifty-move rule) and the
// fullmove number (round-tripped only).
func Decode(s string) (*board.Position, board.Color, int, int, error) {
	parts := strings.Fields(strings.TrimSpace(s))
	if len(parts) != 6 {
		return nil, 0, 0, 0, fmt.Errorf("%w: expected 6 fields, got %d: %q", board.ErrMalformedFEN, len(parts), s)
	}

	placements, err := decodePlacement(parts[0])
	if err != nil {
		return nil, 0, 0, 0, fmt.Errorf("%w: %v: %q", board.ErrMalformedFEN, err, s)
	}

	active, ok := parseColor(parts[1])
	if !ok {
		return nil, 0, 0, 0, fmt.Errorf("%w: invalid active color: %q", board.ErrMalformedFEN, s)
	}

	castling, ok := parseCastling(parts[2])
	if !ok {
		return nil, 0, 0, 0, fmt.Errorf("%w: invalid castling rights: %q", board.ErrMalformedFEN, s)
	}

	ep := board.NoSquare
	if parts[3] != "-" {
		sq, err := board.ParseSquareStr(parts[3])
		if err != nil {
			return nil, 0, 0, 0, fmt.Errorf("%w: invalid en-passant target: %q", board.ErrMalformedFEN, s)
		}
		ep = sq
	}

	halfmove, err := strconv.Atoi(parts[4])
	if err != nil || halfmove < 0 {
		return nil, 0, 0, 0, fmt.Errorf("%w: invalid halfmove clock: %q", board.ErrMalformedFEN, s)
	}

	fullmove, err := strconv.Atoi(parts[5])
	if err != nil || fullmove < 1 {
		return nil, 0, 0, 0, fmt.Errorf("%w: invalid fullmove number: %q", board.ErrMalformedFEN, s)
	}

	pos, err := board.NewPosition(placements, castling, ep, active)
	if err != nil {
		return nil, 0, 0, 0, fmt.Errorf("%w: %v: %q", board.ErrMalformedFEN, err, s)
	}
	return pos, active, halfmove, fullmove, nil
}

// decodePlacement parses the first FEN field, rank 8 down to rank 1, file a to file h.
func decodePlacement(field string) ([]board.Placement, error) {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("expected 8 ranks, got %d", len(ranks))
	}

	var placements []board.Placement
	for i, row := range ranks {
		rank := board.Rank(7 - i)
		file := board.ZeroFile

		for _, r := range row {
			switch {
			case unicode.IsDigit(r):
				file += board.File(r - '0')
			case unicode.IsLetter(r):
				color, piece, ok := parsePiece(r)
				if !ok {
					return nil, fmt.Errorf("invalid piece %q", r)
				}
				if !file.IsValid() {
					return nil, fmt.Errorf("rank %v overflows", rank)
				}
				placements = append(placements, board.Placement{
					Square: board.NewSquare(file, rank),
					Color:  color,
					Piece:  piece,
				})
				file++
			default:
				return nil, fmt.Errorf("invalid character %q", r)
			}
		}
		if file != board.NumFiles {
			return nil, fmt.Errorf("rank %v has wrong length", rank)
		}
	}
	return placements, nil
}

// Encode renders a Position and its external fields back into a FEN record.
func Encode(pos *board.Position, active board.Color, halfmove, fullmove int) string {
	var sb strings.Builder
	for r := int(board.NumRanks) - 1; r >= 0; r-- {
		blanks := 0
		for f := board.ZeroFile; f < board.NumFiles; f++ {
			color, piece, ok := pos.Square(board.NewSquare(f, board.Rank(r)))
			if !ok {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteRune(printPiece(color, piece))
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if r > 0 {
			sb.WriteRune('/')
		}
	}

	ep := "-"
	if sq, ok := pos.EnPassant(); ok {
		ep = sq.String()
	}

	return fmt.Sprintf("%s %s %s %s %d %d", sb.String(), printColor(active), pos.CastlingRights(), ep, halfmove, fullmove)
}

func parseCastling(s string) (board.Castling, bool) {
	var c board.Castling
	if s == "-" {
		return c, true
	}
	for _, r := range s {
		switch r {
		case 'K':
			c |= board.WhiteKingSideCastle
		case 'Q':
			c |= board.WhiteQueenSideCastle
		case 'k':
			c |= board.BlackKingSideCastle
		case 'q':
			c |= board.BlackQueenSideCastle
		default:
			return 0, false
		}
	}
	return c, true
}

func parseColor(s string) (board.Color, bool) {
	switch s {
	case "w":
		return board.White, true
	case "b":
		return board.Black, true
	default:
		return 0, false
	}
}

func printColor(c board.Color) string {
	if c == board.White {
		return "w"
	}
	return "b"
}

func parsePiece(r rune) (board.Color, board.Piece, bool) {
	p, ok := board.ParsePiece(r)
	if !ok {
		return 0, 0, false
	}
	if unicode.IsUpper(r) {
		return board.White, p, true
	}
	return board.Black, p, true
}

func printPiece(c board.Color, p board.Piece) rune {
	r := []rune(p.String())[0]
	if c == board.White {
		return unicode.ToUpper(r)
	}
	return r
}
