package search

import (
	"container/heap"

	"github.com/SrGaabriel/caissa/pkg/board"
	"github.com/SrGaabriel/caissa/pkg/eval"
)

// priority is the move ordering score: higher is searched first.
type priority int32

// order returns moves sorted best-first for alpha-beta: the transposition table's
// remembered best move (if any) goes first, then MVV-LVA over the rest (§4.8).
func order(pos *board.Position, moves []board.Move, ttMove board.Move) []board.Move {
	h := make(moveHeap, len(moves))
	for i, m := range moves {
		h[i] = elm{m: m, val: movePriority(pos, m, ttMove)}
	}
	heap.Init(&h)

	out := make([]board.Move, 0, len(moves))
	for h.Len() > 0 {
		out = append(out, heap.Pop(&h).(elm).m)
	}
	return out
}

func movePriority(pos *board.Position, m, ttMove board.Move) priority {
	if m.Equals(ttMove) {
		return priority(1 << 20)
	}
	if gain := eval.CaptureGain(pos, m); gain > 0 {
		return priority(100*gain) - priority(attackerValue(pos, m))
	}
	return 0
}

func attackerValue(pos *board.Position, m board.Move) int {
	if _, k, ok := pos.Square(m.Origin); ok {
		return k.Value()
	}
	return 0
}

type elm struct {
	m   board.Move
	val priority
}

type moveHeap []elm

func (h moveHeap) Len() int            { return len(h) }
func (h moveHeap) Less(i, j int) bool  { return h[i].val > h[j].val }
func (h moveHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *moveHeap) Push(x interface{}) { *h = append(*h, x.(elm)) }
func (h *moveHeap) Pop() interface{} {
	old := *h
	n := len(old)
	out := old[n-1]
	*h = old[:n-1]
	return out
}
