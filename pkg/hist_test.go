package explorer

import (
	"testing"
)

func sumCounts(g *HistGrid) float64 {
	cols, rows := g.Dims()
	total := 0.0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			total += g.Z(c, r)
		}
	}
	return total
}

func TestHistGridCounts(t *testing.T) {
	xs := []float64{0, 0, 10, 10, 10}
	ys := []float64{0, 0, 0, 10, 10}
	g := NewHistGrid(xs, ys, 2, 2)

	cols, rows := g.Dims()
	if cols != 2 || rows != 2 {
		t.Fatalf("wrong dims: %d x %d", cols, rows)
	}
	if total := sumCounts(g); total != 5 {
		t.Fatalf("counts do not sum to sample count: %v", total)
	}
	if g.Z(0, 0) != 2 {
		t.Fatalf("low-x/low-y bin: got %v want 2", g.Z(0, 0))
	}
	if g.Z(1, 0) != 1 {
		t.Fatalf("high-x/low-y bin: got %v want 1", g.Z(1, 0))
	}
	if g.Z(1, 1) != 2 {
		t.Fatalf("high-x/high-y bin: got %v want 2", g.Z(1, 1))
	}
	if g.MaxCount() != 2 {
		t.Fatalf("max count: got %v want 2", g.MaxCount())
	}
}

func TestHistGridUpperEdgeLandsInLastBin(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4}
	g := NewHistGrid(xs, xs, 4, 4)
	// samples 3 and 4 both land in the last bin: [3,4] is closed at the top
	if g.Z(3, 3) != 2 {
		t.Fatalf("maximum sample fell out of the last bin: %v", g.Z(3, 3))
	}
	if total := sumCounts(g); total != 5 {
		t.Fatalf("counts do not sum to sample count: %v", total)
	}
}

func TestHistGridBinCenters(t *testing.T) {
	xs := []float64{0, 4}
	g := NewHistGrid(xs, xs, 4, 2)
	if got := g.X(0); got != 0.5 {
		t.Fatalf("X(0): got %v want 0.5", got)
	}
	if got := g.X(3); got != 3.5 {
		t.Fatalf("X(3): got %v want 3.5", got)
	}
	if got := g.Y(1); got != 3 {
		t.Fatalf("Y(1): got %v want 3", got)
	}
}

func TestHistGridDegenerateInputs(t *testing.T) {
	// No samples
	g := NewHistGrid(nil, nil, 8, 8)
	if total := sumCounts(g); total != 0 {
		t.Fatalf("empty grid has counts: %v", total)
	}

	// All samples identical
	xs := []float64{3, 3, 3}
	g = NewHistGrid(xs, xs, 8, 8)
	if total := sumCounts(g); total != 3 {
		t.Fatalf("constant samples lost: %v", total)
	}
}
