package world

import "testing"

func TestCellHashKnownValues(t *testing.T) {
	tests := []struct {
		x, y int
		want int
		kind TileKind
	}{
		{0, 0, 0, TileTallGrass},
		{1, 0, 7, TileGrass},
		{0, 1, 13, TileGrass},
		{2, 1, 10, TileGrass},
		{5, 2, 10, TileGrass},
		{4, 3, 16, TileGrass},
		{2, 2, 6, TileGrass},
		{3, 4, 5, TileGrass},
		{7, 0, 15, TileGrass},
		{1, 2, 16, TileGrass},
		{3, 0, 4, TileGrass},
		{5, 0, 1, TileTallGrass},
		{4, 2, 3, TileDarkGrass},
	}
	for _, tt := range tests {
		if got := CellHash(tt.x, tt.y); got != tt.want {
			t.Errorf("CellHash(%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
		if got := baseTerrain(tt.x, tt.y); got != tt.kind {
			t.Errorf("baseTerrain(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.kind)
		}
	}
}

func TestHashRanges(t *testing.T) {
	for y := 0; y < DefaultHeight; y++ {
		for x := 0; x < DefaultWidth; x++ {
			if h := CellHash(x, y); h < 0 || h >= 17 {
				t.Fatalf("CellHash(%d,%d) = %d out of range", x, y, h)
			}
			if h := ScatterHash(x, y); h < 0 || h >= 100 {
				t.Fatalf("ScatterHash(%d,%d) = %d out of range", x, y, h)
			}
		}
	}
}

func TestScatterHashDeterministic(t *testing.T) {
	if ScatterHash(0, 0) != 0 {
		t.Errorf("ScatterHash(0,0) = %d, want 0", ScatterHash(0, 0))
	}
	if ScatterHash(1, 0) != 73 {
		t.Errorf("ScatterHash(1,0) = %d, want 73", ScatterHash(1, 0))
	}
	if ScatterHash(0, 1) != 31 {
		t.Errorf("ScatterHash(0,1) = %d, want 31", ScatterHash(0, 1))
	}
	for i := 0; i < 3; i++ {
		if ScatterHash(37, 12) != ScatterHash(37, 12) {
			t.Fatal("ScatterHash must be a pure function")
		}
	}
}
