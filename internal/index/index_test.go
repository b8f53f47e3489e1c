package index

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mapgrid/nds/internal/nds"
	"github.com/mapgrid/nds/internal/wgs84"
)

// levelOneTiles returns all eight level-1 tiles, one per quadrant pair.
func levelOneTiles(t *testing.T) []nds.Tile {
	t.Helper()
	tiles := make([]nds.Tile, 0, 8)
	for number := int64(0); number < 8; number++ {
		tile, err := nds.NewTile(1, number)
		if err != nil {
			t.Fatalf("NewTile(1, %d) error: %v", number, err)
		}
		tiles = append(tiles, tile)
	}
	return tiles
}

func numbers(tiles []nds.Tile) map[int64]bool {
	set := make(map[int64]bool, len(tiles))
	for _, t := range tiles {
		set[t.Number] = true
	}
	return set
}

func TestIndexSize(t *testing.T) {
	ix := New(levelOneTiles(t)...)
	if got := ix.Size(); got != 8 {
		t.Errorf("Size() = %d, want 8", got)
	}

	extra, err := nds.NewTile(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	ix.Add(extra)
	if got := ix.Size(); got != 9 {
		t.Errorf("Size() after Add = %d, want 9", got)
	}
}

func TestSearchRect(t *testing.T) {
	ix := New(levelOneTiles(t)...)

	// A box strictly inside the northern east hemisphere touches only the
	// two north-east quadrant tiles.
	got := numbers(ix.SearchRect(wgs84.BBox{North: 89, East: 179, South: 1, West: 1}))
	if len(got) != 2 || !got[0] || !got[1] {
		t.Errorf("SearchRect matched tiles %v, want {0, 1}", got)
	}

	// A box spanning the equator and the prime meridian touches all four
	// tiles around the origin.
	got = numbers(ix.SearchRect(wgs84.BBox{North: 1, East: 1, South: -1, West: -1}))
	want := []int64{0, 2, 5, 7}
	if len(got) != len(want) {
		t.Fatalf("SearchRect matched tiles %v, want %v", got, want)
	}
	for _, n := range want {
		if !got[n] {
			t.Errorf("SearchRect matched tiles %v, want %v", got, want)
		}
	}
}

func TestAt(t *testing.T) {
	ix := New(levelOneTiles(t)...)

	c, err := wgs84.NewCoordinate(90.5, 45)
	if err != nil {
		t.Fatal(err)
	}
	got := numbers(ix.At(c))
	if len(got) != 1 || !got[1] {
		t.Errorf("At(%s) matched tiles %v, want {1}", c, got)
	}

	c, err = wgs84.NewCoordinate(-90.5, -45)
	if err != nil {
		t.Fatal(err)
	}
	got = numbers(ix.At(c))
	if len(got) != 1 || !got[6] {
		t.Errorf("At(%s) matched tiles %v, want {6}", c, got)
	}
}

func TestLoadTileList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiles.yaml")
	content := "tiles:\n  - 262154\n  - 539636700\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	tiles, err := LoadTileList(path)
	if err != nil {
		t.Fatalf("LoadTileList error: %v", err)
	}
	if len(tiles) != 2 {
		t.Fatalf("loaded %d tiles, want 2", len(tiles))
	}
	if tiles[0].Level != 2 || tiles[0].Number != 10 {
		t.Errorf("first tile = %s, want level 2 number 10", tiles[0])
	}
	if tiles[1].Level != 13 || tiles[1].Number != 2765788 {
		t.Errorf("second tile = %s, want level 13 number 2765788", tiles[1])
	}
}

func TestLoadTileListErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadTileList(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tiles.yaml")
		if err := os.WriteFile(path, []byte("tiles: [oops"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadTileList(path); err == nil {
			t.Error("expected error for malformed yaml")
		}
	})

	t.Run("malformed tile id", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tiles.yaml")
		if err := os.WriteFile(path, []byte("tiles:\n  - 1\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := LoadTileList(path)
		if !errors.Is(err, nds.ErrMalformedID) {
			t.Errorf("error = %v, want ErrMalformedID", err)
		}
	})
}
