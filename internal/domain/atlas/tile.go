package atlas

import (
	"fmt"
	"math/bits"
	"sort"

	"chunkatlas/internal/domain/grid"
)

const (
	// MaxZoom is the pyramid level chunk captures land on.
	MaxZoom = 20
	// NumParts splits each captured tile into NumParts x NumParts viewer
	// tiles.
	NumParts = 2
	// SubUnitsPerChunk maps chunk coordinates to world sub-units; tag
	// positions are expressed in sub-units.
	SubUnitsPerChunk = 32
	// TileExtension is the encoded viewer tile format.
	TileExtension = "jpg"
)

// Tile addresses one pyramid node of a surface. At MaxZoom a tile covers
// exactly one chunk; each level up covers a 2x2 block of the level below.
type Tile struct {
	Surface string
	Zoom    int
	X, Y    int
}

// ZoomOut returns the tile containing this tile one level up.
func (t Tile) ZoomOut() Tile {
	return Tile{Surface: t.Surface, Zoom: t.Zoom - 1, X: floorDiv(t.X, 2), Y: floorDiv(t.Y, 2)}
}

// ZoomIn returns the child tile with the smallest coordinates.
func (t Tile) ZoomIn() Tile {
	return Tile{Surface: t.Surface, Zoom: t.Zoom + 1, X: t.X * 2, Y: t.Y * 2}
}

// Translate returns the tile offset by (x, y) on the same level.
func (t Tile) Translate(x, y int) Tile {
	return Tile{Surface: t.Surface, Zoom: t.Zoom, X: t.X + x, Y: t.Y + y}
}

// Children returns the four tiles one level down.
func (t Tile) Children() [4]Tile {
	origin := t.ZoomIn()
	return [4]Tile{
		origin,
		origin.Translate(1, 0),
		origin.Translate(0, 1),
		origin.Translate(1, 1),
	}
}

// PartComponents returns the (zoom, x, y) path components of the viewer
// tiles this tile splits into.
func (t Tile) PartComponents() [][3]int {
	parts := make([][3]int, 0, NumParts*NumParts)
	for px := 0; px < NumParts; px++ {
		for py := 0; py < NumParts; py++ {
			parts = append(parts, [3]int{t.Zoom, t.X*NumParts + px, t.Y*NumParts + py})
		}
	}
	return parts
}

// PartPaths returns the artifact keys of this tile's viewer tiles.
func (t Tile) PartPaths() []string {
	components := t.PartComponents()
	paths := make([]string, 0, len(components))
	for _, c := range components {
		paths = append(paths, fmt.Sprintf("tiles/%s/%d/%d/%d.%s", t.Surface, c[0], c[1], c[2], TileExtension))
	}
	return paths
}

// ChunkImageKey is the artifact key an external renderer stores its capture
// of one chunk under.
func ChunkImageKey(surface string, c grid.Coord) string {
	return fmt.Sprintf("chunks/%s/%d,%d.png", surface, c.X, c.Y)
}

// DescriptorKey is the artifact key of the exported viewer descriptor.
const DescriptorKey = "map-info.json"

// MinZoom computes the shallowest pyramid level whose root tile still covers
// the chunk bounds, so the viewer starts zoomed to fit.
func MinZoom(chunks []grid.Coord) int {
	if len(chunks) == 0 {
		return MaxZoom
	}
	minX, maxX := chunks[0].X, chunks[0].X
	minY, maxY := chunks[0].Y, chunks[0].Y
	for _, c := range chunks {
		minX = min(minX, c.X)
		maxX = max(maxX, c.X)
		minY = min(minY, c.Y)
		maxY = max(maxY, c.Y)
	}
	extent := max(max(1-minX, 1-minY), max(maxX, maxY))
	if extent < 1 {
		extent = 1
	}
	return MaxZoom - ilog2(extent) - 6
}

// Pyramid lists every tile needed to cover the chunks from MaxZoom up to the
// surface's MinZoom (exclusive), deduplicated and sorted by (zoom, y, x).
func Pyramid(surface string, chunks []grid.Coord) []Tile {
	mz := MinZoom(chunks)
	seen := make(map[Tile]struct{})
	for _, c := range chunks {
		t := Tile{Surface: surface, Zoom: MaxZoom, X: c.X, Y: c.Y}
		for t.Zoom > mz {
			if _, ok := seen[t]; ok {
				break
			}
			seen[t] = struct{}{}
			t = t.ZoomOut()
		}
	}
	tiles := make([]Tile, 0, len(seen))
	for t := range seen {
		tiles = append(tiles, t)
	}
	sort.Slice(tiles, func(i, j int) bool {
		a, b := tiles[i], tiles[j]
		if a.Zoom != b.Zoom {
			return a.Zoom < b.Zoom
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return tiles
}

func floorDiv(a, b int) int {
	if a >= 0 {
		return a / b
	}
	return -(((-a) + b - 1) / b)
}

func ilog2(v int) int {
	return bits.Len(uint(v)) - 1
}
