package renderer

import "image"

// DefaultTileSize is the edge length of a square render tile in pixels
const DefaultTileSize = 32

// Tile is a rectangular region of the image rendered by one task
type Tile struct {
	ID     int
	Bounds image.Rectangle
}

// NewTile creates a new tile with the given bounds
func NewTile(id int, bounds image.Rectangle) *Tile {
	return &Tile{ID: id, Bounds: bounds}
}

// NewTileGrid splits a width x height image into tiles of at most
// tileSize x tileSize, in row-major order. Edge tiles are clipped.
func NewTileGrid(width, height, tileSize int) []*Tile {
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}

	tilesX := (width + tileSize - 1) / tileSize
	tilesY := (height + tileSize - 1) / tileSize

	tiles := make([]*Tile, 0, tilesX*tilesY)
	id := 0
	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			x0 := tx * tileSize
			y0 := ty * tileSize
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, NewTile(id, image.Rect(x0, y0, x1, y1)))
			id++
		}
	}
	return tiles
}
