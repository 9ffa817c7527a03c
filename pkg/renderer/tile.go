package renderer

import "image"

// Tile is a rectangular block of pixels rendered by a single worker
type Tile struct {
	ID     int             // Unique tile identifier, row-major over the grid
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
}

// NewTileGrid creates a grid of tiles covering the entire image. Tiles larger
// than the image are clamped to its longer side.
func NewTileGrid(width, height, tileSize int) []*Tile {
	var tiles []*Tile
	tileID := 0
	tileSize = min(tileSize, max(width, height))

	// Calculate number of tiles in each dimension
	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, &Tile{ID: tileID, Bounds: image.Rect(x0, y0, x1, y1)})
			tileID++
		}
	}

	return tiles
}

// AssignTiles deals tiles round-robin: tile i goes to worker i mod numWorkers
func AssignTiles(tiles []*Tile, numWorkers int) [][]*Tile {
	assignments := make([][]*Tile, numWorkers)
	for i, tile := range tiles {
		w := i % numWorkers
		assignments[w] = append(assignments[w], tile)
	}
	return assignments
}
