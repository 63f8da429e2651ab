package pipeline

import (
	"basket-reconciler/internal/config"
	"basket-reconciler/internal/dataset"
	"basket-reconciler/internal/drawing"
	"basket-reconciler/internal/match"
)

func text(layer, content string, x, y float64) drawing.Entity {
	return drawing.Entity{Kind: drawing.KindText, Layer: layer, Content: content, Location: drawing.Coord{X: x, Y: y}}
}

func wall(content string, minX, minY, maxX, maxY float64) drawing.Entity {
	box := &drawing.Box{
		Min: drawing.Coord{X: minX, Y: minY},
		Max: drawing.Coord{X: maxX, Y: maxY, Z: 1},
	}

	return drawing.Entity{
		Kind:     drawing.KindMText,
		Layer:    config.DefaultWallsLayer,
		Content:  content,
		Location: drawing.Coord{X: (minX + maxX) / 2, Y: (minY + maxY) / 2, Z: 0.5},
		Box:      box,
	}
}

func snapshot(entities ...drawing.Entity) *drawing.Snapshot {
	return &drawing.Snapshot{Entities: entities}
}

func table(rows ...match.Row) *dataset.Table {
	return &dataset.Table{Source: "test", Rows: rows}
}

func textsOf(entities []drawing.Entity) []string {
	out := make([]string, 0, len(entities))
	for _, e := range entities {
		out = append(out, e.Text())
	}

	return out
}
