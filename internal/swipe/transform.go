package swipe

import "github.com/akyairhashvil/conciergerie/internal/config"

// Transform is the visual displacement of a card.
type Transform struct {
	TranslateX float64
	TranslateY float64
	RotateDeg  float64
}

func (t Transform) Identity() bool {
	return t == Transform{}
}

// TransformFor follows the live offset during a drag and snaps back to the
// identity once the card is at rest.
func TransformFor(f Frame) Transform {
	if !f.Active {
		return Transform{}
	}
	return Transform{
		TranslateX: f.Offset.DX,
		TranslateY: f.Offset.DY,
		RotateDeg:  f.Offset.DX * config.RotationPerPx,
	}
}

// Cells converts the translation to whole terminal cells.
func (t Transform) Cells() (cols, rows int) {
	return int(t.TranslateX / config.CellWidthPx), int(t.TranslateY / config.CellHeightPx)
}
