package component

import (
	"image/color"

	"github.com/jakecoffman/cp"
)

// Telegraph is the drawn warning for an upcoming charge.
type Telegraph struct {
	Origin    cp.Vector
	Direction cp.Vector
	Alpha     float64
	Length    float64
	Width     float64
	Color     color.Color
}

var TelegraphComponent = NewComponent[Telegraph]()
