package breakout

import "errors"

var (
	// ErrInvalidGrid is returned when a layout is requested for fewer than one row or column.
	ErrInvalidGrid = errors.New("breakout: grid needs at least one row and one column")

	// ErrFieldTooSmall is returned when the field cannot hold the grid with minimum padding.
	ErrFieldTooSmall = errors.New("breakout: field too small for grid")

	// ErrLevelOutOfRange is returned for a level number outside the catalog.
	ErrLevelOutOfRange = errors.New("breakout: level out of range")

	// ErrInvalidLevel is returned when a custom level mask cannot be compiled.
	ErrInvalidLevel = errors.New("breakout: invalid level definition")
)
