package layout

import "errors"

var (
	// ErrAssetUnavailable is returned when a font asset is missing or cannot be parsed.
	ErrAssetUnavailable = errors.New("font asset unavailable")

	// ErrUnpaginatableBlock is returned when a single block is taller than one usable page.
	ErrUnpaginatableBlock = errors.New("block does not fit on a single page")

	// ErrInvalidColumnLayout is returned when the table columns do not span the content width.
	ErrInvalidColumnLayout = errors.New("column widths do not match content width")
)
