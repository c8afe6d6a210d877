package theme

import "image/color"

type DefaultTheme struct {
}

func (t *DefaultTheme) RatingColor(rating int) color.RGBA {
	for _, b := range ratingBands {
		if rating < b.below {
			return b.color
		}
	}
	return topColor
}

type band struct {
	below int
	color color.RGBA
}

var (
	// ratings are banded in tens, hardest last
	ratingBands = [...]band{
		{10, color.RGBA{106, 106, 106, 255}}, // grey
		{20, color.RGBA{0, 236, 128, 255}},   // green
		{30, color.RGBA{173, 236, 236, 255}}, // light blue
		{40, color.RGBA{0, 118, 236, 255}},   // blue
		{50, color.RGBA{110, 147, 89, 255}},  // olive
		{60, color.RGBA{236, 195, 0, 255}},   // yellow
		{70, color.RGBA{236, 128, 0, 255}},   // orange
		{80, color.RGBA{236, 0, 106, 255}},   // pink
		{90, color.RGBA{236, 30, 0, 255}},    // red
	}
	topColor = color.RGBA{106, 0, 236, 255} // purple
)
