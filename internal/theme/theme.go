package theme

import "image/color"

type Theme interface {
	// RatingColor is the colour a rating is printed in.
	RatingColor(rating int) color.RGBA
}
