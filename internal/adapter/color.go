package adapter

import (
	"github.com/cespare/xxhash/v2"
	"github.com/lucasb-eyer/go-colorful"

	m "github.com/mouse-blink/tracecity/internal/model"
)

// NewHashColorFunc returns a ColorFunc that hashes category and key into a
// bright HSV color. Collisions are tolerated.
func NewHashColorFunc() ColorFunc {
	return func(category, key string) m.RGB {
		h := xxhash.Sum64String(category + "\x00" + key)

		hue := float64(h % 360)
		sat := 0.55 + float64((h>>16)%30)/100
		val := 0.75 + float64((h>>32)%20)/100

		r, g, b := colorful.Hsv(hue, sat, val).Clamped().RGB255()

		return m.RGB{R: r, G: g, B: b}
	}
}
