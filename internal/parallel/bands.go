package parallel

import "image"

// Bands splits r into at most n horizontal bands of whole rows, each at
// least minRows tall except when r itself is shorter. The bands cover r
// exactly and do not overlap.
func Bands(r image.Rectangle, n, minRows int) []image.Rectangle {
	h := r.Dy()
	if r.Empty() {
		return nil
	}
	minRows = max(minRows, 1)
	n = max(min(n, h/minRows), 1)

	bands := make([]image.Rectangle, 0, n)
	y := r.Min.Y
	for i := range n {
		// Spread the remainder over the first bands.
		rows := h / n
		if i < h%n {
			rows++
		}
		bands = append(bands, image.Rect(r.Min.X, y, r.Max.X, y+rows))
		y += rows
	}
	return bands
}
