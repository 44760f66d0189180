// Package stroke turns one brush segment into pixel coverage.
//
// A segment is expanded into a closed "capsule" outline: two offset lines at
// +width/2 and -width/2 around the segment, joined by semicircular round caps
// at both ends. Because every segment of a freehand stroke carries its own
// round caps, consecutive segments that share an endpoint overlap in a full
// disc there, which is exactly a round join.
//
// The outline is rasterized with golang.org/x/image/vector into an alpha
// mask that only spans the segment's bounding box, so a short drag on a large
// canvas touches only a handful of pixels.
//
// # Usage
//
//	path := stroke.Capsule(stroke.Point{X: 10.5, Y: 10.5}, stroke.Point{X: 20.5, Y: 10.5}, 5)
//	mask, origin := stroke.Coverage(path, clip)
//	// mask.AlphaAt(x, y) is the coverage of pixel origin+(x, y)
package stroke
