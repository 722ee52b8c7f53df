package render

// MinAlpha is the opacity floor of faded edges.
const MinAlpha = 0.3

// Alpha returns the opacity of an edge whose target is distance hops from
// the start, in a trace whose deepest node is maxDistance hops away.
// Opacity falls linearly from 1 at the start to [MinAlpha]. A maxDistance of
// zero or less is treated as 1.
func Alpha(distance, maxDistance int) float64 {
	return FadeAlpha(distance, maxDistance, MinAlpha)
}

// FadeAlpha is [Alpha] with a custom floor.
func FadeAlpha(distance, maxDistance int, floor float64) float64 {
	if maxDistance <= 0 {
		maxDistance = 1
	}
	a := 1 - float64(distance)/float64(maxDistance)
	return min(1, max(floor, a))
}
