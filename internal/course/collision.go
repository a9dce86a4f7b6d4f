package course

// Detect tests the craft's bounding sphere against each obstacle in order
// and returns the first one it touches. Testing stops at the first hit.
// An empty obstacle list is the normal no-hit case.
func Detect(craft Craft, obstacles []Obstacle) (Obstacle, bool) {
	sphere := craft.Sphere()
	for _, o := range obstacles {
		if sphere.Intersects(o.Sphere()) {
			return o, true
		}
	}
	return Obstacle{}, false
}
