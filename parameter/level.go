package parameter

// Default Arena
const (
	// ArenaHalfExtent is half the side length of the arena floor
	ArenaHalfExtent = 25.0

	// ArenaFloorThickness is the depth of floor slabs below y=0
	ArenaFloorThickness = 1.0

	// ArenaWallHeight is the perimeter wall height
	ArenaWallHeight = 4.0

	// ArenaGapWidth is the width of the trench crossing the floor
	ArenaGapWidth = 2.0
)
