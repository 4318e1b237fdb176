package parameter

// World Physics
const (
	// Gravity is the downward acceleration applied to airborne bodies, units/s²
	Gravity = 30.0

	// DampingRate is the exponential velocity decay rate on ground, 1/s
	// Per-substep factor is exp(-DampingRate*dt) - 1, added to velocity
	DampingRate = 4.0

	// AirDampingFactor scales the damping term while airborne
	AirDampingFactor = 0.1
)

// Obstacle Probe
const (
	// ProbeStep is the sample spacing used when sweeping a probe sphere along a direction
	ProbeStep = 0.25

	// ProbeRadius is the probe sphere radius used for evasive path clearance
	ProbeRadius = 0.3

	// ProbeLift raises the probe above the body center so resting floor contact is ignored
	ProbeLift = 0.35
)

// Contact
const (
	// ContactSkin is the penetration left after push-out so resting contact persists across substeps
	// Without it a body pushed exactly to the surface reports no contact on the next substep and grounded flickers
	ContactSkin = 1e-4
)
