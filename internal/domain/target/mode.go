package target

// Mode is the optimization direction of a target.
type Mode string

// Target mode constants.
const (
	// Max means the target is to be maximized.
	Max Mode = "MAX"
	// Min means the target is to be minimized.
	Min Mode = "MIN"
	// Match means the target should be close to the center of its bounds.
	Match Mode = "MATCH"
)

// IsValid checks if the mode is one of the supported values.
func (m Mode) IsValid() bool {
	return m == Max || m == Min || m == Match
}
