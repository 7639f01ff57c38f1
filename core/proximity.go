package core

// Proximity thresholds
const (
	DangerDistance  = 15  // cm, anything closer is Danger
	CautionDistance = 45  // cm, inclusive upper bound of the Caution band
	SpeedThreshold  = 100 // cm/s, anything faster is Danger
)

// State is the proximity indication for one sample
type State uint8

const (
	StateDanger State = iota
	StateCaution
	StateSafe
)

func (s State) String() string {
	switch s {
	case StateDanger:
		return "DANGER"
	case StateCaution:
		return "CAUTION"
	case StateSafe:
		return "SAFE"
	default:
		return "UNKNOWN"
	}
}

// Classify maps a distance and speed to a State.
// The Danger test runs first, so a fast object reports Danger at any range.
func Classify(distance, speed uint32) State {
	if distance < DangerDistance || speed > SpeedThreshold {
		return StateDanger
	}
	if distance <= CautionDistance {
		return StateCaution
	}
	return StateSafe
}
