package entity

// DriverPriority is the placement advantage a participant has on a trip.
type DriverPriority int

const (
	DriverPriorityNone DriverPriority = iota
	DriverPriorityBonus
)

func (d DriverPriority) String() string {
	if d == DriverPriorityBonus {
		return "driver-bonus"
	}
	return "none"
}
