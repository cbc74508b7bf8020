// Package driver decides when a participant's ability to drive earns them a
// placement advantage on a trip.
package driver

import "github.com/outingclub/trip-lottery/internal/entity"

// Load summarizes the transport situation of a trip roster.
type Load struct {
	// SeatsReserved is the number of passenger seats drivers on the roster bring.
	SeatsReserved int
	// Riders is the number of occupants who need somebody else's car.
	Riders int
	// Drivers is the number of occupants who can take passengers.
	Drivers int
}

// LoadOf computes the load of a roster as it stands now.
func LoadOf(roster []entity.Participant) Load {
	var l Load
	for i := range roster {
		p := &roster[i]
		switch {
		case p.IsDriver():
			l.Drivers++
			l.SeatsReserved += p.SeatsOffered()
		case p.NeedsRide():
			l.Riders++
		}
	}
	return l
}

// Constrained reports whether the roster lacks seats to carry its riders.
func (l Load) Constrained() bool {
	return l.SeatsReserved < l.Riders
}

// Shortfall is the number of riders without a seat.
func (l Load) Shortfall() int {
	if !l.Constrained() {
		return 0
	}
	return l.Riders - l.SeatsReserved
}

// With returns the load after p joins the roster.
func (l Load) With(p entity.Participant) Load {
	return LoadOf([]entity.Participant{p}).add(l)
}

// Without returns the load after p leaves the roster.
func (l Load) Without(p entity.Participant) Load {
	d := LoadOf([]entity.Participant{p})
	return Load{
		SeatsReserved: l.SeatsReserved - d.SeatsReserved,
		Riders:        l.Riders - d.Riders,
		Drivers:       l.Drivers - d.Drivers,
	}
}

func (l Load) add(o Load) Load {
	return Load{
		SeatsReserved: l.SeatsReserved + o.SeatsReserved,
		Riders:        l.Riders + o.Riders,
		Drivers:       l.Drivers + o.Drivers,
	}
}

// PriorityFor returns the driver bonus a participant carries on a trip with the
// given load. Only drivers qualify, and only while the trip is short of seats,
// so drivers stop being favoured once enough of them are on the roster.
func PriorityFor(load Load, p entity.Participant) entity.DriverPriority {
	if p.IsDriver() && load.Constrained() {
		return entity.DriverPriorityBonus
	}
	return entity.DriverPriorityNone
}
