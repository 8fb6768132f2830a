package domain

// Rider aggregates the rides requested by one rider and reports total
// spend over them. Like Driver it holds shared references in request
// order and never removes entries.
type Rider struct {
	id    int
	name  string
	rides []Ride
}

// NewRider creates a rider. Inputs are accepted as given.
func NewRider(id int, name string) *Rider {
	return &Rider{
		id:   id,
		name: name,
	}
}

func (r *Rider) ID() int      { return r.id }
func (r *Rider) Name() string { return r.name }

// RequestRide appends a ride to the rider's history. No dedup, no cap:
// requesting the same ride again records it again.
func (r *Rider) RequestRide(ride Ride) {
	r.rides = append(r.rides, ride)
}

// RideCount returns the number of rides requested so far.
func (r *Rider) RideCount() int {
	return len(r.rides)
}

// Rides returns the requested rides in request order. The slice is a
// copy; the rides themselves are shared.
func (r *Rider) Rides() []Ride {
	out := make([]Ride, len(r.rides))
	copy(out, r.rides)
	return out
}

// Spent recomputes the sum of Fare over all requested rides.
func (r *Rider) Spent() float64 {
	var total float64
	for _, ride := range r.rides {
		total += ride.Fare()
	}
	return total
}
