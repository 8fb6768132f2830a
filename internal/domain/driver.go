package domain

// MaxRating is the upper end of the driver rating scale. Ratings are
// expected in [0, MaxRating]; the constructor does not enforce it.
const MaxRating = 5.0

// Driver aggregates the rides assigned to one driver and reports earnings
// over them. The ride collection is ordered, holds shared references, and
// is only ever mutated through AddRide.
type Driver struct {
	id     int
	name   string
	rating float64
	rides  []Ride
}

// NewDriver creates a driver. Inputs are accepted as given.
func NewDriver(id int, name string, rating float64) *Driver {
	return &Driver{
		id:     id,
		name:   name,
		rating: rating,
	}
}

func (d *Driver) ID() int         { return d.id }
func (d *Driver) Name() string    { return d.name }
func (d *Driver) Rating() float64 { return d.rating }

// AddRide appends a ride to the driver's collection. No dedup, no cap: the
// same ride may be added again and will count again.
func (d *Driver) AddRide(ride Ride) {
	d.rides = append(d.rides, ride)
}

// RideCount returns the number of rides assigned so far.
func (d *Driver) RideCount() int {
	return len(d.rides)
}

// Rides returns the assigned rides in assignment order. The slice is a
// copy; the rides themselves are shared.
func (d *Driver) Rides() []Ride {
	out := make([]Ride, len(d.rides))
	copy(out, d.rides)
	return out
}

// Earnings recomputes the sum of Fare over all assigned rides on every
// call. The total is never cached.
func (d *Driver) Earnings() float64 {
	var total float64
	for _, ride := range d.rides {
		total += ride.Fare()
	}
	return total
}
