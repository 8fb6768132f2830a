package domain

// RideType identifies the fare policy variant of a ride.
type RideType string

const (
	RideTypeStandard RideType = "Standard"
	RideTypePremium  RideType = "Premium"
)

// Fare policy rates. Each variant fixes its per-mile rate at construction;
// the constants below are the only rates the variants ever use.
const (
	// StandardRatePerMile is the per-mile charge for a standard ride.
	StandardRatePerMile = 2.0

	// PremiumRatePerMile is the per-mile charge for a premium ride.
	PremiumRatePerMile = 3.5

	// PremiumLuxuryMultiplier is applied multiplicatively on top of the
	// premium per-mile charge.
	PremiumLuxuryMultiplier = 1.8
)

// PremiumBanner is the header line premium rides put above their details.
const PremiumBanner = "=== PREMIUM RIDE ==="

// Details is the structured, render-ready summary of a ride. Rendering to
// console text is the report package's concern.
type Details struct {
	ID       int
	Pickup   string
	Dropoff  string
	Distance float64 // miles
	Fare     float64
	Type     RideType

	// Banner goes above the common fields when set. Standard rides leave
	// it empty.
	Banner string

	// LuxuryMultiplier goes below the common fields when > 0.
	LuxuryMultiplier float64
}

// Ride is the capability shared by every ride variant. Implementations are
// immutable after construction, so the same Ride may be referenced by any
// number of drivers and riders without synchronization.
type Ride interface {
	// ID returns the ride identifier, unique within a run.
	ID() int

	// Pickup returns the pickup location.
	Pickup() string

	// Dropoff returns the dropoff location.
	Dropoff() string

	// Distance returns the trip distance in miles.
	Distance() float64

	// Fare computes the charge under the variant's fare policy.
	Fare() float64

	// Type returns the fixed display label of the variant.
	Type() RideType

	// Details returns the structured summary of the ride.
	Details() Details
}

// Ensure both variants implement Ride.
var (
	_ Ride = (*StandardRide)(nil)
	_ Ride = (*PremiumRide)(nil)
)

// baseRide carries the identity every variant shares: id, locations,
// distance, and the per-mile rate stamped by the variant's constructor.
type baseRide struct {
	id       int
	pickup   string
	dropoff  string
	distance float64
	rate     float64
}

func (b *baseRide) ID() int           { return b.id }
func (b *baseRide) Pickup() string    { return b.pickup }
func (b *baseRide) Dropoff() string   { return b.dropoff }
func (b *baseRide) Distance() float64 { return b.distance }

// details builds the summary fields common to all variants. An embedded
// type cannot dispatch back to the outer variant, so the caller passes its
// own label and fare.
func (b *baseRide) details(typ RideType, fare float64) Details {
	return Details{
		ID:       b.id,
		Pickup:   b.pickup,
		Dropoff:  b.dropoff,
		Distance: b.distance,
		Fare:     fare,
		Type:     typ,
	}
}

// StandardRide is the base-rate ride variant.
type StandardRide struct {
	baseRide
}

// NewStandardRide creates a standard ride. Inputs are accepted as given;
// validation is the booking service's concern.
func NewStandardRide(id int, pickup, dropoff string, distance float64) *StandardRide {
	return &StandardRide{baseRide{
		id:       id,
		pickup:   pickup,
		dropoff:  dropoff,
		distance: distance,
		rate:     StandardRatePerMile,
	}}
}

// Fare returns distance times the standard per-mile rate.
func (r *StandardRide) Fare() float64 {
	return r.distance * r.rate
}

func (r *StandardRide) Type() RideType { return RideTypeStandard }

// Details returns the shared summary with no extensions.
func (r *StandardRide) Details() Details {
	return r.details(r.Type(), r.Fare())
}

// PremiumRide is the luxury ride variant: a higher per-mile rate with a
// multiplier on top.
type PremiumRide struct {
	baseRide
	luxuryMultiplier float64
}

// NewPremiumRide creates a premium ride. Inputs are accepted as given.
func NewPremiumRide(id int, pickup, dropoff string, distance float64) *PremiumRide {
	return &PremiumRide{
		baseRide: baseRide{
			id:       id,
			pickup:   pickup,
			dropoff:  dropoff,
			distance: distance,
			rate:     PremiumRatePerMile,
		},
		luxuryMultiplier: PremiumLuxuryMultiplier,
	}
}

// Fare returns distance times the premium rate times the luxury multiplier.
func (r *PremiumRide) Fare() float64 {
	return r.distance * r.rate * r.luxuryMultiplier
}

func (r *PremiumRide) Type() RideType { return RideTypePremium }

// LuxuryMultiplier returns the multiplier applied to the premium fare.
func (r *PremiumRide) LuxuryMultiplier() float64 { return r.luxuryMultiplier }

// Details extends the shared summary the premium way: banner above, luxury
// multiplier below.
func (r *PremiumRide) Details() Details {
	d := r.details(r.Type(), r.Fare())
	d.Banner = PremiumBanner
	d.LuxuryMultiplier = r.luxuryMultiplier
	return d
}
