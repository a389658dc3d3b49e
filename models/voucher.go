package models

import (
	"sort"
	"time"
)

// FlightDirection marks a flight segment as part of the outbound or the
// return journey of a voucher.
type FlightDirection string

const (
	// DirectionOutbound marks segments of the outbound journey.
	DirectionOutbound FlightDirection = "OUTBOUND"

	// DirectionReturn marks segments of the return journey.
	DirectionReturn FlightDirection = "RETURN"
)

// Valid reports whether d is a known flight direction.
func (d FlightDirection) Valid() bool {
	return d == DirectionOutbound || d == DirectionReturn
}

// Voucher is the travel document issued by an agency for an end client.
// It is identified by a globally unique reservation code and bundles flight
// segments plus optional hotel, transfer, stopover, tour, and insurance
// records. Vouchers are immutable after creation.
type Voucher struct {
	// ID is the unique identifier of the voucher (UUID string).
	ID string `json:"id"`

	// AgencyID is the owning tenant, always derived from the authenticated
	// identity and never from the request body.
	AgencyID string `json:"agencyId"`

	// ReservationCode is the globally unique lookup code, stored trimmed.
	ReservationCode string `json:"reservationCode"`

	// ClientName is the traveler the voucher was issued for.
	ClientName string `json:"clientName"`

	// CreatedAt is the timestamp when the voucher was issued.
	CreatedAt time.Time `json:"createdAt"`

	// Flights holds all flight segments. Serialized in display order:
	// OUTBOUND segments by segment order, then RETURN segments.
	Flights []Flight `json:"flights"`

	// Hotel is the optional hotel record attached to the voucher.
	Hotel *Hotel `json:"hotel,omitempty"`

	// Transfer is the optional transfer record attached to the voucher.
	Transfer *Transfer `json:"transfer,omitempty"`

	// Stopover is the optional stopover record attached to the voucher.
	Stopover *Stopover `json:"stopover,omitempty"`

	// Tours holds the optional tour records attached to the voucher.
	Tours []Tour `json:"tours,omitempty"`

	// TravelInsurance is the optional insurance record attached to the voucher.
	TravelInsurance *TravelInsurance `json:"travelInsurance,omitempty"`

	// Agency is the restricted owning-agency projection, populated only on
	// responses that embed it (voucher creation and public lookup).
	Agency *AgencyPublic `json:"agency,omitempty"`
}

// TableName returns the name of the database table
// associated with the Voucher model.
func (v Voucher) TableName() string {
	return "vouchers"
}

// SortFlights orders the voucher's flights for display: OUTBOUND segments
// first, RETURN segments after, each group by ascending segment order.
func (v *Voucher) SortFlights() {
	sort.SliceStable(v.Flights, func(i, j int) bool {
		a, b := v.Flights[i], v.Flights[j]
		if a.Direction != b.Direction {
			return a.Direction == DirectionOutbound
		}
		return a.SegmentOrder < b.SegmentOrder
	})
}

// Flight is one leg of a voucher journey. Segment order 0 is the primary leg
// of its direction; higher values are connections, each embarking from the
// previous segment's disembark airport.
type Flight struct {
	ID               string          `json:"id"`
	VoucherID        string          `json:"voucherId"`
	Direction        FlightDirection `json:"direction"`
	SegmentOrder     int             `json:"segmentOrder"`
	FlightNumber     *string         `json:"flightNumber"`
	DepartureTime    *string         `json:"departureTime"`
	ArrivalTime      *string         `json:"arrivalTime"`
	EmbarkAirport    *string         `json:"embarkAirport"`
	DisembarkAirport *string         `json:"disembarkAirport"`
	FlightDate       *string         `json:"flightDate"`
}

// TableName returns the name of the database table
// associated with the Flight model.
func (f Flight) TableName() string {
	return "flights"
}

// Hotel is the optional accommodation record of a voucher.
type Hotel struct {
	ID           string  `json:"id"`
	VoucherID    string  `json:"voucherId"`
	HotelName    string  `json:"hotelName"`
	MealPlan     *string `json:"mealPlan"`
	RoomType     *string `json:"roomType"`
	CheckInTime  *string `json:"checkInTime"`
	CheckOutTime *string `json:"checkOutTime"`
}

// Transfer is the optional airport-transfer record of a voucher.
type Transfer struct {
	ID            string  `json:"id"`
	VoucherID     string  `json:"voucherId"`
	ReceptiveName *string `json:"receptiveName"`
}

// Stopover is the optional stopover record of a voucher.
type Stopover struct {
	ID        string  `json:"id"`
	VoucherID string  `json:"voucherId"`
	Location  *string `json:"location"`
	Duration  *string `json:"duration"`
}

// Tour is one excursion attached to a voucher.
type Tour struct {
	ID           string  `json:"id"`
	VoucherID    string  `json:"voucherId"`
	Name         string  `json:"name"`
	DateTime     *string `json:"dateTime"`
	MeetingPoint *string `json:"meetingPoint"`
}

// TravelInsurance is the optional insurance record of a voucher.
type TravelInsurance struct {
	ID            string  `json:"id"`
	VoucherID     string  `json:"voucherId"`
	ProviderName  string  `json:"providerName"`
	ProviderPhone *string `json:"providerPhone"`
}
