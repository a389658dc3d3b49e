package models

import (
	"bytes"
	"encoding/json"
)

// ErrorResponse is the uniform JSON error body returned by every endpoint.
type ErrorResponse struct {
	Message string `json:"message"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse bundles the issued token with the authenticated user.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ChangePasswordRequest is the body of POST /auth/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// MeResponse is the body of GET /admin/me: the caller's account plus the
// owning agency (nil for the global superadmin).
type MeResponse struct {
	User   User    `json:"user"`
	Agency *Agency `json:"agency"`
}

// CreateAgencyRequest is the body of POST /admin/agencies.
type CreateAgencyRequest struct {
	Name  string  `json:"name"`
	Slug  string  `json:"slug"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
}

// UpdateAgencyStatusRequest is the body of PATCH /admin/agencies/{agencyId}/status.
// IsActive is a pointer so that an absent field can be told apart from false.
type UpdateAgencyStatusRequest struct {
	IsActive *bool `json:"isActive"`
}

// UpdateAgencyBrandingRequest is the body of PATCH /admin/agencies/{agencyId}/branding.
// Each field is tri-state: absent keeps the stored value, JSON null clears it,
// a string sets it.
type UpdateAgencyBrandingRequest struct {
	LogoUrl      NullableString `json:"logoUrl"`
	PrimaryColor NullableString `json:"primaryColor"`
}

// CreateAgencyUserRequest is the body of POST /admin/agencies/{agencyId}/users.
type CreateAgencyUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// UploadLogoRequest is the body of POST /admin/agencies/{agencyId}/logo.
// Data carries the base64-encoded image bytes.
type UploadLogoRequest struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Data        string `json:"data"`
}

// UploadLogoResponse reports the public URL of the stored logo.
type UploadLogoResponse struct {
	LogoUrl string `json:"logoUrl"`
}

// FlightInput is one flight descriptor of a voucher-creation payload.
// Connections are flattened into ordered segments sharing the descriptor's
// direction, each chained onto the previous segment's disembark airport.
type FlightInput struct {
	Direction        FlightDirection   `json:"direction"`
	FlightNumber     *string           `json:"flightNumber"`
	DepartureTime    *string           `json:"departureTime"`
	ArrivalTime      *string           `json:"arrivalTime"`
	EmbarkAirport    *string           `json:"embarkAirport"`
	DisembarkAirport *string           `json:"disembarkAirport"`
	FlightDate       *string           `json:"flightDate"`
	Connections      []ConnectionInput `json:"connections"`
}

// ConnectionInput is one connection sub-segment of a flight descriptor.
// The embark airport is derived from the preceding segment and cannot be
// supplied by the caller.
type ConnectionInput struct {
	FlightNumber     *string `json:"flightNumber"`
	DepartureTime    *string `json:"departureTime"`
	ArrivalTime      *string `json:"arrivalTime"`
	DisembarkAirport *string `json:"disembarkAirport"`
	FlightDate       *string `json:"flightDate"`
}

// HotelInput is the optional hotel descriptor of a voucher-creation payload.
type HotelInput struct {
	HotelName    string  `json:"hotelName"`
	MealPlan     *string `json:"mealPlan"`
	RoomType     *string `json:"roomType"`
	CheckInTime  *string `json:"checkInTime"`
	CheckOutTime *string `json:"checkOutTime"`
}

// TransferInput is the optional transfer descriptor of a voucher-creation payload.
type TransferInput struct {
	ReceptiveName *string `json:"receptiveName"`
}

// StopoverInput is the optional stopover descriptor of a voucher-creation payload.
type StopoverInput struct {
	Location *string `json:"location"`
	Duration *string `json:"duration"`
}

// TourInput is one tour descriptor of a voucher-creation payload.
type TourInput struct {
	Name         string  `json:"name"`
	DateTime     *string `json:"dateTime"`
	MeetingPoint *string `json:"meetingPoint"`
}

// TravelInsuranceInput is the optional insurance descriptor of a
// voucher-creation payload.
type TravelInsuranceInput struct {
	ProviderName  string  `json:"providerName"`
	ProviderPhone *string `json:"providerPhone"`
}

// CreateVoucherRequest is the body of POST /admin/vouchers. The owning agency
// is taken from the authenticated identity, never from the body.
type CreateVoucherRequest struct {
	ReservationCode string                `json:"reservationCode"`
	ClientName      string                `json:"clientName"`
	Flights         []FlightInput         `json:"flights"`
	Hotel           *HotelInput           `json:"hotel"`
	Transfer        *TransferInput        `json:"transfer"`
	Stopover        *StopoverInput        `json:"stopover"`
	Tours           []TourInput           `json:"tours"`
	TravelInsurance *TravelInsuranceInput `json:"travelInsurance"`
}

// NullableString distinguishes the three JSON states of an optional string
// field: absent, explicit null, and a concrete value.
type NullableString struct {
	// Set is true when the field was present in the JSON document,
	// whether as null or as a string.
	Set bool

	// Value is the decoded string. Nil when the field was absent or null.
	Value *string
}

// UnmarshalJSON implements [json.Unmarshaler]. It is only invoked when the
// field is present in the document, which is what makes the absent/null
// distinction observable.
func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(data, []byte("null")) {
		n.Value = nil
		return nil
	}
	return json.Unmarshal(data, &n.Value)
}

// MarshalJSON implements [json.Marshaler].
func (n NullableString) MarshalJSON() ([]byte, error) {
	if !n.Set || n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}
