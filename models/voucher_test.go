package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlightDirection_Valid(t *testing.T) {
	assert.True(t, DirectionOutbound.Valid())
	assert.True(t, DirectionReturn.Valid())
	assert.False(t, FlightDirection("SIDEWAYS").Valid())
	assert.False(t, FlightDirection("").Valid())
}

func TestVoucher_SortFlights(t *testing.T) {
	tests := []struct {
		name  string
		in    []Flight
		order []string // expected "direction/segmentOrder" sequence
	}{
		{
			name: "return segments move after outbound",
			in: []Flight{
				{Direction: DirectionReturn, SegmentOrder: 0},
				{Direction: DirectionOutbound, SegmentOrder: 1},
				{Direction: DirectionOutbound, SegmentOrder: 0},
				{Direction: DirectionReturn, SegmentOrder: 1},
			},
			order: []string{"OUTBOUND/0", "OUTBOUND/1", "RETURN/0", "RETURN/1"},
		},
		{
			name: "already sorted stays put",
			in: []Flight{
				{Direction: DirectionOutbound, SegmentOrder: 0},
				{Direction: DirectionReturn, SegmentOrder: 0},
			},
			order: []string{"OUTBOUND/0", "RETURN/0"},
		},
		{
			name:  "empty flights is a no-op",
			in:    nil,
			order: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Voucher{Flights: tt.in}
			v.SortFlights()

			got := make([]string, 0, len(v.Flights))
			for _, f := range v.Flights {
				got = append(got, string(f.Direction)+"/"+string(rune('0'+f.SegmentOrder)))
			}
			assert.Equal(t, tt.order, got)
		})
	}
}

func TestVoucher_SortFlights_Stable(t *testing.T) {
	a, b := "AA100", "AA200"
	v := Voucher{Flights: []Flight{
		{Direction: DirectionOutbound, SegmentOrder: 0, FlightNumber: &a},
		{Direction: DirectionOutbound, SegmentOrder: 0, FlightNumber: &b},
	}}

	v.SortFlights()

	assert.Equal(t, &a, v.Flights[0].FlightNumber, "equal keys must keep their relative order")
	assert.Equal(t, &b, v.Flights[1].FlightNumber)
}

func TestAgency_PublicProjection(t *testing.T) {
	phone := "+1 555 0100"
	logo := "https://cdn.example.com/logo.png"
	agency := Agency{
		ID:       "agency-1",
		Name:     "Sunny Tours",
		Slug:     "sunny-tours",
		Phone:    &phone,
		IsActive: false,
		LogoUrl:  &logo,
	}

	got := agency.PublicProjection()

	assert.Equal(t, "agency-1", got.ID)
	assert.Equal(t, "Sunny Tours", got.Name)
	assert.Equal(t, "sunny-tours", got.Slug)
	assert.Equal(t, &phone, got.Phone)
	assert.Equal(t, &logo, got.LogoUrl)
}
