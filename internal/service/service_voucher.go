package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rotaviva/voucher-api/internal/logger"
	"github.com/rotaviva/voucher-api/internal/store"
	"github.com/rotaviva/voucher-api/internal/validators"
	"github.com/rotaviva/voucher-api/models"
)

// voucherService is the default [VoucherService] implementation.
type voucherService struct {
	vouchers  store.VoucherRepository
	agencies  store.AgencyRepository
	validator validators.VoucherValidator
	logger    *logger.Logger
}

// NewVoucherService constructs a [VoucherService] backed by the given
// repositories.
func NewVoucherService(vouchers store.VoucherRepository, agencies store.AgencyRepository, validator validators.VoucherValidator, log *logger.Logger) VoucherService {
	return &voucherService{
		vouchers:  vouchers,
		agencies:  agencies,
		validator: validator,
		logger:    log,
	}
}

// CreateVoucher implements [VoucherService].
func (s *voucherService) CreateVoucher(ctx context.Context, agencyID string, req models.CreateVoucherRequest) (models.Voucher, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.ValidateCreate(agencyID, req); err != nil {
		return models.Voucher{}, err
	}

	voucher := models.Voucher{
		AgencyID:        agencyID,
		ReservationCode: strings.TrimSpace(req.ReservationCode),
		ClientName:      strings.TrimSpace(req.ClientName),
		Flights:         expandFlights(req.Flights),
	}

	if req.Hotel != nil {
		voucher.Hotel = &models.Hotel{
			HotelName:    strings.TrimSpace(req.Hotel.HotelName),
			MealPlan:     req.Hotel.MealPlan,
			RoomType:     req.Hotel.RoomType,
			CheckInTime:  req.Hotel.CheckInTime,
			CheckOutTime: req.Hotel.CheckOutTime,
		}
	}
	if req.Transfer != nil {
		voucher.Transfer = &models.Transfer{ReceptiveName: req.Transfer.ReceptiveName}
	}
	if req.Stopover != nil {
		voucher.Stopover = &models.Stopover{
			Location: req.Stopover.Location,
			Duration: req.Stopover.Duration,
		}
	}
	for _, tour := range req.Tours {
		name := strings.TrimSpace(tour.Name)
		if name == "" {
			continue
		}
		voucher.Tours = append(voucher.Tours, models.Tour{
			Name:         name,
			DateTime:     tour.DateTime,
			MeetingPoint: tour.MeetingPoint,
		})
	}
	if req.TravelInsurance != nil {
		voucher.TravelInsurance = &models.TravelInsurance{
			ProviderName:  strings.TrimSpace(req.TravelInsurance.ProviderName),
			ProviderPhone: req.TravelInsurance.ProviderPhone,
		}
	}

	created, err := s.vouchers.CreateVoucher(ctx, voucher)
	if err != nil {
		return models.Voucher{}, err
	}

	agency, err := s.agencies.FindAgencyByID(ctx, agencyID)
	if err != nil {
		log.Err(err).Str("func", "*voucherService.CreateVoucher").Str("agencyID", agencyID).Msg("agency lookup after create failed")
		return models.Voucher{}, err
	}

	projection := agency.PublicProjection()
	created.Agency = &projection
	created.SortFlights()

	return created, nil
}

// ListVouchers implements [VoucherService].
func (s *voucherService) ListVouchers(ctx context.Context, agencyID string) ([]models.Voucher, error) {
	if agencyID == "" {
		return nil, validators.ErrNoAgencyID
	}

	return s.vouchers.ListVouchersByAgency(ctx, agencyID)
}

// GetVoucher implements [VoucherService].
func (s *voucherService) GetVoucher(ctx context.Context, agencyID, voucherID string) (models.Voucher, error) {
	if agencyID == "" {
		return models.Voucher{}, validators.ErrNoAgencyID
	}
	if strings.TrimSpace(voucherID) == "" {
		return models.Voucher{}, ErrInvalidDataProvided
	}

	voucher, err := s.vouchers.FindVoucherByID(ctx, agencyID, voucherID)
	if err != nil {
		return models.Voucher{}, err
	}

	voucher.SortFlights()

	return voucher, nil
}

// PublicLookup implements [VoucherService]. A voucher owned by a missing or
// deactivated agency is reported exactly like an absent reservation code.
func (s *voucherService) PublicLookup(ctx context.Context, reservationCode string) (models.Voucher, error) {
	log := logger.FromContext(ctx)

	code := strings.TrimSpace(reservationCode)
	if code == "" {
		return models.Voucher{}, ErrInvalidDataProvided
	}

	voucher, err := s.vouchers.FindVoucherByReservationCode(ctx, code)
	if err != nil {
		return models.Voucher{}, err
	}

	agency, err := s.agencies.FindAgencyByID(ctx, voucher.AgencyID)
	if err != nil {
		if errors.Is(err, store.ErrAgencyNotFound) {
			return models.Voucher{}, store.ErrVoucherNotFound
		}
		log.Err(err).Str("func", "*voucherService.PublicLookup").Msg("agency lookup failed")
		return models.Voucher{}, err
	}
	if !agency.IsActive {
		return models.Voucher{}, store.ErrVoucherNotFound
	}

	projection := agency.PublicProjection()
	voucher.Agency = &projection
	voucher.SortFlights()

	return voucher, nil
}

// expandFlights flattens flight descriptors into persisted segments. The
// descriptor itself becomes segment 0 of its direction; each connection
// becomes the next segment, embarking from the previous segment's disembark
// airport regardless of what the client sent.
func expandFlights(inputs []models.FlightInput) []models.Flight {
	segments := make([]models.Flight, 0, len(inputs))

	for _, in := range inputs {
		segments = append(segments, models.Flight{
			Direction:        in.Direction,
			SegmentOrder:     0,
			FlightNumber:     in.FlightNumber,
			DepartureTime:    in.DepartureTime,
			ArrivalTime:      in.ArrivalTime,
			EmbarkAirport:    in.EmbarkAirport,
			DisembarkAirport: in.DisembarkAirport,
			FlightDate:       in.FlightDate,
		})

		previousDisembark := in.DisembarkAirport
		for i, conn := range in.Connections {
			segments = append(segments, models.Flight{
				Direction:        in.Direction,
				SegmentOrder:     i + 1,
				FlightNumber:     conn.FlightNumber,
				DepartureTime:    conn.DepartureTime,
				ArrivalTime:      conn.ArrivalTime,
				EmbarkAirport:    previousDisembark,
				DisembarkAirport: conn.DisembarkAirport,
				FlightDate:       conn.FlightDate,
			})
			previousDisembark = conn.DisembarkAirport
		}
	}

	return segments
}
