package store

const (
	createUser = `INSERT INTO users (id, agency_id, name, email, password_hash, role)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, agency_id, name, email, password_hash, role, created_at;`

	findUserByEmail = `SELECT id, agency_id, name, email, password_hash, role, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, agency_id, name, email, password_hash, role, created_at
    FROM users
    WHERE id = $1;`

	updateUserPasswordHash = `UPDATE users
    SET password_hash = $2
    WHERE id = $1;`

	createAgency = `INSERT INTO agencies (id, name, slug, phone, email)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, name, slug, phone, email, is_active, logo_url, primary_color, created_at;`

	listAgencies = `SELECT id, name, slug, phone, email, is_active, logo_url, primary_color, created_at
    FROM agencies
    ORDER BY created_at DESC;`

	findAgencyByID = `SELECT id, name, slug, phone, email, is_active, logo_url, primary_color, created_at
    FROM agencies
    WHERE id = $1;`

	updateAgencyStatus = `UPDATE agencies
    SET is_active = $2
    WHERE id = $1
    RETURNING id, name, slug, phone, email, is_active, logo_url, primary_color, created_at;`

	createVoucher = `INSERT INTO vouchers (id, agency_id, reservation_code, client_name)
    VALUES ($1, $2, $3, $4)
    RETURNING id, agency_id, reservation_code, client_name, created_at;`

	createFlight = `INSERT INTO flights (id, voucher_id, direction, segment_order, flight_number, departure_time, arrival_time, embark_airport, disembark_airport, flight_date)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`

	createHotel = `INSERT INTO hotels (id, voucher_id, hotel_name, meal_plan, room_type, check_in_time, check_out_time)
    VALUES ($1, $2, $3, $4, $5, $6, $7);`

	createTransfer = `INSERT INTO transfers (id, voucher_id, receptive_name)
    VALUES ($1, $2, $3);`

	createStopover = `INSERT INTO stopovers (id, voucher_id, location, duration)
    VALUES ($1, $2, $3, $4);`

	createTour = `INSERT INTO tours (id, voucher_id, name, date_time, meeting_point)
    VALUES ($1, $2, $3, $4, $5);`

	createTravelInsurance = `INSERT INTO travel_insurances (id, voucher_id, provider_name, provider_phone)
    VALUES ($1, $2, $3, $4);`

	listVouchersByAgency = `SELECT id, agency_id, reservation_code, client_name, created_at
    FROM vouchers
    WHERE agency_id = $1
    ORDER BY created_at DESC;`

	findVoucherByID = `SELECT id, agency_id, reservation_code, client_name, created_at
    FROM vouchers
    WHERE id = $1 AND agency_id = $2;`

	findVoucherByReservationCode = `SELECT id, agency_id, reservation_code, client_name, created_at
    FROM vouchers
    WHERE lower(reservation_code) = lower($1);`

	getVoucherFlights = `SELECT id, voucher_id, direction, segment_order, flight_number, departure_time, arrival_time, embark_airport, disembark_airport, flight_date
    FROM flights
    WHERE voucher_id = $1
    ORDER BY direction, segment_order;`

	getVoucherHotel = `SELECT id, voucher_id, hotel_name, meal_plan, room_type, check_in_time, check_out_time
    FROM hotels
    WHERE voucher_id = $1;`

	getVoucherTransfer = `SELECT id, voucher_id, receptive_name
    FROM transfers
    WHERE voucher_id = $1;`

	getVoucherStopover = `SELECT id, voucher_id, location, duration
    FROM stopovers
    WHERE voucher_id = $1;`

	getVoucherTours = `SELECT id, voucher_id, name, date_time, meeting_point
    FROM tours
    WHERE voucher_id = $1
    ORDER BY name;`

	getVoucherTravelInsurance = `SELECT id, voucher_id, provider_name, provider_phone
    FROM travel_insurances
    WHERE voucher_id = $1;`
)
