package dto

import "villadash/models"

// The API speaks snake_case records; the dashboard works on models.
// Every conversion between the two goes through the functions below.

func VillaFromRecord(r VillaRecord) models.Villa {
	v := models.Villa{
		ID:              r.ID,
		Name:            r.Name,
		Location:        r.Location,
		Description:     r.Description,
		MaxGuests:       r.MaxGuests,
		PricePerNight:   r.PricePerNight,
		WeekendPrice:    r.WeekendPrice,
		SpecialDayPrice: r.SpecialDayPrice,
		WeekendDays:     append([]int(nil), r.WeekendDays...),
		Order:           r.Order,
		Status:          r.Status,
		Image:           r.Image,
		Amenities:       r.Amenities,
	}
	for _, sp := range r.SpecialPrices {
		v.SpecialPrices = append(v.SpecialPrices, models.SpecialPriceRange{
			Start: sp.StartDate,
			End:   sp.EndDate,
			Price: sp.Price,
			Label: sp.Label,
		})
	}
	return v
}

func VillaToRecord(v models.Villa) VillaRecord {
	r := VillaRecord{
		ID:              v.ID,
		Name:            v.Name,
		Location:        v.Location,
		Description:     v.Description,
		MaxGuests:       v.MaxGuests,
		PricePerNight:   v.PricePerNight,
		WeekendPrice:    v.WeekendPrice,
		SpecialDayPrice: v.SpecialDayPrice,
		WeekendDays:     append([]int{}, v.WeekendDays...),
		SpecialPrices:   []SpecialPriceRecord{},
		Order:           v.Order,
		Status:          v.Status,
		Image:           v.Image,
		Amenities:       v.Amenities,
	}
	for _, sp := range v.SpecialPrices {
		r.SpecialPrices = append(r.SpecialPrices, SpecialPriceRecord{
			StartDate: sp.Start,
			EndDate:   sp.End,
			Price:     sp.Price,
			Label:     sp.Label,
		})
	}
	return r
}

func VillasFromRecords(records []VillaRecord) []models.Villa {
	villas := make([]models.Villa, 0, len(records))
	for _, r := range records {
		villas = append(villas, VillaFromRecord(r))
	}
	return villas
}

func BookingFromRecord(r BookingRecord) models.Booking {
	b := models.Booking{
		ID:                   r.ID,
		VillaID:              r.Villa.ID,
		VillaName:            r.Villa.Name,
		ClientName:           r.ClientName,
		ClientPhone:          r.ClientPhone,
		ClientEmail:          r.ClientEmail,
		CheckIn:              r.CheckIn,
		CheckOut:             r.CheckOut,
		Status:               r.Status,
		NumberOfGuests:       r.NumberOfGuests,
		Notes:                r.Notes,
		PaymentStatus:        r.PaymentStatus,
		BookingSource:        r.BookingSource,
		TotalPayment:         r.TotalPayment,
		AdvancePayment:       r.AdvancePayment,
		OverrideTotalPayment: r.OverrideTotalPayment,
		Nights:               r.Nights,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}
	if b.VillaID == 0 {
		b.VillaID = r.VillaID
	}
	if b.VillaName == "" {
		b.VillaName = r.VillaName
	}
	if b.VillaName == "" && r.VillaDetails != nil {
		b.VillaName = r.VillaDetails.Name
	}
	if b.TotalPayment == 0 && r.TotalAmount != nil {
		b.TotalPayment = *r.TotalAmount
	}
	if r.PendingPayment != nil {
		b.PendingPayment = *r.PendingPayment
	} else {
		b.PendingPayment = pending(b.EffectiveTotal(), b.AdvancePayment)
	}
	if b.Nights == 0 {
		b.Nights = b.NightCount()
	}
	return b
}

// BookingToRecord builds the write payload. Read-only fields stay empty.
func BookingToRecord(b models.Booking) BookingRecord {
	pendingPayment := b.PendingPayment
	return BookingRecord{
		ID:                   b.ID,
		Villa:                VillaRef{ID: b.VillaID},
		ClientName:           b.ClientName,
		ClientPhone:          b.ClientPhone,
		ClientEmail:          b.ClientEmail,
		CheckIn:              b.CheckIn,
		CheckOut:             b.CheckOut,
		Status:               b.Status,
		NumberOfGuests:       b.NumberOfGuests,
		Notes:                b.Notes,
		PaymentStatus:        b.PaymentStatus,
		BookingSource:        b.BookingSource,
		TotalPayment:         b.TotalPayment,
		AdvancePayment:       b.AdvancePayment,
		PendingPayment:       &pendingPayment,
		OverrideTotalPayment: b.OverrideTotalPayment,
	}
}

func BookingsFromRecords(records []BookingRecord) []models.Booking {
	bookings := make([]models.Booking, 0, len(records))
	for _, r := range records {
		bookings = append(bookings, BookingFromRecord(r))
	}
	return bookings
}

func pending(total, advance models.Amount) models.Amount {
	if p := total - advance; p > 0 {
		return p
	}
	return 0
}
