package services

import (
	"villadash/constants"
	"villadash/dto"
	"villadash/models"
)

// NightPrice is the price of one night and the rule that produced it.
type NightPrice struct {
	Date     models.Date   `json:"date"`
	Amount   models.Amount `json:"amount"`
	Category string        `json:"category"`
	Label    string        `json:"label,omitempty"`
}

// NightlyPrice resolves the price of the night starting on d: a villa
// special range, then a global special day, then a weekend day, then the
// base price. Global special days only apply to villas with a special-day
// price, and weekend days only to villas with a weekend price.
func NightlyPrice(villa models.Villa, d models.Date, specialDays []models.GlobalSpecialDay) NightPrice {
	if r, ok := villa.SpecialPriceFor(d); ok {
		return NightPrice{Date: d, Amount: r.Price, Category: constants.PriceSpecial, Label: r.Label}
	}

	if villa.OptsIntoSpecialDays() {
		for _, sd := range specialDays {
			if sd.Matches(d) {
				return NightPrice{Date: d, Amount: *villa.SpecialDayPrice, Category: constants.PriceSpecial, Label: sd.Name}
			}
		}
	}

	if villa.HasWeekendPrice() && villa.IsWeekendDay(d) {
		return NightPrice{Date: d, Amount: *villa.WeekendPrice, Category: constants.PriceWeekend}
	}

	return NightPrice{Date: d, Amount: villa.PricePerNight, Category: constants.PriceBase}
}

// Quote is a local price estimate with the same shape as the API's quote.
type Quote struct {
	dto.PriceQuote
	NightPrices []NightPrice `json:"night_prices"`
}

// Estimate prices every night of [checkIn, checkOut).
func Estimate(villa models.Villa, checkIn, checkOut models.Date, specialDays []models.GlobalSpecialDay) Quote {
	q := Quote{NightPrices: []NightPrice{}}
	for d := checkIn; d.Before(checkOut); d = d.AddDays(1) {
		np := NightlyPrice(villa, d, specialDays)
		q.NightPrices = append(q.NightPrices, np)
		q.TotalPayment += np.Amount
		switch np.Category {
		case constants.PriceSpecial:
			q.AutoCalculatedPrice.SpecialNights++
		case constants.PriceWeekend:
			q.AutoCalculatedPrice.WeekendNights++
		default:
			q.AutoCalculatedPrice.BaseNights++
		}
	}
	q.Nights = len(q.NightPrices)
	q.TotalPayment = q.TotalPayment.Round2()
	return q
}

// EffectiveTotal is the override when given, the automatic total otherwise.
func EffectiveTotal(auto models.Amount, override *models.Amount) models.Amount {
	if override != nil {
		return *override
	}
	return auto
}

// PendingPayment is max(0, total - advance).
func PendingPayment(total, advance models.Amount) models.Amount {
	if p := (total - advance).Round2(); p > 0 {
		return p
	}
	return 0
}
