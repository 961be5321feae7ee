package services

import (
	"context"

	"villadash/dto"
	"villadash/models"
	"villadash/validator"
)

// PriceAPI is the price calculation endpoint.
type PriceAPI interface {
	CalculatePrice(ctx context.Context, villaID uint, checkIn, checkOut models.Date) (*dto.PriceQuote, error)
}

// PricePreviewService turns a server quote into the figures the booking
// form shows. Each call is answered on its own; a dashboard firing
// previews in quick succession must discard replies to older inputs.
type PricePreviewService struct {
	api PriceAPI
}

func NewPricePreviewService(api PriceAPI) *PricePreviewService {
	return &PricePreviewService{api: api}
}

func (s *PricePreviewService) Preview(ctx context.Context, req dto.PreviewRequest) (*dto.PricePreview, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	checkIn, checkOut, err := validator.ValidateDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	quote, err := s.api.CalculatePrice(ctx, req.VillaID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	return BuildPreview(req, checkIn, checkOut, quote), nil
}

// BuildPreview applies the override and advance to a quote.
func BuildPreview(req dto.PreviewRequest, checkIn, checkOut models.Date, quote *dto.PriceQuote) *dto.PricePreview {
	var override *models.Amount
	if req.OverrideTotalPayment != nil {
		override = models.AmountPtr(*req.OverrideTotalPayment)
	}
	effective := EffectiveTotal(quote.TotalPayment, override)
	advance := models.Amount(req.AdvancePayment)

	nights := quote.Nights
	if nights == 0 {
		nights = checkIn.DaysUntil(checkOut)
	}
	return &dto.PricePreview{
		VillaID:        req.VillaID,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		Nights:         nights,
		AutoTotal:      quote.TotalPayment,
		Override:       override,
		EffectiveTotal: effective,
		AdvancePayment: advance,
		PendingPayment: PendingPayment(effective, advance),
		Breakdown:      quote.AutoCalculatedPrice,
	}
}
