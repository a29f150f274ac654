package dto

import (
	"hotelops/infras/stripe"
	"hotelops/shared"
	"hotelops/shared/constant"
	"strings"
)

const (
	FieldAmount = "amount"

	MetadataBookingID = "booking_id"
	MetadataOrderID   = "order_id"
)

type PaymentIntentRequest struct {
	Amount    float64 `json:"amount"     validate:"required,gt=0"`
	Currency  string  `json:"currency"   validate:"omitempty,len=3,alpha"`
	BookingID string  `json:"booking_id" validate:"omitempty,uuid"`
	OrderID   string  `json:"order_id"   validate:"omitempty,uuid"`
}

// MinorUnits is the amount in cents.
func (r *PaymentIntentRequest) MinorUnits() int64 {
	return shared.ToMinorUnits(r.Amount)
}

// CurrencyOr returns the requested currency in lower case, or fallback when none was sent.
func (r *PaymentIntentRequest) CurrencyOr(fallback string) string {
	if r.Currency == constant.Empty {
		return strings.ToLower(fallback)
	}

	return strings.ToLower(r.Currency)
}

func (r *PaymentIntentRequest) Metadata() map[string]string {
	metadata := map[string]string{}

	if r.BookingID != constant.Empty {
		metadata[MetadataBookingID] = r.BookingID
	}

	if r.OrderID != constant.Empty {
		metadata[MetadataOrderID] = r.OrderID
	}

	return metadata
}

type PaymentIntentResponse struct {
	ClientSecret    string `json:"client_secret"`
	PaymentIntentID string `json:"payment_intent_id"`
}

func (r *PaymentIntentResponse) FromIntent(intent stripe.PaymentIntent) {
	r.ClientSecret = intent.ClientSecret
	r.PaymentIntentID = intent.ID
}
