package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Quote is a persisted shipping price estimate. Quotes are write-once and
// have no owner.
type Quote struct {
	ID          string `json:"id"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	// WeightKg is the parcel weight in kilograms.
	WeightKg float64 `json:"weight"`
	// Dimensions is a free-form description such as "10x20x30".
	Dimensions string `json:"dimensions"`
	Price      Money  `json:"quote"`
	Currency   string `json:"currency"`
	// DistanceKm is the distance used for pricing.
	DistanceKm        int64     `json:"distance"`
	EstimatedDelivery string    `json:"estimatedDelivery"`
	CreatedAt         time.Time `json:"createdAt"`
}

// QuoteRequest is the payload of POST /api/shipping-quote.
type QuoteRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Weight      Weight `json:"weight"`
	Dimensions  string `json:"dimensions"`
}

// QuoteResponse is the summary returned after a quote is computed.
type QuoteResponse struct {
	Origin            string `json:"origin"`
	Destination       string `json:"destination"`
	Quote             Money  `json:"quote"`
	Currency          string `json:"currency"`
	EstimatedDelivery string `json:"estimatedDelivery"`
}

// Response returns the client-facing summary of the quote.
func (q Quote) Response() QuoteResponse {
	return QuoteResponse{
		Origin:            q.Origin,
		Destination:       q.Destination,
		Quote:             q.Price,
		Currency:          q.Currency,
		EstimatedDelivery: q.EstimatedDelivery,
	}
}

// Money is an amount in minor currency units (kobo, cents).
// It is rendered as a decimal string with exactly two fraction digits.
type Money int64

// String formats m as "1234.50".
func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MarshalJSON encodes m as a JSON string such as "12345.00".
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts the string produced by MarshalJSON.
func (m *Money) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	whole, frac, _ := strings.Cut(s, ".")
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid money amount %q: %w", s, err)
	}

	var cents int64
	if frac != "" {
		if len(frac) > 2 {
			return fmt.Errorf("invalid money amount %q", s)
		}
		if len(frac) == 1 {
			frac += "0"
		}
		if cents, err = strconv.ParseInt(frac, 10, 64); err != nil {
			return fmt.Errorf("invalid money amount %q: %w", s, err)
		}
	}

	if strings.HasPrefix(whole, "-") {
		*m = Money(units*100 - cents)
	} else {
		*m = Money(units*100 + cents)
	}
	return nil
}

// Weight is a parcel weight in kilograms decoded from either a JSON number
// or a numeric string.
type Weight struct {
	Kg float64
	// Given is false when the field was absent, null or an empty string.
	Given bool
}

// UnmarshalJSON never fails on unparsable input: it records NaN so that the
// caller can report an invalid weight instead of a malformed body.
func (w *Weight) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*w = Weight{Kg: value, Given: true}
	case string:
		value = strings.TrimSpace(value)
		if value == "" {
			return nil
		}
		kg, err := strconv.ParseFloat(value, 64)
		if err != nil {
			kg = math.NaN()
		}
		*w = Weight{Kg: kg, Given: true}
	default:
		*w = Weight{Kg: math.NaN(), Given: true}
	}
	return nil
}

// MarshalJSON encodes the weight as a JSON number, or null when absent.
func (w Weight) MarshalJSON() ([]byte, error) {
	if !w.Given || math.IsNaN(w.Kg) || math.IsInf(w.Kg, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(w.Kg)
}

// Positive reports whether the weight is a finite number greater than zero.
// MaxWeightKg is the heaviest parcel a quote is issued for.
const MaxWeightKg = 1_000_000

func (w Weight) Positive() bool {
	return w.Given && !math.IsNaN(w.Kg) && !math.IsInf(w.Kg, 0) && w.Kg > 0
}
