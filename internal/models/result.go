package models

import (
	"encoding/json"
	"sort"

	"github.com/dharmasatrya/flysas/internal/casing"
)

// Common normalized field names returned by the offers API.
const (
	FieldOutboundFlights = "outbound_flights"
	FieldInboundFlights  = "inbound_flights"
	FieldPricingType     = "pricing_type"
	FieldOfferID         = "offer_id"
	FieldCurrency        = "currency"
	FieldBookingFlow     = "booking_flow"
)

// FlightOffersResult holds decoded JSON values keyed by snake_case name.
type FlightOffersResult struct {
	fields map[string]interface{}
}

// NormalizeOffers renames every top-level key of raw to snake_case. When two
// keys normalize to the same name, the lexically last original key wins.
func NormalizeOffers(raw map[string]interface{}) *FlightOffersResult {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make(map[string]interface{}, len(raw))
	for _, k := range keys {
		fields[casing.ToSnake(k)] = raw[k]
	}
	return &FlightOffersResult{fields: fields}
}

func (r *FlightOffersResult) Get(name string) (interface{}, bool) {
	v, ok := r.fields[name]
	return v, ok
}

// String returns the field when it holds a JSON string.
func (r *FlightOffersResult) String(name string) string {
	s, _ := r.fields[name].(string)
	return s
}

func (r *FlightOffersResult) Keys() []string {
	keys := make([]string, 0, len(r.fields))
	for k := range r.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (r *FlightOffersResult) Len() int {
	return len(r.fields)
}

func (r *FlightOffersResult) MarshalJSON() ([]byte, error) {
	if r.fields == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(r.fields)
}

// UnmarshalJSON loads an already normalized object; keys are kept as is.
func (r *FlightOffersResult) UnmarshalJSON(data []byte) error {
	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	r.fields = fields
	return nil
}
