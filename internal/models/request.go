package models

import (
	"net/url"
	"strconv"
)

type BookingFlow string

const (
	BookingFlowPoints  BookingFlow = "points"
	BookingFlowRevenue BookingFlow = "revenue"
)

func (b BookingFlow) Valid() bool {
	return b == BookingFlowPoints || b == BookingFlowRevenue
}

// Defaults applied to omitted optional search fields.
const (
	DefaultBookingFlow = BookingFlowRevenue
	DefaultPosition    = "se"
	DefaultChannel     = "web"
	DefaultDisplayType = "upsell"
)

// SearchCriteria is one flight offers query. Dates use the API's YYYYMMDD form.
type SearchCriteria struct {
	Origin       string      `json:"from" query:"from"`
	Destination  string      `json:"to" query:"to"`
	OutboundDate string      `json:"out_date" query:"outDate"`
	ReturnDate   string      `json:"in_date" query:"inDate"`
	Adults       int         `json:"adults" query:"adt"`
	Children     int         `json:"children" query:"chd"`
	Infants      int         `json:"infants" query:"inf"`
	Youth        int         `json:"youth" query:"yth"`
	BookingFlow  BookingFlow `json:"booking_flow" query:"bookingFlow"`
	Position     string      `json:"position" query:"pos"`
	Channel      string      `json:"channel" query:"channel"`
	DisplayType  string      `json:"display_type" query:"displayType"`
}

// WithDefaults returns a copy with empty optional fields set to their defaults.
func (c SearchCriteria) WithDefaults() SearchCriteria {
	if c.BookingFlow == "" {
		c.BookingFlow = DefaultBookingFlow
	}
	if c.Position == "" {
		c.Position = DefaultPosition
	}
	if c.Channel == "" {
		c.Channel = DefaultChannel
	}
	if c.DisplayType == "" {
		c.DisplayType = DefaultDisplayType
	}
	return c
}

// Params maps the criteria onto the query parameter names of the offers API.
func (c SearchCriteria) Params() url.Values {
	return url.Values{
		"from":        {c.Origin},
		"to":          {c.Destination},
		"inDate":      {c.ReturnDate},
		"outDate":     {c.OutboundDate},
		"adt":         {strconv.Itoa(c.Adults)},
		"chd":         {strconv.Itoa(c.Children)},
		"inf":         {strconv.Itoa(c.Infants)},
		"yth":         {strconv.Itoa(c.Youth)},
		"bookingFlow": {string(c.BookingFlow)},
		"pos":         {c.Position},
		"channel":     {c.Channel},
		"displayType": {c.DisplayType},
	}
}

func (c SearchCriteria) Validate() error {
	if c.Origin == "" {
		return ErrMissingOrigin
	}
	if c.Destination == "" {
		return ErrMissingDestination
	}
	if c.BookingFlow != "" && !c.BookingFlow.Valid() {
		return ErrInvalidBookingFlow
	}
	if c.Adults < 0 || c.Children < 0 || c.Infants < 0 || c.Youth < 0 {
		return ErrNegativePassengers
	}
	return nil
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrMissingOrigin      ValidationError = "from is required"
	ErrMissingDestination ValidationError = "to is required"
	ErrInvalidBookingFlow ValidationError = "bookingFlow must be points or revenue"
	ErrNegativePassengers ValidationError = "passenger counts must not be negative"
)
