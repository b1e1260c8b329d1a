package casing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSnake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"outboundFlights", "outbound_flights"},
		{"isOutboundIntercontinental", "is_outbound_intercontinental"},
		{"productInfo", "product_info"},
		{"offerId", "offer_id"},
		{"PricingType", "pricing_type"},
		{"ARNCode", "arn_code"},
		{"HTMLParser", "html_parser"},
		{"getHTTPResponseCode", "get_http_response_code"},
		{"segment2Arrival", "segment2_arrival"},
		{"version2", "version2"},
		{"links", "links"},
		{"already_snake", "already_snake"},
		{"A", "a"},
		{"123", "123"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ToSnake(tt.in))
		})
	}
}

func TestToSnake_NoUppercaseLeft(t *testing.T) {
	for _, in := range []string{"inboundLowestFare", "tabsInfo", "regionName", "BookingFlow", "startTimeInLocal"} {
		out := ToSnake(in)
		assert.Equal(t, strings.ToLower(out), out)

		upper := 0
		for _, r := range in {
			if r >= 'A' && r <= 'Z' {
				upper++
			}
		}
		if in[0] >= 'A' && in[0] <= 'Z' {
			upper--
		}
		assert.Equal(t, upper, strings.Count(out, "_"), in)
	}
}
