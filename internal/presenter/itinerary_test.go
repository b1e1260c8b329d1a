package presenter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharmasatrya/flysas/internal/models"
)

const oneFlight = `{
	"outboundFlights": {
		"0": {
			"origin": {"code": "ARN", "name": "Arlanda"},
			"originCountry": {"name": "Sweden"},
			"originCity": {"name": "Stockholm"},
			"destination": {"code": "CPH", "name": "Kastrup"},
			"destinationCountry": {"name": "Denmark"},
			"destinationCity": {"name": "Copenhagen"},
			"connectionDuration": "01:10",
			"startTimeInLocal": "2020-02-02T07:00:00.000+01:00",
			"endTimeInLocal": "2020-02-02T08:10:00.000+01:00",
			"segments": [{
				"departureAirport": {"code": "ARN"},
				"departureTerminal": "5",
				"departureDateTimeInLocal": "2020-02-02T07:00:00.000+01:00",
				"arrivalAirport": {"code": "CPH"},
				"arrivalTerminal": 3,
				"arrivalDateTimeInLocal": "2020-02-02T08:10:00.000+01:00",
				"airCraft": {"name": "Airbus A320neo"}
			}]
		}
	}
}`

func load(t *testing.T, payload string) *models.FlightOffersResult {
	t.Helper()
	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))
	return models.NormalizeOffers(raw)
}

func TestPrintItinerary(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, PrintItinerary(&buf, load(t, oneFlight)))
	out := buf.String()

	assert.Contains(t, out, "Outbound flights")
	assert.Contains(t, out, "From ARN Arlanda (Sweden - Stockholm) at 2020-02-02 07:00")
	assert.Contains(t, out, "To CPH Kastrup (Denmark - Copenhagen) at 2020-02-02 08:10")
	assert.NotContains(t, out, "01:10")
	assert.Contains(t, out, "A total of 0 stops")
	assert.Contains(t, out, "Departure from ARN - Terminal 5 - 2020-02-02 08:10")
	assert.Contains(t, out, "Arrival to CPH - Terminal 3 - 2020-02-02 08:10")
	assert.Equal(t, 1, strings.Count(out, "Airbus A320neo"))
	assert.NotContains(t, out, "Inbound flights")
}

func TestPrintItinerary_InboundSection(t *testing.T) {
	payload := strings.Replace(oneFlight, `"outboundFlights"`, `"inboundFlights"`, 1)
	var buf bytes.Buffer

	require.NoError(t, PrintItinerary(&buf, load(t, payload)))

	out := buf.String()
	assert.Contains(t, out, "Inbound flights")
	assert.Equal(t, 1, strings.Count(out, "Aircraft Airbus A320neo"))
}

func TestPrintItinerary_NoFlights(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, PrintItinerary(&buf, load(t, `{"pricingType": "revenue"}`)))
	assert.Contains(t, buf.String(), "Outbound flights")
	assert.NotContains(t, buf.String(), "---------- Flight")
}

func TestPrintItinerary_MissingSegments(t *testing.T) {
	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(oneFlight), &raw))
	flight := raw["outboundFlights"].(map[string]interface{})["0"].(map[string]interface{})
	delete(flight, "segments")

	var buf bytes.Buffer
	err := PrintItinerary(&buf, models.NormalizeOffers(raw))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "segments")
	assert.NotContains(t, buf.String(), "---------- Flight")
}

func TestPrintItinerary_FlightsSortedByKey(t *testing.T) {
	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(oneFlight), &raw))
	flights := raw["outboundFlights"].(map[string]interface{})
	second := map[string]interface{}{}
	for k, v := range flights["0"].(map[string]interface{}) {
		second[k] = v
	}
	second["origin"] = map[string]interface{}{"code": "GOT", "name": "Landvetter"}
	flights["1"] = second

	var buf bytes.Buffer
	require.NoError(t, PrintItinerary(&buf, models.NormalizeOffers(raw)))

	out := buf.String()
	assert.Less(t, strings.Index(out, "From ARN"), strings.Index(out, "From GOT"))
}

func TestPrintItinerary_MissingAircraft(t *testing.T) {
	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(oneFlight), &raw))
	flight := raw["outboundFlights"].(map[string]interface{})["0"].(map[string]interface{})
	seg := flight["segments"].([]interface{})[0].(map[string]interface{})
	delete(seg, "airCraft")

	var buf bytes.Buffer
	err := PrintItinerary(&buf, models.NormalizeOffers(raw))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "airCraft")
	assert.Contains(t, err.Error(), "outbound_flights[0]")
}

func TestPrintItinerary_StopsAtFailingFlight(t *testing.T) {
	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(oneFlight), &raw))
	flights := raw["outboundFlights"].(map[string]interface{})
	broken := map[string]interface{}{}
	for k, v := range flights["0"].(map[string]interface{}) {
		broken[k] = v
	}
	delete(broken, "originCity")
	flights["1"] = broken

	var buf bytes.Buffer
	err := PrintItinerary(&buf, models.NormalizeOffers(raw))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "originCity")
	assert.Equal(t, 1, strings.Count(buf.String(), "---------- Flight"))
	assert.Contains(t, buf.String(), "From ARN Arlanda (Sweden - Stockholm)")
}

func TestPrintItinerary_NullTerminal(t *testing.T) {
	payload := strings.Replace(oneFlight, `"departureTerminal": "5"`, `"departureTerminal": null`, 1)
	var buf bytes.Buffer

	require.NoError(t, PrintItinerary(&buf, load(t, payload)))
	assert.Contains(t, buf.String(), "Departure from ARN - Terminal - - 2020-02-02 08:10")
}
