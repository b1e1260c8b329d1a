package presenter

import (
	"fmt"
	"io"
	"sort"

	"github.com/mitchellh/mapstructure"

	"github.com/dharmasatrya/flysas/internal/models"
	"github.com/dharmasatrya/flysas/internal/timezone"
)

type place struct {
	Code string `mapstructure:"code"`
	Name string `mapstructure:"name"`
}

type airport struct {
	Code string `mapstructure:"code"`
}

type named struct {
	Name string `mapstructure:"name"`
}

type segment struct {
	DepartureAirport       airport     `mapstructure:"departureAirport"`
	DepartureTerminal      interface{} `mapstructure:"departureTerminal"`
	ArrivalAirport         airport     `mapstructure:"arrivalAirport"`
	ArrivalTerminal        interface{} `mapstructure:"arrivalTerminal"`
	ArrivalDateTimeInLocal string      `mapstructure:"arrivalDateTimeInLocal"`
	AirCraft               named       `mapstructure:"airCraft"`
}

type flight struct {
	Origin             place       `mapstructure:"origin"`
	OriginCountry      named       `mapstructure:"originCountry"`
	OriginCity         named       `mapstructure:"originCity"`
	Destination        place       `mapstructure:"destination"`
	DestinationCountry named       `mapstructure:"destinationCountry"`
	DestinationCity    named       `mapstructure:"destinationCity"`
	ConnectionDuration interface{} `mapstructure:"connectionDuration"`
	StartTimeInLocal   string      `mapstructure:"startTimeInLocal"`
	EndTimeInLocal     string      `mapstructure:"endTimeInLocal"`
	Segments           []segment   `mapstructure:"segments"`
}

// PrintItinerary writes the outbound flights of result, followed by the
// inbound ones when present. Flights are printed in key order up to the first
// one missing a field.
func PrintItinerary(w io.Writer, result *models.FlightOffersResult) error {
	fmt.Fprint(w, "\n\nOutbound flights---------------------------\n\n")
	if err := printFlights(w, result, models.FieldOutboundFlights); err != nil {
		return err
	}

	if v, ok := result.Get(models.FieldInboundFlights); ok && !isEmpty(v) {
		fmt.Fprint(w, "Inbound flights----------------------------\n\n")
		if err := printFlights(w, result, models.FieldInboundFlights); err != nil {
			return err
		}
	}
	return nil
}

func printFlights(w io.Writer, result *models.FlightOffersResult, field string) error {
	raw, ok := result.Get(field)
	if !ok || raw == nil {
		return nil
	}

	var flights map[string]interface{}
	if err := decode(raw, &flights); err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}

	ids := make([]string, 0, len(flights))
	for id := range flights {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		var f flight
		if err := decode(flights[id], &f); err != nil {
			return fmt.Errorf("%s[%s]: %w", field, id, err)
		}
		printFlight(w, f)
	}
	return nil
}

func printFlight(w io.Writer, f flight) {
	origin := fmt.Sprintf("%s %s (%s - %s)", f.Origin.Code, f.Origin.Name, f.OriginCountry.Name, f.OriginCity.Name)
	destination := fmt.Sprintf("%s %s (%s - %s)", f.Destination.Code, f.Destination.Name, f.DestinationCountry.Name, f.DestinationCity.Name)
	// Stops are not derived from the segments yet.
	stops := 0

	fmt.Fprintln(w, "---------- Flight")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "From %s at %s\n", origin, timezone.FormatLocal(f.StartTimeInLocal))
	fmt.Fprintf(w, "To %s at %s\n", destination, timezone.FormatLocal(f.EndTimeInLocal))
	fmt.Fprintf(w, "A total of %d stops\n", stops)

	for _, s := range f.Segments {
		// Both lines show the arrival time; the departure time is not read.
		at := timezone.FormatLocal(s.ArrivalDateTimeInLocal)
		fmt.Fprintln(w)
		fmt.Fprintln(w, "-- Segments")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Departure from %s - Terminal %v - %s\n", s.DepartureAirport.Code, terminal(s.DepartureTerminal), at)
		fmt.Fprintf(w, "Arrival to %s - Terminal %v - %s\n", s.ArrivalAirport.Code, terminal(s.ArrivalTerminal), at)
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Aircraft %s\n", s.AirCraft.Name)
	}

	fmt.Fprint(w, "\n\n\n\n")
}

// ErrorUnset makes a missing key an error.
func decode(input interface{}, out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnset:       true,
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

func terminal(v interface{}) interface{} {
	if v == nil {
		return "-"
	}
	return v
}

func isEmpty(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case map[string]interface{}:
		return len(t) == 0
	case []interface{}:
		return len(t) == 0
	}
	return false
}
