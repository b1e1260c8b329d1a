package offers

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/dharmasatrya/flysas/internal/models"
	"github.com/dharmasatrya/flysas/pkg/logger"
)

const SearchPath = "/offers/flights"

var ErrUnexpectedPayload = errors.New("offers payload is not a JSON object")

// Fetcher is the transport the loader reads offers through.
type Fetcher interface {
	Fetch(ctx context.Context, path string, params url.Values) (interface{}, error)
}

type Loader struct {
	fetcher Fetcher
	logger  logger.Logger
}

func NewLoader(f Fetcher, l logger.Logger) *Loader {
	return &Loader{
		fetcher: f,
		logger:  l,
	}
}

// Load runs one offers search and returns a fresh result. Fetch errors are
// returned unchanged.
func (l *Loader) Load(ctx context.Context, criteria models.SearchCriteria) (*models.FlightOffersResult, error) {
	criteria = criteria.WithDefaults()

	data, err := l.fetcher.Fetch(ctx, SearchPath, criteria.Params())
	if err != nil {
		return nil, err
	}

	raw, ok := data.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrUnexpectedPayload, data)
	}

	result := models.NormalizeOffers(raw)
	l.logger.Info("offers loaded",
		"from", criteria.Origin,
		"to", criteria.Destination,
		"booking_flow", criteria.BookingFlow,
		"fields", result.Len(),
	)
	return result, nil
}
