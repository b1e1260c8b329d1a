package main

import (
	"context"
	"os"

	"github.com/dharmasatrya/flysas/internal/client"
	"github.com/dharmasatrya/flysas/internal/config"
	"github.com/dharmasatrya/flysas/internal/models"
	"github.com/dharmasatrya/flysas/internal/offers"
	"github.com/dharmasatrya/flysas/internal/presenter"
	"github.com/dharmasatrya/flysas/pkg/logger"
)

var exampleSearch = models.SearchCriteria{
	Origin:       "ARN",
	Destination:  "CPH",
	OutboundDate: "20200202",
	ReturnDate:   "20200303",
	Youth:        1,
}

func main() {
	cfg := config.LoadConfig()
	log := logger.NewLogger(cfg.LogLevel)
	defer log.Sync()

	apiClient := client.NewClient(cfg.APIBaseURL, client.WithLogger(log))
	loader := offers.NewLoader(apiClient, log)

	result, err := loader.Load(context.Background(), exampleSearch)
	if err != nil {
		log.Fatal("failed to load flight offers", "from", exampleSearch.Origin, "to", exampleSearch.Destination, "error", err)
	}

	if err := presenter.PrintItinerary(os.Stdout, result); err != nil {
		log.Fatal("failed to print itinerary", "error", err)
	}
}
