package models

type SearchMetadata struct {
	TotalFields  int   `json:"total_fields"`
	SearchTimeMs int64 `json:"search_time_ms"`
	CacheHit     bool  `json:"cache_hit"`
}

type OffersResponse struct {
	SearchCriteria SearchCriteria      `json:"search_criteria"`
	Metadata       SearchMetadata      `json:"metadata"`
	Offers         *FlightOffersResult `json:"offers"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
