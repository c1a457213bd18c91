package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"flightwarehouse-service/internal/domain/entity"
	"flightwarehouse-service/internal/domain/repository"
	"flightwarehouse-service/pkg/logger"
)

// AviationstackProvider fetches flight-status records from the
// aviationstack HTTP API.
type AviationstackProvider struct {
	baseURL   string
	accessKey string
	client    *http.Client
	logger    logger.Logger
}

// NewAviationstackProvider creates a new aviationstack provider client
func NewAviationstackProvider(baseURL, accessKey string, logger logger.Logger) repository.FlightProvider {
	return &AviationstackProvider{
		baseURL:   baseURL,
		accessKey: accessKey,
		client:    &http.Client{Timeout: 30 * time.Second},
		logger:    logger,
	}
}

// FetchFlights retrieves up to limit flight records filtered by departure
// and/or arrival airport. The access key is checked before any network
// call; at least one airport code is required.
func (p *AviationstackProvider) FetchFlights(ctx context.Context, depIATA, arrIATA string, limit int) ([]entity.ProviderFlightRecord, error) {
	if p.accessKey == "" {
		return nil, fmt.Errorf("%w: AVIATIONSTACK_ACCESS_KEY is not set", entity.ErrConfiguration)
	}
	if depIATA == "" && arrIATA == "" {
		return nil, fmt.Errorf("%w: provide dep_iata and/or arr_iata", entity.ErrValidation)
	}

	params := url.Values{}
	params.Set("access_key", p.accessKey)
	params.Set("limit", strconv.Itoa(limit))
	if depIATA != "" {
		params.Set("dep_iata", depIATA)
	}
	if arrIATA != "" {
		params.Set("arr_iata", arrIATA)
	}

	reqURL := fmt.Sprintf("%s/flights?%s", p.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("%w: aviationstack returned status %d", entity.ErrRateLimited, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: aviationstack returned status %d", entity.ErrUpstream, resp.StatusCode)
	}

	// Decode the envelope with each record kept raw so the audit archive
	// stores the original document byte-for-byte.
	var envelope struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", entity.ErrUpstream, err)
	}

	records := make([]entity.ProviderFlightRecord, 0, len(envelope.Data))
	for _, raw := range envelope.Data {
		var record entity.ProviderFlightRecord
		if err := json.Unmarshal(raw, &record); err != nil {
			return nil, fmt.Errorf("%w: failed to decode flight record: %v", entity.ErrUpstream, err)
		}
		record.Raw = raw
		records = append(records, record)
	}

	p.logger.Info("Fetched flight records",
		"count", len(records),
		"dep_iata", depIATA,
		"arr_iata", arrIATA)

	return records, nil
}
