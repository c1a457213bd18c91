package usecase

import (
	"flightwarehouse-service/internal/domain/entity"
)

// dedupState accumulates the last-write-wins dimension snapshots for one
// ingest batch. Each sighting replaces the whole snapshot for its code, so
// the last occurrence in fetch order wins; insertion order is preserved so
// the dimension upserts apply deterministically.
type dedupState struct {
	airportOrder []string
	airports     map[string]entity.Airport
	airlineOrder []string
	airlines     map[string]entity.Airline
}

func newDedupState() *dedupState {
	return &dedupState{
		airports: make(map[string]entity.Airport),
		airlines: make(map[string]entity.Airline),
	}
}

// observe folds one provider record into the dimension snapshots.
func (d *dedupState) observe(record *entity.ProviderFlightRecord) {
	d.observeAirport(record.Departure)
	d.observeAirport(record.Arrival)

	if record.Airline.IATA != "" {
		if _, seen := d.airlines[record.Airline.IATA]; !seen {
			d.airlineOrder = append(d.airlineOrder, record.Airline.IATA)
		}
		d.airlines[record.Airline.IATA] = entity.Airline{
			AirlineIATA: record.Airline.IATA,
			ICAO:        nilIfEmpty(record.Airline.ICAO),
			AirlineName: nilIfEmpty(record.Airline.Name),
		}
	}
}

func (d *dedupState) observeAirport(ep entity.ProviderEndpoint) {
	if ep.IATA == "" {
		return
	}
	if _, seen := d.airports[ep.IATA]; !seen {
		d.airportOrder = append(d.airportOrder, ep.IATA)
	}
	d.airports[ep.IATA] = entity.Airport{
		AirportIATA: ep.IATA,
		AirportName: nilIfEmpty(ep.Airport),
		Timezone:    nilIfEmpty(ep.Timezone),
		ICAO:        nilIfEmpty(ep.ICAO),
	}
}

// airportSnapshots returns the final airport upsert set in first-seen order.
func (d *dedupState) airportSnapshots() []entity.Airport {
	out := make([]entity.Airport, 0, len(d.airportOrder))
	for _, code := range d.airportOrder {
		out = append(out, d.airports[code])
	}
	return out
}

// airlineSnapshots returns the final airline upsert set in first-seen order.
func (d *dedupState) airlineSnapshots() []entity.Airline {
	out := make([]entity.Airline, 0, len(d.airlineOrder))
	for _, code := range d.airlineOrder {
		out = append(out, d.airlines[code])
	}
	return out
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
