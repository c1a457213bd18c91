// internal/domain/entity/ingest.go
package entity

import (
	"encoding/json"
	"time"
)

// SourceAviationstack tags every row written by the aviationstack pipeline.
const SourceAviationstack = "aviationstack"

// IngestBatch correlates every raw row archived by one ingest call.
type IngestBatch struct {
	IngestID   string
	IngestedAt time.Time
	Source     string
}

// RawRecord is one append-only audit row per fetched provider record,
// written regardless of whether the record was usable downstream.
type RawRecord struct {
	IngestID   string
	IngestedAt time.Time
	FlightDate *string
	FlightIATA *string
	DepIATA    *string
	ArrIATA    *string
	Record     json.RawMessage
	Source     string
}

// IngestSummary reports the outcome of one ingest batch. The warehouse
// upsert does not distinguish insert from update, so all flight writes are
// reported under FlightsUpdated and FlightsInserted stays zero; the total
// equals the number of keyable records processed.
type IngestSummary struct {
	IngestID         string `json:"ingest_id"`
	RawInserted      int    `json:"raw_inserted"`
	AirportsUpserted int    `json:"airports_upserted"`
	AirlinesUpserted int    `json:"airlines_upserted"`
	FlightsInserted  int    `json:"flights_inserted"`
	FlightsUpdated   int    `json:"flights_updated"`
}
