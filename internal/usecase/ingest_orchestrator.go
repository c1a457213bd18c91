package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"flightwarehouse-service/internal/domain/entity"
	"flightwarehouse-service/internal/domain/repository"
	"flightwarehouse-service/pkg/logger"
	"flightwarehouse-service/pkg/metrics"
	"flightwarehouse-service/pkg/utils"
)

// IngestOrchestrator runs the ingest pipeline: fetch, normalize,
// deduplicate, archive, upsert — one atomic batch per call.
type IngestOrchestrator struct {
	provider repository.FlightProvider
	store    repository.IngestStore
	logger   logger.Logger
	metrics  *metrics.Metrics
}

// NewIngestOrchestrator creates a new ingest orchestrator. metrics may be
// nil.
func NewIngestOrchestrator(
	provider repository.FlightProvider,
	store repository.IngestStore,
	logger logger.Logger,
	metrics *metrics.Metrics,
) *IngestOrchestrator {
	return &IngestOrchestrator{
		provider: provider,
		store:    store,
		logger:   logger,
		metrics:  metrics,
	}
}

// Ingest fetches up to limit records filtered by departure and/or arrival
// airport and applies them to the warehouse under one transaction. Records
// are processed sequentially in fetch order: the dedup last-write-wins rule
// and the per-record flight upserts both depend on that ordering. On any
// persistence failure the whole batch rolls back; nothing partial is ever
// committed. Fetch failures abort before the transaction opens, so they
// leave zero writes by construction. No retry here; that is the caller's
// decision.
func (o *IngestOrchestrator) Ingest(ctx context.Context, depIATA, arrIATA string, limit int) (*entity.IngestSummary, error) {
	if depIATA == "" && arrIATA == "" {
		return nil, fmt.Errorf("%w: provide dep_iata and/or arr_iata", entity.ErrValidation)
	}
	if limit < 1 || limit > 100 {
		return nil, fmt.Errorf("%w: limit must be between 1 and 100", entity.ErrValidation)
	}

	started := time.Now()

	records, err := o.provider.FetchFlights(ctx, depIATA, arrIATA, limit)
	if err != nil {
		o.countError("fetch")
		return nil, err
	}

	batch := entity.IngestBatch{
		IngestID:   uuid.NewString(),
		IngestedAt: time.Now().UTC(),
		Source:     entity.SourceAviationstack,
	}

	summary := &entity.IngestSummary{IngestID: batch.IngestID}
	dedup := newDedupState()

	err = o.store.RunBatch(ctx, func(tx repository.IngestTx) error {
		for i := range records {
			record := &records[i]

			// Archive first: the audit row exists whether or not the
			// record is usable downstream.
			if err := tx.ArchiveRaw(ctx, rawFromRecord(batch, record)); err != nil {
				return err
			}
			summary.RawInserted++

			dedup.observe(record)

			flightNK := utils.DeriveFlightKey(record.Flight.IATA, record.FlightDate)
			if flightNK == "" {
				o.logger.Warn("Skipping flight without key",
					"ingest_id", batch.IngestID,
					"flight_iata", record.Flight.IATA,
					"flight_date", record.FlightDate)
				o.countSkip()
				continue
			}

			if err := tx.UpsertFlight(ctx, flightFromRecord(flightNK, batch, record)); err != nil {
				return err
			}
			summary.FlightsUpdated++
		}

		for _, airport := range dedup.airportSnapshots() {
			if err := tx.UpsertAirport(ctx, &airport); err != nil {
				return err
			}
			summary.AirportsUpserted++
		}
		for _, airline := range dedup.airlineSnapshots() {
			if err := tx.UpsertAirline(ctx, &airline); err != nil {
				return err
			}
			summary.AirlinesUpserted++
		}
		return nil
	})
	if err != nil {
		o.countError("batch")
		return nil, fmt.Errorf("ingest batch %s failed: %w", batch.IngestID, err)
	}

	o.recordBatch(summary, time.Since(started))
	o.logger.Info("Ingest batch committed",
		"ingest_id", batch.IngestID,
		"raw_inserted", summary.RawInserted,
		"flights_upserted", summary.FlightsUpdated,
		"airports_upserted", summary.AirportsUpserted,
		"airlines_upserted", summary.AirlinesUpserted)

	return summary, nil
}

// rawFromRecord builds the append-only audit row for one fetched record.
func rawFromRecord(batch entity.IngestBatch, record *entity.ProviderFlightRecord) *entity.RawRecord {
	return &entity.RawRecord{
		IngestID:   batch.IngestID,
		IngestedAt: batch.IngestedAt,
		FlightDate: nilIfEmpty(record.FlightDate),
		FlightIATA: nilIfEmpty(record.Flight.IATA),
		DepIATA:    nilIfEmpty(record.Departure.IATA),
		ArrIATA:    nilIfEmpty(record.Arrival.IATA),
		Record:     record.Raw,
		Source:     batch.Source,
	}
}

// flightFromRecord normalizes one keyable provider record into a fact row.
// All six timestamps come out as naive UTC; absent provider values map to
// nil and overwrite any previously stored value on conflict.
func flightFromRecord(flightNK string, batch entity.IngestBatch, record *entity.ProviderFlightRecord) *entity.Flight {
	return &entity.Flight{
		FlightNK:        flightNK,
		FlightDate:      record.FlightDate,
		FlightStatus:    nilIfEmpty(record.FlightStatus),
		AirlineIATA:     nilIfEmpty(record.Airline.IATA),
		FlightNumber:    nilIfEmpty(record.Flight.Number),
		FlightIATA:      record.Flight.IATA,
		FlightICAO:      nilIfEmpty(record.Flight.ICAO),
		DepIATA:         nilIfEmpty(record.Departure.IATA),
		ArrIATA:         nilIfEmpty(record.Arrival.IATA),
		DepTerminal:     nilIfEmpty(record.Departure.Terminal),
		DepGate:         nilIfEmpty(record.Departure.Gate),
		ArrTerminal:     nilIfEmpty(record.Arrival.Terminal),
		ArrGate:         nilIfEmpty(record.Arrival.Gate),
		DepDelayMin:     record.Departure.Delay,
		ArrDelayMin:     record.Arrival.Delay,
		DepScheduledUTC: utils.ParseTimestamp(record.Departure.Scheduled),
		DepEstimatedUTC: utils.ParseTimestamp(record.Departure.Estimated),
		DepActualUTC:    utils.ParseTimestamp(record.Departure.Actual),
		ArrScheduledUTC: utils.ParseTimestamp(record.Arrival.Scheduled),
		ArrEstimatedUTC: utils.ParseTimestamp(record.Arrival.Estimated),
		ArrActualUTC:    utils.ParseTimestamp(record.Arrival.Actual),
		LastSeenAt:      time.Now().UTC(),
		Source:          batch.Source,
	}
}

func (o *IngestOrchestrator) countError(operation string) {
	if o.metrics != nil {
		o.metrics.ErrorsCount.WithLabelValues(operation).Inc()
	}
}

func (o *IngestOrchestrator) countSkip() {
	if o.metrics != nil {
		o.metrics.RecordsSkipped.Inc()
	}
}

func (o *IngestOrchestrator) recordBatch(summary *entity.IngestSummary, elapsed time.Duration) {
	if o.metrics == nil {
		return
	}
	o.metrics.IngestBatches.Inc()
	o.metrics.RawArchived.Add(float64(summary.RawInserted))
	o.metrics.FlightsUpserted.Add(float64(summary.FlightsUpdated))
	o.metrics.IngestDuration.Observe(elapsed.Seconds())
}
