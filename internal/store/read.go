package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/gchen-astro/sift/internal/sim"
)

// DetectionRecord is one persisted detection, flattened for reading. The
// in-memory Detection's back-references are replaced by the source row id
// and lightcurve name.
type DetectionRecord struct {
	ID         int64       `json:"id"`
	SourceID   int64       `json:"source_id"`
	Lightcurve string      `json:"lightcurve"`
	RunID      string      `json:"run_id,omitempty"`
	TimePeak   float64     `json:"time_peak"`
	SNR        float64     `json:"snr"`
	TimeStart  float64     `json:"time_start"`
	TimeEnd    float64     `json:"time_end"`
	Simulated  bool        `json:"simulated"`
	SimPars    *sim.Params `json:"sim_pars,omitempty"`
}

// ReadDetections returns every detection stored under a source row,
// ordered deterministically by peak time then row id. Returns an empty
// slice, not nil, when there are none.
func (s *Store) ReadDetections(ctx context.Context, sourceID int64) ([]DetectionRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, source_id, lightcurve, run_id, time_peak, snr, time_start, time_end, simulated, sim_pars
		FROM detections
		WHERE source_id = ?
		ORDER BY time_peak ASC, id ASC
	`, sourceID)
	if err != nil {
		return nil, fmt.Errorf("query detections: %w", err)
	}
	defer rows.Close()

	records := []DetectionRecord{}
	for rows.Next() {
		var rec DetectionRecord
		var simPars sql.NullString
		err := rows.Scan(
			&rec.ID,
			&rec.SourceID,
			&rec.Lightcurve,
			&rec.RunID,
			&rec.TimePeak,
			&rec.SNR,
			&rec.TimeStart,
			&rec.TimeEnd,
			&rec.Simulated,
			&simPars,
		)
		if err != nil {
			return nil, fmt.Errorf("scan detection: %w", err)
		}
		if simPars.Valid {
			rec.SimPars = &sim.Params{}
			if err := json.Unmarshal([]byte(simPars.String), rec.SimPars); err != nil {
				return nil, fmt.Errorf("decode sim pars: %w", err)
			}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate detections: %w", err)
	}
	return records, nil
}

// CountDetections returns the number of detections stored under a source
// row, split by real and simulated.
func (s *Store) CountDetections(ctx context.Context, sourceID int64) (observed, simulated int, err error) {
	err = s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE simulated = 0),
			COUNT(*) FILTER (WHERE simulated = 1)
		FROM detections WHERE source_id = ?
	`, sourceID).Scan(&observed, &simulated)
	if err != nil {
		return 0, 0, fmt.Errorf("count detections: %w", err)
	}
	return observed, simulated, nil
}
