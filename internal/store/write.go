package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/gchen-astro/sift/internal/finder"
	"github.com/gchen-astro/sift/internal/lightcurve"
)

// WriteSource inserts a source and returns its row id. Inserting a source
// whose identity tuple already exists is a no-op that returns the existing
// id.
func (s *Store) WriteSource(ctx context.Context, src *lightcurve.Source) (int64, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sources (name, project, cfg_hash, ra, dec)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name, project, cfg_hash) DO NOTHING
	`, src.Name, src.Project, src.CfgHash, src.RA, src.Dec)
	if err != nil {
		return 0, fmt.Errorf("write source: %w", err)
	}

	var id int64
	err = s.db.QueryRowContext(ctx, `
		SELECT id FROM sources WHERE name = ? AND project = ? AND cfg_hash = ?
	`, src.Name, src.Project, src.CfgHash).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("write source: %w", err)
	}
	return id, nil
}

// WriteDetection inserts one detection under a source row. Duplicate
// (source, lightcurve, run, peak time) writes are silently ignored, so
// re-running the same batch is idempotent.
//
// Truth parameters, when present, are serialized to JSON; the simulated
// flag is stored independently so an empty truth mapping still reads back
// as simulated.
func (s *Store) WriteDetection(ctx context.Context, sourceID int64, runID string, det *finder.Detection) error {
	lcName := ""
	if det.Lightcurve != nil {
		lcName = det.Lightcurve.Name
	}

	var simPars sql.NullString
	if det.SimPars != nil {
		raw, err := json.Marshal(det.SimPars)
		if err != nil {
			return fmt.Errorf("write detection: marshal sim pars: %w", err)
		}
		simPars = sql.NullString{String: string(raw), Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO detections
		(source_id, lightcurve, run_id, time_peak, snr, time_start, time_end, simulated, sim_pars)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(source_id, lightcurve, run_id, time_peak) DO NOTHING
	`,
		sourceID,
		lcName,
		runID,
		det.TimePeak,
		det.SNR,
		det.TimeStart,
		det.TimeEnd,
		det.Simulated,
		simPars,
	)
	if err != nil {
		return fmt.Errorf("write detection: %w", err)
	}
	return nil
}

// WriteDetections writes a batch under one source row.
func (s *Store) WriteDetections(ctx context.Context, sourceID int64, runID string, dets []*finder.Detection) error {
	for _, det := range dets {
		if err := s.WriteDetection(ctx, sourceID, runID, det); err != nil {
			return err
		}
	}
	return nil
}
