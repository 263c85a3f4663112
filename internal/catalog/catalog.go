// Package catalog keeps the in-memory working set of one detection run:
// the sources under analysis and a bounded history of recently emitted
// detections for run summaries.
//
// The catalog is not internally synchronized; a run that fans ingestion out
// across goroutines must serialize catalog mutation.
package catalog

import (
	"github.com/gchen-astro/sift/internal/collections"
	"github.com/gchen-astro/sift/internal/finder"
	"github.com/gchen-astro/sift/internal/lightcurve"
)

// DefaultRecentSize bounds the recent-detection history when no size is
// given.
const DefaultRecentSize = 100

// Catalog is the working set of one run.
type Catalog struct {
	sources *collections.UniqueList[*lightcurve.Source]
	recent  *collections.CircularBufferList[*finder.Detection]
}

// New creates an empty catalog. recentSize bounds the detection history;
// zero or negative selects DefaultRecentSize.
func New(recentSize int) *Catalog {
	if recentSize <= 0 {
		recentSize = DefaultRecentSize
	}
	return &Catalog{
		// Source identity is the (name, project, cfg_hash) tuple: the same
		// sky object analyzed under two configurations is two entries.
		// Names are matched case-insensitively, matching how survey names
		// arrive in varying capitalization.
		sources: collections.NewUniqueList(lightcurve.SourceKeyFields(), true),
		recent:  collections.NewCircularBufferList[*finder.Detection](recentSize),
	}
}

// AddSource inserts a source. A source with the same identity tuple
// replaces the existing entry and moves to the tail.
func (c *Catalog) AddSource(src *lightcurve.Source) {
	c.sources.Append(src)
}

// Source looks up one source by its full identity tuple.
func (c *Catalog) Source(name, project, cfgHash string) (*lightcurve.Source, error) {
	return c.sources.ByKey(name, project, cfgHash)
}

// SourcesNamed narrows the catalog to every entry for a source name across
// projects and configurations.
func (c *Catalog) SourcesNamed(name string) (*collections.UniqueList[*lightcurve.Source], error) {
	return c.sources.ByPartialKey(name)
}

// Sources returns all sources in insertion order.
func (c *Catalog) Sources() []*lightcurve.Source {
	return c.sources.Items()
}

// Record appends detections to the bounded history.
func (c *Catalog) Record(dets []*finder.Detection) {
	c.recent.Extend(dets)
}

// Recent returns the retained detections, oldest first.
func (c *Catalog) Recent() []*finder.Detection {
	return c.recent.Items()
}

// TotalDetections returns the number of detections recorded over the whole
// run, including ones evicted from the bounded history.
func (c *Catalog) TotalDetections() int {
	return c.recent.Total()
}
