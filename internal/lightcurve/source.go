package lightcurve

import (
	"github.com/gchen-astro/sift/internal/collections"
)

// Source is one catalogued astronomical object. Its identity inside a run
// is the (Name, Project, CfgHash) tuple: the same sky object analyzed under
// two configurations is two catalog entries.
type Source struct {
	Name    string
	Project string
	CfgHash string

	// Sky position, decimal degrees.
	RA  float64
	Dec float64

	// Lightcurves owned by this source, indexed by name. Names within one
	// source come from the upstream reduction and are matched
	// case-insensitively, following the catalog convention of folding
	// survey names.
	Lightcurves *collections.NamedList[*Lightcurve]
}

// NewSource creates a source with an empty lightcurve list.
func NewSource(name, project, cfgHash string) *Source {
	return &Source{
		Name:    name,
		Project: project,
		CfgHash: cfgHash,
		Lightcurves: collections.NewNamedList(
			func(lc *Lightcurve) string { return lc.Name }, true),
	}
}

// AddLightcurve attaches a lightcurve to this source.
func (s *Source) AddLightcurve(lc *Lightcurve) {
	s.Lightcurves.Append(lc)
}

// SourceKeyFields is the composite identity used when sources are stored in
// a UniqueList: name, then project, then configuration hash.
func SourceKeyFields() []collections.Field[*Source] {
	return []collections.Field[*Source]{
		{Name: "name", Get: func(s *Source) string { return s.Name }},
		{Name: "project", Get: func(s *Source) string { return s.Project }},
		{Name: "cfg_hash", Get: func(s *Source) string { return s.CfgHash }},
	}
}
