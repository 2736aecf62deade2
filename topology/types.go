package topology

import (
	"log/slog"
	"time"

	"github.com/katalvlaran/ibpsetup/indices"
	"github.com/katalvlaran/ibpsetup/problem"
	"github.com/katalvlaran/ibpsetup/sector"
)

// Enumeration modes.
const (
	ModeSector = "sector" // indices.Generate over Sector (default: the top sector)
	ModeFree   = "free"   // indices.ForSector over the active positions of Sector
)

// File is the YAML schema of one topology. Name doubles as an output file
// name, so it may hold neither a path separator nor "..".
type File struct {
	Name               string                      `yaml:"name" validate:"required,excludesall=/\\,excludes=.."`
	ExternalMomenta    problem.Momenta             `yaml:"external_momenta"`
	LoopMomenta        problem.Momenta             `yaml:"loop_momenta" validate:"min=1"`
	Invariants         map[string]int              `yaml:"invariants"`
	InvariantValues    map[string]string           `yaml:"invariant_values"`
	One                string                      `yaml:"one"`
	ScalarProductRules []problem.ScalarProductRule `yaml:"scalar_product_rules" validate:"dive"`
	Denominators       []problem.Denominator       `yaml:"denominators" validate:"min=1,dive"`
	TopSector          sector.Mask                 `yaml:"top_sector" validate:"required"`
	Enumerate          []Enumeration               `yaml:"enumerate" validate:"dive"`
	Integrals          []indices.Tuple             `yaml:"integrals"`
	PreferredMasters   []indices.Tuple             `yaml:"preferred_masters"`
	Threads            int                         `yaml:"threads" validate:"gte=0"`
	Timeout            time.Duration               `yaml:"timeout" validate:"gte=0"`

	log *slog.Logger
}

// Enumeration is one index-generation request. Unset minima follow the
// indices.NewBounds defaults; an unset dmax follows rmax-1.
type Enumeration struct {
	Mode    string      `yaml:"mode" validate:"omitempty,oneof=sector free"`
	Sector  sector.Mask `yaml:"sector"`
	Indices *int        `yaml:"indices" validate:"omitempty,gte=0"`
	RMin    *int        `yaml:"rmin" validate:"omitempty,gte=0"`
	RMax    int         `yaml:"rmax" validate:"gte=0"`
	SMin    *int        `yaml:"smin" validate:"omitempty,gte=0"`
	SMax    int         `yaml:"smax" validate:"gte=0"`
	DMin    *int        `yaml:"dmin" validate:"omitempty,gte=0"`
	DMax    *int        `yaml:"dmax"`
}

// Bounds resolves the enumeration limits.
func (e Enumeration) Bounds() indices.Bounds {
	var opts []indices.BoundsOption
	if e.RMin != nil {
		opts = append(opts, indices.WithRank(*e.RMin, e.RMax))
	}
	if e.SMin != nil {
		opts = append(opts, indices.WithNumerators(*e.SMin, e.SMax))
	}
	if e.DMin != nil || e.DMax != nil {
		lo, hi := 0, e.RMax-1
		if e.DMin != nil {
			lo = *e.DMin
		}
		if e.DMax != nil {
			hi = *e.DMax
		}
		opts = append(opts, indices.WithDots(lo, hi))
	}

	return indices.NewBounds(e.RMax, e.SMax, opts...)
}
