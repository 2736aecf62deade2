package problem

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/ibpsetup/indices"
	"github.com/katalvlaran/ibpsetup/sector"
	"gopkg.in/yaml.v3"
)

// Momenta is an ordered list of momentum symbols.
type Momenta []string

// ParseMomenta splits a whitespace-separated list, e.g. "p1 p2 p3".
func ParseMomenta(s string) Momenta {
	return Momenta(strings.Fields(s))
}

// UnmarshalYAML accepts either a whitespace-separated string or a sequence.
func (m *Momenta) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*m = ParseMomenta(node.Value)
	case yaml.SequenceNode:
		var v []string
		if err := node.Decode(&v); err != nil {
			return err
		}
		*m = v
	default:
		return fmt.Errorf("%w: line %d", ErrBadMomenta, node.Line)
	}

	return nil
}

// ScalarProductRule fixes Left·Right to the expression Value.
type ScalarProductRule struct {
	Left  string `yaml:"left" json:"left" validate:"required"`
	Right string `yaml:"right" json:"right" validate:"required"`
	Value string `yaml:"value" json:"value" validate:"required"`
}

// Denominator is one propagator (Momentum)² - Mass.
type Denominator struct {
	Momentum string `yaml:"momentum" json:"momentum" validate:"required"`
	Mass     string `yaml:"mass" json:"mass" validate:"required"`
}

// Input is the caller-supplied, unpermuted problem data.
//
// Fields:
//   - Invariants       - invariant name → mass-dimension tag.
//   - InvariantValues  - invariants fixed to an expression; these are removed
//     from Invariants and substituted into rules and masses.
//   - One              - invariant normalised to 1 (optional).
//   - TopSector        - one entry per denominator.
//   - Integrals        - raw tuples in the caller's denominator order.
//   - PreferredMasters - tuples guaranteed to end up in the integral set.
//   - Threads, Timeout - passed through to the reduction tool; 0 means default/none.
type Input struct {
	Name               string              `validate:"required"`
	ExternalMomenta    Momenta             `validate:"dive,required"`
	LoopMomenta        Momenta             `validate:"min=1,dive,required"`
	Invariants         map[string]int      `validate:"dive,keys,required,endkeys"`
	InvariantValues    map[string]string   `validate:"dive,keys,required,endkeys"`
	One                string
	ScalarProductRules []ScalarProductRule `validate:"dive"`
	Denominators       []Denominator       `validate:"min=1,dive"`
	TopSector          sector.Mask
	Integrals          []indices.Tuple
	PreferredMasters   []indices.Tuple
	Threads            int           `validate:"gte=0"`
	Timeout            time.Duration `validate:"gte=0"`
}

// Summary is the flattened, serialisable view of a Problem handed to
// template renderers.
type Summary struct {
	Name                string              `yaml:"name" json:"name"`
	ExternalMomenta     []string            `yaml:"external_momenta" json:"external_momenta"`
	LoopMomenta         []string            `yaml:"loop_momenta" json:"loop_momenta"`
	Invariants          map[string]int      `yaml:"invariants" json:"invariants"`
	One                 string              `yaml:"one,omitempty" json:"one,omitempty"`
	ScalarProductRules  []ScalarProductRule `yaml:"scalar_product_rules" json:"scalar_product_rules"`
	Denominators        []Denominator       `yaml:"denominators" json:"denominators"`
	Permutation         []int               `yaml:"permutation" json:"permutation"`
	TopSector           string              `yaml:"top_sector" json:"top_sector"`
	TopSectorID         int                 `yaml:"top_sector_id" json:"top_sector_id"`
	OriginalTopSectorID int                 `yaml:"original_top_sector_id" json:"original_top_sector_id"`
	TopSectorFirst      int                 `yaml:"top_sector_first" json:"top_sector_first"`
	TopSectorLast       int                 `yaml:"top_sector_last" json:"top_sector_last"`
	MaxR                int                 `yaml:"maxr" json:"maxr"`
	MaxS                int                 `yaml:"maxs" json:"maxs"`
	MaxD                int                 `yaml:"maxd" json:"maxd"`
	Integrals           []Row               `yaml:"integrals" json:"integrals"`
	PreferredMasters    []Row               `yaml:"preferred_masters" json:"preferred_masters"`
	Threads             int                 `yaml:"threads" json:"threads"`
	Timeout             string              `yaml:"timeout,omitempty" json:"timeout,omitempty"`
}

// Row is one index tuple in a Summary; it marshals to a YAML flow sequence
// so that each integral stays on one line.
type Row []int

// MarshalYAML renders the row as "[1, 1, 0, -1]".
func (r Row) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
	for _, v := range r {
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(v)})
	}

	return node, nil
}
