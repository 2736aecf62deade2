package topology

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// fileValidate checks the struct tags of File and Enumeration.
var fileValidate = validator.New(validator.WithRequiredStructEnabled())

// Option customizes Load and Parse.
type Option func(*options)

type options struct {
	logger *slog.Logger
	name   string // fallback name, from the file path
}

// WithLogger routes debug events to l instead of slog.Default().
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("topology: WithLogger(nil)")
	}
	return func(o *options) {
		o.logger = l
	}
}

// Load reads and validates the topology file at path. A file without a name
// takes its base name without extension.
func Load(path string, opts ...Option) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read topology %s: %w", path, err)
	}
	base := filepath.Base(path)
	opts = append([]Option{withName(strings.TrimSuffix(base, filepath.Ext(base)))}, opts...)

	f, err := Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse decodes and validates one YAML document. Unknown keys are rejected.
func Parse(data []byte, opts ...Option) (*File, error) {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidTopology)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidTopology, err)
	}
	if f.Name == "" {
		f.Name = o.name
	}
	if err := fileValidate.Struct(f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTopology, err)
	}
	f.log = o.logger
	f.log.Debug("topology loaded",
		slog.String("name", f.Name),
		slog.Int("denominators", len(f.Denominators)),
		slog.String("top_sector", f.TopSector.String()),
		slog.Int("enumerations", len(f.Enumerate)))

	return &f, nil
}

// withName sets the fallback problem name.
func withName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}
