package topology

import "errors"

// ErrInvalidTopology indicates a file that cannot describe a problem:
// malformed YAML, unknown keys, failed field validation, or an enumeration
// inconsistent with the denominators.
var ErrInvalidTopology = errors.New("topology: invalid topology")
