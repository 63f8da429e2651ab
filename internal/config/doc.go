// Package config loads the YAML run configuration: layer names, search
// radii, output paths and logging.
//
// A missing file is not an error for the CLI; Default returns the values the
// drawings are usually prepared with.
package config
