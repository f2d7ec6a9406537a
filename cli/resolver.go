package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolve returns a [kong.ConfigurationLoader] that reads flag values from
// the mapping under key in a YAML document.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve("config"), "/path/to/config.yaml")
//
// Keys are flag names. Hyphens and underscores are interchangeable, so both
// log-level and log_level name the --log-level flag. Lists supply repeatable
// flags. Command-line flags override config file values.
//
// Example config file:
//
//	config:
//	  log-level: debug
//	  right-pow: true
//	  var:
//	    - x=2
//	    - y=3
//	  func:
//	    - cube(x) = x^3
//
// A document that is empty or lacks key resolves nothing.
func resolve(key string) func(r io.Reader) (kong.Resolver, error) {
	return func(r io.Reader) (kong.Resolver, error) {
		var doc map[string]any

		err := yaml.NewDecoder(r).Decode(&doc)
		if errors.Is(err, io.EOF) {
			return config{}, nil
		}

		if err != nil {
			return nil, fmt.Errorf("parse configuration: %w", err)
		}

		section, ok := doc[key].(map[string]any)
		if !ok {
			return config{}, nil
		}

		cfg := make(config, len(section))
		for name, value := range section {
			cfg[name] = flagValue(value)
		}

		return cfg, nil
	}
}

// config implements [kong.Resolver] for YAML configuration files.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	if value, ok := r[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}

// flagValue converts a decoded YAML value into a form Kong can decode.
// Kong parses numbers from strings, and lists element by element.
func flagValue(value any) any {
	switch v := value.(type) {
	case uint64:
		return strconv.FormatUint(v, 10)

	case int64:
		return strconv.FormatInt(v, 10)

	case int:
		return strconv.Itoa(v)

	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)

	case []any:
		items := make([]any, len(v))
		for i, item := range v {
			items[i] = fmt.Sprint(flagValue(item))
		}

		return items

	default:
		return v
	}
}
