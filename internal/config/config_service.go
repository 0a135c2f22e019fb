package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"slices"

	"minigrep/internal/search"
)

const (
	// CaseInsensitiveKey switches literal search to ignore case. Only its presence matters.
	CaseInsensitiveKey = "CASE_INSENSITIVE"
	// RegexFlag enables regex mode when it follows the query and the filename.
	RegexFlag = "--regex"
)

var (
	ErrInsufficientArguments = errors.New("not enough arguments: should have a query and a filename parameters (2)")
	ErrInvalidRegex          = errors.New("query is an invalid regular expression")
)

// Env is a read-only view of environment values.
type Env interface {
	LookupEnv(key string) (string, bool)
}

type EnvFunc func(key string) (string, bool)

func (f EnvFunc) LookupEnv(key string) (string, bool) { return f(key) }

// OSEnv reads the process environment.
var OSEnv Env = EnvFunc(os.LookupEnv)

type MapEnv map[string]string

func (m MapEnv) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Config is the validated input of one search. It is never modified after Resolve.
type Config struct {
	query         string
	filename      string
	caseSensitive bool
	regexMode     bool
	pattern       *regexp.Regexp
}

// Resolve builds a Config from the arguments following the program name.
// It touches neither the filesystem nor the process environment: env is
// the only source of the case toggle.
func Resolve(args []string, env Env) (*Config, error) {
	if len(args) < 2 {
		return nil, ErrInsufficientArguments
	}

	cfg := &Config{
		query:         args[0],
		filename:      args[1],
		caseSensitive: true,
		regexMode:     slices.Contains(args[2:], RegexFlag),
	}

	if env != nil {
		if _, ok := env.LookupEnv(CaseInsensitiveKey); ok {
			cfg.caseSensitive = false
		}
	}

	if cfg.regexMode {
		re, err := regexp.Compile(cfg.query)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRegex, err)
		}
		cfg.pattern = re
	}

	return cfg, nil
}

func (c *Config) Query() string { return c.query }
func (c *Config) Filename() string { return c.filename }
func (c *Config) CaseSensitive() bool { return c.caseSensitive }
func (c *Config) RegexMode() bool { return c.regexMode }

// Matcher picks the strategy for this config. Regex mode wins over the
// case toggle; a case-insensitive pattern is spelled with (?i).
func (c *Config) Matcher() search.Matcher {
	switch {
	case c.regexMode:
		return search.NewRegex(c.pattern)
	case c.caseSensitive:
		return search.NewLiteral(c.query)
	default:
		return search.NewFoldedLiteral(c.query)
	}
}

func (c *Config) Mode() search.Mode {
	return c.Matcher().Mode()
}
