package config

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

// Config maps dotted setting paths to typed values
type Config map[string]setting

// NewConfig creates a new configuration object primed with all the
// default values expected by the command line tool.
func NewConfig() *Config {
	m := make(Config)
	// how many levels of rules the left recursion check walks
	// through before giving up
	m.SetInt("check.depth", 64)
	// grammar used to read expressions: `precedence` or `ambiguous`
	m.SetString("parse.grammar", "precedence")
	// list every complete parse instead of requiring a single one
	m.SetBool("parse.all", false)
	// max number of inputs evaluated at the same time
	m.SetInt("parse.workers", 4)
	// zerolog level name
	m.SetString("log.level", "info")
	// `console` or `json`
	m.SetString("log.format", "console")
	// log every combinator attempt of the grammar
	m.SetBool("log.trace", false)
	return &m
}

// EnvPrefix is prepended to the environment variables that override
// settings, e.g. AMBIPARSE_PARSE_WORKERS for `parse.workers`
const EnvPrefix = "AMBIPARSE"

// NewViper returns a viper instance that reads settings from the
// environment
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// FromViper overrides the defaults with whatever was set in `v`, be
// it from flags, environment or a config file.  Values are converted
// to the type of the default they override.
func FromViper(v *viper.Viper) *Config {
	c := NewConfig()
	for _, k := range c.Keys() {
		if !v.IsSet(k) {
			continue
		}
		switch (*c)[k].kind {
		case kindBool:
			c.SetBool(k, v.GetBool(k))
		case kindInt:
			c.SetInt(k, v.GetInt(k))
		case kindString:
			c.SetString(k, v.GetString(k))
		}
	}
	return c
}

// Keys returns all the settings names, sorted
func (c *Config) Keys() []string {
	keys := make([]string, 0, len(*c))
	for k := range *c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Debug writes one `key : value (type)` line per setting
func (c *Config) Debug(w io.Writer) {
	fmt.Fprintln(w, "Configuration")

	keys := c.Keys()
	width := 0
	for _, k := range keys {
		width = max(width, len(k))
	}
	for _, k := range keys {
		fmt.Fprintf(w, "%-*s : %s\n", width, k, (*c)[k].String())
	}
}

type kind int

const (
	kindBool kind = iota + 1
	kindInt
	kindString
)

func (k kind) String() string {
	return map[kind]string{
		kindBool:   "bool",
		kindInt:    "int",
		kindString: "string",
	}[k]
}

type value interface{ bool | int | string }

func kindOf[V value](v V) kind {
	switch any(v).(type) {
	case bool:
		return kindBool
	case int:
		return kindInt
	default:
		return kindString
	}
}

// setting keeps the type a key was first set with, so typos in
// programs reading or writing the configuration blow up early
type setting struct {
	kind  kind
	value any
}

func (s setting) String() string { return fmt.Sprintf("%v (%s)", s.value, s.kind) }

func set[V value](c *Config, path string, v V) {
	k := kindOf(v)
	if old, ok := (*c)[path]; ok && old.kind != k {
		panic(fmt.Sprintf("Can't assign `%s` to type `%s`", k, old.kind))
	}
	(*c)[path] = setting{kind: k, value: v}
}

func get[V value](c *Config, path, name string) V {
	s, ok := (*c)[path]
	if !ok {
		panic(fmt.Sprintf("%s setting `%s` does not exist", name, path))
	}
	var zero V
	if k := kindOf(zero); s.kind != k {
		panic(fmt.Sprintf("Can't retrieve `%s` from `%s` variable", k, s.kind))
	}
	return s.value.(V)
}

func (c *Config) SetBool(path string, v bool)     { set(c, path, v) }
func (c *Config) SetInt(path string, v int)       { set(c, path, v) }
func (c *Config) SetString(path string, v string) { set(c, path, v) }

func (c *Config) GetBool(path string) bool     { return get[bool](c, path, "Bool") }
func (c *Config) GetInt(path string) int       { return get[int](c, path, "Int") }
func (c *Config) GetString(path string) string { return get[string](c, path, "String") }
