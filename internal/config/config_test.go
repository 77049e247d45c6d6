package config

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c := NewConfig()
		assert.Equal(t, 64, c.GetInt("check.depth"))
		assert.Equal(t, "precedence", c.GetString("parse.grammar"))
		assert.False(t, c.GetBool("parse.all"))
		assert.Equal(t, 4, c.GetInt("parse.workers"))
		assert.Equal(t, "info", c.GetString("log.level"))
		assert.Equal(t, "console", c.GetString("log.format"))
		assert.False(t, c.GetBool("log.trace"))
	})

	t.Run("set and get", func(t *testing.T) {
		c := NewConfig()
		c.SetInt("check.depth", 10)
		c.SetBool("parse.all", true)
		c.SetString("new.key", "value")
		assert.Equal(t, 10, c.GetInt("check.depth"))
		assert.True(t, c.GetBool("parse.all"))
		assert.Equal(t, "value", c.GetString("new.key"))
	})

	t.Run("type misuse panics", func(t *testing.T) {
		c := NewConfig()
		assert.PanicsWithValue(t, "Can't retrieve `string` from `int` variable", func() {
			c.GetString("check.depth")
		})
		assert.PanicsWithValue(t, "Can't assign `bool` to type `int`", func() {
			c.SetBool("check.depth", true)
		})
		assert.PanicsWithValue(t, "Int setting `nope` does not exist", func() {
			c.GetInt("nope")
		})
	})

	t.Run("debug", func(t *testing.T) {
		c := make(Config)
		c.SetInt("a.long.key", 1)
		c.SetBool("b", true)

		var buf bytes.Buffer
		c.Debug(&buf)
		assert.Equal(t, "Configuration\n"+
			"a.long.key : 1 (int)\n"+
			"b          : true (bool)\n", buf.String())
	})
}

func TestFromViper(t *testing.T) {
	t.Run("overrides only what is set", func(t *testing.T) {
		v := viper.New()
		v.Set("check.depth", "12")
		v.Set("parse.all", "true")
		v.Set("parse.grammar", "ambiguous")

		c := FromViper(v)
		assert.Equal(t, 12, c.GetInt("check.depth"))
		assert.True(t, c.GetBool("parse.all"))
		assert.Equal(t, "ambiguous", c.GetString("parse.grammar"))
		assert.Equal(t, 4, c.GetInt("parse.workers"))
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("AMBIPARSE_PARSE_WORKERS", "9")
		v := NewViper()
		c := FromViper(v)
		assert.Equal(t, 9, c.GetInt("parse.workers"))
	})

	t.Run("config file", func(t *testing.T) {
		v := viper.New()
		v.SetConfigType("yaml")
		require.NoError(t, v.ReadConfig(bytes.NewBufferString("log:\n  level: debug\n  trace: true\n")))

		c := FromViper(v)
		assert.Equal(t, "debug", c.GetString("log.level"))
		assert.True(t, c.GetBool("log.trace"))
	})
}
