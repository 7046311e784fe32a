package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetters(t *testing.T) {
	c := &Config{}
	t.Setenv("NEKO_STR", "hello")
	t.Setenv("NEKO_INT", " 420 ")
	t.Setenv("NEKO_BAD_INT", "lots")
	t.Setenv("NEKO_BOOL", "true")

	assert.Equal(t, "hello", c.GetString("NEKO_STR"))
	assert.Equal(t, 420, c.GetInt("NEKO_INT", 1))
	assert.Equal(t, 7, c.GetInt("NEKO_BAD_INT", 7))
	assert.Equal(t, 9, c.GetInt("NEKO_UNSET_INT", 9))
	assert.True(t, c.GetBool("NEKO_BOOL"))
	assert.False(t, c.GetBool("NEKO_UNSET_BOOL"))
}
