package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerceInt(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  int
		ok    bool
	}{
		{"json number", float64(42), 42, true},
		{"form string", "17", 17, true},
		{"padded string", " 8 ", 8, true},
		{"fractional", 3.5, 0, false},
		{"garbage", "not-a-number", 0, false},
		{"nil", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CoerceInt(tt.input)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCoerceFloat(t *testing.T) {
	got, ok := CoerceFloat("123.45")
	assert.True(t, ok)
	assert.Equal(t, 123.45, got)

	got, ok = CoerceFloat(float64(9))
	assert.True(t, ok)
	assert.Equal(t, 9.0, got)

	_, ok = CoerceFloat("12,5")
	assert.False(t, ok)

	_, ok = CoerceFloat(nil)
	assert.False(t, ok)
}

func TestCoerceBool(t *testing.T) {
	for _, v := range []interface{}{true, "on", "true", "1", "yes"} {
		got, ok := CoerceBool(v)
		assert.True(t, ok, "%v", v)
		assert.True(t, got, "%v", v)
	}
	for _, v := range []interface{}{false, "off", "false", "0", ""} {
		got, ok := CoerceBool(v)
		assert.True(t, ok, "%v", v)
		assert.False(t, got, "%v", v)
	}
	_, ok := CoerceBool("maybe")
	assert.False(t, ok)
}
