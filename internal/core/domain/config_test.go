package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cptools/internal/core/domain"
)

func TestEnabled(t *testing.T) {
	for _, v := range []string{"1", "true", "TRUE", "on", "ON", "yes", "y", " on "} {
		assert.True(t, domain.Enabled(v), "value %q", v)
	}
	for _, v := range []string{"", " ", "0", "false", "False", "off", "OFF", "no"} {
		assert.False(t, domain.Enabled(v), "value %q", v)
	}
}
