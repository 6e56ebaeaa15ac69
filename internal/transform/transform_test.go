package transform_test

import (
	"testing"

	"github.com/meridia/identity/internal/transform"
	"github.com/stretchr/testify/assert"
)

func TestTitleText(t *testing.T) {
	assert.Equal(t, "John Doe", transform.TitleText("  john DOE "))
	assert.Equal(t, "Ada", transform.TitleText("ada"))
	assert.Equal(t, "", transform.TitleText("   "))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "doc@x.com", transform.NormalizeEmail(" Doc@X.COM "))
}
