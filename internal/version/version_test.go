package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserAgent(t *testing.T) {
	saved := Version
	t.Cleanup(func() { Version = saved })

	Version = "dev"
	assert.Equal(t, "aiassisted", UserAgent("aiassisted"))

	Version = "1.4.0"
	assert.Equal(t, "aiassisted/1.4.0", UserAgent("aiassisted"))
}
