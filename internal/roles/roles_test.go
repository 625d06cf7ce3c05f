package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	assert.Equal(t, []string{"Backend Developer"}, Resolve("Backend Developer"))

	dev := Resolve(DeveloperToken)
	assert.Len(t, dev, len(developerRoles))
	assert.Equal(t, "Angular Developer", dev[0])
	assert.Contains(t, dev, "GoLang developer")

	analyst := Resolve(AnalystToken)
	assert.Len(t, analyst, len(analystKeywords))
	assert.Contains(t, analyst, "Data Engineer")
}

func TestResolveReturnsCopy(t *testing.T) {
	dev := Resolve(DeveloperToken)
	dev[0] = "changed"
	assert.Equal(t, "Angular Developer", Resolve(DeveloperToken)[0])
}
