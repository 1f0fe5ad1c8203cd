package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsString(t *testing.T) {
	categories := []string{"Sanitation", "Water", "Roads"}

	assert.True(t, ContainsString(categories, "Water"))
	assert.False(t, ContainsString(categories, "water"))
	assert.False(t, ContainsString(categories, "Electricity"))
	assert.False(t, ContainsString(nil, "Water"))
}
