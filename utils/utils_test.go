package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	assert.Equal(t, "web-development", GenerateSlug("Web Development"))
	assert.Equal(t, "go-for-backend-engineers", GenerateSlug("Go for Backend Engineers!"))
	assert.Equal(t, "data-science-101", GenerateSlug("  Data Science 101  "))
}
