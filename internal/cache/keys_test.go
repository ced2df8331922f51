package cache

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseKey(t *testing.T) {
	key := ResponseKey("Alice", "Statement: I feel calm")

	assert.True(t, strings.HasPrefix(key, "response:"))
	assert.Len(t, strings.TrimPrefix(key, "response:"), 64)
	assert.Equal(t, key, ResponseKey("Alice", "Statement: I feel calm"))

	assert.NotEqual(t, key, ResponseKey("Bob", "Statement: I feel calm"))
	assert.NotEqual(t, ResponseKey("ab", "c"), ResponseKey("a", "bc"))
}

func TestAdministrationKey(t *testing.T) {
	assert.Equal(t, "administration:42", AdministrationKey("42"))
}
