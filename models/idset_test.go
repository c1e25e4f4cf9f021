package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDSetSemantics(t *testing.T) {
	var s IDSet

	s = s.Add(3)
	s = s.Add(5)
	s = s.Add(3) // idempotent
	assert.Equal(t, IDSet{3, 5}, s)
	assert.True(t, s.Contains(3))
	assert.False(t, s.Contains(4))

	s = s.Remove(3)
	s = s.Remove(3) // removing an absent id is a no-op
	assert.Equal(t, IDSet{5}, s)
}
