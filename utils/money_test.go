package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.InDelta(t, 50.0, Round2(50.0), 0.0001)
	assert.InDelta(t, 99.99, Round2(99.994), 0.0001)
	assert.InDelta(t, 100.0, Round2(99.999), 0.0001)
	assert.InDelta(t, 18.69, Round2(18.6875), 0.0001)
}

func TestRound1(t *testing.T) {
	assert.InDelta(t, 4.4, Round1(4.4), 0.0001)
	assert.InDelta(t, 4.5, Round1(4.45), 0.0001)
	assert.InDelta(t, 3.7, Round1(3.666), 0.0001)
}
