package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickFeedback(t *testing.T) {
	src := new(MockSource)
	src.On("UniformInt", 0, 4).Return(2).Once()
	src.On("UniformInt", 0, 4).Return(3).Once()

	msg, err := pickFeedback(src, true)
	require.NoError(t, err)
	assert.Equal(t, "Nice work!", msg)

	msg, err = pickFeedback(src, false)
	require.NoError(t, err)
	assert.Equal(t, "No. Keep trying.", msg)
	src.AssertExpectations(t)
}

func TestPickFeedback_OutOfRangeIsAnError(t *testing.T) {
	for _, index := range []int{-1, 4} {
		src := new(MockSource)
		src.On("UniformInt", 0, 4).Return(index)

		_, err := pickFeedback(src, true)
		assert.Error(t, err, "index %d", index)
	}
}
