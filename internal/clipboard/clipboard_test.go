package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBoard(t *testing.T) {
	m := &Memory{}
	require.ErrorIs(t, m.WriteAll(""), ErrEmptyText)
	require.NoError(t, m.WriteAll("résumé"))
	assert.True(t, Equals(m, "résumé"))
	assert.False(t, Equals(m, "autre"))

	m.Err = errors.New("boom")
	assert.False(t, Equals(m, "résumé"))
}

func TestSystemRejectsEmpty(t *testing.T) {
	require.ErrorIs(t, System{}.WriteAll(""), ErrEmptyText)
}
