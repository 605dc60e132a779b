package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatternServiceQuery(t *testing.T) {
	patterns := []Pattern{
		{Items: []string{"login", "search", "payment"}, Support: 4, Length: 3},
		{Items: []string{"login", "payment"}, Support: 7, Length: 2},
		{Items: []string{"search", "payment"}, Support: 5, Length: 2},
		{Items: []string{"login"}, Support: 9, Length: 1},
	}
	ps, err := NewPatternService(patterns)
	assert.Nil(t, err)

	// Both sides empty is an invalid query.
	_, err = ps.Query("", "")
	assert.NotNil(t, err)

	// Patterns starting with login, in decreasing order of support.
	res, err := ps.Query("login", "")
	assert.Nil(t, err)
	assert.Equal(t, 3, len(res))
	assert.Equal(t, []string{"login"}, res[0].Items)
	assert.Equal(t, []string{"login", "payment"}, res[1].Items)
	assert.Equal(t, []string{"login", "search", "payment"}, res[2].Items)

	// Patterns ending with payment.
	res, err = ps.Query("", "payment")
	assert.Nil(t, err)
	assert.Equal(t, 3, len(res))
	assert.Equal(t, 7, res[0].Support)

	// Both ends constrained.
	res, err = ps.Query("search", "payment")
	assert.Nil(t, err)
	assert.Equal(t, 1, len(res))
	assert.Equal(t, []string{"search", "payment"}, res[0].Items)
}

func TestPatternServiceGetSupport(t *testing.T) {
	patterns := []Pattern{
		{Items: []string{"A", "B"}, Support: 3, Length: 2},
	}
	ps, err := NewPatternService(patterns)
	assert.Nil(t, err)

	support, ok := ps.GetSupport([]string{"A", "B"})
	assert.True(t, ok)
	assert.Equal(t, 3, support)

	_, ok = ps.GetSupport([]string{"B", "A"})
	assert.False(t, ok)
}
