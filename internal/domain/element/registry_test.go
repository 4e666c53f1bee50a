package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turtacn/MolCanvas/pkg/errors"
)

func TestRegistry_Lookup_KnownElement(t *testing.T) {
	r := NewRegistry()

	e, err := r.Lookup("C")
	require.NoError(t, err)
	assert.Equal(t, "C", e.Symbol)
	assert.Equal(t, 6, e.AtomicNumber)
	assert.InDelta(t, 12.011, e.AtomicWeight, 1e-9)
	assert.InDelta(t, 2.55, e.Electronegativity, 1e-9)
	assert.False(t, e.IsMarker())
}

func TestRegistry_Lookup_CaseSensitive(t *testing.T) {
	r := NewRegistry()

	_, err := r.Lookup("CL")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeGraphUnknownElement))

	e, err := r.Lookup("Cl")
	require.NoError(t, err)
	assert.Equal(t, 17, e.AtomicNumber)
}

func TestRegistry_Lookup_Unknown(t *testing.T) {
	r := NewRegistry()

	_, err := r.Lookup("Xx")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeGraphUnknownElement))
}

func TestRegistry_Lookup_MarkerIsVisible(t *testing.T) {
	r := NewRegistry()

	e, err := r.Lookup("delete")
	require.NoError(t, err)
	assert.True(t, e.IsMarker())
	assert.Zero(t, e.AtomicNumber)
	assert.Zero(t, e.AtomicWeight)
}

func TestRegistry_LookupPlaceable_RejectsMarkers(t *testing.T) {
	r := NewRegistry()

	for _, sym := range []string{"delete", "move"} {
		_, err := r.LookupPlaceable(sym)
		require.Error(t, err, "marker %q must not be placeable", sym)
		assert.True(t, errors.IsCode(err, errors.CodeInvalidElement))
	}
}

func TestRegistry_LookupPlaceable_AllowsElements(t *testing.T) {
	r := NewRegistry()

	e, err := r.LookupPlaceable("N")
	require.NoError(t, err)
	assert.Equal(t, 7, e.AtomicNumber)
}

func TestRegistry_Contains(t *testing.T) {
	r := NewRegistry()

	assert.True(t, r.Contains("O"))
	assert.True(t, r.Contains("move"))
	assert.False(t, r.Contains("Uuo"))
}

func TestRegistry_Elements_SortedAndMarkerFree(t *testing.T) {
	r := NewRegistry()

	elems := r.Elements()
	require.NotEmpty(t, elems)

	for i, e := range elems {
		assert.False(t, e.IsMarker(), "Elements() must not expose markers")
		if i > 0 {
			assert.Greater(t, e.AtomicNumber, elems[i-1].AtomicNumber)
		}
	}
	assert.Equal(t, "H", elems[0].Symbol)
}

//Personal.AI order the ending
