package grid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLayoutIsValid(t *testing.T) {
	l := DefaultLayout()

	assert.NoError(t, ValidateLayout(l))
	for _, id := range VectorIDs {
		assert.InDelta(t, Total, l.Vector(id).Sum(), Tolerance, "%s", id)
	}
	assert.Equal(t, Vector{28, 44, 28}, l.Columns)
}

func TestVectorIDProperties(t *testing.T) {
	tests := []struct {
		id          VectorID
		name        string
		orientation Orientation
		minEach     float64
		length      int
	}{
		{Columns, "columns", Vertical, 18, 3},
		{LeftRows, "leftRows", Horizontal, 14, 3},
		{CenterRows, "centerRows", Horizontal, 18, 2},
		{RightRows, "rightRows", Horizontal, 16, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.id.String())
			assert.Equal(t, tt.orientation, tt.id.Orientation())
			assert.Equal(t, tt.minEach, tt.id.MinEach())
			assert.Equal(t, tt.length, tt.id.Len())
		})
	}
}

func TestLayoutWithVectorCopies(t *testing.T) {
	l := DefaultLayout()
	v := Vector{30, 40, 30}

	next := l.WithVector(Columns, v)
	v[0] = 0

	assert.Equal(t, Vector{28, 44, 28}, l.Columns)
	assert.Equal(t, Vector{30, 40, 30}, next.Columns)
	assert.Equal(t, l.LeftRows, next.LeftRows)
}

func TestValidateLayout(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(l *Layout)
		wantErr bool
	}{
		{
			name:   "default",
			mutate: func(l *Layout) {},
		},
		{
			name:   "unnormalized but proportional",
			mutate: func(l *Layout) { l.CenterRows = Vector{6, 4} },
		},
		{
			name:    "wrong entry count",
			mutate:  func(l *Layout) { l.Columns = Vector{50, 50} },
			wantErr: true,
		},
		{
			name:    "missing vector",
			mutate:  func(l *Layout) { l.RightRows = nil },
			wantErr: true,
		},
		{
			name:    "negative entry",
			mutate:  func(l *Layout) { l.CenterRows = Vector{120, -20} },
			wantErr: true,
		},
		{
			name:    "not finite",
			mutate:  func(l *Layout) { l.LeftRows = Vector{math.NaN(), 50, 50} },
			wantErr: true,
		},
		{
			name:    "sum overflows",
			mutate:  func(l *Layout) { l.Columns = Vector{1e308, 1e308, 1e308} },
			wantErr: true,
		},
		{
			name:    "all zero",
			mutate:  func(l *Layout) { l.RightRows = Vector{0, 0} },
			wantErr: true,
		},
		{
			name:    "below minimum",
			mutate:  func(l *Layout) { l.Columns = Vector{10, 60, 30} },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := DefaultLayout()
			tt.mutate(&l)
			err := ValidateLayout(l)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidLayout)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLayoutNormalized(t *testing.T) {
	l := Layout{
		Columns:    Vector{1, 2, 1},
		LeftRows:   Vector{1, 1, 1},
		CenterRows: Vector{3, 2},
		RightRows:  Vector{50, 50},
	}

	n := l.Normalized()

	assert.True(t, n.Columns.Equal(Vector{25, 50, 25}, Tolerance))
	assert.True(t, n.CenterRows.Equal(Vector{60, 40}, Tolerance))
	assert.Equal(t, Vector{1, 2, 1}, l.Columns)
}
