package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validNewTour() NewTour {
	return NewTour{
		TourPrice:   TourPrice{Price: 999.99},
		Title:       "Paris Trip",
		Description: "A week in Paris",
		Cover:       "https://example.com/paris.jpg",
	}
}

func TestValidateNewTour(t *testing.T) {
	v := NewValidator()
	require.NoError(t, v.Validate(validNewTour()))
}

func TestValidatePriceBounds(t *testing.T) {
	v := NewValidator()

	cases := []struct {
		name  string
		price float64
		ok    bool
	}{
		{"zero", 0, false},
		{"negative", -5, false},
		{"just above cap", 10000.01, false},
		{"far above cap", 10001, false},
		{"at cap", 10000, true},
		{"typical", 125.15, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(TourPrice{Price: tc.price})
			if tc.ok {
				assert.NoError(t, err)
			} else {
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Contains(t, verr.Fields, "price")
			}
		})
	}
}

func TestValidateNewTourFields(t *testing.T) {
	v := NewValidator()

	t.Run("missing title", func(t *testing.T) {
		nt := validNewTour()
		nt.Title = ""
		var verr *ValidationError
		require.ErrorAs(t, v.Validate(nt), &verr)
		assert.Contains(t, verr.Fields, "title")
	})

	t.Run("empty description is fine", func(t *testing.T) {
		nt := validNewTour()
		nt.Description = ""
		assert.NoError(t, v.Validate(nt))
	})

	t.Run("malformed cover URL", func(t *testing.T) {
		nt := validNewTour()
		nt.Cover = "not a url"
		var verr *ValidationError
		require.ErrorAs(t, v.Validate(nt), &verr)
		assert.Contains(t, verr.Fields, "cover")
	})

	t.Run("several broken fields reported together", func(t *testing.T) {
		nt := NewTour{TourPrice: TourPrice{Price: -1}, Cover: "nope"}
		var verr *ValidationError
		require.ErrorAs(t, v.Validate(nt), &verr)
		assert.Len(t, verr.Fields, 3)
	})
}

func TestValidationErrorMessage(t *testing.T) {
	v := NewValidator()
	err := v.Validate(TourPrice{Price: 10001})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "price")
	assert.Contains(t, err.Error(), "10000")
}

func TestNewDeletedTour(t *testing.T) {
	ack := NewDeletedTour(7)
	assert.Equal(t, int64(7), ack.ID)
	assert.True(t, ack.Deleted)
}
