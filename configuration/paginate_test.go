package configuration_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/hostcfg"
	"github.com/xy-planning-network/hostcfg/configuration"
)

func fiveConfigs() []hostcfg.Configuration {
	cfgs := make([]hostcfg.Configuration, 5)
	for i := range cfgs {
		cfgs[i] = hostcfg.Configuration{Name: fmt.Sprint("c", i), Port: hostcfg.Port(i)}
	}

	return cfgs
}

func TestPaginate(t *testing.T) {
	tcs := []struct {
		name           string
		offset         int
		limit          int
		expectedNames  []string
		expectedOffset int
	}{
		{"First-Page", 0, 2, []string{"c0", "c1"}, 0},
		{"Middle-Page", 2, 2, []string{"c2", "c3"}, 2},
		{"Short-Last-Page", 4, 2, []string{"c4"}, 4},
		{"Negative-Offset", -5, 10, []string{"c0", "c1", "c2", "c3", "c4"}, 0},
		{"Offset-At-End", 5, 10, []string{}, 5},
		{"Offset-Past-End", 1000, 10, []string{}, 1000},
		{"Huge-Limit", 1, math.MaxInt, []string{"c1", "c2", "c3", "c4"}, 1},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			actual, err := configuration.Paginate(fiveConfigs(), tc.offset, tc.limit)

			// Assert
			require.Nil(t, err)
			require.Equal(t, tc.expectedNames, names(actual.Configs))
			require.Equal(t, tc.expectedOffset, actual.Offset)
			require.Equal(t, tc.limit, actual.Limit)
			require.Equal(t, 5, actual.Of)
			require.NotNil(t, actual.Configs)
		})
	}
}

func TestPaginateInvalidLimit(t *testing.T) {
	for _, limit := range []int{0, -1} {
		// Act
		_, err := configuration.Paginate(fiveConfigs(), 0, limit)

		// Assert
		require.ErrorIs(t, err, hostcfg.ErrInvalidLimit)
		require.EqualError(t, err, "Limit must be at least 1")
	}
}

func TestQueryWindow(t *testing.T) {
	// Arrange
	zero, seven := 0, 7

	tcs := []struct {
		name           string
		q              configuration.Query
		expectedOffset int
		expectedLimit  int
	}{
		{"Defaults", configuration.Query{}, configuration.DefaultOffset, configuration.DefaultLimit},
		{"Explicit", configuration.Query{Offset: &seven, Limit: &seven}, 7, 7},
		{"Explicit-Zero-Limit", configuration.Query{Limit: &zero}, 0, 0},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			offset, limit := tc.q.Window()

			// Assert
			require.Equal(t, tc.expectedOffset, offset)
			require.Equal(t, tc.expectedLimit, limit)
		})
	}
}
