package statistic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_FormatStat(t *testing.T) {
	testCases := []struct {
		value    int
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1500, "1,500"},
		{999999, "999,999"},
		{1234567, "1.2 million"},
		{2500000, "2.5 million"},
		{1000000, "1.0 million"},
		{12345678, "12.3 million"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			require.Equal(t, tc.expected, FormatStat(tc.value))
		})
	}
}
