package statistic

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatStat renders a stat value for display. Values of a million or more
// collapse to one decimal ("2.5 million"), values of a thousand or more get
// grouped thousands ("1,500"), everything else is the plain integer.
func FormatStat(value int) string {
	if value >= 1_000_000 {
		return fmt.Sprintf("%.1f million", float64(value)/1_000_000)
	}

	if value >= 1_000 {
		return groupThousands(value)
	}

	return strconv.Itoa(value)
}

func groupThousands(value int) string {
	s := strconv.Itoa(value)

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}

		b.WriteByte(s[i])
	}

	return b.String()
}
