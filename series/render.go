package series

import (
	"fmt"
	"strings"
)

// Raw renders the series one row per line with space-separated fields in
// raw numeric formatting, suitable for feeding to other tools.
func (s *Series) Raw() string {
	return s.tbl.Raw()
}

// String renders the series row by row in a human-oriented format:
//
//	Row 0 -> t : 0.0 s   V : 1.00 mV
//
// with an appended uncertainty field when the series has three columns:
//
//	Row 0 -> t : 0.0 s   V : 1.00 mV    dV : 0.05 mV
func (s *Series) String() string {
	withUncert := s.NumCols() == 3

	var sb strings.Builder
	for i, row := range s.All() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "Row %d -> t : %.1f s   V : %.2f mV", i, row[ColTime], row[ColValue])
		if withUncert {
			fmt.Fprintf(&sb, "    dV : %.2f mV", row[ColUncertainty])
		}
	}

	return sb.String()
}
