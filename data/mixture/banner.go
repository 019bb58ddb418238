package mixture

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

const bannerWidth = 86

// FprintDataMixture writes the dataset-mixture banner: one '='-padded line
// per dataset with its sampling weight, framed by '#' borders.
func FprintDataMixture(w io.Writer, names []string, weights []float64) {
	border := strings.Repeat("#", bannerWidth)
	fmt.Fprintf(w, "\n%s\n", border)
	fmt.Fprintf(w, "# Loading the following %d datasets (incl. sampling weight):%24s #\n", len(names), "")
	for i, name := range names {
		value := strconv.FormatFloat(weights[i], 'f', 6, 64)
		if pad := 80 - len(name) - len(value); pad > 0 {
			value = strings.Repeat("=", pad) + value
		}
		fmt.Fprintf(w, "# %s: %s #\n", name, value)
	}
	fmt.Fprintf(w, "%s\n\n", border)
}
