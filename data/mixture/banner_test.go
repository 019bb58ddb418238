package mixture

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFprintDataMixture_Layout(t *testing.T) {
	var buf strings.Builder
	FprintDataMixture(&buf, []string{"bridge", "droid"}, []float64{0.7, 0.3})

	border := strings.Repeat("#", 86)
	want := "\n" + border + "\n" +
		"# Loading the following 2 datasets (incl. sampling weight):                         #\n" +
		"# bridge: " + strings.Repeat("=", 66) + "0.700000 #\n" +
		"# droid: " + strings.Repeat("=", 67) + "0.300000 #\n" +
		border + "\n\n"
	assert.Equal(t, want, buf.String())
}

func TestFprintDataMixture_LinesShareWidth(t *testing.T) {
	var buf strings.Builder
	FprintDataMixture(&buf, []string{"a", "long_dataset_name"}, []float64{1, 2})

	lines := strings.Split(strings.Trim(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	for _, line := range lines {
		assert.Len(t, line, 86)
	}
}
