package dot_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripolys/tripolys/dot"
	"github.com/tripolys/tripolys/triad"
)

func TestWriteProducesLabeledDOT(t *testing.T) {
	tr, err := triad.Parse("01", "0", "1")
	require.NoError(t, err)
	g, labels := tr.Build()

	var buf bytes.Buffer
	require.NoError(t, dot.Write(&buf, g, labels))

	out := buf.String()
	assert.True(t, strings.Contains(out, "digraph"))
	assert.True(t, strings.Contains(out, "root"))
}
