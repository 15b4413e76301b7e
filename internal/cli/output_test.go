package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteTableAligns(t *testing.T) {
	var buf bytes.Buffer
	err := writeTable(&buf, []string{"NAME", "MODE"}, [][]string{
		{"solarized-light", "light"},
		{"mono", "dark"},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, strings.Index(lines[0], "MODE"), strings.Index(lines[2], "dark"))
}

func TestWriteOutputIndents(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, map[string]int{"entries": 12}))
	require.Equal(t, "{\n  \"entries\": 12\n}\n", buf.String())
}

func TestFormatHelpers(t *testing.T) {
	require.Equal(t, "yes", formatYesNo(true))
	require.Equal(t, "-", formatList(nil))
	require.Equal(t, "rss, atom", formatList([]string{"rss", "atom"}))
	require.Equal(t, "-", orDash(""))
}
