package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteJSONL(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSONL(&buf, []OscillationSample{
		{Progress: 0, At: "0s", Value: 1},
		{Progress: 0.5, At: "1s", Value: 2, Paused: true},
	}))
	require.Equal(t,
		`{"progress":0,"at":"0s","value":1}`+"\n"+
			`{"progress":0.5,"at":"1s","value":2,"paused":true}`+"\n",
		buf.String())

	buf.Reset()
	require.NoError(t, writeJSONL(&buf, map[string]int{"n": 1}))
	require.Equal(t, `{"n":1}`+"\n", buf.String())
}

func TestWriteTablePlain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTable(&buf, []string{"A", "LONGER"}, [][]string{{"xyz", "1"}}))
	require.Equal(t, "A    LONGER\nxyz  1\n", buf.String())
}
