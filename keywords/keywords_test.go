package keywords

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWordlist(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func Test_Parse(t *testing.T) {
	var cases = []struct {
		input  string
		output []string
	}{
		{input: "apikey,secret", output: []string{"apikey", "secret"}},
		{input: " apikey , secret ,", output: []string{"apikey", "secret"}},
		{input: "token,TOKEN,Token", output: []string{"token"}},
		{input: ",, ,", output: []string{}},
		{input: "", output: []string{}},
	}

	for i, c := range cases {
		t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
			assert.Equal(t, c.output, Parse(c.input))
		})
	}
}

func Test_Load(t *testing.T) {
	path := writeWordlist(t, "token\n\nsecret\n")

	words, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"token", "secret"}, words)
}

func Test_Load_CRLF(t *testing.T) {
	path := writeWordlist(t, "token\r\n  \r\nsecret\r\n")

	words, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"token", "secret"}, words)
}

func Test_Load_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func Test_Resolve(t *testing.T) {
	path := writeWordlist(t, "token\nsecret\n")

	words, err := Resolve("apikey", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"apikey"}, words)

	words, err = Resolve("", path)
	require.NoError(t, err)
	assert.Equal(t, []string{"token", "secret"}, words)

	_, err = Resolve("", "")
	assert.ErrorIs(t, err, ErrNoSource)

	_, err = Resolve("apikey", path)
	assert.ErrorIs(t, err, ErrConflictingSource)

	_, err = Resolve(" , ", "")
	assert.ErrorIs(t, err, ErrNoKeywords)
}
