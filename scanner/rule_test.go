package scanner

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_AssignmentRule_Match(t *testing.T) {
	var cases = []struct {
		keyword string
		line    string
		match   bool
	}{
		{keyword: "key", line: `private String API_KEY = "12345";`, match: true},
		{keyword: "apikey", line: `apiKey = "abc"`, match: true},
		{keyword: "apikey", line: `    String myApiKeyValue="x";`, match: true},
		{keyword: "secret", line: `client_secret=abcd`, match: true},
		{keyword: "token", line: `val authToken = BuildConfig.TOKEN`, match: true},
		{keyword: "key", line: `api.key=xyz`, match: true},
		{keyword: "secret", line: `const SECRET = 'abc' // prod`, match: true},
		{keyword: "url", line: `String baseUrl = "http://example.com";`, match: true},
		{keyword: "key", line: `keyboardLayout = 2`, match: true},
		{keyword: "apikey", line: `/* injected */ String apiKey = "x";`, match: true},
		{keyword: "apikey", line: `// the apikey is not stored here`, match: false},
		{keyword: "apikey", line: `Log.d(TAG, "apikey=" + value);`, match: false},
		{keyword: "apikey", line: `if (apiKey == null) {`, match: false},
		{keyword: "apikey", line: `if (apiKey === undefined) {`, match: false},
		{keyword: "apikey", line: `apiKey = =x`, match: true},
		{keyword: "apikey", line: "apiKey =\t=", match: true},
		{keyword: "apikey", line: `if (apiKey == a) apiKey = b;`, match: true},
		{keyword: "apikey", line: `if (apiKey != null) {`, match: false},
		{keyword: "apikey", line: `return apiKey;`, match: false},
		{keyword: "apikey", line: `apiKey =`, match: false},
		{keyword: "apikey", line: `apiKey =    `, match: false},
		{keyword: "apikey", line: `apiKey = // filled in later`, match: false},
		{keyword: "secret", line: `/* secret = 1 */ int x = 2;`, match: false},
		{keyword: "secret", line: ` * @param secret = the client secret`, match: false},
		{keyword: "token", line: `# token = abc`, match: false},
		{keyword: "key", line: `<string name="api_key">abc</string>`, match: false},
		{keyword: "password", line: `String user = "password=hunter2";`, match: false},
	}

	for i, c := range cases {
		t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
			m, err := AssignmentRule{}.ForKeyword(c.keyword)
			require.NoError(t, err)
			assert.Equal(t, c.match, m.Match(c.line), c.line)
		})
	}
}

func Test_RegexpRule_Match(t *testing.T) {
	m, err := RegexpRule{}.ForKeyword("apikey")
	require.NoError(t, err)

	assert.True(t, m.Match(`apiKey = "abc"`))
	assert.True(t, m.Match(`Log.d(TAG, "apikey=" + value);`))
	assert.False(t, m.Match(`// the apikey is not stored here`))
	assert.False(t, m.Match(`if (apiKey == null) {`))
	assert.True(t, m.Match(`apiKey = =x`))
}

func Test_IsAssignment_QuotesKeyword(t *testing.T) {
	assert.True(t, IsAssignment(`api.key = 1`, "api.key"))
	assert.False(t, IsAssignment(`apixkey = 1`, "api.key"))
	assert.True(t, IsAssignment(`x_(secret) = 1`, "(secret)"))
}

func Test_maskLine(t *testing.T) {
	var cases = []struct {
		input  string
		output string
	}{
		{input: `a = "xy"`, output: `a = "  "`},
		{input: `a = 'x' // c`, output: `a = ' ' `},
		{input: `a = "x\"y"`, output: `a = "    "`},
		{input: `a /* b */ = 1`, output: `a         = 1`},
		{input: `url = "http://x"`, output: `url = "        "`},
		{input: `  # comment`, output: ``},
		{input: `<!-- key = 1 -->`, output: ``},
	}

	for i, c := range cases {
		t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
			assert.Equal(t, c.output, maskLine(c.input))
		})
	}
}
