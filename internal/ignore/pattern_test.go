package ignore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_Metadata(t *testing.T) {
	tests := []struct {
		line     string
		negation bool
		dirOnly  bool
		anchored bool
	}{
		{"*.log", false, false, false},
		{"!important.log", true, false, false},
		{"logs/", false, true, false},
		{"/config.json", false, false, true},
		{"!/build/", true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			rule := Compile(tt.line)
			require.NotNil(t, rule)
			assert.Equal(t, tt.line, rule.Raw())
			assert.Equal(t, tt.negation, rule.IsNegation())
			assert.Equal(t, tt.dirOnly, rule.IsDirectoryOnly())
			assert.Equal(t, tt.anchored, rule.IsAnchored())
		})
	}
}

func TestCompile_Expression(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"*.log", `(?:^|/)[^/]*\.log(?:$|/)`},
		{"/config.json", `^config\.json(?:$|/)`},
		{"logs/", `(?:^|/)logs(?:/.*)?$`},
		{"**/vendor", `(?:^|/)(?:.*/)?vendor(?:$|/)`},
		{"a/**/b", `(?:^|/)a/(?:.*/)?b(?:$|/)`},
		{"abc/**", `(?:^|/)abc/.*(?:$|/)`},
		{"file?.txt", `(?:^|/)file[^/]\.txt(?:$|/)`},
		{"file[1].txt", `(?:^|/)file\[1\]\.txt(?:$|/)`},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, Compile(tt.line).Expression())
		})
	}
}

func TestCompile_Matches(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		path    string
		matches bool
	}{
		{"star at root", "*.log", "app.log", true},
		{"star nested", "*.log", "sub/app.log", true},
		{"star suffix mismatch", "*.log", "app.log.bak", false},
		{"star does not cross slash", "a*b", "a/b", false},
		{"double star root", "**/vendor", "vendor", true},
		{"double star one level", "**/vendor", "a/vendor", true},
		{"double star two levels", "**/vendor", "a/b/vendor", true},
		{"double star no partial name", "**/vendor", "avendor", false},
		{"middle double star zero dirs", "a/**/b", "a/b", true},
		{"middle double star many dirs", "a/**/b", "a/x/y/b", true},
		{"trailing double star content", "abc/**", "abc/x/y", true},
		{"trailing double star not itself", "abc/**", "abc", false},
		{"question mark", "file?.txt", "file1.txt", true},
		{"question mark not slash", "file?.txt", "file/.txt", false},
		{"anchored root", "/config.json", "config.json", true},
		{"anchored nested", "/config.json", "src/config.json", false},
		{"unanchored nested", "config.json", "src/config.json", true},
		{"boundary before name", "config.json", "myconfig.json", false},
		{"directory boundary", "build", "build/out.js", true},
		{"brackets literal", "file[1].txt", "file[1].txt", true},
		{"brackets not a class", "file[1].txt", "file1.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.matches, Compile(tt.line).Matches(tt.path))
		})
	}
}

func TestCompile_NeverPanics(t *testing.T) {
	inputs := []string{"[", "]", "\\", "(((", ")", "!", "/", "//", "**", "***", "!/", "a|b", "$^", "{a,b}", "+?", "日本/*.txt"}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			assert.NotPanics(t, func() {
				rule := Compile(input)
				require.NotNil(t, rule)
				rule.Matches("some/path")
			})
		})
	}
}

func TestCompile_UnicodeLiteral(t *testing.T) {
	rule := Compile("日本/*.txt")
	assert.True(t, rule.Matches("日本/a.txt"))
	assert.False(t, rule.Matches("日/a.txt"))
}
