package pathname

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNormalizeWith_Unix covers separator rewriting, duplicate collapsing,
// and dot-segment resolution against the unix convention.
func TestNormalizeWith_Unix(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "double separator", path: "/foo//", want: "/foo/"},
		{name: "dot segment", path: "/foo/./", want: "/foo/"},
		{name: "dotdot", path: "/foo/../bar", want: "/bar"},
		{name: "dotdot keeps directory marker", path: "/foo/../bar/", want: "/bar/"},
		{name: "chained dotdot", path: "/foo/../bar/../baz", want: "/baz"},
		{name: "unc double separator and dot", path: "//foo//./bar", want: "//foo/bar"},
		{name: "trailing dotdot", path: "foo/bar/..", want: "foo/"},
		{name: "relative dotdot", path: "foo/../bar", want: "bar"},
		{name: "unc dotdot", path: "//server/foo/../bar", want: "//server/bar"},
		{name: "home dotdot", path: "~/foo/../bar/", want: "~/bar/"},
		{name: "bare tilde gains separator", path: "~", want: "~/"},
		{name: "named home gains separator", path: "~user", want: "~user/"},
		{name: "plain path unchanged", path: "a/b/c.txt", want: "a/b/c.txt"},
		{name: "windows separators rewritten", path: `a\b\c`, want: "a/b/c"},
		{name: "drive path rewritten", path: `C:\foo\..\bar`, want: "C:/bar"},
		{name: "drive relative kept", path: "C:", want: "C:"},
		{name: "leading dot segment", path: "./a", want: "a"},
		{name: "collapses to nothing", path: "a/..", want: ""},
		{name: "dot only", path: ".", want: ""},
		{name: "dot slash only", path: "./", want: ""},
		{name: "empty", path: "", want: ""},
		{name: "root", path: "/", want: "/"},
		{name: "inner dotdot", path: "a/b/../c", want: "a/c"},
		{name: "mid separators", path: "a//b///c", want: "a/b/c"},
		{name: "dot between segments", path: "a/./b/./c", want: "a/b/c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeWith(tt.path, SeparatorUnix)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestNormalizeWith_Invalid covers paths that must be rejected rather than
// normalized.
func TestNormalizeWith_Invalid(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "climb from root", path: "/../"},
		{name: "climb from root no slash", path: "/.."},
		{name: "leading dotdot", path: "../foo"},
		{name: "bare dotdot", path: ".."},
		{name: "climb past start", path: "foo/../../bar"},
		{name: "climb from unc root", path: "//server/../bar"},
		{name: "climb from home", path: "~/../bar"},
		{name: "climb from drive root", path: `C:\..\bar`},
		{name: "lone colon", path: ":"},
		{name: "unterminated unc", path: "//a"},
		{name: "digit drive", path: "1:/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeWith(tt.path, SeparatorUnix)
			require.ErrorIs(t, err, ErrInvalidPath)
			assert.Empty(t, got)
		})
	}
}

// TestNormalizeWith_Windows normalizes against the windows convention.
func TestNormalizeWith_Windows(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "drive dotdot", path: `C:\foo\..\bar`, want: `C:\bar`},
		{name: "unix input", path: "/foo/../bar", want: `\bar`},
		{name: "unc", path: `\\server\foo\..\bar`, want: `\\server\bar`},
		{name: "relative", path: "a/b/c", want: `a\b\c`},
		{name: "named home gains separator", path: "~user", want: `~user\`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeWith(tt.path, SeparatorWindows)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestNormalizeNoEndSeparatorWith checks trailing-separator trimming and the
// prefix-only exception.
func TestNormalizeNoEndSeparatorWith(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "trailing separator dropped", path: "/foo/bar/", want: "/foo/bar"},
		{name: "dotdot result trimmed", path: "foo/bar/..", want: "foo"},
		{name: "root kept", path: "/", want: "/"},
		{name: "collapse to root kept", path: "/foo/..", want: "/"},
		{name: "drive root kept", path: `C:\foo\..`, want: "C:/"},
		{name: "unc prefix kept", path: "//server/", want: "//server/"},
		{name: "plain path unchanged", path: "a/b", want: "a/b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeNoEndSeparatorWith(tt.path, SeparatorUnix)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestNormalize_NullByte checks the unsanitized-input rejection.
func TestNormalize_NullByte(t *testing.T) {
	for _, path := range []string{"a\x00b", "\x00", "/ok/until\x00"} {
		_, err := NormalizeWith(path, SeparatorUnix)
		require.ErrorIs(t, err, ErrNullByte)
		require.NotErrorIs(t, err, ErrInvalidPath)
	}
}

// TestNormalize_Idempotent verifies that normalizing an already normalized
// path is the identity, for both conventions.
func TestNormalize_Idempotent(t *testing.T) {
	paths := []string{
		"/foo//", "/foo/./", "/foo/../bar", "/foo/../bar/", "//foo//./bar",
		"foo/bar/..", "foo/../bar", "//server/foo/../bar", "~/foo/../bar/",
		"~", "~user", "a/b/c.txt", `C:\foo\..\bar`, "C:", "/", "a//b///c",
	}

	for _, sep := range []Separator{SeparatorUnix, SeparatorWindows} {
		for _, path := range paths {
			once, err := NormalizeWith(path, sep)
			require.NoError(t, err, "path %q", path)
			twice, err := NormalizeWith(once, sep)
			require.NoError(t, err, "path %q", path)
			assert.Equal(t, once, twice, "path %q separator %v", path, sep)
		}
	}
}

// TestNormalize_MatchesHostConvention ties the separator-free entry points to
// the host separator.
func TestNormalize_MatchesHostConvention(t *testing.T) {
	for _, path := range []string{"/foo/../bar", "a/b/", `C:\x\y`} {
		want, err := NormalizeWith(path, HostSeparator())
		require.NoError(t, err)
		got, err := Normalize(path)
		require.NoError(t, err)
		assert.Equal(t, want, got)

		want, err = NormalizeNoEndSeparatorWith(path, HostSeparator())
		require.NoError(t, err)
		got, err = NormalizeNoEndSeparator(path)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

// hostify rewrites unix separators in an expected value to the host
// convention so Concat expectations hold on any platform.
func hostify(path string) string {
	return strings.ReplaceAll(path, "/", string(HostSeparator().Byte()))
}

// TestConcat covers base joining, prefixed-addition override, and error
// propagation.
func TestConcat(t *testing.T) {
	tests := []struct {
		name string
		base string
		add  string
		want string
	}{
		{name: "join with separator", base: "/foo/", add: "bar", want: "/foo/bar"},
		{name: "join inserts separator", base: "/foo", add: "bar", want: "/foo/bar"},
		{name: "absolute addition wins", base: "/foo", add: "/bar", want: "/bar"},
		{name: "drive absolute addition wins", base: "/foo", add: "C:/bar", want: "C:/bar"},
		{name: "drive relative addition wins", base: "/foo", add: "C:bar", want: "C:bar"},
		{name: "dotdot into base", base: "/foo/a/", add: "../bar", want: "/foo/bar"},
		{name: "absolute addition over dirty base", base: "/foo/..", add: "/bar", want: "/bar"},
		{name: "nested addition", base: "/foo", add: "bar/c.txt", want: "/foo/bar/c.txt"},
		{name: "file treated as directory", base: "/foo/c.txt", add: "bar", want: "/foo/c.txt/bar"},
		{name: "empty base", base: "", add: "bar/x", want: "bar/x"},
		{name: "empty addition keeps directory", base: "/foo", add: "", want: "/foo/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Concat(tt.base, tt.add)
			require.NoError(t, err)
			assert.Equal(t, hostify(tt.want), got)
		})
	}
}

// TestConcat_Errors checks rejected additions and joins.
func TestConcat_Errors(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		add     string
		wantErr error
	}{
		{name: "escape from base", base: "/foo/", add: "../../bar", wantErr: ErrInvalidPath},
		{name: "invalid addition prefix", base: "/foo", add: ":", wantErr: ErrInvalidPath},
		{name: "null byte in addition", base: "/foo", add: "a\x00", wantErr: ErrNullByte},
		{name: "null byte in base", base: "/f\x00oo", add: "bar", wantErr: ErrNullByte},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Concat(tt.base, tt.add)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
