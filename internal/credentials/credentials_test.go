package credentials

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	user, pass string
}

func (f fakeSource) User() string     { return f.user }
func (f fakeSource) Password() string { return f.pass }

func TestResolveLiteral(t *testing.T) {
	v, err := Resolve("bob")
	require.NoError(t, err)
	assert.Equal(t, "bob", v)
}

func TestResolveLiteralKeepsWhitespace(t *testing.T) {
	v, err := Resolve("  bob ")
	require.NoError(t, err)
	assert.Equal(t, "  bob ", v)
}

func TestResolveEnv(t *testing.T) {
	t.Setenv("PAGEGEN_TEST_FOO", "bob")

	for _, in := range []string{"env.PAGEGEN_TEST_FOO", "  env.PAGEGEN_TEST_FOO  "} {
		v, err := Resolve(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, "bob", v, "input %q", in)
	}
}

// An upper-case marker is detected but not stripped, so the whole value is
// the variable name.
func TestResolveEnvUpperCaseMarker(t *testing.T) {
	t.Setenv("PAGEGEN_TEST_FOO", "bob")
	os.Unsetenv("ENV.PAGEGEN_TEST_FOO")

	_, err := Resolve("ENV.PAGEGEN_TEST_FOO")
	var me *MissingEnvError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, "ENV.PAGEGEN_TEST_FOO", me.Name)

	t.Setenv("Env.PAGEGEN_TEST_FOO", "carol")
	v, err := Resolve(" Env.PAGEGEN_TEST_FOO ")
	require.NoError(t, err)
	assert.Equal(t, "carol", v)
}

func TestResolveEnvEmptyValue(t *testing.T) {
	t.Setenv("PAGEGEN_TEST_EMPTY", "")
	v, err := Resolve("env.PAGEGEN_TEST_EMPTY")
	require.NoError(t, err)
	assert.Equal(t, "", v)
}

func TestResolveEnvMissing(t *testing.T) {
	os.Unsetenv("PAGEGEN_TEST_UNSET")

	_, err := Resolve("env.PAGEGEN_TEST_UNSET")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingEnv)

	var me *MissingEnvError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, "PAGEGEN_TEST_UNSET", me.Name)
}

func TestEnvReference(t *testing.T) {
	tests := []struct {
		in   string
		name string
		ok   bool
	}{
		{"env.USER_VAR", "USER_VAR", true},
		{" env.USER_VAR\t", "USER_VAR", true},
		{"ENV.Mixed_Case", "ENV.Mixed_Case", true},
		{"Env.X", "Env.X", true},
		{"ENV.env.X", "ENV.X", true},
		{"myenv.X", "myX", true},
		{"env.env.X", "env.X", true},
		{"plain", "", false},
		{"envX", "", false},
	}
	for _, tt := range tests {
		name, ok := EnvReference(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.name, name, "input %q", tt.in)
	}
}

func TestFromConfigMixed(t *testing.T) {
	t.Setenv("PAGEGEN_TEST_PASS", "s3cret")

	creds, err := FromConfig(fakeSource{user: "alice", pass: "env.PAGEGEN_TEST_PASS"})
	require.NoError(t, err)
	assert.Equal(t, Credentials{User: "alice", Password: "s3cret"}, creds)
}

func TestFromConfigBothEnv(t *testing.T) {
	t.Setenv("PAGEGEN_TEST_USER", "carol")
	t.Setenv("PAGEGEN_TEST_PASS", "pw")

	creds, err := FromConfig(fakeSource{user: "env.PAGEGEN_TEST_USER", pass: "env.PAGEGEN_TEST_PASS"})
	require.NoError(t, err)
	assert.Equal(t, "carol", creds.User)
	assert.Equal(t, "pw", creds.Password)
}

func TestFromConfigMissingPassword(t *testing.T) {
	os.Unsetenv("PAGEGEN_TEST_NOPASS")

	_, err := FromConfig(fakeSource{user: "alice", pass: "env.PAGEGEN_TEST_NOPASS"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingEnv)
	assert.Contains(t, err.Error(), "resolving password")
}

func TestLoadDotEnv(t *testing.T) {
	os.Unsetenv("PAGEGEN_DOTENV_USER")
	t.Setenv("PAGEGEN_DOTENV_KEEP", "from-env")
	t.Cleanup(func() { os.Unsetenv("PAGEGEN_DOTENV_USER") })

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PAGEGEN_DOTENV_USER=dave\nPAGEGEN_DOTENV_KEEP=from-file\n"), 0644))

	require.NoError(t, LoadDotEnv(path))

	v, err := Resolve("env.PAGEGEN_DOTENV_USER")
	require.NoError(t, err)
	assert.Equal(t, "dave", v)
	assert.Equal(t, "from-env", os.Getenv("PAGEGEN_DOTENV_KEEP"))
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
	assert.NoError(t, LoadDotEnv(""))
}
