package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstants(t *testing.T) {
	require.Equal(t, "LOG_LEVEL", string(LogLevel))
	require.Equal(t, "LOG_FORMAT", string(LogFormat))
	require.Equal(t, "FORCE_COLOR", string(ForceColors))
	require.Equal(t, "NO_COLOR", string(NoColors))
	require.Equal(t, "TERM", string(Term))
	require.Equal(t, "QUEEMOJI_OUTPUT", string(OutputTemplate))
	require.Equal(t, "QUEEMOJI_BORDER", string(BorderStyles))
	require.Equal(t, "QUEEMOJI_SIZE", string(ImageSizes))
	require.Equal(t, "QUEEMOJI_REPLACE", string(ReplaceFiles))
}

func TestEnvVariable_Lookup(t *testing.T) {
	cases := []struct {
		giveEnv envVariable
	}{
		{giveEnv: OutputTemplate},
		{giveEnv: ImageSizes},
	}

	for _, tt := range cases {
		t.Run(tt.giveEnv.String(), func(t *testing.T) {
			require.NoError(t, os.Unsetenv(tt.giveEnv.String())) // make sure that env is unset for test

			defer func() { require.NoError(t, os.Unsetenv(tt.giveEnv.String())) }()

			value, exists := tt.giveEnv.Lookup()
			assert.False(t, exists)
			assert.Empty(t, value)

			assert.NoError(t, os.Setenv(tt.giveEnv.String(), "foo"))

			value, exists = tt.giveEnv.Lookup()
			assert.True(t, exists)
			assert.Equal(t, "foo", value)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	var (
		dir  = t.TempDir()
		path = filepath.Join(dir, DotEnvFileName)
	)

	require.NoError(t, os.WriteFile(path, []byte("QUEEMOJI_SIZE=64\nQUEEMOJI_BORDER=white\n"), 0o600))

	t.Setenv(BorderStyles.String(), "none") // already set, must not be overridden
	require.NoError(t, os.Unsetenv(ImageSizes.String()))

	defer func() { _ = os.Unsetenv(ImageSizes.String()) }()

	require.NoError(t, LoadDotEnv(path, filepath.Join(dir, "missing.env"), dir))

	size, _ := ImageSizes.Lookup()
	assert.Equal(t, "64", size)

	border, _ := BorderStyles.Lookup()
	assert.Equal(t, "none", border)
}
