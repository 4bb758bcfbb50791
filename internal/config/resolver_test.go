package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_KnownProfiles(t *testing.T) {
	r := NewResolver(WithEnvironment(map[string]string{}))

	tests := []struct {
		name        string
		wantDebug   bool
		wantTesting bool
		wantDSN     string
	}{
		{ProfileDefault, true, false, "sqlite:///development.db"},
		{ProfileDevelopment, true, false, "sqlite:///development.db"},
		{ProfileTesting, true, true, "sqlite:///:memory:"},
		{ProfileProduction, false, false, "sqlite:///production.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := r.Resolve(tt.name)

			require.NoError(t, err)
			assert.Equal(t, tt.name, p.Name)
			assert.Equal(t, tt.wantDebug, p.Debug)
			assert.Equal(t, tt.wantTesting, p.Testing)
			assert.Equal(t, tt.wantDSN, p.DatabaseURI)
			assert.Equal(t, defaultSecretKey, p.SecretKey)
		})
	}
}

func TestResolver_Deterministic(t *testing.T) {
	r := NewResolver(WithEnvironment(map[string]string{"HBNB_SECRET_KEY": "s3cr3t"}))

	for _, name := range r.Names() {
		first, err := r.Resolve(name)
		require.NoError(t, err)
		second, err := r.Resolve(name)
		require.NoError(t, err)
		assert.Equal(t, first, second, name)
	}
}

func TestResolver_UnknownProfile(t *testing.T) {
	r := NewResolver(WithEnvironment(map[string]string{}))

	p, err := r.Resolve("bogus")

	require.Error(t, err)
	assert.Equal(t, Profile{}, p)
	assert.ErrorIs(t, err, ErrConfigNotFound)

	var notFound *ConfigNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "bogus", notFound.Name)
	assert.Equal(t, []string{"default", "development", "production", "testing"}, notFound.Valid)
	assert.Contains(t, err.Error(), `"bogus"`)
	assert.Contains(t, err.Error(), "default, development, production, testing")
}

func TestResolver_EnvironmentOverrides(t *testing.T) {
	r := NewResolver(WithEnvironment(map[string]string{
		"HBNB_SECRET_KEY":   "from-env",
		"HBNB_DATABASE_URI": "postgres://localhost/hbnb",
		"HBNB_DEBUG":        "true",
	}))

	p, err := r.Resolve(ProfileProduction)

	require.NoError(t, err)
	assert.Equal(t, "from-env", p.SecretKey)
	assert.Equal(t, "postgres://localhost/hbnb", p.DatabaseURI)
	assert.True(t, p.Debug)
	assert.False(t, p.Testing)
}

func TestResolver_OverridesDoNotLeakIntoTable(t *testing.T) {
	r := NewResolver(WithEnvironment(map[string]string{"HBNB_SECRET_KEY": "from-env"}))
	_, err := r.Resolve(ProfileDefault)
	require.NoError(t, err)

	assert.Equal(t, defaultSecretKey, Profiles()[ProfileDefault].SecretKey)

	clean := NewResolver(WithEnvironment(map[string]string{}))
	p, err := clean.Resolve(ProfileDefault)
	require.NoError(t, err)
	assert.Equal(t, defaultSecretKey, p.SecretKey)
}

func TestResolver_InvalidOverride(t *testing.T) {
	r := NewResolver(WithEnvironment(map[string]string{"HBNB_DEBUG": "maybe"}))

	_, err := r.Resolve(ProfileDefault)

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrConfigNotFound)
}

func TestResolver_ProcessEnvironment(t *testing.T) {
	t.Setenv("HBNB_DATABASE_URI", "sqlite:///from-process.db")

	p, err := NewResolver().Resolve(ProfileTesting)

	require.NoError(t, err)
	assert.Equal(t, "sqlite:///from-process.db", p.DatabaseURI)
}

func TestResolver_WithProfiles(t *testing.T) {
	table := map[string]Profile{"staging": {SecretKey: "stage"}}
	r := NewResolver(WithProfiles(table), WithEnvironment(map[string]string{}))

	table["other"] = Profile{}

	assert.Equal(t, []string{"staging"}, r.Names())
	p, err := r.Resolve("staging")
	require.NoError(t, err)
	assert.Equal(t, "stage", p.SecretKey)

	_, err = r.Resolve(ProfileDefault)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}
