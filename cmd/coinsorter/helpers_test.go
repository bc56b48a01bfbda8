package main

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Oichkatzelesfrettschen/CoinSorter/coins"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "137", want: 137},
		{in: "0", want: 0},
		{in: "007", want: 7},
		{in: "-5", wantErr: true},
		{in: "12abc", wantErr: true},
		{in: "", wantErr: true},
		{in: "1.5", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseAmount(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestResolveObjective(t *testing.T) {
	resetDirGlobals(t)

	t.Run("flag wins", func(t *testing.T) {
		obj, err := resolveObjective("diam")
		require.NoError(t, err)
		assert.Equal(t, coins.MinDiameter, obj)
	})

	t.Run("config default when flag empty", func(t *testing.T) {
		cfg = viper.New()
		cfg.Set(cfgKeyDefaultObjective, "area")
		obj, err := resolveObjective("")
		require.NoError(t, err)
		assert.Equal(t, coins.MinArea, obj)
		cfg = nil
	})

	t.Run("count without any config", func(t *testing.T) {
		obj, err := resolveObjective("")
		require.NoError(t, err)
		assert.Equal(t, coins.MinCount, obj)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := resolveObjective("weight")
		assert.ErrorIs(t, err, coins.ErrUnknownObjective)
	})
}

// TestResolveSystem_Builtin verifies builtins resolve without touching
// the data directory.
func TestResolveSystem_Builtin(t *testing.T) {
	resetDirGlobals(t)

	sys, err := resolveSystem("eur")
	require.NoError(t, err)
	assert.Equal(t, "eur", sys.Name)
	assert.Len(t, sys.Coins, 8)
}

// TestResolveSystem_DefaultFromConfig verifies the empty name falls
// back to the configured default table.
func TestResolveSystem_DefaultFromConfig(t *testing.T) {
	resetDirGlobals(t)
	cfg = viper.New()
	cfg.Set(cfgKeyDefaultSystem, "cny")

	sys, err := resolveSystem("")
	require.NoError(t, err)
	assert.Equal(t, "cny", sys.Name)
}

// TestResolveSystem_UnknownName verifies lookup failure surfaces the
// registry error after consulting the store.
func TestResolveSystem_UnknownName(t *testing.T) {
	resetDirGlobals(t)
	flagDataDir = t.TempDir()

	_, err := resolveSystem("no-such-table")
	assert.Error(t, err)
}
