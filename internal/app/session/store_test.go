package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/algomy/internal/app/session"
	"github.com/ZanzyTHEbar/algomy/internal/domain/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	bindings := map[string]expr.Expr{
		"x": expr.Int(3),
		"y": expr.Frac(1, 2),
	}

	require.NoError(t, session.Save(path, bindings))

	loaded, err := session.Load(path)
	require.NoError(t, err)

	assert.True(t, expr.Equal(loaded["x"], expr.Int(3)))
	assert.True(t, expr.Equal(loaded["y"], expr.Frac(1, 2)))
}

func TestLoadRejectsInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := session.Load(path)
	assert.Error(t, err)
}
