package memolog_test

import (
	"errors"
	"testing"

	"github.com/on-the-ground/memo_ive_go/internal/memolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_RecordsCarryIdentity(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := memolog.New(zap.New(core), "square")

	l.Miss(3)
	l.Stored(3)
	l.Hit(3)

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)
	assert.Equal(t, "miss", entries[0].Message)
	assert.Equal(t, "stored", entries[1].Message)
	assert.Equal(t, "hit", entries[2].Message)

	id := entries[0].ContextMap()["memo_id"]
	assert.NotEmpty(t, id)
	for _, e := range entries {
		ctx := e.ContextMap()
		assert.Equal(t, id, ctx["memo_id"])
		assert.Equal(t, "square", ctx["memo"])
		assert.Equal(t, memolog.KeyDigest(3), ctx["key_digest"])
	}
}

func TestLogger_DistinctInstancesGetDistinctIds(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	memolog.New(zap.New(core), "a").Hit(1)
	memolog.New(zap.New(core), "b").Hit(1)

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.NotEqual(t, entries[0].ContextMap()["memo_id"], entries[1].ContextMap()["memo_id"])
}

func TestLogger_DebugSuppressedAboveLevel(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := memolog.New(zap.New(core), "quiet")

	l.Hit(1)
	l.Miss(1)
	l.Cleared(4)

	entries := logs.AllUntimed()
	require.Len(t, entries, 1)
	assert.Equal(t, "cleared", entries[0].Message)
	assert.EqualValues(t, 4, entries[0].ContextMap()["dropped"])
}

func TestLogger_Failed(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := memolog.New(zap.New(core), "")

	l.Failed("k", errors.New("boom"))

	entries := logs.FilterMessage("failed").AllUntimed()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "boom", entries[0].ContextMap()["error"])
}

func TestLogger_NilZapIsNop(t *testing.T) {
	l := memolog.New(nil, "nop")
	assert.NotPanics(t, func() {
		l.Hit(1)
		l.Failed(1, errors.New("x"))
		l.Cleared(0)
	})
}

func TestKeyDigest_EqualRenderingsCollide(t *testing.T) {
	type pair struct{ A, B int }
	assert.Equal(t, memolog.KeyDigest(pair{1, 2}), memolog.KeyDigest(pair{1, 2}))
	assert.NotEqual(t, memolog.KeyDigest(pair{1, 2}), memolog.KeyDigest(pair{2, 1}))
}

func TestNewConsole(t *testing.T) {
	z, err := memolog.NewConsole()
	require.NoError(t, err)
	assert.True(t, z.Core().Enabled(zapcore.DebugLevel))

	l := memolog.New(z, "console")
	assert.NotPanics(t, func() { l.Hit(1) })
}
