package session_test

import (
	"context"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rumagent/pkg/session"
	"github.com/dmitrymomot/rumagent/pkg/storage"
)

var idPattern = regexp.MustCompile(`^[0-9a-z]{8}$`)

type fixture struct {
	store   *storage.Storage
	manager *session.Manager
	now     time.Time
}

func setupManager(t *testing.T, opts ...session.Option) *fixture {
	t.Helper()

	f := &fixture{
		store: storage.New(storage.NewMemoryStore(), "pa", storage.KindNative, nil),
		now:   time.Unix(1700000000, 0),
	}

	opts = append([]session.Option{
		session.WithConfig(session.Config{
			IDLength:               8,
			Lifetime:               1800 * time.Second,
			ReturningVisitorWindow: 2592000 * time.Second,
			Version:                "1.4.0",
		}),
		session.WithClock(func() time.Time { return f.now }),
	}, opts...)

	f.manager = session.New(f.store, opts...)
	return f
}

func (f *fixture) seed(ctx context.Context, id string, startedAgo int64, step string) {
	f.store.Set(ctx, session.KeyID, id)
	f.store.Set(ctx, session.KeyStartTime, strconv.FormatInt(f.now.Unix()-startedAgo, 10))
	if step != "" {
		f.store.Set(ctx, session.KeyInteractionStep, step)
	}
}

func TestManager_Info(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("starts a session when nothing is stored", func(t *testing.T) {
		t.Parallel()
		f := setupManager(t)

		info := f.manager.Info(ctx)
		assert.Regexp(t, idPattern, info.ID)
		assert.Equal(t, f.now.Unix(), info.StartTime)
		assert.Equal(t, 1, info.InteractionStep)
		assert.False(t, info.ReturningVisitor)
		assert.Equal(t, "1.4.0", info.Version)

		assert.Equal(t, info.ID, f.store.Get(ctx, session.KeyID))
		assert.Equal(t, strconv.FormatInt(f.now.Unix(), 10), f.store.Get(ctx, session.KeyStartTime))
		assert.Equal(t, "1", f.store.Get(ctx, session.KeyInteractionStep))
		assert.Equal(t, "0", f.store.Get(ctx, session.KeyReturningVisitor))
	})

	t.Run("continues an active session", func(t *testing.T) {
		t.Parallel()
		f := setupManager(t)
		f.seed(ctx, "abcd1234", 100, "4")

		info := f.manager.Info(ctx)
		assert.Equal(t, "abcd1234", info.ID)
		assert.Equal(t, f.now.Unix()-100, info.StartTime)
		assert.Equal(t, 4, info.InteractionStep)
		assert.False(t, info.ReturningVisitor)
	})

	t.Run("session at exactly the lifetime is still active", func(t *testing.T) {
		t.Parallel()
		f := setupManager(t)
		f.seed(ctx, "abcd1234", 1800, "")

		assert.Equal(t, "abcd1234", f.manager.Info(ctx).ID)
	})

	t.Run("active session keeps the stored returning flag", func(t *testing.T) {
		t.Parallel()
		f := setupManager(t)
		f.seed(ctx, "abcd1234", 10, "2")
		f.store.Set(ctx, session.KeyReturningVisitor, "1")

		assert.True(t, f.manager.Info(ctx).ReturningVisitor)
	})

	t.Run("expired session restarts as returning visitor", func(t *testing.T) {
		t.Parallel()
		f := setupManager(t)
		f.seed(ctx, "abcd1234", 2000, "7")

		info := f.manager.Info(ctx)
		assert.NotEqual(t, "abcd1234", info.ID)
		assert.Regexp(t, idPattern, info.ID)
		assert.Equal(t, f.now.Unix(), info.StartTime)
		assert.Equal(t, 1, info.InteractionStep)
		assert.True(t, info.ReturningVisitor)
		assert.Equal(t, "1", f.store.Get(ctx, session.KeyReturningVisitor))
		assert.Equal(t, "1", f.store.Get(ctx, session.KeyInteractionStep))
	})

	t.Run("session older than the returning window restarts as new visitor", func(t *testing.T) {
		t.Parallel()
		f := setupManager(t)
		f.seed(ctx, "abcd1234", 2592001, "3")

		info := f.manager.Info(ctx)
		assert.NotEqual(t, "abcd1234", info.ID)
		assert.False(t, info.ReturningVisitor)
		assert.Equal(t, "0", f.store.Get(ctx, session.KeyReturningVisitor))
	})

	t.Run("id without start time starts a session", func(t *testing.T) {
		t.Parallel()
		f := setupManager(t)
		f.store.Set(ctx, session.KeyID, "abcd1234")

		info := f.manager.Info(ctx)
		assert.NotEqual(t, "abcd1234", info.ID)
		assert.False(t, info.ReturningVisitor)
	})

	t.Run("non-numeric start time starts a session", func(t *testing.T) {
		t.Parallel()
		f := setupManager(t)
		f.store.Set(ctx, session.KeyID, "abcd1234")
		f.store.Set(ctx, session.KeyStartTime, "yesterday")

		assert.NotEqual(t, "abcd1234", f.manager.Info(ctx).ID)
	})

	t.Run("repeated calls return the same session", func(t *testing.T) {
		t.Parallel()
		f := setupManager(t)

		first := f.manager.Info(ctx)
		f.now = f.now.Add(10 * time.Minute)
		second := f.manager.Info(ctx)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, first.StartTime, second.StartTime)
	})
}

func TestManager_InteractionStep(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tests := []struct {
		name   string
		stored string
		want   int
	}{
		{name: "unset", stored: "", want: 1},
		{name: "numeric", stored: "5", want: 5},
		{name: "non-numeric", stored: "five", want: 1},
		{name: "zero", stored: "0", want: 1},
		{name: "negative", stored: "-2", want: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f := setupManager(t)
			if tc.stored != "" {
				f.store.Set(ctx, session.KeyInteractionStep, tc.stored)
			}
			assert.Equal(t, tc.want, f.manager.InteractionStep(ctx))
		})
	}
}

func TestManager_BumpInteractionStep(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := setupManager(t)
	f.seed(ctx, "abcd1234", 100, "3")

	f.manager.BumpInteractionStep(ctx)
	assert.Equal(t, "4", f.store.Get(ctx, session.KeyInteractionStep))
	assert.Equal(t, 4, f.manager.Info(ctx).InteractionStep)

	empty := setupManager(t)
	empty.manager.BumpInteractionStep(ctx)
	assert.Equal(t, "2", empty.store.Get(ctx, session.KeyInteractionStep))
}

func TestManager_MarkActive(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := setupManager(t)
	f.seed(ctx, "abcd1234", 500, "")

	got := f.manager.MarkActive(ctx)
	assert.Equal(t, f.now.Unix(), got)
	assert.Equal(t, strconv.FormatInt(f.now.Unix(), 10), f.store.Get(ctx, session.KeyStartTime))
}

func TestManager_GenerateID(t *testing.T) {
	t.Parallel()

	t.Run("lower bound", func(t *testing.T) {
		t.Parallel()
		f := setupManager(t, session.WithRandom(func(int64) int64 { return 0 }))
		assert.Equal(t, "10000000", f.manager.GenerateID())
	})

	t.Run("upper bound", func(t *testing.T) {
		t.Parallel()
		var span int64
		f := setupManager(t, session.WithRandom(func(n int64) int64 {
			span = n
			return n - 1
		}))
		assert.Equal(t, "zzzzzzzy", f.manager.GenerateID())
		assert.Equal(t, int64(2742745743359), span)
	})

	t.Run("random ids are 8 lowercase alphanumerics", func(t *testing.T) {
		t.Parallel()
		f := setupManager(t)
		seen := make(map[string]struct{})
		for range 1000 {
			id := f.manager.GenerateID()
			require.Regexp(t, idPattern, id)
			seen[id] = struct{}{}
		}
		assert.Greater(t, len(seen), 990)
	})

	t.Run("custom length", func(t *testing.T) {
		t.Parallel()
		cfg := session.DefaultConfig()
		cfg.IDLength = 4
		f := setupManager(t, session.WithConfig(cfg))
		assert.Regexp(t, `^[0-9a-z]{4}$`, f.manager.GenerateID())
	})

	t.Run("out of range length falls back to default", func(t *testing.T) {
		t.Parallel()
		cfg := session.DefaultConfig()
		cfg.IDLength = 40
		f := setupManager(t, session.WithConfig(cfg))
		assert.Regexp(t, idPattern, f.manager.GenerateID())
	})
}

func TestInfo_Fields(t *testing.T) {
	t.Parallel()

	info := session.Info{ID: "abcd1234", StartTime: 1700000000, InteractionStep: 2, ReturningVisitor: true, Version: "1.4.0"}
	assert.Equal(t, map[string]string{
		"sId": "abcd1234",
		"sST": "1700000000",
		"sIS": "2",
		"rV":  "1",
		"v":   "1.4.0",
	}, info.Fields())
}
