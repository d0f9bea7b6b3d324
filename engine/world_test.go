package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/derby/component"
	"github.com/lixenwraith/derby/constant"
	"github.com/lixenwraith/derby/core"
	"github.com/lixenwraith/derby/event"
	"github.com/lixenwraith/derby/sprite"
)

func TestWorldEntities(t *testing.T) {
	w := NewWorld(nil)

	a := w.CreateEntity()
	b := w.CreateEntity()
	assert.Equal(t, core.Entity(1), a, "zero is never issued")
	assert.Equal(t, core.Entity(2), b)

	w.Components.Batter.Set(a, component.BatterComponent{})
	w.Components.Bat.Set(a, component.BatComponent{Swinging: true})
	assert.True(t, w.Alive(a))
	assert.False(t, w.Alive(b))

	w.DestroyEntity(a)
	assert.False(t, w.Alive(a))
	assert.Equal(t, 0, w.Components.Bat.Count())

	w.Components.Ball.Set(b, component.BallComponent{})
	w.Clear()
	assert.False(t, w.Alive(b))
	assert.Equal(t, core.Entity(1), w.CreateEntity())
}

func TestWorldTickUpdatesTimeAndEvents(t *testing.T) {
	w := NewWorld(nil)
	now := time.Unix(42, 0)

	w.AddSystem(&testSystem{name: "emit", access: Access{}, tick: func(w *World, tick TickData) {
		w.PushEvent(event.EventPhaseChanged, nil)
	}})

	require.NoError(t, w.Tick(now, TickData{DeltaMs: 16, Frame: 7}))
	assert.Equal(t, now, w.Resource.Time.GameTime)
	assert.Equal(t, 16.0, w.Resource.Time.DeltaMs)

	evs := w.Resource.Events.Consume()
	require.Len(t, evs, 1)
	assert.Equal(t, uint64(7), evs[0].Frame)
}

func testClips(t *testing.T, names ...string) *sprite.ClipStore {
	t.Helper()
	cs := sprite.NewClipStore()
	for _, n := range names {
		require.NoError(t, cs.Define(n, []sprite.Frame{{Cell: 0, Duration: 100}}))
	}
	return cs
}

func TestSpawnMatch(t *testing.T) {
	w := NewWorld(nil)
	m, err := SpawnMatch(w,
		testClips(t, constant.ClipReady),
		testClips(t, constant.ClipNoBar, constant.ClipPointer))
	require.NoError(t, err)

	_, flow, ok := w.Flow()
	require.True(t, ok)
	assert.Equal(t, component.PhaseWaitingForPlayer, flow.Active)
	assert.False(t, flow.Transitioned)

	p, ok := w.Components.Pitcher.Get(m.Pitcher)
	require.True(t, ok)
	assert.Equal(t, constant.ClipReady, p.ActiveClip.Name())
	assert.Equal(t, sprite.Loop, p.ActiveClip.Mode())

	meter, ok := w.Components.PowerMeter.Get(m.Meter)
	require.True(t, ok)
	assert.Equal(t, constant.ClipNoBar, meter.ActiveClip.Name())
	assert.Equal(t, constant.ClipPointer, meter.PointerClip.Name())

	assert.True(t, w.Components.Batter.Has(m.Batter))
	assert.True(t, w.Components.Ball.Has(m.Ball))
	ground, _ := w.Components.Ground.Get(m.Field)
	space, _ := w.Components.OuterSpace.Get(m.Field)
	assert.Equal(t, 280.0, ground.Y)
	assert.Equal(t, 20.0, space.Y)
}

func TestSpawnMatchMissingClip(t *testing.T) {
	w := NewWorld(nil)
	_, err := SpawnMatch(w, testClips(t), testClips(t, constant.ClipNoBar, constant.ClipPointer))
	assert.True(t, errors.Is(err, sprite.ErrUnknownClip))
	assert.Equal(t, 0, w.Components.GameFlow.Count(), "nothing spawned on error")
}
