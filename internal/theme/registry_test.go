package theme

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themecast/internal/logger"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	reg := NewRegistry(Options{Table: NewTable(asciiRenderer(), Palettes{})})
	t.Cleanup(reg.Close)
	return reg
}

func TestRegistryStartsLight(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	assert.Equal(t, Light, reg.Selector())
	assert.False(t, reg.Current().Dark)
	assert.Equal(t, "#f2f7fa", reg.Current().Palette.Background)
}

func TestRegistryHonoursInitialSelector(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(Options{Initial: Dark})
	defer reg.Close()
	assert.True(t, reg.Current().Dark)
}

func TestToggleRoundTripsEveryTwoCalls(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	for i := 1; i <= 9; i++ {
		reg.Toggle()
		if i%2 == 0 {
			require.Equal(t, Light, reg.Selector(), "after %d toggles", i)
		} else {
			require.Equal(t, Dark, reg.Selector(), "after %d toggles", i)
		}
		require.Equal(t, reg.Selector().IsDark(), reg.Current().Dark)
	}
}

func TestToggleDeliversToEverySubscriberOnce(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)

	const n = 5
	calls := make([]int, n)
	got := make([]StyleBundle, n)
	for i := 0; i < n; i++ {
		i := i
		reg.Subscribe(func(b StyleBundle) {
			calls[i]++
			got[i] = b
		})
	}

	reg.Toggle()

	for i := 0; i < n; i++ {
		assert.Equal(t, 1, calls[i], "subscriber %d", i)
		assert.True(t, got[i].Dark, "subscriber %d", i)
	}
}

func TestToggleDeliversInSubscriptionOrder(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)

	var order []string
	reg.Subscribe(func(StyleBundle) { order = append(order, "title") })
	reg.Subscribe(func(StyleBundle) { order = append(order, "content") })
	reg.Subscribe(func(StyleBundle) { order = append(order, "button") })

	reg.Toggle()
	assert.Equal(t, []string{"title", "content", "button"}, order)
}

func TestSubscriberSeesCommittedSelector(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)

	var seen Selector = Light
	reg.Subscribe(func(StyleBundle) { seen = reg.Selector() })

	reg.Toggle()
	assert.Equal(t, Dark, seen)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)

	var removed, kept int
	sub := reg.Subscribe(func(StyleBundle) { removed++ })
	reg.Subscribe(func(StyleBundle) { kept++ })

	sub.Unsubscribe()
	reg.Toggle()

	assert.Zero(t, removed)
	assert.Equal(t, 1, kept)
	assert.Equal(t, 1, reg.Len())
}

func TestUnsubscribeTwiceIsNoop(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	sub := reg.Subscribe(func(StyleBundle) {})

	require.NotPanics(t, func() {
		sub.Unsubscribe()
		sub.Unsubscribe()
		reg.Unsubscribe(sub)
		reg.Unsubscribe(nil)
		reg.Unsubscribe(&Subscription{id: 42, registry: reg})
	})
	assert.Zero(t, reg.Len())
}

func TestUnsubscribeIgnoresForeignHandle(t *testing.T) {
	t.Parallel()

	a := newTestRegistry(t)
	b := newTestRegistry(t)

	subA := a.Subscribe(func(StyleBundle) {})
	b.Subscribe(func(StyleBundle) {})

	b.Unsubscribe(subA)
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 1, b.Len())
}

func TestSameListenerSubscribedTwiceIsRemovedIndividually(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)

	calls := 0
	fn := func(StyleBundle) { calls++ }
	first := reg.Subscribe(fn)
	reg.Subscribe(fn)

	reg.Toggle()
	assert.Equal(t, 2, calls)

	first.Unsubscribe()
	reg.Toggle()
	assert.Equal(t, 3, calls)
}

func TestUnsubscribeDuringDeliverySkipsRemoved(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)

	var second *Subscription
	secondCalls := 0
	reg.Subscribe(func(StyleBundle) { second.Unsubscribe() })
	second = reg.Subscribe(func(StyleBundle) { secondCalls++ })

	reg.Toggle()
	assert.Zero(t, secondCalls)
	assert.Equal(t, 1, reg.Len())
}

func TestToggleFromListenerLeavesEverySubscriberOnCurrent(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)

	var a, b []bool
	toggled := false
	reg.Subscribe(func(sb StyleBundle) {
		a = append(a, sb.Dark)
		if !toggled {
			toggled = true
			reg.Toggle()
		}
	})
	reg.Subscribe(func(sb StyleBundle) { b = append(b, sb.Dark) })

	reg.Toggle()

	require.Equal(t, Light, reg.Selector())
	require.Equal(t, []bool{true, false}, a)
	require.Equal(t, []bool{false}, b, "the superseded dark bundle never reaches later subscribers")
	require.Equal(t, reg.Current().Dark, a[len(a)-1])
	require.Equal(t, reg.Current().Dark, b[len(b)-1])
}

func TestToggleFromListenerDoesNotNestDelivery(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)

	depth, maxDepth, remaining := 0, 0, 3
	reg.Subscribe(func(StyleBundle) {
		depth++
		if depth > maxDepth {
			maxDepth = depth
		}
		if remaining > 0 {
			remaining--
			reg.Toggle()
		}
		depth--
	})

	reg.Toggle()

	assert.Equal(t, 1, maxDepth)
	assert.Equal(t, Light, reg.Selector(), "four flips in total")
}

func TestToggleAfterPanickingListenerStillDelivers(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)

	sub := reg.Subscribe(func(StyleBundle) { panic("boom") })
	require.Panics(t, reg.Toggle)
	sub.Unsubscribe()

	calls := 0
	reg.Subscribe(func(StyleBundle) { calls++ })
	reg.Toggle()
	assert.Equal(t, 1, calls)
}

func TestCloseReleasesSubscriptions(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(Options{Table: NewTable(asciiRenderer(), Palettes{})})

	calls := 0
	reg.Subscribe(func(StyleBundle) { calls++ })
	reg.Close()
	reg.Close()

	reg.Toggle()
	assert.Zero(t, calls)
	assert.Zero(t, reg.Len())

	late := reg.Subscribe(func(StyleBundle) { calls++ })
	reg.Toggle()
	assert.Zero(t, calls)
	require.NotPanics(t, late.Unsubscribe)
}

func TestEndToEndToggleScenario(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	require.Equal(t, Light, reg.Selector())

	var received []StyleBundle
	reg.Subscribe(func(b StyleBundle) { received = append(received, b) })

	reg.Toggle()
	require.Len(t, received, 1)
	assert.True(t, received[0].Dark)
	assert.Equal(t, DefaultPalettes().Dark, received[0].Palette)

	reg.Toggle()
	require.Len(t, received, 2)
	assert.False(t, received[1].Dark)
	assert.Equal(t, DefaultPalettes().Light, received[1].Palette)
}

func TestNilRegistryPanicsNotMounted(t *testing.T) {
	t.Parallel()

	var reg *Registry
	assert.PanicsWithValue(t, ErrNotMounted, func() { reg.Current() })
	assert.PanicsWithValue(t, ErrNotMounted, func() { reg.Toggle() })
	assert.PanicsWithValue(t, ErrNotMounted, func() { reg.Subscribe(func(StyleBundle) {}) })
}

func TestSubscribeNilListenerPanics(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	assert.Panics(t, func() { reg.Subscribe(nil) })
}

func TestRegistryLogsToggles(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	reg := NewRegistry(Options{Logger: log})
	reg.Subscribe(func(StyleBundle) {})
	reg.Toggle()
	reg.Close()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	var toggled map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &toggled))
	assert.Equal(t, "theme toggled", toggled["message"])
	assert.Equal(t, "dark", toggled["selector"])
	assert.EqualValues(t, 1, toggled["subscribers"])
	assert.Equal(t, "theme", toggled["component"])
}
