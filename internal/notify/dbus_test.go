//go:build linux

package notify

import (
	"errors"
	"os"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedCall struct {
	method string
	args   []any
}

// fakeBus answers Notify with a fixed id.
type fakeBus struct {
	calls []recordedCall
	id    uint32
	err   error
}

func (b *fakeBus) Call(method string, _ dbus.Flags, args ...any) *dbus.Call {
	b.calls = append(b.calls, recordedCall{method: method, args: args})
	if b.err != nil {
		return &dbus.Call{Err: b.err}
	}
	return &dbus.Call{Body: []any{b.id}}
}

func TestDBusNotifier_Notify(t *testing.T) {
	bus := &fakeBus{id: 42}
	n := &dbusNotifier{obj: bus}

	id, err := n.Notify(Notification{
		Title:      "Artist - Title",
		Body:       "Groove Salad",
		Icon:       songIcon,
		Timeout:    songTimeout,
		ReplacesID: 41,
		Urgency:    UrgencyLow,
	})

	require.NoError(t, err)
	assert.Equal(t, uint32(42), id)
	require.Len(t, bus.calls, 1)

	c := bus.calls[0]
	assert.Equal(t, "org.freedesktop.Notifications.Notify", c.method)
	require.Len(t, c.args, 8)
	assert.Equal(t, "waveradio", c.args[0])
	assert.Equal(t, uint32(41), c.args[1])
	assert.Equal(t, songIcon, c.args[2])
	assert.Equal(t, "Artist - Title", c.args[3])
	assert.Equal(t, "Groove Salad", c.args[4])
	assert.Equal(t, int32(songTimeout), c.args[7])

	hints := c.args[6].(map[string]dbus.Variant)
	assert.Equal(t, byte(UrgencyLow), hints["urgency"].Value())
	assert.Equal(t, "waveradio", hints["desktop-entry"].Value())
}

func TestDBusNotifier_Errors(t *testing.T) {
	bus := &fakeBus{err: errors.New("no server")}
	n := &dbusNotifier{obj: bus}

	id, err := n.Notify(Notification{Title: "x"})
	assert.Zero(t, id)
	assert.ErrorContains(t, err, "no server")

	assert.Error(t, n.Close(3))
}

func TestDBusNotifier_CloseZeroIsNoop(t *testing.T) {
	bus := &fakeBus{}
	n := &dbusNotifier{obj: bus}

	require.NoError(t, n.Close(0))
	assert.Empty(t, bus.calls)

	require.NoError(t, n.Close(9))
	require.Len(t, bus.calls, 1)
	assert.Equal(t, "org.freedesktop.Notifications.CloseNotification", bus.calls[0].method)
	assert.Equal(t, []any{uint32(9)}, bus.calls[0].args)
}

func TestNew_NeverFails(t *testing.T) {
	if os.Getenv("DBUS_SESSION_BUS_ADDRESS") == "" {
		t.Skip("no D-Bus session available")
	}
	n, err := New()
	require.NoError(t, err)
	require.NotNil(t, n)
}
