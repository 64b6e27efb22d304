package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airdash/airdash/internal/logger"
	"github.com/airdash/airdash/models"
)

func TestBus_PublishReachesAllListeners(t *testing.T) {
	b := New(logger.Nop())

	var got []string
	b.Subscribe(func(e models.Event, _ any) { got = append(got, "a:"+string(e)) })
	b.Subscribe(func(e models.Event, _ any) { got = append(got, "b:"+string(e)) })

	b.Publish(models.EventConnectivityChanged, true)

	assert.Equal(t, []string{
		"a:" + string(models.EventConnectivityChanged),
		"b:" + string(models.EventConnectivityChanged),
	}, got)
}

func TestBus_PublishDeliversPayload(t *testing.T) {
	b := New(logger.Nop())

	var got any
	b.Subscribe(func(_ models.Event, payload any) { got = payload })

	report := models.DrainReport{Collection: models.CollectionBills, Succeeded: 2}
	b.Publish(models.EventQueueDrained, report)

	require.IsType(t, models.DrainReport{}, got)
	assert.Equal(t, report, got)
}

// A panicking listener must not prevent later listeners from running.
func TestBus_ListenerPanicIsIsolated(t *testing.T) {
	b := New(logger.Nop())

	var afterRan bool
	b.Subscribe(func(models.Event, any) { panic("boom") })
	b.Subscribe(func(models.Event, any) { afterRan = true })

	require.NotPanics(t, func() {
		b.Publish(models.EventRecordSynced, nil)
	})
	assert.True(t, afterRan, "listener after the panicking one must still run")
}

func TestBus_Unsubscribe(t *testing.T) {
	b := New(logger.Nop())

	var calls int
	sub := b.Subscribe(func(models.Event, any) { calls++ })

	b.Publish(models.EventIdentityChanged, "42")
	b.Unsubscribe(sub)
	b.Publish(models.EventIdentityChanged, "")

	assert.Equal(t, 1, calls)
}

func TestBus_UnsubscribeTwiceIsNoop(t *testing.T) {
	b := New(logger.Nop())

	sub := b.Subscribe(func(models.Event, any) {})
	b.Unsubscribe(sub)

	require.NotPanics(t, func() { b.Unsubscribe(sub) })
	require.NotPanics(t, func() { b.Unsubscribe(nil) })
}

func TestBus_PublishWithoutListeners(t *testing.T) {
	b := New(logger.Nop())

	require.NotPanics(t, func() {
		b.Publish(models.EventQueueEntryDropped, models.DroppedEntry{})
	})
}

// Subscription order survives unsubscription of a middle listener.
func TestBus_OrderAfterUnsubscribe(t *testing.T) {
	b := New(logger.Nop())

	var got []string
	b.Subscribe(func(models.Event, any) { got = append(got, "first") })
	mid := b.Subscribe(func(models.Event, any) { got = append(got, "middle") })
	b.Subscribe(func(models.Event, any) { got = append(got, "last") })

	b.Unsubscribe(mid)
	b.Publish(models.EventRecordSynced, nil)

	assert.Equal(t, []string{"first", "last"}, got)
}
