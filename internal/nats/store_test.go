package nats

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubjects(t *testing.T) {
	assert.Equal(t, "wheelr.alarm-hour.>", SubjectForPicker("alarm-hour"))
	assert.Equal(t, "wheelr.alarm-hour.changed", SubjectForEvent("alarm-hour", EventTypeChanged))
	assert.Equal(t, "wheelr.date.pick", SubjectForEvent("date", EventTypePick))
}

func TestOpenPublishAndClose(t *testing.T) {
	ctx := context.Background()
	conn, err := Open(ctx, t.TempDir())
	require.NoError(t, err)

	_, err = conn.JS.Publish(ctx, SubjectForEvent("p", EventTypeScroll), []byte(`{}`))
	require.NoError(t, err)

	info, err := conn.Stream.Info(ctx)
	require.NoError(t, err)
	assert.Equal(t, "wheelr_events", info.Config.Name)
	assert.Equal(t, uint64(1), info.State.Msgs)

	require.NoError(t, conn.Close())
}

func TestReopenKeepsEvents(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	conn, err := Open(ctx, dir)
	require.NoError(t, err)
	_, err = conn.JS.Publish(ctx, SubjectForEvent("p", EventTypePick), []byte(`{}`))
	require.NoError(t, err)
	require.NoError(t, conn.Close())

	conn, err = Open(ctx, dir)
	require.NoError(t, err)
	defer func() { _ = conn.Close() }()

	info, err := conn.Stream.Info(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), info.State.Msgs)
}

func TestShutdownNil(t *testing.T) {
	assert.NoError(t, Shutdown(nil, nil))
}
