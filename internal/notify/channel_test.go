package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowOverwritesSlot(t *testing.T) {
	c := New(DefaultDuration)

	c.Show("first", SeverityInfo)
	c.Show("second", SeverityError)

	n := c.Current()
	assert.True(t, n.Visible)
	assert.Equal(t, "second", n.Message)
	assert.Equal(t, SeverityError, n.Severity)
	assert.Equal(t, uint64(2), n.Generation)
}

func TestStaleExpiryIsIgnored(t *testing.T) {
	c := New(DefaultDuration)

	c.Success("saved")
	first := c.Current().Generation
	c.Error("failed")

	assert.False(t, c.Expire(ExpiredMsg{Generation: first}), "old timer must not hide the newer notification")
	assert.True(t, c.Current().Visible)

	assert.True(t, c.Expire(ExpiredMsg{Generation: c.Current().Generation}))
	assert.False(t, c.Current().Visible)

	assert.False(t, c.Expire(ExpiredMsg{Generation: c.Current().Generation}), "second expiry is a no-op")
}

func TestDismiss(t *testing.T) {
	c := New(DefaultDuration)
	c.Success("saved")
	c.Dismiss()
	assert.False(t, c.Current().Visible)
	assert.Equal(t, "saved", c.Current().Message)
}

func TestShowReturnsExpiryCommand(t *testing.T) {
	c := New(10 * time.Millisecond)
	cmd := c.Show("saved", SeveritySuccess)
	require.NotNil(t, cmd)

	msg := cmd()
	expired, ok := msg.(ExpiredMsg)
	require.True(t, ok, "got %T", msg)
	assert.Equal(t, c.Current().Generation, expired.Generation)
	assert.True(t, c.Expire(expired))
}

func TestZeroDurationDisablesTimer(t *testing.T) {
	c := New(0)
	assert.Nil(t, c.Show("saved", SeveritySuccess))
	assert.True(t, c.Current().Visible)
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "success", SeveritySuccess.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "info", SeverityInfo.String())
}
