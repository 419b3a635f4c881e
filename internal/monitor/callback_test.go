package monitor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDescribeCallbackRunsProvider(t *testing.T) {
	fr := &fakeRunner{out: "Subscribers: 2\n"}
	mon := NewRos2("", WithRunner(fr.run))
	cb := NewDescribeCallback("node-info", "detail", mon.Nodes())

	require.Equal(t, "node-info", cb.Name())
	require.Equal(t, "detail", cb.TargetWindow())

	out, err := cb.Run(context.Background(), "/talker")
	require.NoError(t, err)
	require.Equal(t, "Subscribers: 2\n", out)
	require.Equal(t, []string{"ros2 node info /talker"}, fr.calls)
}

func TestTopicCallbackCyclesModes(t *testing.T) {
	fr := &fakeRunner{out: ""}
	mon := NewRos2("", WithRunner(fr.run))
	cb := NewTopicCallback("topic-detail", "detail", mon.Topics(), NewEchoStreamer("", nil))

	require.Equal(t, ModeInfo, cb.Mode())
	require.False(t, cb.Streaming())

	require.Equal(t, ModeEcho, cb.CycleMode())
	require.True(t, cb.Streaming())

	require.Equal(t, ModeInfo, cb.CycleMode())
	require.False(t, cb.Streaming())
}

func TestTopicCallbackRunIsInfo(t *testing.T) {
	fr := &fakeRunner{out: "Type: rcl_interfaces/msg/Log\n"}
	mon := NewRos2("", WithRunner(fr.run))
	cb := NewTopicCallback("topic-detail", "detail", mon.Topics(), NewEchoStreamer("", nil))

	out, err := cb.Run(context.Background(), "/rosout")
	require.NoError(t, err)
	require.Equal(t, "Type: rcl_interfaces/msg/Log\n", out)
	require.Equal(t, []string{"ros2 topic info /rosout"}, fr.calls)
}
