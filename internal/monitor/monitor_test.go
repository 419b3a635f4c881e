package monitor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeRunner scripts command output and records every invocation.
type fakeRunner struct {
	out   string
	err   error
	calls []string
}

func (f *fakeRunner) run(ctx context.Context, name string, args ...string) (string, error) {
	call := name
	for _, a := range args {
		call += " " + a
	}
	f.calls = append(f.calls, call)
	return f.out, f.err
}

func TestListItemsParsesOutput(t *testing.T) {
	fr := &fakeRunner{out: "/talker\n//rosout\n\n  /listener  \n"}
	mon := NewRos2("", WithRunner(fr.run))

	items, err := mon.Nodes().ListItems(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"/talker", "/rosout", "/listener"}, items)
	require.Equal(t, []string{"ros2 node list"}, fr.calls)
}

func TestListItemsError(t *testing.T) {
	fr := &fakeRunner{err: errors.New("daemon not running")}
	mon := NewRos2("", WithRunner(fr.run))

	_, err := mon.Topics().ListItems(context.Background())
	require.ErrorContains(t, err, "daemon not running")
}

func TestProviderCommands(t *testing.T) {
	fr := &fakeRunner{out: ""}
	mon := NewRos2("", WithRunner(fr.run))
	ctx := context.Background()

	_, _ = mon.Nodes().Describe(ctx, "/talker")
	_, _ = mon.Topics().Describe(ctx, "/rosout")
	_, _ = mon.Services().Describe(ctx, "/spawn")

	require.Equal(t, []string{
		"ros2 node info /talker",
		"ros2 topic info /rosout",
		"ros2 service type /spawn",
	}, fr.calls)
}

func TestDescribeCachesWithinTTL(t *testing.T) {
	fr := &fakeRunner{out: "Publishers: 1\n"}
	mon := NewRos2("", WithRunner(fr.run))
	topics := mon.Topics()
	ctx := context.Background()

	out1, err := topics.Describe(ctx, "/rosout")
	require.NoError(t, err)
	out2, err := topics.Describe(ctx, "/rosout")
	require.NoError(t, err)

	require.Equal(t, out1, out2)
	require.Len(t, fr.calls, 1, "second describe within TTL should hit the cache")

	// A different item misses the cache.
	_, err = topics.Describe(ctx, "/tf")
	require.NoError(t, err)
	require.Len(t, fr.calls, 2)
}

func TestDescribeCacheKeyedByKind(t *testing.T) {
	fr := &fakeRunner{out: "detail\n"}
	mon := NewRos2("", WithRunner(fr.run))
	ctx := context.Background()

	// Same item name through two providers must not share an entry.
	_, err := mon.Nodes().Describe(ctx, "/x")
	require.NoError(t, err)
	_, err = mon.Topics().Describe(ctx, "/x")
	require.NoError(t, err)
	require.Len(t, fr.calls, 2)
}

func TestDescribeCacheExpires(t *testing.T) {
	fr := &fakeRunner{out: "Publishers: 1\n"}
	mon := NewRos2("", WithRunner(fr.run), WithDescribeTTL(5*time.Millisecond))
	topics := mon.Topics()
	ctx := context.Background()

	_, err := topics.Describe(ctx, "/rosout")
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	_, err = topics.Describe(ctx, "/rosout")
	require.NoError(t, err)
	require.Len(t, fr.calls, 2, "expired entry should re-run the command")
}

func TestDescribeErrorNotCached(t *testing.T) {
	fr := &fakeRunner{err: errors.New("node gone")}
	mon := NewRos2("", WithRunner(fr.run))
	nodes := mon.Nodes()
	ctx := context.Background()

	_, err := nodes.Describe(ctx, "/talker")
	require.Error(t, err)

	fr.err = nil
	fr.out = "back\n"
	out, err := nodes.Describe(ctx, "/talker")
	require.NoError(t, err)
	require.Equal(t, "back\n", out)
	require.Len(t, fr.calls, 2)
}

func TestCommandLine(t *testing.T) {
	bin, argv := commandLine("", "ros2", "node", "list")
	require.Equal(t, "ros2", bin)
	require.Equal(t, []string{"node", "list"}, argv)

	bin, argv = commandLine("/opt/ros/humble/setup.bash", "ros2", "node", "list")
	require.Equal(t, "/bin/bash", bin)
	require.Equal(t, []string{"-c", "source /opt/ros/humble/setup.bash; ros2 node list"}, argv)
}

func TestParseList(t *testing.T) {
	require.Nil(t, parseList(""))
	require.Equal(t, []string{"/a", "/b/c"}, parseList("/a\n\n//b/c\n"))
}
