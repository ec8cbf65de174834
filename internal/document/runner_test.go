package document

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecRunnerCapturesStdout(t *testing.T) {
	r := newExecRunner(nil, 0)
	out, errb, err := r.Run(context.Background(), "echo", "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(out))
	assert.Empty(t, errb)
}

func TestExecRunnerMissingBinary(t *testing.T) {
	r := newExecRunner(nil, 0)
	_, _, err := r.Run(context.Background(), "definitely-not-a-binary-on-path")
	require.Error(t, err)
}

func TestExecRunnerTimeoutKillsCommand(t *testing.T) {
	r := newExecRunner(nil, 50*time.Millisecond)
	start := time.Now()
	_, _, err := r.Run(context.Background(), "sleep", "10")
	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second, "timeout bounds the call, not the sleep")
}

func TestExecRunnerHonorsCallerContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := newExecRunner(nil, 0).Run(ctx, "sleep", "10")
	require.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 8))
	assert.Equal(t, "abcd...(truncated)", truncate("abcdefgh", 4))
}
