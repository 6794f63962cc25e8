package sighandle

import (
	"context"
	"errors"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStopCancelsContext(t *testing.T) {
	assert := assert.New(t)

	ctx, stop := CancelOnSignals(context.Background(), syscall.SIGUSR2)
	assert.NoError(ctx.Err())

	stop()
	<-ctx.Done()
	assert.ErrorIs(context.Cause(ctx), context.Canceled)
}

func TestSignalCancelsContext(t *testing.T) {
	require := require.New(t)

	ctx, stop := CancelOnSignals(context.Background(), syscall.SIGUSR1)
	defer stop()

	proc, err := os.FindProcess(os.Getpid())
	require.NoError(err)
	require.NoError(proc.Signal(syscall.SIGUSR1))

	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("context was not cancelled by the signal")
	}

	var sigErr *SignalError
	require.True(errors.As(context.Cause(ctx), &sigErr))
	require.Equal(syscall.SIGUSR1, sigErr.Signal)
}
