package sighandle

import (
	"context"
	"os"
	"os/signal"
)

// CancelOnSignals returns a context that is cancelled when one of the
// given signals arrives. Call stop to release the signal handler.
func CancelOnSignals(
	ctx context.Context,
	sig ...os.Signal,
) (
	nextCtx context.Context,
	stop func(),
) {
	nextCtx, cancel := context.WithCancelCause(ctx)
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, sig...)
	stop = func() {
		signal.Stop(sigs)
		cancel(context.Canceled)
	}
	go func() {
		select {
		case s := <-sigs:
			cancel(&SignalError{Signal: s})
		case <-nextCtx.Done():
		}
	}()
	return
}

// SignalError is the cancellation cause when a signal was received.
type SignalError struct {
	Signal os.Signal
}

func (this *SignalError) Error() string {
	return "received signal " + this.Signal.String()
}
