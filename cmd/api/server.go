package main

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

const shutdownTimeout = 5 * time.Second

// serve runs the HTTP server until it fails or ctx is cancelled, in
// which case in-flight requests get shutdownTimeout to drain.
func (app *app) serve(ctx context.Context) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", app.config.Server.Port),
		Handler:           app.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}
