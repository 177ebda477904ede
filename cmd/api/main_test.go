package main

import (
	"net"
	"net/http"
	"os"
	"syscall"
	"testing"
	"time"
)

// serve must keep running until in-flight requests have drained after a
// shutdown signal, and only then return.
func TestServe_DrainsInFlightRequests(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	mux := http.NewServeMux()
	mux.HandleFunc("/slow", func(w http.ResponseWriter, _ *http.Request) {
		close(started)
		<-release
		w.WriteHeader(http.StatusOK)
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	srv := &http.Server{Handler: mux}
	sigCh := make(chan os.Signal, 1)

	serveDone := make(chan error, 1)
	go func() { serveDone <- serve(srv, ln, sigCh) }()

	respCode := make(chan int, 1)
	go func() {
		resp, err := http.Get("http://" + ln.Addr().String() + "/slow")
		if err != nil {
			respCode <- 0
			return
		}
		resp.Body.Close()
		respCode <- resp.StatusCode
	}()

	// Signal shutdown while the request is still being handled.
	<-started
	sigCh <- syscall.SIGTERM

	select {
	case err := <-serveDone:
		t.Fatalf("serve returned before drain completed: %v", err)
	case <-time.After(200 * time.Millisecond):
	}

	close(release)

	select {
	case err := <-serveDone:
		if err != nil {
			t.Fatalf("serve: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("serve did not return after drain")
	}

	if code := <-respCode; code != http.StatusOK {
		t.Fatalf("in-flight request got %d", code)
	}
}

// With no in-flight work, a signal stops the server promptly.
func TestServe_StopsOnSignalWhenIdle(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	srv := &http.Server{Handler: http.NewServeMux()}
	sigCh := make(chan os.Signal, 1)

	serveDone := make(chan error, 1)
	go func() { serveDone <- serve(srv, ln, sigCh) }()

	sigCh <- syscall.SIGTERM

	select {
	case err := <-serveDone:
		if err != nil {
			t.Fatalf("serve: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("serve did not stop after signal")
	}
}
