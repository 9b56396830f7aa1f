package main

import (
	"net"
	"strconv"
	"testing"
)

func TestRunReturnsErrorWhenPortInUse(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatalf("Failed to listen: %v", err)
	}
	defer ln.Close()

	t.Setenv("PORT", strconv.Itoa(ln.Addr().(*net.TCPAddr).Port))
	t.Setenv("LOG_LEVEL", "error")

	if err := run(); err == nil {
		t.Errorf("Expected run to return an error for a port already in use")
	}
}
