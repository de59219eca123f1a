package main

import (
	"net"
	"testing"
)

func TestListen_ExplicitAddr(t *testing.T) {
	ln, err := listen("127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()
	if ln.Addr().(*net.TCPAddr).Port == 0 {
		t.Fatalf("expected a bound port")
	}
}

func TestListen_FallsBackWhenPortsTaken(t *testing.T) {
	saved := fallbackPorts
	defer func() { fallbackPorts = saved }()

	busy, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	defer busy.Close()
	fallbackPorts = []int{busy.Addr().(*net.TCPAddr).Port}

	ln, err := listen("")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()
	if ln.Addr().(*net.TCPAddr).Port == fallbackPorts[0] {
		t.Fatalf("expected a different port than the busy one")
	}
}
