package server

import (
	"context"
	"net"
	"testing"

	"github.com/skriptor-labs/postwise/internal/logger"
)

func testConfig(port int) Config {
	var cfg Config
	cfg.ApplyDefaults()
	cfg.Host = "127.0.0.1"
	cfg.Port = port
	return cfg
}

func TestServer_StartStop(t *testing.T) {
	srv := New(testConfig(0), logger.NewDefault("test"))
	if err := srv.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := srv.Stop(context.Background()); err != nil {
		t.Errorf("Stop: %v", err)
	}
}

func TestServer_StartFailsWhenPortTaken(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	defer ln.Close()
	port := ln.Addr().(*net.TCPAddr).Port

	srv := New(testConfig(port), logger.NewDefault("test"))
	if err := srv.Start(); err == nil {
		srv.Stop(context.Background())
		t.Fatal("Start should fail when the port is already bound")
	}
}
