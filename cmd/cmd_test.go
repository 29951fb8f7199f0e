package cmd

import (
	"os"
	"testing"
)

func TestServeAddr_Default(t *testing.T) {
	orig := os.Args
	defer func() { os.Args = orig }()

	os.Args = []string{"agrimitra", "serve"}
	addr, err := serveAddr("127.0.0.1:3001")
	if err != nil {
		t.Fatalf("serveAddr() error = %v", err)
	}
	if addr != "127.0.0.1:3001" {
		t.Errorf("addr = %q", addr)
	}
}

func TestServeAddr_Override(t *testing.T) {
	orig := os.Args
	defer func() { os.Args = orig }()

	os.Args = []string{"agrimitra", "serve", "0.0.0.0:8080"}
	addr, err := serveAddr("127.0.0.1:3001")
	if err != nil {
		t.Fatalf("serveAddr() error = %v", err)
	}
	if addr != "0.0.0.0:8080" {
		t.Errorf("addr = %q", addr)
	}
}

func TestServeAddr_Invalid(t *testing.T) {
	orig := os.Args
	defer func() { os.Args = orig }()

	os.Args = []string{"agrimitra", "serve", "not-an-address"}
	if _, err := serveAddr("127.0.0.1:3001"); err == nil {
		t.Error("serveAddr() should reject a bare hostname")
	}
}
