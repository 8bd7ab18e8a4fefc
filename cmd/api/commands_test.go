package main

import (
	"bytes"
	"testing"
)

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"serve", "migrate", "seed"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Fatalf("expected subcommand %q, got %v err=%v", name, cmd, err)
		}
	}
}

func TestSeedCmd_MemoryStorage(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"seed"})
	if err := root.Execute(); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if out.String() != "seed complete\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}
