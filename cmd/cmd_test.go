package cmd

import "testing"

func TestCommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"up", "doctor"} {
		if !names[want] {
			t.Errorf("command %q not registered", want)
		}
	}
}

func TestUpFlags(t *testing.T) {
	if upCmd.Flags().Lookup("config") == nil {
		t.Error("up should have a --config flag")
	}
	if rootCmd.PersistentFlags().Lookup("verbose") == nil {
		t.Error("root should have a --verbose flag")
	}
	if rootCmd.PersistentFlags().Lookup("json") == nil {
		t.Error("root should have a --json flag")
	}
}
