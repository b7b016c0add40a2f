package main

import (
	"os/exec"
	"slices"
	"testing"
)

func TestSSHArgs(t *testing.T) {
	cases := []struct {
		interactive bool
		want        []string
	}{
		{true, []string{"-t", "physics@lcls-srv02", "true"}},
		{false, []string{"-tt", "physics@lcls-srv02", "true"}},
	}

	for i, c := range cases {
		got := sshArgs("physics@lcls-srv02", "true", c.interactive)
		if !slices.Equal(got, c.want) {
			t.Errorf("%d: Got %v, wanted %v", i, got, c.want)
		}
	}
}

func TestSessionExitCodeNil(t *testing.T) {
	code, err := sessionExitCode("physics@lcls-srv02", nil)
	if code != 0 || err != nil {
		t.Errorf("Got (%d, %v), wanted (0, nil)", code, err)
	}
}

func TestSessionExitCodePassThrough(t *testing.T) {
	runErr := exec.Command("sh", "-c", "exit 7").Run()
	if runErr == nil {
		t.Fatal("Expected a non-nil error from exit 7")
	}

	code, err := sessionExitCode("physics@lcls-srv02", runErr)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if code != 7 {
		t.Errorf("Got %d, wanted 7", code)
	}
}

func TestSessionExitCodeControlC(t *testing.T) {
	runErr := exec.Command("sh", "-c", "exit 130").Run()
	if runErr == nil {
		t.Fatal("Expected a non-nil error from exit 130")
	}

	code, err := sessionExitCode("physics@lcls-srv02", runErr)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if code != 0 {
		t.Errorf("Got %d, wanted 0 for an interrupted session", code)
	}
}

func TestSessionExitCodeStartFailure(t *testing.T) {
	runErr := exec.Command("/nonexistent/ssh").Run()
	if runErr == nil {
		t.Fatal("Expected a non-nil error from a missing binary")
	}

	code, err := sessionExitCode("physics@lcls-srv02", runErr)
	if err == nil {
		t.Fatal("Expected the start failure to surface as an error")
	}

	if code != 1 {
		t.Errorf("Got %d, wanted 1", code)
	}
}
