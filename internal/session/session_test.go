package session_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wravell/logcask/core"
	"github.com/wravell/logcask/internal/session"
)

func openStore(t *testing.T, path string) *core.Store {
	t.Helper()

	st, err := core.Open(path)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	return st
}

func runScript(t *testing.T, st *core.Store, input string) string {
	t.Helper()

	var out bytes.Buffer
	if err := session.Run(strings.NewReader(input), &out, st); err != nil {
		t.Fatalf("session failed: %v", err)
	}
	return out.String()
}

func TestSessionScenarioWithRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), core.DefaultLogFileName)

	{
		st := openStore(t, path)

		got := runScript(t, st, "SET a 1\nSET b 2\nGET a\nGET c\nEXIT\n")
		want := "OK\nOK\n1\nNULL\nOK\n"
		if got != want {
			t.Fatalf("first session output mismatch:\ngot  %q\nwant %q", got, want)
		}

		if err := st.Close(); err != nil {
			t.Fatalf("close failed: %v", err)
		}
	}

	// restart
	{
		st := openStore(t, path)
		defer st.Close()

		got := runScript(t, st, "GET b\nEXIT\n")
		want := "2\nOK\n"
		if got != want {
			t.Fatalf("second session output mismatch:\ngot  %q\nwant %q", got, want)
		}
	}
}

func TestSessionLastWriteWins(t *testing.T) {
	st := openStore(t, filepath.Join(t.TempDir(), core.DefaultLogFileName))
	defer st.Close()

	got := runScript(t, st, "SET k v1\nSET k v2\nSET k v3\nGET k\nEXIT\n")
	want := "OK\nOK\nOK\nv3\nOK\n"
	if got != want {
		t.Fatalf("output mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestSessionValueWithSpaces(t *testing.T) {
	st := openStore(t, filepath.Join(t.TempDir(), core.DefaultLogFileName))
	defer st.Close()

	got := runScript(t, st, "SET city new york\nGET city\nEXIT\n")
	want := "OK\nnew york\nOK\n"
	if got != want {
		t.Fatalf("output mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestSessionMalformedCommandContinues(t *testing.T) {
	st := openStore(t, filepath.Join(t.TempDir(), core.DefaultLogFileName))
	defer st.Close()

	got := runScript(t, st, "BOGUS\nSET\nGET a b\nSET k v\nGET k\nEXIT\n")
	want := "ERR\nERR\nERR\nOK\nv\nOK\n"
	if got != want {
		t.Fatalf("output mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestSessionSkipsBlankLines(t *testing.T) {
	st := openStore(t, filepath.Join(t.TempDir(), core.DefaultLogFileName))
	defer st.Close()

	got := runScript(t, st, "\n   \nGET x\nEXIT\n")
	want := "NULL\nOK\n"
	if got != want {
		t.Fatalf("output mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestSessionCleanShutdownOnEOF(t *testing.T) {
	st := openStore(t, filepath.Join(t.TempDir(), core.DefaultLogFileName))
	defer st.Close()

	// No EXIT: end of input alone must end the session without error.
	got := runScript(t, st, "SET a 1\n")
	want := "OK\n"
	if got != want {
		t.Fatalf("output mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestSessionStopsReadingAfterExit(t *testing.T) {
	st := openStore(t, filepath.Join(t.TempDir(), core.DefaultLogFileName))
	defer st.Close()

	got := runScript(t, st, "EXIT\nSET a 1\nGET a\n")
	want := "OK\n"
	if got != want {
		t.Fatalf("output mismatch:\ngot  %q\nwant %q", got, want)
	}

	if st.Has("a") {
		t.Fatal("commands after EXIT must not be executed")
	}
}
