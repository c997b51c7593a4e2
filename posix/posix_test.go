package posix

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nihil-go/nihil/errs"
)

func TestArgvString(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"echo", "hello"}, "echo hello"},
		{[]string{"echo", "a b"}, "echo 'a b'"},
		{[]string{"echo", "it's"}, `echo "it's"`},
		{[]string{"echo", ""}, "echo ''"},
		{[]string{"sh", "-c", "x=1; echo $x"}, "sh -c 'x=1; echo $x'"},
	}
	for _, tt := range tests {
		if got := NewArgv(tt.args...).String(); got != tt.want {
			t.Errorf("%q: got %s want %s", tt.args, got, tt.want)
		}
	}
}

func TestArgvAdd(t *testing.T) {
	a := NewArgv("ls").Add("-l", "/tmp")
	if diff := cmp.Diff([]string{"ls", "-l", "/tmp"}, a.Args()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if a.Len() != 3 {
		t.Errorf("len %d", a.Len())
	}
}

func TestGetenv(t *testing.T) {
	t.Setenv("NIHIL_TEST_VAR", "value")
	v, err := Getenv("NIHIL_TEST_VAR")
	if err != nil || v != "value" {
		t.Errorf("got %q, %v", v, err)
	}
	t.Setenv("NIHIL_TEST_EMPTY", "")
	if v, err := Getenv("NIHIL_TEST_EMPTY"); err != nil || v != "" {
		t.Errorf("got %q, %v", v, err)
	}
	if _, err := Getenv("NIHIL_TEST_NO_SUCH_VARIABLE"); !errors.Is(err, ErrNotSet) {
		t.Errorf("expected ErrNotSet, got %v", err)
	}
}

func TestFindInPath(t *testing.T) {
	p, ok := FindInPath("sh")
	if !ok || filepath.Base(p) != "sh" {
		t.Errorf("sh: got %q %v", p, ok)
	}
	if _, ok := FindInPath("nihil_no_such_executable"); ok {
		t.Error("found nonexistent executable")
	}
	if p, ok := FindInPath("/bin/sh"); !ok || p != "/bin/sh" {
		t.Errorf("/bin/sh: got %q %v", p, ok)
	}

	dir := t.TempDir()
	exe := filepath.Join(dir, "nihil-tool")
	if err := os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	plain := filepath.Join(dir, "nihil-data")
	if err := os.WriteFile(plain, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", "/nonexistent:"+dir)
	if p, ok := FindInPath("nihil-tool"); !ok || p != exe {
		t.Errorf("got %q %v", p, ok)
	}
	if _, ok := FindInPath("nihil-data"); ok {
		t.Error("found non-executable file")
	}

	t.Chdir(dir)
	t.Setenv("PATH", ":/nonexistent")
	if p, ok := FindInPath("nihil-tool"); !ok || p != "./nihil-tool" {
		t.Errorf("empty element: got %q %v", p, ok)
	}
}

func TestOpenInPath(t *testing.T) {
	f, err := OpenInPath("sh")
	if err != nil {
		t.Fatal(err)
	}
	f.Close()
	if _, err := OpenInPath("nihil_no_such_executable"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func spawnOutput(t *testing.T, ex *Executor) string {
	t.Helper()
	var out string
	proc, err := Spawn(ex, Capture(Stdout, &out))
	if err != nil {
		t.Fatal(err)
	}
	res, err := proc.Wait()
	if err != nil {
		t.Fatal(err)
	}
	if !res.Okay() {
		t.Fatalf("exit %s", res)
	}
	return out
}

func TestSpawn(t *testing.T) {
	const script = "x=1; echo $x"
	execvp, err := Execvp("sh", NewArgv("sh", "-c", script))
	if err != nil {
		t.Fatal(err)
	}
	execlp, err := Execlp("sh", "sh", "-c", script)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		ex   *Executor
	}{
		{"shell", Shell(script)},
		{"execv", Execv("/bin/sh", NewArgv("sh", "-c", script))},
		{"execvp", execvp},
		{"execl", Execl("/bin/sh", "sh", "-c", script)},
		{"execlp", execlp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := spawnOutput(t, tt.ex); got != "1\n" {
				t.Errorf("got %q", got)
			}
		})
	}
}

func TestExeclpFailure(t *testing.T) {
	_, err := Execlp("nihil_no_such_executable", "x")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if got, want := err.Error(), "executable not found in path: nihil_no_such_executable"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestSpawnExitStatus(t *testing.T) {
	var out, errOut string
	proc, err := Spawn(Shell("echo out; echo err >&2; exit 3"),
		Capture(Stdout, &out), Capture(Stderr, &errOut))
	if err != nil {
		t.Fatal(err)
	}
	res, err := proc.Wait()
	if err != nil {
		t.Fatal(err)
	}
	if res.Okay() || res.ExitCode() != 3 {
		t.Errorf("got %s", res)
	}
	if out != "out\n" || errOut != "err\n" {
		t.Errorf("got %q %q", out, errOut)
	}
	if _, ok := res.Signal(); ok {
		t.Error("unexpected signal")
	}
}

func TestSpawnInput(t *testing.T) {
	var out string
	proc, err := Spawn(Shell("tr a-z A-Z"), Input(strings.NewReader("abc")), Capture(Stdout, &out))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := proc.Wait(); err != nil {
		t.Fatal(err)
	}
	if out != "ABC" {
		t.Errorf("got %q", out)
	}
}

func TestSpawnBadFD(t *testing.T) {
	var out string
	if _, err := Spawn(Shell("true"), Capture(7, &out)); !errors.Is(err, ErrBadFD) {
		t.Errorf("expected ErrBadFD, got %v", err)
	}
}

func TestSpawnMissing(t *testing.T) {
	if _, err := Spawn(Execl("/nonexistent/nihil", "nihil")); err == nil {
		t.Error("expected error")
	}
}

func expectLogic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, errs.ErrLogic) {
			t.Errorf("%s: expected logic error panic, got %v", name, r)
		}
	}()
	f()
}

func TestTempFile(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())
	tf, err := NewTempFile(0)
	if err != nil {
		t.Fatal(err)
	}
	path := tf.Path()
	if filepath.Dir(path) != os.Getenv("TMPDIR") || len(filepath.Base(path)) != tempNameLen {
		t.Errorf("unexpected path %s", path)
	}
	if _, err := tf.File().WriteString("data"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}
	if err := tf.Release(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected %s removed, got %v", path, err)
	}
	expectLogic(t, "File", func() { tf.File() })
	expectLogic(t, "Path", func() { _ = tf.Path() })
	expectLogic(t, "Release", func() { tf.Release() })
}

func TestTempFileUnlink(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TMPDIR", dir)
	tf, err := NewTempFile(TempUnlink)
	if err != nil {
		t.Fatal(err)
	}
	if tf.File() == nil {
		t.Fatal("no file")
	}
	expectLogic(t, "Path", func() { _ = tf.Path() })
	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(ents) != 0 {
		t.Errorf("unexpected entries %v", ents)
	}
	if err := tf.Release(); err != nil {
		t.Fatal(err)
	}
	expectLogic(t, "File", func() { tf.File() })
	expectLogic(t, "Release", func() { tf.Release() })
}

func TestSafeWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "config.ucl")
	for _, data := range []string{"first\n", "second\n"} {
		if err := SafeWriteFile(path, []byte(data)); err != nil {
			t.Fatal(err)
		}
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != data {
			t.Errorf("got %q want %q", got, data)
		}
	}
	ents, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(ents) != 1 {
		t.Errorf("temporary files left behind: %v", ents)
	}
}

func TestRenameFile(t *testing.T) {
	dir := t.TempDir()
	err := RenameFile(filepath.Join(dir, "missing"), filepath.Join(dir, "other"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}
