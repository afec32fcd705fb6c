// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package cli

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"
	"testing"

	"go.astrophena.name/includedocs/internal/testutil"
)

type testApp struct {
	name string
	args []string
}

func (a *testApp) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.name, "name", "", "Name.")
}

func (a *testApp) Run(ctx context.Context) error {
	env := GetEnv(ctx)
	a.args = env.Args
	if a.name == "" {
		return fmt.Errorf("%w: -name is required", ErrInvalidArgs)
	}
	fmt.Fprintf(env.Stdout, "hello, %s", a.name)
	return nil
}

func runApp(t *testing.T, app App, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	env := &Env{
		Args:   args,
		Getenv: func(string) string { return "" },
		Stdin:  strings.NewReader(""),
		Stdout: &outBuf,
		Stderr: &errBuf,
	}
	err = Run(WithEnv(context.Background(), env), app)
	return outBuf.String(), errBuf.String(), err
}

func TestRun(t *testing.T) {
	app := new(testApp)
	stdout, _, err := runApp(t, app, "-name", "docs", "a.rs", "b.rs")
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, stdout, "hello, docs")
	testutil.AssertEqual(t, app.args, []string{"a.rs", "b.rs"})
}

func TestRunInvalidArgs(t *testing.T) {
	_, _, err := runApp(t, new(testApp))
	if !errors.Is(err, ErrInvalidArgs) {
		t.Fatalf("want ErrInvalidArgs, got %v", err)
	}
	if !isPrintableError(err) {
		t.Fatal("invalid arguments error must be printed")
	}
}

func TestRunHelp(t *testing.T) {
	_, stderr, err := runApp(t, new(testApp), "-help")
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("want flag.ErrHelp, got %v", err)
	}
	if isPrintableError(err) {
		t.Fatal("help error must not be printed")
	}
	if !strings.Contains(stderr, "-name") {
		t.Fatalf("usage must list flags, got %q", stderr)
	}
}

func TestRunVersion(t *testing.T) {
	_, stderr, err := runApp(t, AppFunc(func(context.Context) error {
		t.Fatal("app must not run")
		return nil
	}), "-version")
	if !errors.Is(err, ErrExitVersion) {
		t.Fatalf("want ErrExitVersion, got %v", err)
	}
	if stderr == "" {
		t.Fatal("version must be printed")
	}
}

func TestEnvLogf(t *testing.T) {
	var stderr bytes.Buffer
	env := &Env{Stderr: &stderr}
	env.Logf("wrote %s", "doc.go")
	testutil.AssertEqual(t, stderr.String(), "wrote doc.go\n")
}

func TestGetEnvDefault(t *testing.T) {
	if GetEnv(context.Background()).Getenv == nil {
		t.Fatal("default environment must be the OS environment")
	}
}

func TestParseDocComment(t *testing.T) {
	docSrc = []byte("// header\n\n/*\nTool does things.\n\n\t$ tool\n*/\npackage main\n")
	t.Cleanup(func() { docSrc = nil })
	testutil.AssertEqual(t, parseDocComment(), "Tool does things.\n\n\t$ tool\n")
}
