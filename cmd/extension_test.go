package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/etnz/amortizer"
)

func TestRunExtension(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("the extension is a shell script")
	}
	dir := t.TempDir()
	script := `#!/bin/sh
echo "args=$*"
echo "` + EnvAmount + `=$` + EnvAmount + `"
echo "` + EnvPeriod + `=$` + EnvPeriod + `"
echo "` + EnvRate + `=$` + EnvRate + `"
echo "` + EnvMethod + `=$` + EnvMethod + `"
echo "` + EnvVerbose + `=$` + EnvVerbose + `"
exit 3
`
	if err := os.WriteFile(filepath.Join(dir, "amortize-hello"), []byte(script), 0755); err != nil {
		t.Fatalf("failed to write amortize-hello: %v", err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))

	withLoan(t, 900.5, 60, 9.5, amortizer.Straight)
	var out bytes.Buffer
	stdout = &out
	t.Cleanup(func() { stdout = os.Stdout })

	found, code := RunExtension("hello", []string{"a", "b"})
	if !found {
		t.Fatalf("RunExtension(hello) did not find the extension")
	}
	if code != 3 {
		t.Errorf("RunExtension(hello) exit code = %d, want 3", code)
	}

	for _, want := range []string{
		"args=a b",
		EnvAmount + "=900.5",
		EnvPeriod + "=60",
		EnvRate + "=9.5",
		EnvMethod + "=straight",
		EnvVerbose + "=false",
	} {
		if !strings.Contains(out.String(), want+"\n") {
			t.Errorf("extension output does not contain %q:\n%s", want, out.String())
		}
	}
}

func TestRunExtension_NotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	if found, _ := RunExtension("missing", nil); found {
		t.Errorf("RunExtension(missing) found an extension")
	}
}
