package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
)

// Environment variables passed to extensions.
const (
	EnvAmount   = "AMORTIZE_AMOUNT"
	EnvPeriod   = "AMORTIZE_PERIOD"
	EnvRate     = "AMORTIZE_RATE"
	EnvMethod   = "AMORTIZE_METHOD"
	EnvLoanFile = "AMORTIZE_LOAN_FILE"
	EnvVerbose  = "AMORTIZE_VERBOSE"
)

// RunExtension attempts to find and execute an external amortize-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "amortize-" + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		log.Printf("extension name=%q not found: %v", name, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), extensionEnv()...)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}

// extensionEnv returns the global flags as environment variables.
func extensionEnv() []string {
	return []string{
		EnvAmount + "=" + strconv.FormatFloat(amount, 'f', -1, 64),
		EnvPeriod + "=" + strconv.Itoa(period),
		EnvRate + "=" + strconv.FormatFloat(rate, 'f', -1, 64),
		EnvMethod + "=" + method.String(),
		EnvLoanFile + "=" + loanFile,
		EnvVerbose + "=" + strconv.FormatBool(Verbose),
	}
}
