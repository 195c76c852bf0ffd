package ping

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os/exec"
	"runtime"
	"strconv"
	"time"

	"connectivity-report/internal/models"
)

// Pinger executes the system ping binary against a target.
type Pinger struct {
	count   int
	timeout time.Duration
	goos    string
}

// New creates a new Pinger.
func New(count int, timeout time.Duration) *Pinger {
	return &Pinger{
		count:   count,
		timeout: timeout,
		goos:    runtime.GOOS,
	}
}

// Ping runs the platform-appropriate ping command and captures its
// output. A nil result with a non-nil error means the invocation
// produced no usable output: the ceiling elapsed or the process never
// started. A non-nil result carries stdout, stderr and the exit code,
// which may be nonzero.
func (p *Pinger) Ping(ctx context.Context, target string) (*models.PingOutput, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	// Platform-specific ping command: -n on Windows, -c elsewhere
	var cmd *exec.Cmd
	if p.goos == "windows" {
		cmd = exec.CommandContext(ctx, "ping", "-n", strconv.Itoa(p.count), target)
	} else {
		cmd = exec.CommandContext(ctx, "ping", "-c", strconv.Itoa(p.count), target)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if ctx.Err() == context.DeadlineExceeded {
		log.Printf("Ping to %s timed out after %v", target, p.timeout)
		return nil, ctx.Err()
	}

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			// Binary missing or failed to start
			log.Printf("Error pinging %s: %v", target, err)
			return nil, err
		}
	}

	return &models.PingOutput{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: cmd.ProcessState.ExitCode(),
	}, nil
}

// Format returns the output format the local ping binary produces.
func (p *Pinger) Format() Format {
	return FormatFor(p.goos)
}
