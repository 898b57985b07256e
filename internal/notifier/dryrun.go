package notifier

import (
	"fmt"
	"io"
	"os"
)

// DryRunPublisher prints what would be posted without actually posting.
type DryRunPublisher struct {
	out io.Writer
}

// NewDryRunPublisher creates a dry-run publisher writing to stdout.
func NewDryRunPublisher() *DryRunPublisher {
	return &DryRunPublisher{out: os.Stdout}
}

// Submit prints the post that would be submitted.
func (p *DryRunPublisher) Submit(title, body string) error {
	fmt.Fprintln(p.out, "--- Post (dry run) ---")
	fmt.Fprintln(p.out, title)
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, body)
	fmt.Fprintf(p.out, "\n(Title: %d characters, body: %d characters)\n", len(title), len(body))
	return nil
}

// String identifies the backend in logs.
func (p *DryRunPublisher) String() string {
	return "dry-run"
}
