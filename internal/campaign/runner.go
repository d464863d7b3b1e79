/*
Package campaign orchestrates one full campaign run: read contacts,
build a message per recipient, submit each over its own connection, and
report aggregate counters at the end.
*/
package campaign

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/oarkflow/campaigner/internal/assets"
	"github.com/oarkflow/campaigner/internal/config"
	"github.com/oarkflow/campaigner/internal/contacts"
	"github.com/oarkflow/campaigner/internal/message"
)

// Options contains options for a campaign run
type Options struct {
	ConfigFile   string
	Personalized bool
	Limit        int
	Delay        time.Duration
	AssumeYes    bool
}

// Result accumulates the outcome of a run.
type Result struct {
	Sent    int
	Failed  int
	Elapsed time.Duration
}

// SuccessRate returns sent as a percentage of the working set.
func (r Result) SuccessRate(total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(r.Sent) / float64(total) * 100
}

// Runner orchestrates the campaign
type Runner struct {
	config    *config.Config
	options   Options
	sender    Sender
	confirmIn io.Reader
	out       io.Writer
	runID     string
	startTime time.Time
}

// New creates a campaign runner. Configuration is loaded and validated
// and every required file checked for existence before anything else
// happens; any problem here is fatal and aborts the run before a single
// network connection is opened.
func New(opts Options) (*Runner, error) {
	cfgPath := opts.ConfigFile
	if cfgPath == "" {
		cfgPath = ".campaigner.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if err := assets.Validate(cfg); err != nil {
		return nil, err
	}

	// A zero delay is a valid choice; the default lives in the flag layer.
	if opts.Delay < 0 {
		opts.Delay = 0
	}

	return &Runner{
		config:    cfg,
		options:   opts,
		sender:    NewSMTPSender(&cfg.SMTP),
		confirmIn: os.Stdin,
		out:       os.Stdout,
		runID:     uuid.NewString(),
		startTime: time.Now(),
	}, nil
}

// Run executes the campaign. Per-recipient failures are counted and
// logged but never abort the batch; only startup problems return an
// error. A canceled context (interrupt) ends the run cleanly with no
// error.
func (r *Runner) Run(ctx context.Context) error {
	r.banner("CAMPAIGNER - EMAIL MARKETING")

	recipients, err := r.readContacts()
	if err != nil {
		return err
	}
	log.Info("Contacts loaded", "run_id", r.runID, "valid", len(recipients))

	if len(recipients) == 0 {
		fmt.Fprintln(r.out, "No valid contacts found, nothing to send.")
		return nil
	}

	if r.options.Limit > 0 && r.options.Limit < len(recipients) {
		recipients = recipients[:r.options.Limit]
		fmt.Fprintf(r.out, "Test mode: sending only to the first %d contacts\n", r.options.Limit)
	}

	r.summary(len(recipients))

	if r.options.Personalized && !r.options.AssumeYes {
		ok, err := r.confirm(len(recipients))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(r.out, "Campaign cancelled.")
			return nil
		}
	}

	template, err := assets.ReadTemplate(r.config.Template)
	if err != nil {
		return err
	}
	images := assets.Load(r.config.Images)
	builder := message.NewBuilder(&r.config.SMTP, template, images)

	fmt.Fprintln(r.out, "Starting to send...")
	fmt.Fprintln(r.out)

	result, interrupted := r.sendAll(ctx, builder, recipients)

	if interrupted {
		fmt.Fprintln(r.out, "\nCampaign interrupted by user.")
		return nil
	}

	r.report(result, len(recipients))
	return nil
}

func (r *Runner) readContacts() ([]contacts.Recipient, error) {
	if r.options.Personalized {
		return contacts.ReadPersonalized(r.config.Contacts)
	}
	return contacts.ReadGeneric(r.config.Contacts)
}

// sendAll walks the working set in file order, one connection per
// message, pausing between consecutive sends.
func (r *Runner) sendAll(ctx context.Context, builder *message.Builder, recipients []contacts.Recipient) (Result, bool) {
	var result Result
	start := time.Now()

	for i, rec := range recipients {
		if ctx.Err() != nil {
			result.Elapsed = time.Since(start)
			return result, true
		}

		fmt.Fprintf(r.out, "[%d/%d] Sending to %s...\n", i+1, len(recipients), rec.Email)

		sendStart := time.Now()
		if err := r.sendOne(ctx, builder, rec); err != nil {
			if ctx.Err() != nil {
				result.Elapsed = time.Since(start)
				return result, true
			}
			result.Failed++
			fmt.Fprintf(r.out, "    ✗ Failed to send to %s: %v\n", rec.Email, err)
		} else {
			result.Sent++
			fmt.Fprintf(r.out, "    ✓ Sent (%.2fs)\n", time.Since(sendStart).Seconds())
		}

		// Pace submissions, but not after the last one.
		if i < len(recipients)-1 {
			select {
			case <-ctx.Done():
				result.Elapsed = time.Since(start)
				return result, true
			case <-time.After(r.options.Delay):
			}
		}
	}

	result.Elapsed = time.Since(start)
	return result, false
}

func (r *Runner) sendOne(ctx context.Context, builder *message.Builder, rec contacts.Recipient) error {
	msg, err := builder.Build(rec)
	if err != nil {
		return err
	}
	return r.sender.Send(ctx, msg)
}

// confirm asks for an explicit go-ahead before a personalized campaign
// starts sending. Anything but an affirmative answer cancels, a closed
// stdin included.
func (r *Runner) confirm(total int) (bool, error) {
	fmt.Fprintf(r.out, "Send the campaign to %d recipients? [y/N] ", total)

	line, err := bufio.NewReader(r.confirmIn).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "s", "sim":
		return true, nil
	}
	return false, nil
}

func (r *Runner) summary(total int) {
	fmt.Fprintln(r.out, "Campaign summary:")
	fmt.Fprintf(r.out, "   - Recipients:  %d\n", total)
	fmt.Fprintf(r.out, "   - SMTP server: %s:%d\n", r.config.SMTP.Server, r.config.SMTP.Port)
	fmt.Fprintf(r.out, "   - Sender:      %s <%s>\n", r.config.SMTP.FromName, r.config.SMTP.FromEmail)
	fmt.Fprintf(r.out, "   - Subject:     %s\n", r.config.SMTP.Subject)
	fmt.Fprintln(r.out)
}

func (r *Runner) report(result Result, total int) {
	r.banner("FINAL REPORT")
	fmt.Fprintf(r.out, "✓ Sent:         %d\n", result.Sent)
	fmt.Fprintf(r.out, "✗ Failed:       %d\n", result.Failed)
	fmt.Fprintf(r.out, "Success rate:   %.1f%%\n", result.SuccessRate(total))

	if !r.options.Personalized {
		fmt.Fprintf(r.out, "Total time:     %.2fs (%.1f minutes)\n",
			result.Elapsed.Seconds(), result.Elapsed.Minutes())
		if result.Sent > 0 {
			fmt.Fprintf(r.out, "Avg per email:  %.2fs\n",
				result.Elapsed.Seconds()/float64(total))
		}
	}
	fmt.Fprintln(r.out, strings.Repeat("=", 60))

	log.Info("Campaign finished",
		"run_id", r.runID,
		"sent", result.Sent,
		"failed", result.Failed,
		"duration", time.Since(r.startTime).Round(time.Second))
}

func (r *Runner) banner(title string) {
	line := strings.Repeat("=", 60)
	fmt.Fprintln(r.out, line)
	fmt.Fprintln(r.out, title)
	fmt.Fprintln(r.out, line)
}
