package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/futsalhub/booking-system/internal/app"
	"github.com/futsalhub/booking-system/internal/core/domain"
	"github.com/futsalhub/booking-system/internal/infrastructure/config"
)

// DemoOptions holds flags for the demo command.
type DemoOptions struct {
	*RootOptions
	Date string
	Slot string
}

// NewDemoCommand plays the owner/player booking walkthrough against fresh
// in-memory stores and reports each step.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DemoOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the booking walkthrough against in-memory stores",
		Long: `Registers owner "alice" and adds "Court A", registers player "bob",
books one slot for him, shows that the same slot cannot be booked twice and
lists his reservations.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&opts.Date, "date", "2025-06-01", "reservation date ("+domain.DateFormat+")")
	cmd.Flags().StringVar(&opts.Slot, "slot", "10:00", "slot label to book")

	return cmd
}

// DemoStep is one action of the walkthrough.
type DemoStep struct {
	Action string `json:"action"`
	Result string `json:"result"`
	OK     bool   `json:"ok"`
}

// DemoReport is the outcome of the walkthrough.
type DemoReport struct {
	Steps          []DemoStep            `json:"steps"`
	Reservations   []*domain.Reservation `json:"reservations"`
	AvailableSlots int                   `json:"available_slots"`
}

func (r *DemoReport) String() string {
	var b strings.Builder
	for i, s := range r.Steps {
		mark := "ok"
		if !s.OK {
			mark = "FAILED"
		}
		fmt.Fprintf(&b, "%d. %-40s %s (%s)\n", i+1, s.Action, s.Result, mark)
	}
	fmt.Fprintf(&b, "Court A has %d of %d slots left\n", r.AvailableSlots, domain.SlotCount)
	for _, res := range r.Reservations {
		fmt.Fprintf(&b, "  %s booked %s on %s at %s\n", res.Handle, res.FacilityName, res.Date, res.TimeLabel)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *DemoReport) ok() bool {
	for _, s := range r.Steps {
		if !s.OK {
			return false
		}
	}
	return true
}

func (r *DemoReport) record(action string, err, want error) {
	step := DemoStep{Action: action, Result: "done", OK: errors.Is(err, want)}
	if err != nil {
		step.Result = err.Error()
	}
	r.Steps = append(r.Steps, step)
}

func runDemo(ctx context.Context, opts *DemoOptions, stdout, stderr io.Writer) error {
	log := zerolog.Nop()
	if opts.Verbose {
		log = zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
	}

	cfg := &config.Config{Env: "development", JWTSecret: "demo"}
	cfg.Session.TTL = time.Hour
	cfg.Session.BcryptCost = bcrypt.MinCost
	cfg.Notify.Workers = 1

	container, err := app.New(ctx, cfg, log)
	if err != nil {
		return WrapExitError(ExitCommandError, "start services", err)
	}
	defer container.Close()

	report, err := playDemo(ctx, container, opts.Date, opts.Slot)
	out := &OutputFormatter{Format: opts.Format, Writer: stdout}
	if err != nil {
		_ = out.Failure(err.Error(), report)
		return WrapExitError(ExitFailure, "demo aborted", err)
	}
	if !report.ok() {
		_ = out.Failure("demo finished with unexpected results", report)
		return NewExitError(ExitFailure, "demo finished with unexpected results")
	}
	return out.Success(report)
}

// playDemo returns an error only when a step that later steps depend on fails.
func playDemo(ctx context.Context, c *app.Container, date, slot string) (*DemoReport, error) {
	r := &DemoReport{Reservations: []*domain.Reservation{}}

	alice, err := c.Identities.Register(ctx, "alice", "alice-secret", domain.RoleOwner)
	r.record(`register owner "alice"`, err, nil)
	if err != nil {
		return r, err
	}

	court, err := c.Catalog.AddFacility(ctx, "Court A", "Kathmandu", 500, alice)
	r.record(`add facility "Court A" (Kathmandu, 500/h)`, err, nil)
	if err != nil {
		return r, err
	}

	_, err = c.Identities.Register(ctx, "bob", "bob-secret", domain.RoleRegular)
	r.record(`register player "bob"`, err, nil)
	if err != nil {
		return r, err
	}

	bob, err := c.Identities.Authenticate(ctx, "bob", "bob-secret")
	r.record(`log in as "bob"`, err, nil)
	if err != nil {
		return r, err
	}

	_, err = c.Ledger.Reserve(ctx, bob, court, date, slot)
	r.record(fmt.Sprintf("reserve %s on %s", slot, date), err, nil)

	_, err = c.Ledger.Reserve(ctx, bob, court, date, slot)
	r.record(fmt.Sprintf("reserve %s again", slot), err, domain.ErrSlotUnavailable)

	for res := range c.Ledger.ListReservationsFor(ctx, bob) {
		r.Reservations = append(r.Reservations, res)
	}
	r.AvailableSlots = court.Slots.AvailableCount()
	return r, nil
}
