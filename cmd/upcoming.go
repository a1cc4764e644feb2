package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calbook/calbook/internal/calendar"
	"github.com/calbook/calbook/internal/ical"
	"github.com/calbook/calbook/internal/scheduling"
)

func newUpcomingCmd() *cobra.Command {
	var (
		account   string
		from      string
		maxEvents int
		icsOutput bool
	)

	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "List upcoming events from the configured calendar",
		Long: `List upcoming events from the configured calendar, ordered by start
time. By default the listing starts now; --from sets an explicit starting
instant. With --ics the events are printed as an iCalendar document.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := scheduling.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load scheduling configuration: %w", err)
			}

			ctx := context.Background()
			client, err := calendar.NewClientForAccount(ctx, account)
			if err != nil {
				return fmt.Errorf("failed to create Calendar client for account %s: %w", account, err)
			}

			var cursor *calendar.ZonedTime
			if from != "" {
				cursor = &calendar.ZonedTime{DateTime: from}
			}

			scheduler := scheduling.NewScheduler(cfg)
			events, err := scheduler.ListUpcoming(ctx, client, cursor, maxEvents)
			if err != nil {
				return err
			}

			if icsOutput {
				doc, err := ical.EncodeEvents(events)
				if err != nil {
					return fmt.Errorf("failed to encode events: %w", err)
				}
				fmt.Print(doc)
				return nil
			}

			if len(events) == 0 {
				fmt.Println("No upcoming events found.")
				return nil
			}
			for _, event := range events {
				fmt.Printf("%s  %s\n", upcomingTimeColumn(event.Start), event.Summary)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "default", "Account to list events for")
	cmd.Flags().StringVar(&from, "from", "", "Starting instant, e.g. 2025-04-24T09:00:00 (default: now)")
	cmd.Flags().IntVar(&maxEvents, "max-events", 10, "Maximum number of events to list")
	cmd.Flags().BoolVar(&icsOutput, "ics", false, "Print events as an iCalendar document")

	return cmd
}

// upcomingTimeColumn formats one start time for the listing, padded so the
// summaries line up.
func upcomingTimeColumn(et calendar.EventTime) string {
	switch v := et.(type) {
	case calendar.ZonedTime:
		return fmt.Sprintf("%-25s", v.DateTime)
	case calendar.AllDayDate:
		return fmt.Sprintf("%-25s", v.Date+" (all day)")
	default:
		return fmt.Sprintf("%-25s", "?")
	}
}
