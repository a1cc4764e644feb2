// Package calendar provides the canonical event and free/busy model and a
// client for the Google Calendar API.
//
// The model side defines the wire shapes the scheduling engine works with:
// Event with its two-variant start/end time (timed or all-day), attendees,
// and the free/busy request and response types. The client side implements
// the narrow provider gateway the engine calls: listing upcoming events,
// querying free/busy, and inserting a booked event.
//
// The client authenticates with the Google OAuth2 flow and supports
// multiple accounts through per-account token files.
//
// Example usage:
//
//	ctx := context.Background()
//	client, err := calendar.NewClient(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	events, err := client.ListEvents(ctx, "primary", time.Now(), 10)
//	if err != nil {
//	    log.Fatal(err)
//	}
package calendar
