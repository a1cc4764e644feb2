package calendar

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/calbook/calbook/internal/google"
)

// Client wraps the Google Calendar service behind the narrow gateway
// surface the scheduling core consumes: listing events, querying
// free/busy, and inserting a single event.
type Client struct {
	svc           *gcal.Service
	account       string
	tokenProvider google.TokenProvider
}

// Account returns the account name this client is associated with
func (c *Client) Account() string {
	return c.account
}

// HasTokenForAccountWithProvider checks if a valid OAuth token exists for the specified account
func HasTokenForAccountWithProvider(account string, provider google.TokenProvider) bool {
	if provider == nil {
		return false
	}
	return provider.HasTokenForAccount(account)
}

// HasTokenForAccount checks if a valid OAuth token exists for the specified account
func HasTokenForAccount(account string) bool {
	provider := google.NewFileTokenProvider()
	return HasTokenForAccountWithProvider(account, provider)
}

// HasToken checks if a valid OAuth token exists for the default account
func HasToken() bool {
	return HasTokenForAccount("default")
}

// GetAuthURLForAccount returns the OAuth URL a user must visit to authorize
// the given account. The URL itself is the same for every account; the
// account only selects which token file the subsequent code exchange writes.
func GetAuthURLForAccount(_ string) string {
	return google.GetAuthURL()
}

// NewClientForAccountWithProvider creates a new Calendar client with OAuth2 authentication
// for a specific account. The OAuth token is retrieved from the provided token provider.
func NewClientForAccountWithProvider(ctx context.Context, account string, tokenProvider google.TokenProvider) (*Client, error) {
	if tokenProvider == nil {
		return nil, fmt.Errorf("token provider cannot be nil")
	}

	token, err := tokenProvider.GetTokenForAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to get Google OAuth token for account %s: %w", account, err)
	}

	conf := google.GetOAuthConfig()
	tokenSource := conf.TokenSource(ctx, token)

	client := oauth2.NewClient(ctx, tokenSource)

	// Force HTTP/1.1 by disabling HTTP/2
	transport := client.Transport.(*oauth2.Transport)
	baseTransport := &http.Transport{
		ForceAttemptHTTP2: false,
	}
	transport.Base = baseTransport

	svc, err := gcal.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}

	return &Client{
		svc:           svc,
		account:       account,
		tokenProvider: tokenProvider,
	}, nil
}

// NewClientForAccount creates a new Calendar client for a specific account
// using the default file-based token provider.
func NewClientForAccount(ctx context.Context, account string) (*Client, error) {
	provider := google.NewFileTokenProvider()
	return NewClientForAccountWithProvider(ctx, account, provider)
}

// NewClient creates a new Calendar client for the default account.
func NewClient(ctx context.Context) (*Client, error) {
	return NewClientForAccount(ctx, "default")
}

// ListEvents returns up to maxResults events starting at or after timeMin,
// ordered by start time. Recurring series are expanded by the provider
// (singleEvents); this client never expands them itself, and it requests a
// single page only.
func (c *Client) ListEvents(ctx context.Context, calendarID string, timeMin time.Time, maxResults int64) ([]Event, error) {
	result, err := c.svc.Events.List(calendarID).
		TimeMin(timeMin.Format(time.RFC3339)).
		MaxResults(maxResults).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	events := make([]Event, 0, len(result.Items))
	for _, item := range result.Items {
		events = append(events, fromProviderEvent(item))
	}

	return events, nil
}

// QueryFreeBusy submits an availability query and returns the busy blocks
// per calendar as reported by the provider.
func (c *Client) QueryFreeBusy(ctx context.Context, req FreeBusyRequest) (FreeBusyResponse, error) {
	items := make([]*gcal.FreeBusyRequestItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = &gcal.FreeBusyRequestItem{Id: item.ID}
	}

	query := &gcal.FreeBusyRequest{
		TimeMin:  req.TimeMin,
		TimeMax:  req.TimeMax,
		TimeZone: req.TimeZone,
		Items:    items,
	}

	result, err := c.svc.Freebusy.Query(query).Context(ctx).Do()
	if err != nil {
		return FreeBusyResponse{}, fmt.Errorf("failed to query freebusy: %w", err)
	}

	resp := FreeBusyResponse{Calendars: make(map[string]CalendarBusy, len(result.Calendars))}
	for calID, cal := range result.Calendars {
		busy := CalendarBusy{}
		for _, block := range cal.Busy {
			busy.Busy = append(busy.Busy, BusyBlock{Start: block.Start, End: block.End})
		}
		resp.Calendars[calID] = busy
	}

	return resp, nil
}

// InsertEvent creates the event on the given calendar and returns the
// created record with the provider-assigned id and link populated.
func (c *Client) InsertEvent(ctx context.Context, calendarID string, event Event) (Event, error) {
	payload, err := toProviderEvent(event)
	if err != nil {
		return Event{}, err
	}

	created, err := c.svc.Events.Insert(calendarID, payload).Context(ctx).Do()
	if err != nil {
		return Event{}, fmt.Errorf("failed to insert event: %w", err)
	}

	return fromProviderEvent(created), nil
}

// fromProviderEvent maps a Google Calendar event into the canonical model.
func fromProviderEvent(event *gcal.Event) Event {
	e := Event{
		ID:          event.Id,
		Summary:     event.Summary,
		Description: event.Description,
		Location:    event.Location,
		HTMLLink:    event.HtmlLink,
	}

	e.Start = fromProviderTime(event.Start)
	e.End = fromProviderTime(event.End)

	for _, att := range event.Attendees {
		e.Attendees = append(e.Attendees, Attendee{Email: att.Email})
	}

	return e
}

func fromProviderTime(t *gcal.EventDateTime) EventTime {
	if t == nil {
		return nil
	}
	if t.DateTime != "" {
		return ZonedTime{DateTime: t.DateTime, TimeZone: t.TimeZone}
	}
	if t.Date != "" {
		return AllDayDate{Date: t.Date}
	}
	return nil
}

// toProviderEvent maps a canonical event into the Google Calendar shape.
func toProviderEvent(event Event) (*gcal.Event, error) {
	out := &gcal.Event{
		Summary:     event.Summary,
		Description: event.Description,
		Location:    event.Location,
	}

	start, err := toProviderTime(event.Start)
	if err != nil {
		return nil, fmt.Errorf("event start: %w", err)
	}
	end, err := toProviderTime(event.End)
	if err != nil {
		return nil, fmt.Errorf("event end: %w", err)
	}
	out.Start = start
	out.End = end

	for _, att := range event.Attendees {
		out.Attendees = append(out.Attendees, &gcal.EventAttendee{Email: att.Email})
	}

	return out, nil
}

func toProviderTime(t EventTime) (*gcal.EventDateTime, error) {
	switch v := t.(type) {
	case ZonedTime:
		return &gcal.EventDateTime{DateTime: v.DateTime, TimeZone: v.TimeZone}, nil
	case AllDayDate:
		return &gcal.EventDateTime{Date: v.Date}, nil
	case nil:
		return nil, fmt.Errorf("event time is required")
	default:
		return nil, fmt.Errorf("unknown event time variant %T", t)
	}
}
