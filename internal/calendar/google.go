package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	errorvalues "github.com/limbo/dayflow/internal/error_values"
)

type Config struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	// "primary" when empty
	CalendarID string
}

func (c Config) complete() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.RefreshToken != ""
}

// GoogleProvider creates events in one Google calendar on behalf of a
// single account authorized by a refresh token.
type GoogleProvider struct {
	events     *gcal.EventsService
	calendarID string
	logger     *slog.Logger
}

// NewGoogleProvider fails with ErrMissingCredentials when cfg lacks any
// credential. opts are applied after the OAuth2 client.
func NewGoogleProvider(ctx context.Context, cfg Config, logger *slog.Logger, opts ...option.ClientOption) (*GoogleProvider, error) {
	if !cfg.complete() {
		return nil, errorvalues.ErrMissingCredentials
	}
	if cfg.CalendarID == "" {
		cfg.CalendarID = "primary"
	}
	if logger == nil {
		logger = slog.Default()
	}
	oauthCfg := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{gcal.CalendarEventsScope},
	}
	client := oauthCfg.Client(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken})
	srv, err := gcal.NewService(ctx, append([]option.ClientOption{option.WithHTTPClient(client)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("%w: creating calendar client: %v", errorvalues.ErrProvider, err)
	}
	return &GoogleProvider{
		events:     srv.Events,
		calendarID: cfg.CalendarID,
		logger:     logger,
	}, nil
}

// CreateEvent inserts an event and returns its web link. Times are shown in
// zone when it is a known zone name.
func (gp *GoogleProvider) CreateEvent(ctx context.Context, title string, start, end time.Time, zone string) (string, error) {
	if loc, err := time.LoadLocation(zone); err == nil {
		start, end = start.In(loc), end.In(loc)
	}
	event := &gcal.Event{
		Summary: title,
		Start:   &gcal.EventDateTime{DateTime: start.Format(time.RFC3339), TimeZone: zone},
		End:     &gcal.EventDateTime{DateTime: end.Format(time.RFC3339), TimeZone: zone},
	}
	created, err := gp.events.Insert(gp.calendarID, event).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("%w: inserting event %q: %v", errorvalues.ErrProvider, title, err)
	}
	gp.logger.Debug("calendar event created",
		slog.String("event_id", created.Id),
		slog.String("calendar", gp.calendarID),
	)
	return created.HtmlLink, nil
}
