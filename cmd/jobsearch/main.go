// Command jobsearch searches jobs near a place from the terminal using a
// running job search API.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"jobsearch-api/internal/client"
	"jobsearch-api/internal/logging"
	"jobsearch-api/internal/models"
	"jobsearch-api/internal/session"

	"github.com/rs/zerolog/log"
)

type options struct {
	location   string
	radiusKm   int
	profession string
	restore    string
	suggest    string
	stats      bool
}

func main() {
	apiURL := flag.String("api", "http://localhost:8080", "Base URL of the job search API")
	var opts options
	flag.StringVar(&opts.location, "location", "", "Place to search around, e.g. \"8001 Zürich\"")
	flag.IntVar(&opts.radiusKm, "radius", models.DefaultRadiusKm, "Radius in km (5, 10, 25, 50 or 100)")
	flag.StringVar(&opts.profession, "profession", "", "Profession filter")
	flag.StringVar(&opts.restore, "restore", "", "Persisted query string to re-run, e.g. \"job=Koch&plz=8001&radius=10\"")
	flag.StringVar(&opts.suggest, "suggest", "", "Print place suggestions for this text and exit")
	flag.BoolVar(&opts.stats, "stats", false, "Print job and company counts and exit")
	logLevel := flag.String("log-level", "warn", "Log level")
	flag.Parse()

	logging.SetupDefault(*logLevel, "console")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, client.New(*apiURL, nil), opts, os.Stdout)
	stop()
	if err != nil {
		log.Error().Err(err).Msg("jobsearch failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, api *client.Client, opts options, w io.Writer) error {
	switch {
	case opts.stats:
		s, err := api.Stats(ctx)
		if err != nil {
			return fmt.Errorf("error loading stats: %w", err)
		}
		fmt.Fprintf(w, "%d jobs from %d companies\n", s.JobCount, s.CompanyCount)

	case opts.suggest != "":
		places, err := suggestPlaces(ctx, api, opts.suggest)
		if err != nil {
			return fmt.Errorf("error loading suggestions: %w", err)
		}
		for _, p := range places {
			fmt.Fprintf(w, "%s %s\n", p.PostalCode, p.Name)
		}

	default:
		sess := session.New(api)

		var (
			snap session.Snapshot
			err  error
		)
		if opts.restore != "" {
			values, perr := url.ParseQuery(opts.restore)
			if perr != nil {
				return fmt.Errorf("invalid query string: %w", perr)
			}
			snap, err = sess.Restore(ctx, session.ParseParams(values))
		} else {
			snap, err = sess.Search(ctx, session.Input{
				Location:   opts.location,
				RadiusKm:   opts.radiusKm,
				Profession: opts.profession,
			})
		}
		if err != nil {
			return fmt.Errorf("search failed (%s): %w", snap.State, err)
		}
		printSnapshot(w, snap)
	}
	return nil
}

// suggestPlaces feeds text through a Suggester the way a search box would
// and waits for the debounced answer.
func suggestPlaces(ctx context.Context, api *client.Client, text string) ([]models.Place, error) {
	delivered := make(chan []models.Place, 1)
	s := session.NewSuggester(func(ctx context.Context, input string) ([]models.Place, error) {
		return api.Places(ctx, input, 15)
	}, func(places []models.Place) {
		select {
		case delivered <- places:
		default:
		}
	}, session.DefaultDebounce)
	defer s.Close()

	s.Update(text)

	select {
	case places := <-delivered:
		return places, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(30 * time.Second):
		return nil, fmt.Errorf("no suggestions for %q", text)
	}
}

func printSnapshot(w io.Writer, snap session.Snapshot) {
	switch {
	case snap.State == session.Idle:
		fmt.Fprintln(w, "Nothing to search: give a location or a profession.")
		return
	case snap.NotFound:
		fmt.Fprintf(w, "No radius data for %s.\n", snap.Params.PostalCode)
		return
	}

	if snap.Radius != nil {
		fmt.Fprintf(w, "%d places within %d km of %s\n", snap.Radius.Count, snap.Radius.RadiusKm, snap.Radius.PostalCode)
	}
	fmt.Fprintf(w, "%d jobs\n\n", len(snap.Jobs))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, job := range snap.Jobs {
		marker := " "
		if snap.Selected != nil && snap.Selected.ID == job.ID {
			marker = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", marker, job.PostedDate, job.Title, job.Company, job.Location, job.Workload)
	}
	tw.Flush()

	if snap.Selected != nil {
		fmt.Fprintf(w, "\n%s\n%s\n", snap.Selected.Title, snap.Selected.Description)
		if snap.Selected.Link != "" {
			fmt.Fprintln(w, snap.Selected.Link)
		}
	}
	fmt.Fprintf(w, "\nrestore with: -restore %q\n", snap.Params.Encode())
}
