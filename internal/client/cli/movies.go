package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/dmitrijs2005/watchlist/internal/client/models"
)

var errNotLoggedIn = errors.New("not logged in")

func (a *App) requireLogin() error {
	if a.isLoggedIn() {
		return nil
	}
	fmt.Fprintln(a.out, "Please log in first")
	return errNotLoggedIn
}

func (a *App) List(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	movies, err := a.client.List(ctx)
	if err != nil {
		return a.report(err)
	}

	if len(movies) == 0 {
		fmt.Fprintln(a.out, "Your watchlist is empty")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTMDB\tTITLE\tYEAR")
	for _, m := range movies {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\n", m.ID, m.TmdbID, m.Title, m.Year)
	}
	return tw.Flush()
}

// Add prompts for movie details and saves the movie. Year and poster may
// be left empty.
func (a *App) Add(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	tmdbID, err := GetID(a.reader, "Enter TMDB id", a.out)
	if err != nil {
		return err
	}

	var m models.NewMovie
	m.TmdbID = tmdbID
	for m.Title == "" {
		if m.Title, err = getSimpleText(a.reader, "Enter title", a.out); err != nil {
			return err
		}
	}
	if m.Year, err = getSimpleText(a.reader, "Enter year (optional)", a.out); err != nil {
		return err
	}
	if m.Poster, err = getSimpleText(a.reader, "Enter poster URL (optional)", a.out); err != nil {
		return err
	}

	added, err := a.client.Add(ctx, m)
	if err != nil {
		return a.report(err)
	}

	fmt.Fprintf(a.out, "Added %q with id %d\n", added.Title, added.ID)
	return nil
}

// Remove deletes the movie whose id is given as the first argument, or
// prompts for one.
func (a *App) Remove(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	var (
		id  int64
		err error
	)
	if len(args) > 0 {
		if id, err = parseID(args[0]); err != nil {
			fmt.Fprintln(a.out, "Usage: remove <id>")
			return err
		}
	} else if id, err = GetID(a.reader, "Enter movie id", a.out); err != nil {
		return err
	}

	if err := a.client.Remove(ctx, id); err != nil {
		return a.report(err)
	}

	fmt.Fprintln(a.out, "Removed movie "+strconv.FormatInt(id, 10))
	return nil
}
