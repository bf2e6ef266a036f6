// Package reconcile aligns each movie's monitored flag with its download
// state: downloaded movies are unmonitored, missing movies are monitored.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vmunix/monitorr/internal/radarr"
)

//go:generate mockgen -destination=mocks/movie_service.go -package=mocks . MovieService

// DefaultPathPrefix is stripped from movie paths in log output.
const DefaultPathPrefix = "/movies/"

var (
	// ErrListMovies wraps a failure to read the movie collection.
	ErrListMovies = errors.New("list movies")

	// ErrUpdateMovie wraps a failure to write a movie back.
	ErrUpdateMovie = errors.New("update movie")
)

// MovieService is the subset of the Radarr API the reconciler needs.
type MovieService interface {
	ListMovies(ctx context.Context) ([]*radarr.Movie, error)
	UpdateMovie(ctx context.Context, movie *radarr.Movie) error
}

// Options control a reconcile pass.
type Options struct {
	PrintOnly  bool   // compute and log changes without writing them
	PathPrefix string // stripped from paths of unchanged movies in logs
}

// Change records one movie whose monitored flag was flipped.
type Change struct {
	ID         int64
	Title      string
	Path       string
	Downloaded bool
	Monitored  bool // new value, always !Downloaded
	Applied    bool // written to the server
}

// Result summarizes a pass.
type Result struct {
	Checked int
	Changes []Change
	Updated int
}

// Reconciler runs reconcile passes against a MovieService.
type Reconciler struct {
	svc    MovieService
	opts   Options
	logger *slog.Logger
}

// New creates a Reconciler.
func New(svc MovieService, opts Options, logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{
		svc:    svc,
		opts:   opts,
		logger: logger.With("component", "reconcile"),
	}
}

// Run performs one pass. Movies are handled in server order and the first
// failed write stops the pass; the partial Result is returned with the error.
func (r *Reconciler) Run(ctx context.Context) (*Result, error) {
	movies, err := r.svc.ListMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListMovies, err)
	}

	result := &Result{}
	for _, movie := range movies {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		result.Checked++

		change, ok := r.evaluate(movie)
		if !ok {
			continue
		}

		if !r.opts.PrintOnly {
			if err := r.svc.UpdateMovie(ctx, movie); err != nil {
				result.Changes = append(result.Changes, change)
				return result, fmt.Errorf("%w %d (%s): %w", ErrUpdateMovie, change.ID, change.Path, err)
			}
			change.Applied = true
			result.Updated++
		}
		result.Changes = append(result.Changes, change)
	}

	return result, nil
}

// evaluate flips monitored when it equals downloaded and reports the change.
func (r *Reconciler) evaluate(movie *radarr.Movie) (Change, bool) {
	downloaded, dlSet := movie.LookupDownloaded()
	monitored, monSet := movie.LookupMonitored()
	path := movie.Path()

	// An absent flag only matches another absent flag.
	if dlSet != monSet || downloaded != monitored {
		r.logger.Debug("no change",
			"path", r.displayPath(path),
			"state", stateLabel(downloaded, monitored))
		return Change{}, false
	}

	movie.SetMonitored(!downloaded)
	r.logger.Debug("monitoring changed",
		"path", path,
		"new_state", monitoredLabel(!downloaded))

	return Change{
		ID:         movie.ID(),
		Title:      movie.Title(),
		Path:       path,
		Downloaded: downloaded,
		Monitored:  !downloaded,
	}, true
}

func (r *Reconciler) displayPath(path string) string {
	prefix := r.opts.PathPrefix
	if prefix == "" {
		return path
	}
	return strings.TrimPrefix(path, prefix)
}

func stateLabel(downloaded, monitored bool) string {
	dl := "undownloaded"
	if downloaded {
		dl = "downloaded"
	}
	return dl + " & " + monitoredLabel(monitored)
}

func monitoredLabel(monitored bool) string {
	if monitored {
		return "monitored"
	}
	return "unmonitored"
}
