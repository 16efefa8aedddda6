// Package cli wires a browser invocation together: profile, settings,
// API client, notification store, watcher and the terminal interface.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/radicle-dev/rad-tui/internal/config"
	"github.com/radicle-dev/rad-tui/internal/keybinds"
	"github.com/radicle-dev/rad-tui/internal/logging"
	"github.com/radicle-dev/rad-tui/internal/radicle"
	"github.com/radicle-dev/rad-tui/internal/selection"
	"github.com/radicle-dev/rad-tui/internal/tui"
	"github.com/radicle-dev/rad-tui/internal/watcher"
)

// Options configures a browser invocation.
type Options struct {
	// Kind of object to browse: "issue", "patch" or "inbox".
	Kind string

	// Mode is the --mode flag value ("operation" or "id").
	Mode string

	// Filter pre-seeds the search line, translated from flags.
	Filter string

	// Repo overrides the repository detected from the working
	// directory.
	Repo string

	// SortBy orders inbox notifications.
	SortBy radicle.SortBy
}

// environment is everything a browser needs from the host.
type environment struct {
	settings config.Settings
	profile  *radicle.Profile
	client   *radicle.Client
	rid      string
	registry *keybinds.Registry
	theme    tui.Theme
}

// setup resolves profile, repository and settings.
func setup(opts Options) (*environment, error) {
	if err := config.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	settings, err := config.LoadSettings(config.SettingsFile)
	if err != nil {
		return nil, err
	}

	profile, err := radicle.LoadProfile(config.RadHome)
	if err != nil {
		return nil, err
	}

	rid := opts.Repo
	if rid == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		rid, err = radicle.CwdRID(cwd)
		if err != nil {
			return nil, fmt.Errorf("no repository: %w (use --repo)", err)
		}
	} else if !strings.HasPrefix(rid, "rad:") {
		rid = "rad:" + rid
	}

	registry, err := keybinds.NewRegistryFromOverrides(settings.Keybinds)
	if err != nil {
		return nil, err
	}

	client := radicle.NewClient(settings.HttpdURL)

	// The node id comes from the API; without it, authorship marks like
	// "(you)" and is:authored degrade gracefully.
	if info, err := client.Node(context.Background()); err == nil {
		profile.NID = info.ID
	}

	return &environment{
		settings: settings,
		profile:  profile,
		client:   client,
		rid:      rid,
		registry: registry,
		theme:    tui.NewTheme(settings),
	}, nil
}

// newBrowser builds the kind-specific browser. The returned cleanup
// closes resources the browser holds open.
func newBrowser(opts Options, env *environment) (tui.Browser, func(), error) {
	switch opts.Kind {
	case "issue":
		return tui.NewIssueBrowser(env.client, env.rid, env.profile.DID(), env.theme), func() {}, nil

	case "patch":
		return tui.NewPatchBrowser(env.client, env.rid, env.profile.DID(), env.theme), func() {}, nil

	case "inbox":
		store, err := radicle.OpenNotifications(config.NotificationsDB())
		if err != nil {
			return nil, nil, err
		}
		browser := tui.NewInboxBrowser(store, env.client, env.rid, env.profile.DID(), opts.SortBy, env.theme)
		return browser, func() { _ = store.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown object kind %q", opts.Kind)
	}
}

// Select runs the interactive browser and writes the selection, if any,
// to stderr as a single JSON line. Stdout belongs to the terminal.
func Select(opts Options) error {
	mode, err := selection.ParseMode(opts.Mode)
	if err != nil {
		return err
	}

	env, err := setup(opts)
	if err != nil {
		return err
	}

	if err := logging.Enable(opts.Kind, "select"); err == nil {
		defer logging.Close()
	}

	browser, cleanup, err := newBrowser(opts, env)
	if err != nil {
		return err
	}
	defer cleanup()

	// Refresh the browser when the node writes new refs for the repo.
	var refresh <-chan struct{}
	storage := config.StorageDir(strings.TrimPrefix(env.rid, "rad:"))
	if w, err := watcher.New(storage); err == nil {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		defer w.Close()
		go w.Run(ctx)
		refresh = w.Events()
	}

	model := tui.New(tui.Options{
		Browser:       browser,
		Registry:      env.registry,
		Theme:         env.theme,
		OutputMode:    mode,
		InitialFilter: opts.Filter,
		Refresh:       refresh,
	})

	result, err := tui.Run(model)
	if err != nil {
		return err
	}
	if result == nil {
		// Quit without a selection is not an error.
		return nil
	}
	return result.Write(os.Stderr)
}

// List prints the filtered items as a static table on stdout.
func List(opts Options) error {
	env, err := setup(opts)
	if err != nil {
		return err
	}

	browser, cleanup, err := newBrowser(opts, env)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := browser.SetFilter(opts.Filter); err != nil {
		return err
	}
	if err := browser.Load(context.Background()); err != nil {
		return err
	}

	width := 120
	fmt.Println(tui.RenderList(browser, width))
	return nil
}
