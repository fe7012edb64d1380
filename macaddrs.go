package macaddrs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os/exec"
	"time"
)

// Provider runs the platform network configuration command and extracts the
// MAC addresses from its output.
// Provider methods are safe for concurrent use after configuration is complete.
type Provider struct {
	commandExecutor CommandExecutor
	logger          *slog.Logger
	filter          Filter
	sources         []Source
}

// New creates a new Provider with default settings.
// The provider uses real system commands and the platform's default sources,
// and accepts every line of output.
func New() *Provider {
	return &Provider{
		commandExecutor: &defaultCommandExecutor{
			Timeout: defaultTimeout,
		},
		filter: AcceptAll,
	}
}

// WithFilter restricts extraction to lines accepted by filter.
// A nil filter accepts every line.
func (p *Provider) WithFilter(filter Filter) *Provider {
	if filter == nil {
		filter = AcceptAll
	}
	p.filter = filter

	return p
}

// WithSources replaces the platform default commands. Sources are tried in
// order; the next one is used only when the previous binary is missing.
func (p *Provider) WithSources(sources ...Source) *Provider {
	// Copy into a non-nil slice: nil means platform defaults.
	p.sources = append([]Source{}, sources...)

	return p
}

// WithTimeout sets the per-command timeout of the default executor.
// It has no effect after [Provider.WithExecutor].
func (p *Provider) WithTimeout(timeout time.Duration) *Provider {
	if e, ok := p.commandExecutor.(*defaultCommandExecutor); ok {
		e.Timeout = timeout
	}

	return p
}

// WithExecutor sets a custom [CommandExecutor], enabling deterministic testing
// without real system commands.
func (p *Provider) WithExecutor(executor CommandExecutor) *Provider {
	p.commandExecutor = executor

	return p
}

// WithLogger sets an optional [*slog.Logger] for observability.
// When set, the provider logs the commands it runs, their duration, and
// fallbacks between sources. A nil logger (the default) disables all logging.
func (p *Provider) WithLogger(logger *slog.Logger) *Provider {
	p.logger = logger

	return p
}

// Addrs runs the configured command and returns the unique, non-zero MAC
// addresses found in its output on lines accepted by the filter.
//
// When a command's binary does not exist the next source is tried. Any other
// command failure, including a non-zero exit, is returned at once.
// The provided context controls the timeout and cancellation of the command.
func (p *Provider) Addrs(ctx context.Context) (Set, error) {
	sources := p.sources
	if sources == nil {
		var err error
		sources, err = DefaultSources()
		if err != nil {
			return nil, err
		}
	}

	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	src, output, err := p.run(ctx, sources)
	if err != nil {
		return nil, err
	}

	addrs, err := Extract(output, src.Delimiter, p.filter)
	if err != nil {
		return nil, err
	}

	p.logDebug("extracted MAC addresses", "command", src.Name, "count", addrs.Len())

	return addrs, nil
}

// run executes sources in order until one can be started.
func (p *Provider) run(ctx context.Context, sources []Source) (Source, string, error) {
	executor := p.commandExecutor
	if executor == nil {
		executor = &defaultCommandExecutor{Timeout: defaultTimeout}
	}

	var errs []error
	for _, src := range sources {
		start := time.Now()
		output, err := executor.Execute(ctx, src.Name, src.Args...)
		if err == nil {
			p.logDebug("command executed", "command", src.String(), "duration", time.Since(start))

			return src, output, nil
		}

		if !isMissingCommand(err) {
			p.logWarn("command failed", "command", src.String(), "error", err)

			return Source{}, "", err
		}

		p.logDebug("command not available, trying next source", "command", src.Name, "error", err)
		errs = append(errs, err)
	}

	return Source{}, "", fmt.Errorf("%w: %w", ErrAllCommandsFailed, errors.Join(errs...))
}

// isMissingCommand reports whether err means the executable does not exist.
func isMissingCommand(err error) bool {
	return errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist)
}

// AllAddrs returns every non-zero MAC address reported by the platform's
// network configuration command.
func AllAddrs(ctx context.Context) (Set, error) {
	return New().Addrs(ctx)
}

// AddrsWithFilter returns the non-zero MAC addresses found on lines of the
// platform command's output accepted by filter.
func AddrsWithFilter(ctx context.Context, filter Filter) (Set, error) {
	return New().WithFilter(filter).Addrs(ctx)
}

// logDebug logs at debug level if a logger is configured.
func (p *Provider) logDebug(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}

// logWarn logs at warn level if a logger is configured.
func (p *Provider) logWarn(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}
