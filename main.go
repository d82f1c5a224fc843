package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gamma-omg/key-detector/decompiler"
	"github.com/gamma-omg/key-detector/keywords"
	"github.com/gamma-omg/key-detector/report"
	"github.com/gamma-omg/key-detector/scanner"
	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/pflag"
)

const (
	defaultServerAddr = "localhost:8090"
	shutdownTimeout   = 5 * time.Second
)

const usage = `Usage:
  key-detector <package_file> <comma_separated_keywords> [flags]
  key-detector <package_file> -w <wordlist_file> [flags]
  key-detector --serve [--addr <host:port>] [flags]

Flags:
`

var errUsage = errors.New("invalid arguments")

type options struct {
	pkg      string
	csv      string
	wordlist string
	config   string
	output   string
	format   string
	apktool  string
	addr     string
	serve    bool
	quiet    bool
}

func newFlagSet(opts *options) *pflag.FlagSet {
	fs := pflag.NewFlagSet("key-detector", pflag.ContinueOnError)
	fs.StringVarP(&opts.wordlist, "wordlist", "w", "", "File with one keyword per line")
	fs.StringVarP(&opts.config, "config", "c", "", "Configuration file (default key-detector.yaml)")
	fs.StringVarP(&opts.output, "output", "o", "", "Save results into this file")
	fs.StringVarP(&opts.format, "format", "f", "", "Output file format: text, json or yaml")
	fs.StringVar(&opts.apktool, "apktool", "", "Path to the apktool binary")
	fs.BoolVar(&opts.serve, "serve", false, "Serve the detector as an MCP tool over SSE")
	fs.StringVar(&opts.addr, "addr", "", "Address for --serve (default "+defaultServerAddr+")")
	fs.BoolVarP(&opts.quiet, "quiet", "q", false, "Do not print the banner and progress")
	return fs
}

func parseArgs(args []string, out io.Writer) (*options, error) {
	opts := &options{}
	fs := newFlagSet(opts)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprint(out, usage)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	pos := fs.Args()
	if opts.serve {
		if len(pos) != 0 {
			return nil, fmt.Errorf("%w: --serve takes no positional arguments", errUsage)
		}

		return opts, nil
	}

	switch len(pos) {
	case 1:
		opts.pkg = pos[0]
	case 2:
		opts.pkg, opts.csv = pos[0], pos[1]
	default:
		return nil, fmt.Errorf("%w: expected a package file and optionally a keyword list", errUsage)
	}

	return opts, nil
}

func resolveKeywords(opts *options) ([]string, error) {
	words, err := keywords.Resolve(opts.csv, opts.wordlist)
	if errors.Is(err, keywords.ErrNoSource) || errors.Is(err, keywords.ErrConflictingSource) {
		return nil, fmt.Errorf("%w: %w", errUsage, err)
	}

	return words, err
}

func newLogger(cfg *Config, stderr io.Writer) (*slog.Logger, func()) {
	if cfg.LogFile == "" {
		h := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
		return slog.New(h), func() {}
	}

	logFile := &lazyFile{path: cfg.LogFile}
	return slog.New(slog.NewJSONHandler(logFile, nil)), func() { logFile.Close() }
}

// lazyFile opens its file on the first write so a run that logs nothing
// leaves no file behind. Writes are serialized by the slog handler.
type lazyFile struct {
	path string
	f    *os.File
	err  error
}

func (l *lazyFile) Write(p []byte) (int, error) {
	if l.f == nil && l.err == nil {
		l.f, l.err = os.OpenFile(l.path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o644)
		if l.err != nil {
			l.err = fmt.Errorf("failed to open log file: %w", l.err)
		}
	}
	if l.err != nil {
		return 0, l.err
	}
	return l.f.Write(p)
}

func (l *lazyFile) Close() error {
	if l.f == nil {
		return nil
	}
	return l.f.Close()
}

type statusProgress interface {
	StatusDisplay
	scanner.Progress
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}

	_ = godotenv.Load()

	cfg, err := loadConfig(opts.config)
	if err != nil {
		return err
	}

	logger, closeLog := newLogger(cfg, stderr)
	defer closeLog()

	apktool := decompiler.NewApktool(
		decompiler.WithBinary(cfg.apktoolPath(opts.apktool)),
		decompiler.WithArgs(cfg.Apktool.Args...),
		decompiler.WithLogger(logger))

	if opts.serve {
		addr := firstNonEmpty(opts.addr, cfg.ServerAddr, defaultServerAddr)
		return serve(ctx, addr, &Detector{
			log:        logger,
			decompiler: apktool,
			scanner:    scanner.New(scanner.WithLogger(logger)),
			status:     report.Silent{},
		})
	}

	words, err := resolveKeywords(opts)
	if err != nil {
		return err
	}

	format, err := report.ParseFormat(firstNonEmpty(opts.format, cfg.Format))
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	console := report.NewConsole(stdout)
	var progress statusProgress = report.Silent{}
	if !opts.quiet {
		console.Banner()
		progress = report.NewSpinner(stderr)
	}

	detector := &Detector{
		log:        logger,
		decompiler: apktool,
		scanner:    scanner.New(scanner.WithLogger(logger), scanner.WithProgress(progress)),
		status:     progress,
	}

	console.Notice("Searching %s for keywords as variables: %s", opts.pkg, strings.Join(words, ", "))
	det, err := detector.Detect(ctx, opts.pkg, words)
	if err != nil {
		return err
	}

	console.Results(det.Package, det.Results)

	if output := firstNonEmpty(opts.output, cfg.Output); output != "" {
		err = report.Save(output, format, report.NewDocument(det.Package, det.Results))
		if err != nil {
			return err
		}

		console.Notice("Results saved into '%s'", output)
	}

	return nil
}

// serve blocks until ctx is cancelled or the listener fails. Open SSE streams
// are bound to ctx so shutdown does not wait on connected clients.
func serve(ctx context.Context, addr string, detector *Detector) error {
	srv := NewDetectorServer(detector)
	sse := server.NewSSEServer(srv, server.WithBaseURL(fmt.Sprintf("http://%s", addr)))
	httpSrv := &http.Server{
		Addr:        addr,
		Handler:     sse,
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		detector.log.Info("serving MCP tool", "addr", addr)
		errc <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
	}

	detector.log.Info("shutting down MCP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		httpSrv.Close()
		return fmt.Errorf("server shutdown: %w", err)
	}

	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	if err == nil || errors.Is(err, pflag.ErrHelp) {
		return
	}

	report.NewConsole(os.Stderr).Error(err)
	if errors.Is(err, errUsage) {
		fs := newFlagSet(&options{})
		fs.SetOutput(os.Stderr)
		fmt.Fprint(os.Stderr, usage)
		fs.PrintDefaults()
	}
	os.Exit(1)
}
