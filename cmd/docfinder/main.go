// Package main is the docfinder CLI entry point.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/hyperjump/docfinder/internal/cli"
	"github.com/hyperjump/docfinder/internal/config"
	"github.com/hyperjump/docfinder/internal/models"
	"github.com/hyperjump/docfinder/internal/search"
	"github.com/hyperjump/docfinder/internal/server"
	"github.com/hyperjump/docfinder/internal/session"
	"github.com/hyperjump/docfinder/internal/storage"
	"github.com/hyperjump/docfinder/internal/store"
	"github.com/hyperjump/docfinder/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/docfinder/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks for
// config.yaml in the current directory (for development). When the default path
// does not exist either, built-in defaults are used so the finder runs on the
// sample corpus without any setup.
// Returns the config and the path that was actually loaded ("" for defaults).
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
		if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
			return config.Default(), "", nil
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "search":
		runSearch()
	case "facets":
		runFacets()
	case "stats":
		runStats()
	case "show":
		runShow()
	case "import":
		runImport()
	case "version", "--version", "-v":
		fmt.Printf("docfinder version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging (every query evaluation and selection change)")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
	)

	components, err := initializeComponents(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize components", zap.Error(err))
	}

	srv := server.NewServer(components.Engine, components.Session, &cfg.Server, logger)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

// printSearchUsage prints search subcommand usage.
func printSearchUsage(fs *flag.FlagSet) {
	fmt.Fprintf(fs.Output(), "Usage: docfinder search [flags] [term...]\n\n")
	fmt.Fprintf(fs.Output(), "The search term is all remaining arguments joined by spaces; omit it to list by filters only.\n\n")
	fs.PrintDefaults()
	fmt.Fprintf(fs.Output(), `
The term is matched case-insensitively against title, topic, content, and tags.
Filters (--team, --type, --project) must match exactly; "All" means no constraint.

Examples:
  docfinder search brand
  docfinder search --team Brand
  docfinder search --type Report weekly
  docfinder search --output json --project "Q1 Growth"
`)
}

// buildSearchTerm joins all positional args with spaces so multi-word terms
// work the same with or without shell quoting. Whitespace is kept: it is part
// of the substring being matched.
func buildSearchTerm(args []string) string {
	return strings.Join(args, " ")
}

// searchArgsReorder moves any flags (and their values) that appear after the term
// to the front of the slice so that flag.Parse() sees them. Go's flag package
// stops at the first non-flag argument.
func searchArgsReorder(args []string) []string {
	for i, a := range args {
		if len(a) > 0 && a[0] == '-' {
			if i == 0 {
				return args
			}
			reordered := make([]string, 0, len(args))
			reordered = append(reordered, args[i:]...)
			reordered = append(reordered, args[:i]...)
			return reordered
		}
	}
	return args
}

// newOutputWriter resolves the output flag, exiting on an unknown format.
func newOutputWriter(format string, cfg *config.Config) *cli.Writer {
	f, err := cli.ParseOutputFormat(format)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	snippet := 200
	if cfg != nil {
		snippet = cfg.Output.SnippetLength
	}
	return cli.NewWriter(os.Stdout, f, snippet)
}

func runSearch() {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path (direct mode)")
	serverURL := fs.String("server", "", "server URL; empty evaluates in-process against the configured seed")
	team := fs.String("team", models.All, "team filter")
	docType := fs.String("type", models.All, "type filter")
	project := fs.String("project", models.All, "project filter")
	outputFormat := fs.String("output", "text", "output format: text (human-readable), compact (one result per line), or json (parseable)")
	fs.Usage = func() { printSearchUsage(fs) }
	_ = fs.Parse(searchArgsReorder(os.Args[2:]))

	query := models.QueryState{
		SearchTerm: buildSearchTerm(fs.Args()),
		Team:       *team,
		Type:       *docType,
		Project:    *project,
	}

	var (
		response *models.SearchResponse
		cfg      *config.Config
	)
	if *serverURL != "" {
		response = &models.SearchResponse{}
		if err := postJSON(*serverURL+"/api/v1/search", query, response); err != nil {
			fmt.Fprintf(os.Stderr, "Search failed: %v\n", err)
			os.Exit(1)
		}
	} else {
		var components *Components
		cfg, components = mustInitializeDirect(*configPath)
		response = components.Engine.Search(query)
	}
	if err := newOutputWriter(*outputFormat, cfg).WriteSearchResults(response); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runFacets() {
	fs := flag.NewFlagSet("facets", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path (direct mode)")
	serverURL := fs.String("server", "", "server URL; empty reads the configured seed directly")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	var (
		facets models.Facets
		cfg    *config.Config
	)
	if *serverURL != "" {
		if err := getJSON(*serverURL+"/api/v1/facets", &facets); err != nil {
			fmt.Fprintf(os.Stderr, "Facets failed: %v\n", err)
			os.Exit(1)
		}
	} else {
		var components *Components
		cfg, components = mustInitializeDirect(*configPath)
		facets = components.Store.Facets()
	}
	if err := newOutputWriter(*outputFormat, cfg).WriteFacets(facets); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runStats() {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path (direct mode)")
	serverURL := fs.String("server", "", "server URL; empty reads the configured seed directly")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	var (
		stats models.StatsResponse
		cfg   *config.Config
	)
	if *serverURL != "" {
		if err := getJSON(*serverURL+"/api/v1/stats", &stats); err != nil {
			fmt.Fprintf(os.Stderr, "Stats failed: %v\n", err)
			os.Exit(1)
		}
	} else {
		var components *Components
		cfg, components = mustInitializeDirect(*configPath)
		stats = components.Store.Stats()
	}
	if err := newOutputWriter(*outputFormat, cfg).WriteStats(stats); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runShow() {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path (direct mode)")
	serverURL := fs.String("server", "", "server URL; empty reads the configured seed directly")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	if fs.NArg() < 1 {
		fmt.Println("Usage: docfinder show [flags] <document-id>")
		os.Exit(1)
	}
	id := fs.Arg(0)

	var (
		doc models.Document
		cfg *config.Config
	)
	if *serverURL != "" {
		if err := getJSON(*serverURL+"/api/v1/documents/"+url.PathEscape(id), &doc); err != nil {
			fmt.Fprintf(os.Stderr, "Show failed: %v\n", err)
			os.Exit(1)
		}
	} else {
		var components *Components
		cfg, components = mustInitializeDirect(*configPath)
		found, err := components.Store.Get(id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Show failed: %v\n", err)
			os.Exit(1)
		}
		doc = found
	}
	if err := newOutputWriter(*outputFormat, cfg).WriteDocument(doc); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runImport() {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	to := fs.String("to", "", "destination file: .db/.sqlite (catalog), .yaml, or .xlsx")
	format := fs.String("format", "", "source format (default: inferred from the source extension)")
	_ = fs.Parse(os.Args[2:])

	if fs.NArg() < 1 || *to == "" {
		fmt.Println("Usage: docfinder import --to <destination> <source>")
		fmt.Println("  source: .yaml, .json, .db, .xlsx, or \"builtin\" for the sample corpus")
		os.Exit(1)
	}
	src := fs.Arg(0)
	if src == "builtin" {
		src = ""
	}

	n, err := importSeed(context.Background(), src, *format, *to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Import failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Imported %d document(s) into %s\n", n, *to)
}

// importSeed loads the seed at src, checks it forms a valid store, and writes
// it to dest in the format implied by dest's extension.
func importSeed(ctx context.Context, src, format, dest string) (int, error) {
	docs, err := storage.Load(ctx, src, format)
	if err != nil {
		return 0, err
	}
	if _, err := store.New(docs); err != nil {
		return 0, err
	}
	destFormat, err := storage.DetectFormat(dest)
	if err != nil {
		return 0, err
	}
	switch destFormat {
	case storage.FormatSQLite:
		catalog, err := storage.CreateSQLiteSource(dest)
		if err != nil {
			return 0, err
		}
		defer catalog.Close()
		if err := catalog.WriteDocuments(ctx, docs); err != nil {
			return 0, fmt.Errorf("failed to write catalog: %w", err)
		}
		n, err := catalog.CountDocuments(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to count catalog: %w", err)
		}
		return int(n), nil
	case storage.FormatYAML:
		if err := storage.WriteYAML(dest, docs); err != nil {
			return 0, err
		}
	case storage.FormatExcel:
		if err := storage.WriteExcel(dest, docs); err != nil {
			return 0, err
		}
	default:
		return 0, fmt.Errorf("cannot write %s seed files", destFormat)
	}
	return len(docs), nil
}

func getJSON(u string, out interface{}) error {
	resp, err := http.Get(u)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	return decodeResponse(resp, out)
}

func postJSON(u string, in, out interface{}) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	resp, err := http.Post(u, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	return decodeResponse(resp, out)
}

func decodeResponse(resp *http.Response, out interface{}) error {
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Components holds initialized services.
type Components struct {
	Store   *store.Store
	Engine  *search.Engine
	Session *session.Session
}

// mustInitializeDirect loads config and components for in-process commands, exiting on failure.
func mustInitializeDirect(configPath string) (*config.Config, *Components) {
	cfg, _, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	components, err := initializeComponents(context.Background(), cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	return cfg, components
}

func initializeComponents(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Components, error) {
	tagMatch, err := search.ParseTagMatch(cfg.Search.TagMatch)
	if err != nil {
		return nil, fmt.Errorf("invalid search config: %w", err)
	}
	policy, err := session.ParsePolicy(cfg.Selection.Policy)
	if err != nil {
		return nil, fmt.Errorf("invalid selection config: %w", err)
	}

	docs, err := storage.Load(ctx, cfg.Seed.Path, cfg.Seed.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize seed: %w", err)
	}
	st, err := store.New(docs)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}
	seedPath := cfg.Seed.Path
	if seedPath == "" {
		seedPath = string(storage.FormatBuiltin)
	}
	logger.Info("document store loaded",
		zap.String("seed", seedPath),
		zap.Int("documents", st.Len()),
		zap.String("tag_match", string(tagMatch)),
		zap.String("selection_policy", string(policy)),
	)

	engine := search.NewEngine(st, search.WithTagMatch(tagMatch))
	sess := session.New(engine, session.WithPolicy(policy), session.WithLogger(logger))
	return &Components{
		Store:   st,
		Engine:  engine,
		Session: sess,
	}, nil
}

func printUsage() {
	fmt.Println(`docfinder - Find documents by search term and team/type/project filters

Usage:
  docfinder server [flags]             Start the HTTP server
  docfinder search [flags] [term...]   Search documents
  docfinder facets [flags]             Show filter options
  docfinder stats [flags]              Show document and per-team counts
  docfinder show [flags] <id>          Show one document
  docfinder import --to <dest> <src>   Convert a seed collection (yaml/json/db/xlsx)
  docfinder version                    Show version
  docfinder help                       Show this help

Server Flags:
  --config string    Config file path (default: /usr/local/etc/docfinder/config.yaml)
  --debug            Enable debug logging

Search Flags:
  --config string    Config file path (direct mode)
  --server string    Server URL; empty (default) evaluates in-process
  --team string      Team filter (default: All)
  --type string      Type filter (default: All)
  --project string   Project filter (default: All)
  --output string    Output format: text, compact, or json (default: text)

Facets/Stats/Show Flags:
  --config string    Config file path (direct mode)
  --server string    Server URL; empty (default) reads the seed directly
  --output string    Output format: text or json (default: text)

Examples:
  docfinder server
  docfinder search brand
  docfinder search --team Brand
  docfinder search --type Report weekly
  docfinder stats --output json
  docfinder show 4
  docfinder import --to catalog.db seed.yaml`)
}
