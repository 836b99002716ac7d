package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	apppkg "github.com/kk-code-lab/cookiebox/internal/app"
	"github.com/kk-code-lab/cookiebox/internal/catalog"
	"github.com/kk-code-lab/cookiebox/internal/config"
	"github.com/kk-code-lab/cookiebox/internal/logging"
	statepkg "github.com/kk-code-lab/cookiebox/internal/state"
	"go.uber.org/zap"
)

func printHelp(w io.Writer) {
	fmt.Fprint(w, `cookiebox - Terminal cookie catalog

USAGE:
    cookiebox [OPTIONS]

OPTIONS:
    -h, --help              Show this help message and exit
    -c, --catalog PATH      Load cookies from a YAML file instead of the built-in list
    -t, --theme dark|light  Start in the given theme (default dark)
    -s, --search TEXT       Start with a name filter
    -d, --dump              Print the (filtered) catalog as text and exit
        --log-file PATH     Write JSON logs to PATH
        --log-level LEVEL   debug, info, warn or error (default info)

ENVIRONMENT:
    COOKIEBOX_CATALOG, COOKIEBOX_THEME, COOKIEBOX_LOG_FILE, COOKIEBOX_LOG_LEVEL
    Values from a .env file in the working directory are loaded first.
    Flags override the environment.
`)
}

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	os.Exit(run(os.Args[1:], os.Getenv, os.Stdout, os.Stderr))
}

func run(args []string, getenv func(string) string, stdout, stderr io.Writer) int {
	cfg, err := config.Parse(args, getenv)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n\n", err)
		printHelp(stderr)
		return 2
	}
	if cfg.ShowHelp {
		printHelp(stdout)
		return 0
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "Error initializing logger: %v\n", err)
		return 1
	}
	defer func() {
		_ = logger.Sync()
	}()

	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		logger.Error("catalog load failed", zap.String("path", cfg.CatalogPath), zap.Error(err))
		fmt.Fprintf(stderr, "Error loading catalog: %v\n", err)
		return 1
	}
	logger.Info("catalog loaded",
		zap.String("path", cfg.CatalogPath),
		zap.Int("items", cat.Len()))

	if cfg.Dump {
		dump(stdout, cat, cfg.Search)
		return 0
	}

	// UTF-8 fallback keeps non-ASCII names readable on odd locales.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	app, err := apppkg.NewApplication(apppkg.Options{
		Catalog: cat,
		Theme:   statepkg.ParseTheme(cfg.Theme),
		Search:  cfg.Search,
		Logger:  logger,
	})
	if err != nil {
		logger.Error("application init failed", zap.Error(err))
		fmt.Fprintf(stderr, "Error initializing application: %v\n", err)
		return 1
	}
	defer func() {
		_ = app.Close()
	}()

	app.Run()
	return 0
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(path)
}

// dump prints every matching recipe separated by a blank line.
func dump(w io.Writer, cat *catalog.Catalog, search string) {
	items := statepkg.FilterItems(cat.Items(), search)
	if len(items) == 0 {
		fmt.Fprintln(w, "No cookies found")
		return
	}
	for i, item := range items {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprint(w, catalog.FormatRecipe(item))
	}
}
