package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mattn/go-isatty"

	"github.com/datawalker/backend/internal/api"
	"github.com/datawalker/backend/internal/config"
	"github.com/datawalker/backend/internal/dataset"
	"github.com/datawalker/backend/internal/render"
	"github.com/datawalker/backend/internal/selector"
	"github.com/datawalker/backend/internal/state"
	"github.com/datawalker/backend/internal/storage"
	"github.com/datawalker/backend/internal/web"
)

// Version info (set during build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

var (
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	readyStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

func main() {
	rule := strings.Repeat("=", 60)
	fmt.Println()
	fmt.Println(bannerStyle.Render(rule))
	fmt.Println(bannerStyle.Render("Data Explorer - Starting Application"))
	fmt.Println(bannerStyle.Render(rule))
	fmt.Println()

	cfg, err := config.Load("explorer.yaml")
	if err != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("Failed to load configuration: %v", err)))
		os.Exit(1)
	}

	dataPath := resolveDataPath(cfg)
	if err := validateDataPath(dataPath, cfg); err != nil {
		os.Exit(1)
	}

	fmt.Println(readyStyle.Render("Loading data file: " + filepath.Base(dataPath)))

	ds, err := dataset.Load(dataPath)
	if err != nil {
		fmt.Println(errorStyle.Render(rule))
		fmt.Println(errorStyle.Render("Error: Invalid Data"))
		fmt.Println(errorStyle.Render(rule))
		fmt.Println(errorStyle.Render(err.Error()))
		os.Exit(1)
	}

	info := dataset.Describe(ds, filepath.Base(dataPath), dataPath)
	artifact, err := render.HTML(ds, info)
	if err != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("Failed to render visualization: %v", err)))
		os.Exit(1)
	}

	slot := state.NewSlot()
	slot.Replace(ds, info, artifact)

	h := api.NewHandler(slot, cfg.Data.Dir, cfg.Upload.MaxSizeMB)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = api.ErrorHandler

	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/health"
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.BodyLimit(cfg.Server.BodyLimit))
	if cfg.Server.EnableCORS {
		e.Use(middleware.CORS())
	}

	api.RegisterRoutes(e, h)

	s := &http.Server{
		Addr:         cfg.Addr(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	fmt.Println()
	fmt.Println(readyStyle.Render(rule))
	fmt.Println(readyStyle.Render("Application Ready"))
	fmt.Println(readyStyle.Render(rule))
	fmt.Printf("  Version: %s (built %s)\n", Version, BuildTime)
	fmt.Printf("  Host:    %s\n", cfg.Server.Host)
	fmt.Printf("  Port:    %d\n", cfg.Server.Port)
	fmt.Printf("  File:    %s\n", info.Name)
	fmt.Printf("  Data:    %s rows x %d columns\n", web.FormatCount(info.Rows), info.Columns)
	fmt.Println(readyStyle.Render(rule))
	fmt.Printf("Server starting at http://%s\n", cfg.Addr())
	fmt.Println(warnStyle.Render("Press CTRL+C to quit"))
	fmt.Println()

	e.Logger.Fatal(e.StartServer(s))
}

// resolveDataPath picks the startup data file: the explicit
// DATA_FILE_PATH override, an interactive choice when attached to a
// terminal, or the default file.
func resolveDataPath(cfg *config.Config) string {
	if cfg.Data.FilePath != "" {
		fmt.Printf("Using file path from DATA_FILE_PATH: %s\n", cfg.Data.FilePath)
		return cfg.Data.FilePath
	}

	fmt.Printf("DATA_FILE_PATH not set. Scanning %s for available files...\n", cfg.Data.Dir)
	files := storage.ScanDataDir(cfg.Data.Dir)
	if len(files) == 0 {
		fmt.Println(warnStyle.Render(fmt.Sprintf("Warning: no data files found in %s", cfg.Data.Dir)))
		fmt.Println(warnStyle.Render("Falling back to default: " + cfg.Data.DefaultFile))
		return cfg.DefaultFilePath()
	}

	if !isatty.IsTerminal(os.Stdin.Fd()) {
		// No terminal to prompt on; resolve the default directly.
		return storage.ResolveDefault(files, cfg.Data.DefaultFile).Path
	}

	chosen, err := selector.Choose(files, cfg.Data.DefaultFile, selector.DefaultMaxAttempts, os.Stdin, os.Stdout)
	if err != nil {
		// Selection cancelled; fall back to the default file.
		fmt.Println()
		fmt.Println(warnStyle.Render("Selection cancelled. Using default file: " + cfg.Data.DefaultFile))
		return storage.ResolveDefault(files, cfg.Data.DefaultFile).Path
	}
	return chosen.Path
}

// validateDataPath checks the startup file and prints actionable
// errors before the caller exits.
func validateDataPath(path string, cfg *config.Config) error {
	rule := strings.Repeat("=", 60)

	stat, err := os.Stat(path)
	if os.IsNotExist(err) {
		fmt.Println(errorStyle.Render(rule))
		fmt.Println(errorStyle.Render("Error: File Not Found"))
		fmt.Println(errorStyle.Render(rule))
		fmt.Println(errorStyle.Render("File not found: " + path))
		fmt.Println()
		fmt.Println(warnStyle.Render("Tips:"))
		fmt.Println("  - Make sure the file exists in the mounted volume")
		fmt.Println("  - Check the DATA_FILE_PATH environment variable")
		fmt.Printf("  - Default path is: %s\n", cfg.DefaultFilePath())
		fmt.Printf("  - Available files in %s:\n", cfg.Data.Dir)
		files := storage.ScanDataDir(cfg.Data.Dir)
		if len(files) == 0 {
			fmt.Println(errorStyle.Render("    (No data files found)"))
		}
		for _, f := range files {
			fmt.Printf("    * %s\n", f.Name)
		}
		return err
	}
	if err != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("Cannot access file %s: %v", path, err)))
		return err
	}
	if !stat.Mode().IsRegular() {
		fmt.Println(errorStyle.Render("Path is not a file: " + path))
		return fmt.Errorf("path is not a file: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Println(errorStyle.Render(rule))
		fmt.Println(errorStyle.Render("Error: Permission Denied"))
		fmt.Println(errorStyle.Render(rule))
		fmt.Println(errorStyle.Render(err.Error()))
		return err
	}
	f.Close()
	return nil
}
