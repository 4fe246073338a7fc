package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ehr/recordview/internal/config"
	"github.com/ehr/recordview/internal/domain/record"
	"github.com/ehr/recordview/internal/platform/middleware"
	"github.com/ehr/recordview/internal/platform/recordsource"
	"github.com/ehr/recordview/internal/view"
	"github.com/ehr/recordview/internal/viewer"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "recordview",
		Short:        "Medical record card, summary and timeline views",
		SilenceUsage: true,
	}
	root.AddCommand(serveCmd())
	root.AddCommand(renderCmd())
	root.AddCommand(classifyCmd())
	return root
}

func newLogger(env string, level zerolog.Level) zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if env == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return logger.Level(level)
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the record viewer server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, _ := cfg.Level()
	logger := newLogger(cfg.Env, level)

	file, err := recordsource.LoadFile(cfg.RecordsFile)
	if err != nil {
		logger.Fatal().Err(err).Str("file", cfg.RecordsFile).Msg("failed to load records")
	}
	store := recordsource.NewStore(file.All())
	logger.Info().Int("records", store.Len()).Str("file", cfg.RecordsFile).Msg("records loaded")

	renderer, err := view.NewRenderer()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse templates")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{"Content-Type", "X-Request-ID", "If-None-Match"},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	records := e.Group("/records", middleware.ETag())
	viewer.NewHandler(store, logger, viewer.Options{
		ShowPatient: cfg.ShowPatient,
		Buckets:     file.Buckets,
	}).RegisterRoutes(records)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}

type renderFlags struct {
	file    string
	view    string
	id      string
	compact bool
	patient bool
	format  string
}

func renderCmd() *cobra.Command {
	var f renderFlags
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a view of a records file to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := zerolog.New(cmd.ErrOrStderr()).With().Timestamp().Logger()
			return runRender(cmd.OutOrStdout(), logger, f)
		},
	}
	cmd.Flags().StringVar(&f.file, "file", "", "Path to a .yaml, .yml or .json records file")
	cmd.Flags().StringVar(&f.view, "view", "timeline", "View to render: timeline, summary or card")
	cmd.Flags().StringVar(&f.id, "id", "", "Record id for the card view")
	cmd.Flags().BoolVar(&f.compact, "compact", false, "Render the compact card")
	cmd.Flags().BoolVar(&f.patient, "patient", false, "Show patient names")
	cmd.Flags().StringVar(&f.format, "format", "html", "Output format: html or json")
	cmd.MarkFlagRequired("file")
	return cmd
}

func runRender(w io.Writer, logger zerolog.Logger, f renderFlags) error {
	file, err := recordsource.LoadFile(f.file)
	if err != nil {
		return err
	}

	var model interface{}
	switch f.view {
	case "timeline":
		model = view.NewTimeline(file.Records, view.TimelineOptions{ShowPatient: f.patient, Logger: &logger})
	case "summary":
		buckets := file.Buckets
		if buckets == nil {
			buckets = record.BucketByType(file.Records)
		}
		model = view.NewSummary(buckets, view.SummaryOptions{})
	case "card":
		r, err := recordsource.NewStore(file.All()).Get(f.id)
		if err != nil {
			return fmt.Errorf("card %q: %w", f.id, err)
		}
		model = view.NewCard(r, view.CardOptions{Compact: f.compact, ShowPatient: f.patient})
	default:
		return fmt.Errorf("unknown view %q", f.view)
	}

	switch f.format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(model)
	case "html":
		renderer, err := view.NewRenderer()
		if err != nil {
			return err
		}
		return renderer.RenderPage(w, f.view, model)
	}
	return fmt.Errorf("unknown format %q", f.format)
}

func classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify",
		Short: "Print the type, status and priority display tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printTables(cmd.OutOrStdout())
		},
	}
}

func printTables(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tLABEL\tICON\tCOLOR")
	for _, t := range record.AllTypes() {
		icon := record.TypeIcon(t)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t, record.TypeLabel(t), icon.Name, icon.Color)
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "STATUS\tLABEL\tCLASS")
	for _, s := range record.AllStatuses() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s, record.StatusLabel(s), record.StatusColorClass(s))
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "PRIORITY\tICON\tCOLOR")
	for _, p := range record.AllPriorities() {
		icon := record.PriorityIcon(p)
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p, icon.Name, icon.Color)
	}
	return tw.Flush()
}
