package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/risusan11/eikenhub/internal/grader"
	"github.com/risusan11/eikenhub/internal/handler"
	appI18n "github.com/risusan11/eikenhub/internal/i18n"
	"github.com/risusan11/eikenhub/internal/metrics"
	"github.com/risusan11/eikenhub/internal/model"
	"github.com/risusan11/eikenhub/internal/realtime"
	"github.com/risusan11/eikenhub/internal/social"
	"github.com/risusan11/eikenhub/internal/store"
)

func main() {
	// A missing .env is fine; flags and real env vars still apply.
	_ = godotenv.Load()

	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "eikenhub",
		Short: "EIKEN practice hub with AI essay grading and a community board",
	}

	serve := serveCmd()
	root.AddCommand(serve, exportScoresCmd())

	// Make "serve" the default when no subcommand is given.
	root.RunE = serve.RunE

	// Register serve flags on root so bare `eikenhub --addr ...` still works.
	root.Flags().AddFlagSet(serve.Flags())

	return root
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE:  runServe,
	}
	f := cmd.Flags()
	f.StringP("addr", "a", ":3000", "HTTP listen address")
	f.String("data-dir", "data", "Directory for JSON documents")
	f.String("upload-dir", "uploads", "Directory for uploaded images")
	f.String("icons-dir", "public/icons", "Directory with preset profile icons")
	f.StringP("lang", "l", "ja", "Message language (en, ja)")
	f.String("provider", "gemini", "Essay grading provider (gemini, openai)")
	f.String("gemini-api-key", "", "Gemini API key (or set GEMINI_API_KEY)")
	f.String("gemini-model", "gemini-2.0-flash", "Gemini model name")
	f.String("openai-url", "", "OpenAI-compatible API base URL")
	f.String("openai-key", "", "API key for the OpenAI-compatible endpoint")
	f.String("openai-model", "gpt-4o-mini", "OpenAI model name")
	f.Duration("grade-timeout", 30*time.Second, "Per-essay grading timeout")
	f.StringSlice("cors-origins", []string{"*"}, "Allowed CORS origins")
	f.String("log-level", "info", "Log level (debug, info, warn, error)")
	f.String("log-format", "text", "Log format (text, json)")
	return cmd
}

func exportScoresCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export-scores",
		Short: "Export the score ranking as JSON",
		RunE:  runExportScores,
	}
	f := cmd.Flags()
	f.String("data-dir", "data", "Directory for JSON documents")
	f.StringP("output", "o", "-", "Output file path (- for stdout)")
	f.String("log-level", "info", "Log level (debug, info, warn, error)")
	f.String("log-format", "text", "Log format (text, json)")
	return cmd
}

func setupLogging(cmd *cobra.Command) {
	v := viperForCmd(cmd)

	var logLevel slog.Level
	switch strings.ToLower(v.GetString("log-level")) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	handlerOpts := &slog.HandlerOptions{Level: logLevel}
	var logHandler slog.Handler
	switch strings.ToLower(v.GetString("log-format")) {
	case "json":
		logHandler = slog.NewJSONHandler(os.Stderr, handlerOpts)
	default:
		logHandler = slog.NewTextHandler(os.Stderr, handlerOpts)
	}
	slog.SetDefault(slog.New(logHandler))
}

// viperForCmd binds a command's flags and environment to a fresh viper instance.
func viperForCmd(cmd *cobra.Command) *viper.Viper {
	v := viper.New()
	_ = v.BindPFlags(cmd.Flags())

	v.SetEnvPrefix("EIKENHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("eikenhub")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/eikenhub")
	v.AddConfigPath("/etc/eikenhub")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Warn("error reading config file", "error", err)
		}
	} else {
		slog.Info("loaded config file", "path", v.ConfigFileUsed())
	}

	return v
}

func runServe(cmd *cobra.Command, _ []string) error {
	setupLogging(cmd)
	v := viperForCmd(cmd)

	st, err := store.New(v.GetString("data-dir"))
	if err != nil {
		return fmt.Errorf("open data directory: %w", err)
	}
	if err := seedDocuments(st); err != nil {
		return fmt.Errorf("seed documents: %w", err)
	}

	lang := v.GetString("lang")
	if err := appI18n.Init(lang); err != nil {
		return fmt.Errorf("init i18n: %w", err)
	}

	backend, err := gradingBackend(cmd.Context(), v)
	if err != nil {
		return fmt.Errorf("create grading backend: %w", err)
	}
	gradingSvc := grader.New(backend, v.GetDuration("grade-timeout"))

	hub := realtime.NewHub()
	socialSvc := social.New(st, hub)

	h, err := handler.New(socialSvc, gradingSvc, hub, v.GetString("upload-dir"), v.GetString("icons-dir"))
	if err != nil {
		return fmt.Errorf("create handler: %w", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Handle("/metrics", metrics.Handler())
	h.Routes(r)

	c := cors.New(cors.Options{
		AllowedOrigins: v.GetStringSlice("cors-origins"),
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})

	addr := v.GetString("addr")
	slog.Info("starting server",
		"addr", addr,
		"data_dir", v.GetString("data-dir"),
		"upload_dir", v.GetString("upload-dir"),
		"provider", backend.Name(),
		"lang", lang,
	)
	return http.ListenAndServe(addr, c.Handler(r))
}

// gradingBackend builds the configured essay grading provider.
func gradingBackend(ctx context.Context, v *viper.Viper) (grader.Backend, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	switch strings.ToLower(v.GetString("provider")) {
	case "openai":
		return grader.NewOpenAI(
			v.GetString("openai-url"),
			v.GetString("openai-key"),
			v.GetString("openai-model"),
		), nil
	default:
		apiKey := v.GetString("gemini-api-key")
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		return grader.NewGemini(ctx, apiKey, v.GetString("gemini-model"))
	}
}

// seedDocuments materializes the collections a fresh data directory
// needs so the first reads see well-formed documents.
func seedDocuments(st *store.Store) error {
	if !st.Exists("servers") {
		boards := model.Boards{{ID: "general", Name: "メインサーバー"}}
		if err := store.Save(st, "servers", boards); err != nil {
			return err
		}
	}
	if !st.Exists("users") {
		if err := store.Save(st, "users", model.Users{}); err != nil {
			return err
		}
	}
	if !st.Exists("scores") {
		if err := store.Save(st, "scores", model.Scores{}); err != nil {
			return err
		}
	}
	if !st.Exists("notifications") {
		if err := store.Save(st, "notifications", model.Notifications{}); err != nil {
			return err
		}
	}
	if !st.Exists("friends") {
		if err := store.Save(st, "friends", model.Friends{}); err != nil {
			return err
		}
	}
	return nil
}

func runExportScores(cmd *cobra.Command, _ []string) error {
	setupLogging(cmd)
	v := viperForCmd(cmd)

	st, err := store.New(v.GetString("data-dir"))
	if err != nil {
		return fmt.Errorf("open data directory: %w", err)
	}

	entries := social.New(st, social.NopPublisher{}).ListScores()
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}

	outPath := v.GetString("output")
	var w io.Writer
	if outPath == "" || outPath == "-" {
		w = os.Stdout
	} else {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	_, _ = fmt.Fprintln(w)

	return nil
}
