package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/mail"
	"github.com/Zachkp/portfolio/internal/session"
	"github.com/Zachkp/portfolio/internal/store"
	"github.com/Zachkp/portfolio/internal/web"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var port, dbPath string

	serve := func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = port
		}
		if cmd.Flags().Changed("db") {
			cfg.DatabasePath = dbPath
		}
		return run(cmd.Context(), cfg)
	}

	root := &cobra.Command{
		Use:          "portfolio",
		Short:        "Serve the portfolio site",
		SilenceUsage: true,
		RunE:         serve,
	}
	root.PersistentFlags().StringVarP(&port, "port", "p", "8080", "port to listen on (overrides PORT)")
	root.PersistentFlags().StringVar(&dbPath, "db", "portfolio.db", "SQLite database path (overrides DATABASE_PATH)")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		RunE:  serve,
	})
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})
	return root
}

func run(ctx context.Context, cfg config.Config) error {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.UsingDefaultAdmin() {
		slog.Warn("using default admin credentials; set ADMIN_USERNAME and ADMIN_PASSWORD")
	}
	if !cfg.SMTP.Enabled() {
		slog.Warn("SMTP credentials not configured; contact messages will only be stored")
	}

	sessions := session.NewStore(cfg.MaxSessions, cfg.SessionTTL, cfg.DefaultSkills)
	mailer := mail.NewSMTPSender(mail.SMTPConfig{
		Host:    cfg.SMTP.Host,
		Port:    cfg.SMTP.Port,
		User:    cfg.SMTP.User,
		Pass:    cfg.SMTP.Pass,
		ToEmail: cfg.SMTP.ToEmail,
	})

	srv, err := web.New(web.Options{
		OwnerName:        cfg.OwnerName,
		ResumePath:       cfg.ResumePath,
		ImagesDir:        cfg.ImagesDir,
		SessionTTL:       cfg.SessionTTL,
		VisitorRetention: cfg.VisitorRetention,
		AdminUsername:    cfg.Admin.Username,
		AdminPassword:    cfg.Admin.Password,
		SecureCookies:    cfg.GinMode == gin.ReleaseMode,
	}, db, sessions, mailer)
	if err != nil {
		return err
	}

	if _, err := srv.PurgeOldVisits(ctx); err != nil {
		slog.Error("privacy cleanup", "err", err)
	}

	httpSrv := &http.Server{
		Addr:    net.JoinHostPort("", cfg.Port),
		Handler: srv.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("listening", "addr", httpSrv.Addr, "admin", "/admin/login")
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving http: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
