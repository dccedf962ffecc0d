// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/hhconfig/internal/adapter"
	"github.com/MKhiriev/hhconfig/internal/config"
	"github.com/MKhiriev/hhconfig/internal/logger"
	"github.com/MKhiriev/hhconfig/internal/render"
	"github.com/MKhiriev/hhconfig/internal/service"
	"github.com/MKhiriev/hhconfig/models"
)

// outputFileMode keeps written artifacts private; they embed the deployer
// key unless redacted.
const outputFileMode = 0o600

type App struct {
	cfg config.App

	// services is used in local mode, serverAdapter in remote mode. Exactly
	// one of them drives assembly.
	services      *service.Services
	serverAdapter adapter.ServerAdapter

	stdout          io.Writer
	stderr          io.Writer
	copyToClipboard func(string) error

	logger *logger.Logger
}

// NewApp builds the CLI runtime. When serverAdapter is non-nil the
// configuration is fetched from the server; services are still used for
// token issuing if present.
func NewApp(cfg config.App, services *service.Services, serverAdapter adapter.ServerAdapter, logger *logger.Logger) (*App, error) {
	if serverAdapter == nil && (services == nil || services.ConfigService == nil) {
		return nil, ErrNoConfigSource
	}

	return &App{
		cfg:             cfg,
		services:        services,
		serverAdapter:   serverAdapter,
		stdout:          os.Stdout,
		stderr:          os.Stderr,
		copyToClipboard: clipboard.WriteAll,
		logger:          logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	if a.cfg.IssueToken != "" {
		return a.issueToken(ctx)
	}

	format, err := render.ParseFormat(a.cfg.OutputFormat)
	if err != nil {
		return err
	}

	var body []byte
	if a.serverAdapter != nil {
		body, err = a.fetch(ctx, format)
	} else {
		body, err = a.assemble(ctx, format)
	}
	if err != nil {
		return err
	}

	if err = a.deliver(body); err != nil {
		return err
	}

	if a.cfg.Summary {
		return a.printSummary(ctx, format, body)
	}
	return nil
}

func (a *App) issueToken(ctx context.Context) error {
	if a.services == nil || a.services.AuthService == nil {
		return ErrTokensUnavailable
	}

	token, err := a.services.AuthService.IssueToken(ctx, a.cfg.IssueToken)
	if err != nil {
		return fmt.Errorf("error issuing token: %w", err)
	}

	event := a.logger.Info().Str("operator", a.cfg.IssueToken)
	if token.ExpiresAt != nil {
		event = event.Time("expires_at", token.ExpiresAt.Time)
	}
	event.Msg("token issued")

	_, err = fmt.Fprintln(a.stdout, token.SignedString)
	return err
}

// assemble renders the locally assembled configuration and publishes a
// snapshot when asked to.
func (a *App) assemble(ctx context.Context, format render.Format) ([]byte, error) {
	cfg, err := a.services.ConfigService.Assemble(ctx)
	if err != nil {
		return nil, fmt.Errorf("error assembling configuration: %w", err)
	}

	if a.cfg.Publish {
		snapshot, err := a.services.ConfigService.Publish(ctx)
		if err != nil {
			return nil, fmt.Errorf("error publishing snapshot: %w", err)
		}
		a.logger.Info().Str("id", snapshot.ID).Strs("networks", snapshot.Networks).Msg("snapshot published")
	}

	if a.cfg.RedactAccounts {
		cfg = render.Redact(cfg)
	}

	return render.Render(cfg, format)
}

// fetch reads the configuration from the server. The server decides about
// redaction based on the token.
func (a *App) fetch(ctx context.Context, format render.Format) ([]byte, error) {
	if a.cfg.Publish {
		snapshot, err := a.serverAdapter.PublishSnapshot(ctx)
		if err != nil {
			return nil, fmt.Errorf("error publishing snapshot: %w", err)
		}
		a.logger.Info().Str("id", snapshot.ID).Msg("snapshot published on server")
	}

	body, err := a.serverAdapter.FetchConfig(ctx, format)
	if err != nil {
		return nil, fmt.Errorf("error fetching configuration: %w", err)
	}
	return body, nil
}

func (a *App) deliver(body []byte) error {
	if a.cfg.OutputPath != "" {
		if err := os.WriteFile(a.cfg.OutputPath, body, outputFileMode); err != nil {
			return fmt.Errorf("error writing %s: %w", a.cfg.OutputPath, err)
		}
		a.logger.Info().Str("path", a.cfg.OutputPath).Int("size", len(body)).Msg("configuration written")
	} else if _, err := a.stdout.Write(body); err != nil {
		return fmt.Errorf("error writing configuration: %w", err)
	}

	if a.cfg.Copy {
		if err := a.copyToClipboard(string(body)); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		a.logger.Info().Msg("configuration copied to clipboard")
	}

	return nil
}

func (a *App) printSummary(ctx context.Context, format render.Format, body []byte) error {
	cfg, err := a.summaryConfig(ctx, format, body)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.stderr, renderSummary(cfg))
	return err
}

// summaryConfig recovers the structured configuration behind body. JSON
// artifacts are decoded directly; other formats need a second source read.
func (a *App) summaryConfig(ctx context.Context, format render.Format, body []byte) (models.ToolConfig, error) {
	if a.serverAdapter == nil {
		return a.services.ConfigService.Assemble(ctx)
	}

	if format != render.FormatJSON {
		var err error
		if body, err = a.serverAdapter.FetchConfig(ctx, render.FormatJSON); err != nil {
			return models.ToolConfig{}, fmt.Errorf("error fetching configuration: %w", err)
		}
	}

	var cfg models.ToolConfig
	if err := json.Unmarshal(body, &cfg); err != nil {
		return models.ToolConfig{}, fmt.Errorf("error decoding configuration: %w", err)
	}
	return cfg, nil
}
