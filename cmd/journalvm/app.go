package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-journalvm"
	"github.com/goliatone/go-journalvm/internal/loader"
	"github.com/goliatone/go-journalvm/pkg/config"
	"github.com/goliatone/go-journalvm/pkg/content"
	"github.com/goliatone/go-journalvm/pkg/convert"
	"github.com/goliatone/go-journalvm/pkg/model"
	"github.com/goliatone/go-journalvm/pkg/render"
	"github.com/goliatone/go-journalvm/pkg/renderers/preview"
	"github.com/goliatone/go-journalvm/pkg/viewmodel"
)

// app holds the collaborators shared by every subcommand.
type app struct {
	opts       *rootOptions
	cfg        config.Config
	logger     *slog.Logger
	metrics    *prometheus.Registry
	converters *convert.Registry
	renderers  *render.Registry
	fetcher    content.Fetcher
	doc        loader.Document
	out        io.Writer
}

func newApp(cmd *cobra.Command, opts *rootOptions, fixture string) (*app, error) {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	cfg := config.Default()
	if path := strings.TrimSpace(opts.configPath); path != "" {
		loaded, err := config.LoadFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if base := strings.TrimSpace(opts.baseURL); base != "" {
		cfg.BaseURL = strings.TrimRight(base, "/")
	}

	doc, err := loader.LoadFile(fixture)
	if err != nil {
		return nil, err
	}

	metrics := prometheus.NewRegistry()
	observer, err := convert.NewPrometheusObserver(metrics)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}
	converters, err := journalvm.NewRegistry(journalvm.DepsFromConfig(cfg),
		convert.WithLogger(logger),
		convert.WithObserver(observer),
	)
	if err != nil {
		return nil, err
	}

	previewOptions, err := themeOptions(cfg)
	if err != nil {
		return nil, err
	}
	renderers, err := journalvm.NewRenderRegistry(previewOptions...)
	if err != nil {
		return nil, err
	}

	logger.Debug("journalvm ready",
		slog.String("fixture", fixture),
		slog.Int("references", len(doc.References)),
		slog.Int("articles", len(doc.Articles)),
		slog.String("base_url", cfg.BaseURL),
	)

	return &app{
		opts:       opts,
		cfg:        cfg,
		logger:     logger,
		metrics:    metrics,
		converters: converters,
		renderers:  renderers,
		fetcher:    loader.NewFetcher(doc),
		doc:        doc,
		out:        cmd.OutOrStdout(),
	}, nil
}

func (a *app) collections() []model.Collection {
	return a.doc.Collections
}

// themeOptions wires the configured theme manifest into the preview renderer.
func themeOptions(cfg config.Config) ([]preview.Option, error) {
	path := strings.TrimSpace(cfg.Theme.Manifest)
	if path == "" {
		return nil, nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve theme manifest: %w", err)
	}
	manifest, err := preview.LoadManifest(os.DirFS(filepath.Dir(abs)), filepath.Base(abs))
	if err != nil {
		return nil, err
	}
	selector, err := preview.NewManifestSelector(manifest)
	if err != nil {
		return nil, err
	}

	templates := strings.TrimSpace(cfg.Theme.Templates)
	if templates == "" {
		templates = filepath.Dir(abs)
	}
	return []preview.Option{
		preview.WithTemplatesDir(templates),
		preview.WithThemeSelector(selector, cfg.Theme.Name, cfg.Theme.Variant),
	}, nil
}

// emit renders each view-model with the selected renderer. Several HTML
// results are written as fragments one after another.
func (a *app) emit(cmd *cobra.Command, vms ...viewmodel.ViewModel) error {
	renderer, err := a.renderers.Get(a.opts.format)
	if err != nil {
		return err
	}
	options := render.RenderOptions{
		Title:    cmd.Short,
		Fragment: a.opts.fragment || len(vms) > 1,
		Indent:   a.opts.indent,
	}

	var buf bytes.Buffer
	for _, vm := range vms {
		out, err := renderer.Render(cmd.Context(), vm, options)
		if err != nil {
			return err
		}
		buf.Write(out)
		if !bytes.HasSuffix(out, []byte("\n")) {
			buf.WriteByte('\n')
		}
	}
	if _, err := a.out.Write(buf.Bytes()); err != nil {
		return err
	}
	a.logMetrics()
	return nil
}

func (a *app) logMetrics() {
	if !a.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	families, err := a.metrics.Gather()
	if err != nil {
		a.logger.Warn("gather metrics", slog.Any("error", err))
		return
	}
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			attrs := []any{slog.String("metric", family.GetName()), slog.Float64("value", metric.GetCounter().GetValue())}
			for _, label := range metric.GetLabel() {
				attrs = append(attrs, slog.String(label.GetName(), label.GetValue()))
			}
			a.logger.Debug("conversion metric", attrs...)
		}
	}
}
