package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-charmgen/pkg/charm"
	"github.com/goliatone/go-charmgen/pkg/generator"
	"github.com/goliatone/go-charmgen/pkg/prompt"
	"github.com/goliatone/go-charmgen/pkg/render"
	"github.com/goliatone/go-charmgen/pkg/renderers/python"
)

var (
	renderCmd = &cobra.Command{
		Use:   "render",
		Short: "Render a charm class from a context file, metadata.yaml and flags",
		RunE:  runRenderCmd,
	}

	renderOpts struct {
		contextPath  string
		metadataPath string
		charmClass   string
		pkg          string
		release      string
		packages     []string
		hints        []string
		imports      []string
		baseClass    string
		templatesDir string
		output       string
		interactive  bool
	}
)

func init() {
	rootCmd.AddCommand(renderCmd)
	flags := renderCmd.Flags()
	flags.StringVar(&renderOpts.contextPath, "context", "", "YAML or JSON render context file.")
	flags.StringVar(&renderOpts.metadataPath, "metadata", "", "Charm metadata.yaml supplying metadata.package.")
	flags.StringVar(&renderOpts.charmClass, "class", "", "Class name of the generated charm.")
	flags.StringVar(&renderOpts.pkg, "package", "", "Charm package name (service_name and name).")
	flags.StringVar(&renderOpts.release, "release", "", "First supported OpenStack release.")
	flags.StringSliceVar(&renderOpts.packages, "packages", nil, "System packages to install, in order.")
	flags.StringSliceVar(&renderOpts.hints, "capability", nil, "Capability module emitted as a commented import hint, as module[:alias].")
	flags.StringSliceVar(&renderOpts.imports, "enable-capability", nil, "Capability module emitted as an active import, as module[:alias].")
	flags.StringVar(&renderOpts.baseClass, "base-class", charm.BaseClassRef, "Dotted reference of the base charm class.")
	flags.StringVar(&renderOpts.templatesDir, "templates", "", "Directory holding an alternate templates/charm_class.py.tpl.")
	flags.StringVarP(&renderOpts.output, "output", "o", "", "Output file (stdout if empty).")
	flags.BoolVarP(&renderOpts.interactive, "interactive", "i", false, "Prompt for fields that are still missing.")
}

func runRenderCmd(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	overrides := charm.RenderContext{
		CharmClass: renderOpts.charmClass,
		Metadata:   charm.Metadata{Package: renderOpts.pkg},
		Release:    renderOpts.release,
	}
	if cmd.Flags().Changed("packages") {
		overrides.Packages = append([]string{}, renderOpts.packages...)
	}
	if cmd.Flags().Changed("capability") || cmd.Flags().Changed("enable-capability") {
		overrides.Capabilities = append(parseCapabilities(renderOpts.hints, false), parseCapabilities(renderOpts.imports, true)...)
	}

	renderer, err := python.New(
		python.WithBaseClass(renderOpts.baseClass),
		python.WithTemplatesDir(renderOpts.templatesDir),
	)
	if err != nil {
		return err
	}

	registry := render.NewRegistry()
	if err := registry.Register(renderer); err != nil {
		return err
	}

	gen := generator.New(
		generator.WithRegistry(registry),
		generator.WithPrompter(prompt.New(nil)),
	)
	source, err := gen.Generate(ctx, generator.Request{
		ContextPath:  renderOpts.contextPath,
		MetadataPath: renderOpts.metadataPath,
		Overrides:    overrides,
		Interactive:  renderOpts.interactive,
	})
	if err != nil {
		return fmt.Errorf("render charm class: %w", err)
	}

	if renderOpts.output == "" {
		_, err = cmd.OutOrStdout().Write(source)
		return err
	}
	if err := os.WriteFile(renderOpts.output, source, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	glog.Infof("Charm class written to %s", renderOpts.output)
	return nil
}

func parseCapabilities(values []string, enabled bool) []charm.CapabilityModule {
	out := make([]charm.CapabilityModule, 0, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		module, alias, _ := strings.Cut(value, ":")
		out = append(out, charm.CapabilityModule{
			Module:  strings.TrimSpace(module),
			Alias:   strings.TrimSpace(alias),
			Enabled: enabled,
		})
	}
	return out
}
