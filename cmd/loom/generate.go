package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/loomlang/loom/internal/codegen"
	"github.com/loomlang/loom/internal/config"
	"github.com/loomlang/loom/internal/model"
)

var generateVerbose bool

func init() {
	generateCmd.Flags().BoolVar(&generateVerbose, "verbose", false, "Show per-shape generation output")
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate Go code from the project model",
	Long:  "Load the model named in loom.yml and write generated types, schemas, and decoders to the output directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		logger, err := buildLogger(generateVerbose)
		if err != nil {
			return err
		}
		defer logger.Sync()

		m, err := model.LoadYAMLFile(cfg.Model)
		if err != nil {
			printFault(err)
			return fmt.Errorf("model load failed")
		}

		gen, err := codegen.New(m, codegen.Config{
			Namespace: cfg.Output.Namespace,
			Package:   cfg.Output.Package,
		}, logger)
		if err != nil {
			printFault(err)
			return fmt.Errorf("generator setup failed")
		}

		if err := gen.Run(&codegen.DirManifest{Root: cfg.Output.Dir}); err != nil {
			printFault(err)
			return fmt.Errorf("generation failed")
		}

		fmt.Printf("Generated %d shape(s) into %s\n", m.Len(), cfg.Output.Dir)
		return nil
	},
}

func buildLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func printFault(err error) {
	red := color.New(color.FgRed, color.Bold)
	red.Fprint(os.Stderr, "error: ")
	fmt.Fprintln(os.Stderr, err)
}
