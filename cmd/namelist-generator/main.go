// Package main provides the CLI entrypoint for namelist-generator.
//
// namelist-generator is a build-time tool that:
//   - Parses an MPAS registry XML document
//   - Filters out groups/options owned by other subsystems and migrates the
//     remaining names to the mpas_ prefix
//   - Normalizes typed default values and reflows descriptions
//   - Writes a sorted XML namelist-definition document, optionally validating
//     it against an XSD schema
package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"namelist-generator/internal/namelist"
	"namelist-generator/internal/registry"
	"namelist-generator/internal/schema"
	"namelist-generator/internal/translate"
)

// envPrefix lets CI set NMLGEN_REGISTRY etc. instead of passing flags.
const envPrefix = "nmlgen"

var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:   "namelist-generator",
	Short: "Generate an XML namelist definition file from an MPAS registry",
	Long: `Generate the XML namelist definition file for the MPAS dynamical core.

The MPAS registry is read once, translated in memory (filtering, prefix
migration, value normalization, description reflow), and written as a sorted
namelist definition. When a schema is supplied the result is validated
against it; a validation failure is advisory and does not fail the run.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if viper.GetBool("debug") {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}

		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: run,
}

func init() {
	rootCmd.Flags().StringP("registry", "r", "Registry.xml",
		"XML MPAS registry file")
	rootCmd.Flags().StringP("namelist", "n", "Namelist.xml",
		"XML namelist definition file to write")
	rootCmd.Flags().StringP("schema", "s", "",
		"XML schema for the namelist definition file (validation is skipped when empty)")
	rootCmd.Flags().Bool("debug", false,
		"enable debug logging and dump the parsed registry to stderr")

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()
	_ = viper.BindPFlag("registry", rootCmd.Flags().Lookup("registry"))
	_ = viper.BindPFlag("namelist", rootCmd.Flags().Lookup("namelist"))
	_ = viper.BindPFlag("schema", rootCmd.Flags().Lookup("schema"))
	_ = viper.BindPFlag("debug", rootCmd.Flags().Lookup("debug"))
}

func run(cmd *cobra.Command, args []string) error {
	regPath := viper.GetString("registry")
	nmlPath := viper.GetString("namelist")
	xsdPath := viper.GetString("schema")

	reg, err := registry.LoadFile(regPath)
	if err != nil {
		return err
	}

	if viper.GetBool("debug") {
		spew.Fdump(os.Stderr, reg)
	}

	logger.Debug("registry loaded",
		zap.String("path", regPath),
		zap.Int("groups", len(reg.Groups)))

	entries, err := translate.Translate(reg)
	if err != nil {
		return err
	}

	logger.Debug("registry translated", zap.Int("entries", len(entries)))

	doc := namelist.Build(entries)
	if err := namelist.WriteFile(doc, nmlPath); err != nil {
		return err
	}

	fmt.Println("Generated " + nmlPath)

	if xsdPath != "" {
		// Validate the bytes that were just written. A mismatch is advisory:
		// the generated file stays in place and the run still succeeds.
		data, err := namelist.Render(doc)
		if err != nil {
			return err
		}

		valid, err := schema.Validate(data, xsdPath)
		if err != nil {
			return err
		}

		if valid {
			fmt.Println("Successfully validated " + nmlPath + " against " + xsdPath)
		} else {
			fmt.Println("Failed to validate " + nmlPath + " against " + xsdPath)
		}
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
