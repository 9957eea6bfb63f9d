package readnext

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/readnext/readnext/internal/catalog"
)

type optionsCommandOptions struct {
	catalogPath    string
	onlyModels     bool
	onlySubjects   bool
	onlyQuantities bool
}

func newOptionsCommand() *cobra.Command {
	options := &optionsCommandOptions{}

	command := &cobra.Command{
		Use:   optionsCommandUse,
		Short: optionsCommandShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOptionsCommand(cmd, *options)
		},
	}

	command.Flags().StringVar(&options.catalogPath, catalogFlagName, "", catalogFlagUsage)
	command.Flags().BoolVar(&options.onlyModels, modelsFilterFlagName, false, modelsFilterFlagUsage)
	command.Flags().BoolVar(&options.onlySubjects, subjectsFilterFlagName, false, subjectsFilterFlagUsage)
	command.Flags().BoolVar(&options.onlyQuantities, quantityFilterFlagName, false, quantityFilterFlagUsage)

	return command
}

func runOptionsCommand(command *cobra.Command, options optionsCommandOptions) error {
	optionCatalog, catalogErr := catalog.Load(options.catalogPath)
	if catalogErr != nil {
		return fmt.Errorf(loadCatalogErrorFormat, catalogErr)
	}

	showAll := !options.onlyModels && !options.onlySubjects && !options.onlyQuantities
	outputWriter := command.OutOrStdout()

	if showAll || options.onlyModels {
		if err := writeSection(outputWriter, modelsSectionHeading, optionCatalog.Models, optionCatalog.DefaultModel()); err != nil {
			return err
		}
	}
	if showAll || options.onlySubjects {
		if err := writeSection(outputWriter, subjectsSectionHeading, optionCatalog.Subjects, optionCatalog.Defaults.Subject); err != nil {
			return err
		}
	}
	if showAll || options.onlyQuantities {
		if err := writeSection(outputWriter, quantitiesSectionHeading, optionCatalog.Quantities, optionCatalog.Defaults.Quantity); err != nil {
			return err
		}
	}
	return nil
}

func writeSection(writer io.Writer, heading string, entries []string, defaultEntry string) error {
	if _, writeErr := fmt.Fprintln(writer, heading); writeErr != nil {
		return writeErr
	}
	for _, entry := range entries {
		suffix := ""
		if entry == defaultEntry {
			suffix = defaultEntrySuffix
		}
		if _, writeErr := fmt.Fprintf(writer, "  %s%s\n", entry, suffix); writeErr != nil {
			return writeErr
		}
	}
	return nil
}
