package readnext

import "github.com/spf13/cobra"

func newRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           rootCommandUse,
		Short:         rootCommandShort,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCommand.AddCommand(newRecommendCommand())
	rootCommand.AddCommand(newOptionsCommand())
	return rootCommand
}

// Execute runs the CLI; the caller decides how to report a failure.
func Execute() error {
	return newRootCommand().Execute()
}
