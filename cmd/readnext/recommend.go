package readnext

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/readnext/readnext/internal/catalog"
	"github.com/readnext/readnext/internal/completion"
	"github.com/readnext/readnext/internal/config"
	"github.com/readnext/readnext/internal/form"
)

type recommendCommandOptions struct {
	configPath  string
	catalogPath string
	modelName   string
	subject     string
	quantity    string
	favourites  string
	credential  string
	envFilePath string
}

func newRecommendCommand() *cobra.Command {
	options := &recommendCommandOptions{}

	command := &cobra.Command{
		Use:   recommendCommandUse,
		Short: recommendCommandShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecommendCommand(cmd, *options)
		},
	}

	command.Flags().StringVar(&options.configPath, configFlagName, "", configFlagUsage)
	command.Flags().StringVar(&options.catalogPath, catalogFlagName, "", catalogFlagUsage)
	command.Flags().StringVar(&options.modelName, modelFlagName, "", modelFlagUsage)
	command.Flags().StringVar(&options.subject, subjectFlagName, "", subjectFlagUsage)
	command.Flags().StringVar(&options.quantity, quantityFlagName, "", quantityFlagUsage)
	command.Flags().StringVar(&options.favourites, favouritesFlagName, "", favouritesFlagUsage)
	command.Flags().StringVar(&options.credential, credentialFlagName, "", credentialFlagUsage)
	command.Flags().StringVar(&options.envFilePath, envFileFlagName, "", envFileFlagUsage)

	return command
}

func runRecommendCommand(command *cobra.Command, options recommendCommandOptions) error {
	settings, settingsErr := config.Load(options.configPath)
	if settingsErr != nil {
		return fmt.Errorf(loadSettingsErrorFormat, settingsErr)
	}

	optionCatalog, catalogErr := catalog.Load(options.catalogPath)
	if catalogErr != nil {
		return fmt.Errorf(loadCatalogErrorFormat, catalogErr)
	}

	logger, loggerErr := buildLogger(settings)
	if loggerErr != nil {
		return fmt.Errorf(buildLoggerErrorFormat, loggerErr)
	}
	defer func() { _ = logger.Sync() }()

	credential, credentialErr := resolveCredential(options, settings)
	if credentialErr != nil {
		return credentialErr
	}

	modelName := options.modelName
	if modelName == "" {
		modelName = optionCatalog.DefaultModel()
	} else if !optionCatalog.HasModel(modelName) {
		return fmt.Errorf(unknownModelErrorFormat, modelName)
	}

	defaults := form.Fields{
		Credential:       credential,
		SelectedModel:    modelName,
		SelectedSubject:  optionCatalog.Defaults.Subject,
		SelectedQuantity: optionCatalog.Defaults.Quantity,
		Favourites:       optionCatalog.Defaults.Favourites,
	}
	client := completion.Client{
		HTTPBaseURL: settings.APIEndpoint,
		HTTPClient:  &http.Client{Timeout: settings.RequestTimeout},
	}
	controller := form.NewController(client, defaults, logger)

	if options.subject != "" {
		controller.SetSubject(options.subject)
	}
	if options.quantity != "" {
		controller.SetQuantity(options.quantity)
	}
	if options.favourites != "" {
		controller.SetFavourites(options.favourites)
	}

	if missingField := firstMissingField(controller.Fields()); missingField != "" {
		return fmt.Errorf(missingFieldErrorFormat, missingField)
	}

	view := controller.Submit(command.Context())
	if view.ErrorMessage != "" {
		return errors.New(view.ErrorMessage)
	}
	if view.LengthWarning != "" {
		if _, writeErr := fmt.Fprintln(command.ErrOrStderr(), view.LengthWarning); writeErr != nil {
			return writeErr
		}
	}
	if _, writeErr := fmt.Fprintln(command.OutOrStdout(), view.FinalResponse); writeErr != nil {
		return writeErr
	}
	return nil
}

// resolveCredential prefers the flag, then the configured environment
// variable. An explicitly named env file must exist and overrides the
// process environment; a .env in the working directory is optional and
// never overrides.
func resolveCredential(options recommendCommandOptions, settings config.Settings) (string, error) {
	if options.credential != "" {
		return options.credential, nil
	}
	if options.envFilePath != "" {
		if loadErr := godotenv.Overload(options.envFilePath); loadErr != nil {
			return "", loadErr
		}
	} else {
		_ = godotenv.Load()
	}
	credential := os.Getenv(settings.APIKeyEnv)
	if credential == "" {
		return "", fmt.Errorf(missingCredentialErrorFormat, settings.APIKeyEnv, credentialFlagName)
	}
	return credential, nil
}

func firstMissingField(fields form.Fields) string {
	if fields.Credential == "" {
		return credentialFlagName
	}
	if fields.SelectedSubject == "" {
		return subjectFlagName
	}
	if fields.SelectedQuantity == "" {
		return quantityFlagName
	}
	if fields.Favourites == "" {
		return favouritesFlagName
	}
	return ""
}

func buildLogger(settings config.Settings) (*zap.Logger, error) {
	level, parseErr := zapcore.ParseLevel(strings.TrimSpace(settings.LogLevel))
	if parseErr != nil {
		return nil, parseErr
	}
	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = zap.NewAtomicLevelAt(level)
	loggerConfig.Encoding = settings.LogFormat
	return loggerConfig.Build()
}
