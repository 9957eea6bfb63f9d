package readnext

const (
	rootCommandUse           = "readnext"
	rootCommandShort         = "Ask a completion API what to read, watch, or play next"
	recommendCommandUse      = "recommend"
	recommendCommandShort    = "Submit the recommendation form and print the returned list"
	optionsCommandUse        = "options"
	optionsCommandShort      = "List the selectable models, subjects, and quantities"
	configFlagName           = "config"
	configFlagUsage          = "Path to a settings file (default: ./config.yaml or ~/.readnext/config.yaml)"
	catalogFlagName          = "catalog"
	catalogFlagUsage         = "Path to an option catalog file (default: embedded catalog)"
	modelFlagName            = "model"
	modelFlagUsage           = "Model to query (default: first catalog entry)"
	subjectFlagName          = "subject"
	subjectFlagUsage         = "Kind of thing to recommend, e.g. books"
	quantityFlagName         = "quantity"
	quantityFlagUsage        = "How many recommendations to ask for"
	favouritesFlagName       = "favourites"
	favouritesFlagUsage      = "Comma-separated favourites the recommendations should match"
	credentialFlagName       = "credential"
	credentialFlagUsage      = "API credential (overrides the configured environment variable)"
	envFileFlagName          = "env-file"
	envFileFlagUsage         = "Path to a .env file to load before resolving the credential"
	modelsFilterFlagName     = "models"
	modelsFilterFlagUsage    = "Show only the model list"
	subjectsFilterFlagName   = "subjects"
	subjectsFilterFlagUsage  = "Show only the subject list"
	quantityFilterFlagName   = "quantities"
	quantityFilterFlagUsage  = "Show only the quantity list"
	defaultEntrySuffix       = "\t(default)"
	modelsSectionHeading     = "models:"
	subjectsSectionHeading   = "subjects:"
	quantitiesSectionHeading = "quantities:"

	missingCredentialErrorFormat = "missing API credential: set %s or pass --%s"
	unknownModelErrorFormat      = "model %q is not in the catalog (run `readnext options --models`)"
	missingFieldErrorFormat      = "%s must not be empty"
	loadSettingsErrorFormat      = "load settings: %w"
	loadCatalogErrorFormat       = "load catalog: %w"
	buildLoggerErrorFormat       = "build logger: %w"
)
