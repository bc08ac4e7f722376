// Package logging builds log/slog loggers for the objops command and the
// objopsd service. Output is JSON by default, with a text handler available
// for terminals. LoggerConfig implements the config package's defaults and
// validation hooks so it can be loaded from the service configuration file.
package logging
