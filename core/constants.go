package core

const (
	// DefaultLogFileName is the log file created in the working directory
	// when no explicit path is configured.
	DefaultLogFileName = "data.db"

	LogFileMode = 0644
)
