package model

// Config holds the application settings, loaded from the JSON config file
// and overridable through environment variables.
type Config struct {
	StorageDriver string `json:"storage_driver" env:"FITNOTE_STORAGE_DRIVER"`
	StorageDir    string `json:"storage_dir" env:"FITNOTE_STORAGE_DIR"`
	StorageFile   string `json:"storage_file" env:"FITNOTE_STORAGE_FILE"`
	LogLevel      string `json:"log_level" env:"FITNOTE_LOG_LEVEL"`
	LogPretty     bool   `json:"log_pretty" env:"FITNOTE_LOG_PRETTY"`
	LogFile       string `json:"log_file" env:"FITNOTE_LOG_FILE"`
	GuestScope    string `json:"guest_scope" env:"FITNOTE_GUEST_SCOPE"`
}
