package config

// Config is the root application configuration.
type Config struct {
	App      AppConfig      `yaml:"app"`
	Ingest   IngestConfig   `yaml:"ingest"`
	Table    TableConfig    `yaml:"table"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

// AppConfig holds window settings.
type AppConfig struct {
	Title  string `yaml:"title"  env:"APP_TITLE"  env-default:"Parallel Corpus Tool"`
	Width  int    `yaml:"width"  env:"APP_WIDTH"  env-default:"1280"`
	Height int    `yaml:"height" env:"APP_HEIGHT" env-default:"800"`
}

// IngestConfig holds batch processing settings.
type IngestConfig struct {
	// BatchSize is the number of lines parsed between cooperative yields.
	BatchSize int `yaml:"batch_size" env:"INGEST_BATCH_SIZE" env-default:"100000"`
	// FrameIntervalMS is one rendering frame's worth of pause between batches.
	FrameIntervalMS int `yaml:"frame_interval_ms" env:"INGEST_FRAME_INTERVAL_MS" env-default:"16"`
}

// TableConfig holds table view settings.
type TableConfig struct {
	ItemsPerPage int `yaml:"items_per_page" env:"TABLE_ITEMS_PER_PAGE" env-default:"20"`
}

// DatabaseConfig holds local SQLite snapshot settings.
type DatabaseConfig struct {
	Path    string `yaml:"path"    env:"DATABASE_PATH"    env-default:"data/corpus.db"`
	Enabled bool   `yaml:"enabled" env:"DATABASE_ENABLED" env-default:"true"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
