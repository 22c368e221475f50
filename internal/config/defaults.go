package config

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Search.TagMatch == "" {
		cfg.Search.TagMatch = "joined"
	}
	if cfg.Selection.Policy == "" {
		cfg.Selection.Policy = "sticky"
	}
	if cfg.Output.SnippetLength == 0 {
		cfg.Output.SnippetLength = 200
	}
}
