package config

// ChatClient definition chat_client YAML structure
type ChatClient struct {
	APIBaseURL string       `mapstructure:"api_base_url"`
	SocketURL  string       `mapstructure:"socket_url"`
	HTTP       HTTPConfig   `mapstructure:"http"`
	Socket     SocketConfig `mapstructure:"socket"`
	Typing     TypingConfig `mapstructure:"typing"`
}

// AdminConsole definition admin_console YAML structure
type AdminConsole struct {
	APIBaseURL string     `mapstructure:"api_base_url"`
	HTTP       HTTPConfig `mapstructure:"http"`
	CacheSize  int        `mapstructure:"cache_size"`
}

// HTTPConfig definition REST client setting
type HTTPConfig struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// SocketConfig definition duplex connection setting
type SocketConfig struct {
	RetryCount    int `mapstructure:"retry_count"`
	RetryInterval int `mapstructure:"retry_interval"` // seconds
}

// TypingConfig definition typing signal windows
type TypingConfig struct {
	DebounceMS int `mapstructure:"debounce_ms"`
	ExpiryMS   int `mapstructure:"expiry_ms"`
}
