package config

// Constants used throughout the weekwatch application
const (
	DefaultConfigFile    = "/etc/weekwatch/config.yaml"
	DefaultSocketPath    = "/tmp/weekwatch.sock"
	DefaultCheckInterval = 30 // Seconds between schedule evaluations
	EmailCooldownMinutes = 15 // Minimum time between emails for the same event type
)

// Schedule is one named set of weekly windows, e.g. "business-hours"
// covering "Mon 09:00 - 18:00, Tue 09:00 - 18:00, ...".
type Schedule struct {
	Name   string `yaml:"name"`
	Ranges string `yaml:"ranges"`           // comma-separated range expressions
	Notify bool   `yaml:"notify,omitempty"` // email on open/close transitions
}

// NotificationsConfig configures email notifications via Mailgun.
type NotificationsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Domain    string `yaml:"domain"`
	ApiKey    string `yaml:"api_key"`
	FromEmail string `yaml:"from_email"`
	ToEmail   string `yaml:"to_email"`
}

// Config is the main configuration structure for weekwatch.
type Config struct {
	Schedules     []Schedule          `yaml:"schedules"`
	ListenAddr    string              `yaml:"listen_addr"`            // HTTP API address; empty disables the API
	SocketPath    string              `yaml:"socket_path"`            // unix socket for local commands
	CheckInterval int                 `yaml:"check_interval_seconds"` // watcher tick
	Notifications NotificationsConfig `yaml:"notifications"`
	Dev           bool                `yaml:"dev"`
	LogLevel      string              `yaml:"log_level"`
}

// Socket returns the configured socket path, falling back to the default.
func (c *Config) Socket() string {
	if c.SocketPath != "" {
		return c.SocketPath
	}
	return DefaultSocketPath
}

// Interval returns the configured check interval in seconds, falling
// back to the default.
func (c *Config) Interval() int {
	if c.CheckInterval > 0 {
		return c.CheckInterval
	}
	return DefaultCheckInterval
}
