package config

import "fmt"

type WebService struct {
	Listen          string `yaml:"listen" json:"listen" mapstructure:"listen"`
	Port            int    `yaml:"port" json:"port" mapstructure:"port"`
	ReadTimeout     int    `yaml:"read-timeout" json:"read_timeout" mapstructure:"read-timeout"`
	WriteTimeout    int    `yaml:"write-timeout" json:"write_timeout" mapstructure:"write-timeout"`
	IdleTimeout     int    `yaml:"idle-timeout" json:"idle_timeout" mapstructure:"idle-timeout"`
	ShutdownTimeout int    `yaml:"shutdown-timeout" json:"shutdown_timeout" mapstructure:"shutdown-timeout"`
}

// Returns the host:port the web service binds to
func (ws WebService) Address() string {
	return fmt.Sprintf("%s:%d", ws.Listen, ws.Port)
}
