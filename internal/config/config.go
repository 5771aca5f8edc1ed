// Package config resolves the provisioner configuration from the
// environment. Every knob has a documented default so the tool runs
// unconfigured against a stock container image.
package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/provtools/wlsprov/pkg/domain"
)

// Config is the full environment-derived configuration.
type Config struct {
	// Domain creation.
	DomainName      string `mapstructure:"domain_name"`
	DomainTemplate  string `mapstructure:"domain_template"`
	AdminName       string `mapstructure:"admin_name"`
	AdminListenPort int    `mapstructure:"admin_listen_port"`
	ProductionMode  bool   `mapstructure:"production_mode"`

	AdministrationPortEnabled bool `mapstructure:"administration_port_enabled"`
	AdministrationPort        int  `mapstructure:"administration_port"`

	// Connection target for the running instance.
	AdminURL      string `mapstructure:"admin_url"`
	AdminUsername string `mapstructure:"admin_username"`
	AdminPassword string `mapstructure:"admin_password"`

	// Optional infrastructure. Empty string disables the feature.
	JournalPath string `mapstructure:"journal_path"`
	LockAddr    string `mapstructure:"lock_addr"`
}

// Load reads the configuration from the process environment, applying the
// documented default for every unset variable.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("domain_name", "base_domain")
	v.SetDefault("domain_template", "/u01/oracle/wlserver/common/templates/wls/wls.jar")
	v.SetDefault("admin_name", "AdminServer")
	v.SetDefault("admin_listen_port", 7001)
	v.SetDefault("production_mode", "prod")
	v.SetDefault("administration_port_enabled", true)
	v.SetDefault("administration_port", 9002)
	v.SetDefault("admin_url", "http://localhost:7001")
	v.SetDefault("admin_username", "weblogic")
	v.SetDefault("admin_password", "welcome1")
	v.SetDefault("journal_path", "")
	v.SetDefault("lock_addr", "")

	// DOMAIN_NAME, ADMIN_LISTEN_PORT, ... map onto the lowercase keys above.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		startupModeHook(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return &cfg, nil
}

// startupModeHook decodes the legacy PRODUCTION_MODE flag, which carries
// "prod"/"dev" rather than a boolean.
func startupModeHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to.Kind() != reflect.Bool {
			return data, nil
		}
		switch strings.ToLower(strings.TrimSpace(data.(string))) {
		case "prod", "production":
			return true, nil
		case "dev", "development":
			return false, nil
		}
		return data, nil
	}
}

// DomainSpec assembles the create-domain input from the configuration.
func (c *Config) DomainSpec() domain.DomainSpec {
	return domain.DomainSpec{
		Name:         c.DomainName,
		TemplatePath: c.DomainTemplate,
		AdminServer: domain.AdminServerSpec{
			Name:                      c.AdminName,
			ListenPort:                c.AdminListenPort,
			AdministrationPortEnabled: c.AdministrationPortEnabled,
			AdministrationPort:        c.AdministrationPort,
		},
		Username:       c.AdminUsername,
		Password:       c.AdminPassword,
		ProductionMode: c.ProductionMode,
	}
}
