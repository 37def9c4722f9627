package main

import (
	"time"

	"github.com/spf13/viper"
)

// Config is the resolved configuration of a run, merged by viper from
// flags, ZONEGREP_* environment variables, and the config file.
type Config struct {
	Files    []string
	Ext      string
	AAAA     bool
	Action   string
	CNAME    string
	FailFast bool

	Zone  ZoneConfig
	Cache CacheConfig
}

type ZoneConfig struct {
	Include    bool
	DefaultTTL uint32
}

type CacheConfig struct {
	TTL time.Duration
}

func loadConfig() *Config {
	ext := viper.GetString("ext")
	if ext == "" {
		ext = DEFAULTEXT
	}

	return &Config{
		Files:    viper.GetStringSlice("files"),
		Ext:      ext,
		AAAA:     viper.GetBool("aaaa"),
		Action:   viper.GetString("script.action"),
		CNAME:    viper.GetString("cname"),
		FailFast: viper.GetBool("fail_fast"),
		Zone: ZoneConfig{
			Include:    viper.GetBool("zone.include"),
			DefaultTTL: viper.GetUint32("zone.default_ttl"),
		},
		Cache: CacheConfig{
			TTL: viper.GetDuration("cache.ttl"),
		},
	}
}

// ScriptMode reports whether script lines were requested.
func (c *Config) ScriptMode() bool {
	return c.Action != ""
}
