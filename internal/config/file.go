package config

import (
	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/manav03panchal/timex/internal/errors"
)

// configFileName is looked up under the XDG config directories.
const configFileName = "timex/config.yaml"

// DefaultConfigFile returns the first existing timex/config.yaml in the XDG
// config directories, or "" when there is none.
func DefaultConfigFile() string {
	path, err := xdg.SearchConfigFile(configFileName)
	if err != nil {
		return ""
	}
	return path
}

// LoadFile applies the settings in a YAML, TOML or JSON file and then
// reapplies the environment, so environment variables keep precedence.
//
//	database: ~/timex.db        # or :memory:
//	history:
//	  limit: 20
//	  disabled: false
//	reference:
//	  default: "2017-09-26T15:30:00"
//	  languages: [en, de]
func (c *RuntimeConfig) LoadFile(path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		ue := errors.NewUserErrorWithField("config", path, "cannot read config file",
			"Check that the file exists and is valid YAML, TOML or JSON.")
		ue.Cause = err
		return ue
	}

	if v.IsSet("database") {
		if db := v.GetString("database"); db == MemoryDatabase {
			c.Storage.InMemory, c.Storage.Path = true, ""
		} else {
			c.Storage.InMemory, c.Storage.Path = false, db
		}
	}
	if v.IsSet("history.limit") {
		n := v.GetInt("history.limit")
		if n <= 0 {
			return errors.NewUserErrorWithField("history.limit", v.GetString("history.limit"),
				"history limit must be positive", "Set history.limit to 1 or more.")
		}
		c.History.Limit = n
	}
	if v.IsSet("history.disabled") {
		c.History.Disabled = v.GetBool("history.disabled")
	}
	if v.IsSet("reference.default") {
		c.Reference.Default = v.GetString("reference.default")
	}
	if v.IsSet("reference.languages") {
		if langs := v.GetStringSlice("reference.languages"); len(langs) > 0 {
			c.Reference.Languages = langs
		}
	}

	c.loadFromEnv()
	return nil
}
