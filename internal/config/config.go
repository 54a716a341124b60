// Package config holds the command line tool's settings, read with viper
// from an optional YAML file and FRRCONF_* environment variables.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/oops"
	"github.com/spf13/viper"

	"frrconf/internal/logger"
	"frrconf/pkg/frr"
)

var log = logger.GetLogger()

// CfgFile is set from the --config flag.
var CfgFile string

const (
	BaseDirName = ".frrconf"
	EnvPrefix   = "FRRCONF"
)

// Settings are the typed values behind the viper keys.
type Settings struct {
	StopPattern  string
	BackupSuffix string
	JournalPath  string
	DiffContext  int
	LogLevel     string
	GitCommit    bool
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Settings {
	return Settings{
		StopPattern:  frr.DefaultStopPattern,
		BackupSuffix: ".orig",
		JournalPath:  filepath.Join(BaseDir(), "journal.json"),
		DiffContext:  3,
		LogLevel:     "",
		GitCommit:    false,
	}
}

// BaseDir is $HOME/.frrconf, or .frrconf in the working directory when the
// home directory can't be determined.
func BaseDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return BaseDirName
	}
	return filepath.Join(home, BaseDirName)
}

func setDefaults() {
	d := Defaults()
	viper.SetDefault("stop_pattern", d.StopPattern)
	viper.SetDefault("backup_suffix", d.BackupSuffix)
	viper.SetDefault("journal.path", d.JournalPath)
	viper.SetDefault("diff.context", d.DiffContext)
	viper.SetDefault("log.level", d.LogLevel)
	viper.SetDefault("git.commit", d.GitCommit)
}

// InitConfig loads defaults, the environment and the config file. A missing
// default config file is not an error; a missing --config file is.
func InitConfig() error {
	if CfgFile != "" {
		viper.SetConfigFile(CfgFile)
	} else {
		viper.AddConfigPath(BaseDir())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && CfgFile == "" {
			log.WithField("dir", BaseDir()).Debug("no config file, using defaults")
			return nil
		}
		return oops.Wrapf(err, "failed to read config file")
	}
	log.WithField("file", viper.ConfigFileUsed()).Debug("using config file")
	return nil
}

// Current returns the settings from the current viper state.
func Current() Settings {
	return Settings{
		StopPattern:  viper.GetString("stop_pattern"),
		BackupSuffix: viper.GetString("backup_suffix"),
		JournalPath:  viper.GetString("journal.path"),
		DiffContext:  viper.GetInt("diff.context"),
		LogLevel:     viper.GetString("log.level"),
		GitCommit:    viper.GetBool("git.commit"),
	}
}
