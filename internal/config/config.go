package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	Intake       Intake       `mapstructure:",squash"`
	Analysis     Analysis     `mapstructure:",squash"`
	AbandonSweep AbandonSweep `mapstructure:",squash"`
	Gateway      Gateway      `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Intake controls stage advancement in the conversation flow.
type Intake struct {
	MinInformativeExchanges int `mapstructure:"intake_min_informative_exchanges"`
	StageTurnCeiling        int `mapstructure:"intake_stage_turn_ceiling"`
}

// Analysis holds the implementation cost tiers used in ROI projections.
type Analysis struct {
	LowTierCost    float64 `mapstructure:"analysis_low_tier_cost"`
	MediumTierCost float64 `mapstructure:"analysis_medium_tier_cost"`
	HighTierCost   float64 `mapstructure:"analysis_high_tier_cost"`
}

// AbandonSweep configures the background job that closes idle consultations.
type AbandonSweep struct {
	CronSchedule string `mapstructure:"abandon_sweep_cron"`
	IdleMinutes  int    `mapstructure:"abandon_sweep_idle_minutes"`
	Enabled      bool   `mapstructure:"abandon_sweep_enabled"`
}

// Gateway holds the chat gateway credential, resolved once at process start:
// the primary key is used when set, otherwise the backup. Never mutated after
// startup.
type Gateway struct {
	BaseURL       string `mapstructure:"gateway_base_url"`
	PrimaryAPIKey string `mapstructure:"gateway_api_key"`
	BackupAPIKey  string `mapstructure:"gateway_backup_api_key"`
	APIKey        string `mapstructure:"-"`
}

// Enabled reports whether the advisor gateway is configured. Without it the
// consultation falls back to the built-in stage prompts.
func (g Gateway) Enabled() bool {
	return g.BaseURL != "" && g.APIKey != ""
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/bizdoctor")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("INTAKE_MIN_INFORMATIVE_EXCHANGES", 2)
	viper.SetDefault("INTAKE_STAGE_TURN_CEILING", 6)

	viper.SetDefault("ANALYSIS_LOW_TIER_COST", 10000)
	viper.SetDefault("ANALYSIS_MEDIUM_TIER_COST", 25000)
	viper.SetDefault("ANALYSIS_HIGH_TIER_COST", 50000)

	viper.SetDefault("ABANDON_SWEEP_CRON", "*/30 * * * *")
	viper.SetDefault("ABANDON_SWEEP_IDLE_MINUTES", 120)
	viper.SetDefault("ABANDON_SWEEP_ENABLED", false)

	viper.SetDefault("GATEWAY_BASE_URL", "")
	viper.SetDefault("GATEWAY_API_KEY", "")
	viper.SetDefault("GATEWAY_BACKUP_API_KEY", "")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("viper could not read .env, relying on godotenv/environment: ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	// Resolve the gateway credential once. Handlers and services read the
	// resolved value only; the primary/backup distinction ends here.
	switch {
	case config.Gateway.PrimaryAPIKey != "":
		config.Gateway.APIKey = config.Gateway.PrimaryAPIKey
	case config.Gateway.BackupAPIKey != "":
		config.Gateway.APIKey = config.Gateway.BackupAPIKey
		logrus.Warn("gateway primary credential missing, using backup")
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not determine working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info(".env loaded from: ", location)
			return
		}
	}

	logrus.Warn("no .env file found, using environment variables only")
}
