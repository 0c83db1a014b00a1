package cmd

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "interview-sim"
)

type Config struct {
	Resume         string         `mapstructure:"resume" validate:"required"`
	JobsDir        string         `mapstructure:"jobs-dir" validate:"required"`
	CandidateLevel int            `mapstructure:"candidate-level" validate:"gte=1,lte=8"`
	Pace           time.Duration  `mapstructure:"pace"`
	Filters        *FiltersConfig `mapstructure:"filters"`
	Answers        *AnswersConfig `mapstructure:"answers"`
}

type FiltersConfig struct {
	Companies    []string `mapstructure:"companies"`
	MinimumMatch int      `mapstructure:"minimum-match" validate:"gte=0,lte=100"`
	ExcludeFile  string   `mapstructure:"exclude-file"`
}

type AnswersConfig struct {
	Provider string        `mapstructure:"provider" validate:"omitempty,oneof=canned gemini"`
	Timeout  time.Duration `mapstructure:"timeout"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKey     string `mapstructure:"api-key"`
	APIKeyFile string `mapstructure:"api-key-file"`
	Model      string `mapstructure:"model"`
	MaxRetries int    `mapstructure:"max-retries" validate:"gte=0,lte=10"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "interview-sim scores a resume against job postings and runs simulated interviews",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("answers.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	viper.SetDefault("resume", "resume.yaml")
	viper.SetDefault("jobs-dir", "jobs")
	viper.SetDefault("candidate-level", 2)
	viper.SetDefault("answers.provider", "canned")

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is interview-sim.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// The version command works without any configuration.
	if versionCmd.CalledAs() != "" {
		return
	}

	// A missing .env is fine.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		// Without an explicit --config the defaults are enough to start.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config.Filters == nil {
		config.Filters = &FiltersConfig{}
	}
	if config.Answers == nil {
		config.Answers = &AnswersConfig{}
	}

	return config, config.Validate()
}

// Validate checks the decoded config against its validate tags.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}
