package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// Defaults for the vendor endpoints and the serve command.
const (
	DefaultAPIRoot     = "https://api.onepeloton.com"
	DefaultGraphQLRoot = "https://gql-graphql-gateway.prod.k8s.onepeloton.com/graphql"
	DefaultListenAddr  = "0.0.0.0:3000"
)

// Config carries everything the client and server need. Credentials are
// passed explicitly to constructors instead of being read from the process
// environment at call time.
type Config struct {
	Username    string
	Password    string
	APIRoot     string
	GraphQLRoot string
	ListenAddr  string
}

// Build assembles the configuration from, in increasing precedence: built-in
// defaults, a yaml config file, environment variables and command-line
// flags. A .env file in the working directory is loaded first when present.
func Build(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	_ = gotenv.Load()

	v := viper.New()

	v.SetDefault("api-root", DefaultAPIRoot)
	v.SetDefault("graphql-root", DefaultGraphQLRoot)
	v.SetDefault("addr", DefaultListenAddr)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		// A missing default config file is fine.
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	v.SetEnvPrefix("PELOCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	// The original tooling used PELOTON_USER / PELOTON_PASS.
	_ = v.BindEnv("username", "PELOCTL_USERNAME", "PELOTON_USER")
	_ = v.BindEnv("password", "PELOCTL_PASSWORD", "PELOTON_PASS")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	return &Config{
		Username:    v.GetString("username"),
		Password:    v.GetString("password"),
		APIRoot:     v.GetString("api-root"),
		GraphQLRoot: v.GetString("graphql-root"),
		ListenAddr:  v.GetString("addr"),
	}, nil
}
