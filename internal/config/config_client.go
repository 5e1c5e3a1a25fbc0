package config

import (
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base address of the pizza specials server,
	// with or without a scheme.
	// Env: CLIENT_SERVER_ADDRESS
	HTTPAddress string `env:"SERVER_ADDRESS"`

	// RequestTimeout is the default timeout for outbound client requests.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is the bearer token attached to catalog requests.
	// Env: CLIENT_TOKEN
	Token string `env:"TOKEN"`
}

// ClientConfig is the top-level client configuration.
type ClientConfig struct {
	// App carries the token parameters used by the "token" command.
	App App `envPrefix:"APP_"`
	// Adapter contains the server address, timeout and bearer token.
	Adapter ClientAdapter `envPrefix:"CLIENT_"`
	// Log holds the client log level. Client logs go to stderr.
	Log Log `envPrefix:"LOG_"`
}

// ClientDefaults returns the client configuration used when no source sets
// a value.
func ClientDefaults() *ClientConfig {
	defaults := Defaults()

	return &ClientConfig{
		App: defaults.App,
		Adapter: ClientAdapter{
			HTTPAddress:    defaults.Server.HTTPAddress,
			RequestTimeout: 10 * time.Second,
		},
		Log: Log{Level: "warn"},
	}
}

// GetClientConfig merges defaults, environment variables and the leading
// flags of args (later sources win for non-zero fields) and validates the
// result.
//
// The positional arguments left after the flags are returned unchanged so
// the caller can dispatch a command on them.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, nil, err
	}

	flagCfg, rest, err := parseClientFlags(args)
	if err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := ClientDefaults()
	for _, src := range []*ClientConfig{envCfg, flagCfg} {
		if err = mergo.Merge(cfg, src, mergo.WithOverride); err != nil {
			return nil, nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err = cfg.validate(); err != nil {
		return nil, nil, err
	}

	return cfg, rest, nil
}

// parseClientFlags parses the client flags.
//
// Flags:
//
//	-s server address, e.g. localhost:8080 or https://specials.example.com
//	-timeout request timeout (e.g., "5s")
//	-token bearer token for catalog requests
//	-token-sign-key key used by the "token" command
//	-token-issuer issuer used by the "token" command
//	-token-audience audience used by the "token" command
//	-log-level log level
func parseClientFlags(args []string) (*ClientConfig, []string, error) {
	fs := flag.NewFlagSet("pizza-specials-client", flag.ContinueOnError)

	var serverAddress, token string
	var requestTimeout time.Duration
	var tokenSignKey, tokenIssuer, tokenAudience string
	var logLevel string

	fs.StringVar(&serverAddress, "s", "", "Server address")
	fs.DurationVar(&requestTimeout, "timeout", 0, "Request timeout (e.g., 5s)")
	fs.StringVar(&token, "token", "", "Bearer token")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.StringVar(&tokenAudience, "token-audience", "", "Token audience")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return &ClientConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenAudience: tokenAudience,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
			Token:          token,
		},
		Log: Log{Level: logLevel},
	}, fs.Args(), nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" {
		return fmt.Errorf("%w: server address is required", ErrInvalidAdapterConfigs)
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	return validateLogLevel(cfg.Log.Level)
}
