package config

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Client operations understood by the command line client.
const (
	OperationSignup = "signup"
	OperationSignin = "signin"
)

// ClientConfig is the configuration of the command line client.
type ClientConfig struct {
	// Adapter describes how to reach the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Command is the single request the client performs. Email and
	// password may come from AUTH_EMAIL and AUTH_PASSWORD.
	Command Command `envPrefix:"AUTH_"`

	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds the server address and the per-request timeout.
type Adapter struct {
	HTTPAddress string `env:"ADDRESS"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Command is the operation and the credentials to send.
type Command struct {
	Operation string
	Email     string `env:"EMAIL"`
	Password  string `env:"PASSWORD"`

	// PasswordStdin reads the password from the first line of stdin.
	PasswordStdin bool
}

// DefaultClientRequestTimeout is used when no timeout is configured.
const DefaultClientRequestTimeout = 10 * time.Second

// GetClientConfig builds the client configuration. Flags override env
// variables, which override the adapter section of the JSON file. The
// password is taken from -password, then stdin (-password-stdin), then
// AUTH_PASSWORD.
func GetClientConfig(args []string) (*ClientConfig, error) {
	return getClientConfig(args, os.Stdin)
}

func getClientConfig(args []string, stdin io.Reader) (*ClientConfig, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}

	flagCfg, err := parseClientFlags(args)
	if err != nil {
		return nil, err
	}

	cfg := &ClientConfig{}

	jsonPath := flagCfg.JSONFilePath
	if jsonPath == "" {
		jsonPath = envCfg.JSONFilePath
	}
	if jsonPath != "" {
		jsonCfg, err := readJSON(jsonPath)
		if err != nil {
			return nil, err
		}
		cfg.Adapter.HTTPAddress = jsonCfg.Adapter.HTTPAddress
		cfg.Adapter.RequestTimeout = time.Duration(jsonCfg.Adapter.RequestTimeout)
	}

	for _, src := range []*ClientConfig{envCfg, flagCfg} {
		if src.Adapter.HTTPAddress != "" {
			cfg.Adapter.HTTPAddress = src.Adapter.HTTPAddress
		}
		if src.Adapter.RequestTimeout != 0 {
			cfg.Adapter.RequestTimeout = src.Adapter.RequestTimeout
		}
	}
	cfg.Command.Operation = flagCfg.Command.Operation
	cfg.Command.Email = firstNonEmpty(flagCfg.Command.Email, envCfg.Command.Email)

	switch {
	case flagCfg.Command.Password != "":
		cfg.Command.Password = flagCfg.Command.Password
	case flagCfg.Command.PasswordStdin:
		password, err := readPassword(stdin)
		if err != nil {
			return nil, err
		}
		cfg.Command.Password = password
	default:
		cfg.Command.Password = envCfg.Command.Password
	}

	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultClientRequestTimeout
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("error validating client config: %w", err)
	}

	return cfg, nil
}

// parseClientFlags parses the client flags.
//
// Flags:
//
//	-a server address (host:port or URL)
//	-t/-request-timeout request timeout
//	-op operation: signup or signin
//	-email account email
//	-password account password (visible in the process list)
//	-password-stdin read the password from stdin
//	-c/-config json file path with configs
func parseClientFlags(args []string) (*ClientConfig, error) {
	cfg := &ClientConfig{}

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.StringVar(&cfg.Adapter.HTTPAddress, "a", "", "Server address")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "t", 0, "Request timeout")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (alias)")
	fs.StringVar(&cfg.Command.Operation, "op", "", "Operation: signup or signin")
	fs.StringVar(&cfg.Command.Email, "email", "", "Account email")
	fs.StringVar(&cfg.Command.Password, "password", "", "Account password")
	fs.BoolVar(&cfg.Command.PasswordStdin, "password-stdin", false, "Read the password from stdin")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing client flags: %w", err)
	}

	return cfg, nil
}

// readPassword returns the first line of r without the line ending.
func readPassword(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("error reading password from stdin: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
