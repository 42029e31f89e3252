package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the command-line arguments (without the program name).
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-s plan server address used by the client, [host]:[port]
//	-d database DSN
//	-driver database driver (postgres|sqlite)
//	-c/-config json file path with configs
//	-api-key generation service API key
//	-model generation model name
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-generation-timeout generation call timeout
//	-mode client mode (remote|local)
//	-export-dir directory for exported documents
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, adapterAddress NetAddress
	var databaseDSN, driver string
	var jsonConfigPath string
	var apiKey, model string
	var requestTimeout, generationTimeout time.Duration
	var mode, exportDir string

	fs := flag.NewFlagSet("pei", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&adapterAddress, "s", "Plan server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&driver, "driver", "", "Database driver (postgres|sqlite)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&apiKey, "api-key", "", "Generation service API key")
	fs.StringVar(&model, "model", "", "Generation model")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&generationTimeout, "generation-timeout", 0, "Generation timeout (e.g., 2m)")
	fs.StringVar(&mode, "mode", "", "Client mode (remote|local)")
	fs.StringVar(&exportDir, "export-dir", "", "Directory for exported documents")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN:    databaseDSN,
				Driver: driver,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Generation: Generation{
			APIKey:  apiKey,
			Model:   model,
			Timeout: generationTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Client: Client{
			Mode:      mode,
			ExportDir: exportDir,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
