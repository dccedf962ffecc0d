// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args (without the program
// name). Usage errors are printed to stderr.
//
// Flags:
//
//	-project-id       RPC provider project id
//	-private-key      deployer private key (hex, without 0x)
//	-gas-report       enable the gas reporter
//	-format           output format: json, yaml or js
//	-o                output file path
//	-strict-keys      fail on malformed private keys
//	-redact           redact signing accounts in the output
//	-copy             copy the output to the clipboard
//	-summary          print a network summary to stderr
//	-publish          store the assembled config as a snapshot
//	-v                verbose logging
//	-a                server address in format [host]:[port]
//	-request-timeout  server request timeout (e.g. "30s")
//	-remote           remote config server URL
//	-remote-timeout   remote request timeout (e.g. "10s")
//	-token            bearer token for the remote server
//	-d                database DSN
//	-driver           database driver: pgx or sqlite3
//	-c/-config        json file path with configs
//	-env-file         .env file path
//	-token-sign-key   token signing key
//	-token-issuer     token issuer name
//	-token-duration   token duration (e.g. "1h")
//	-seal-passphrase  snapshot sealing passphrase
func ParseFlags(args []string) (*StructuredConfig, error) {
	return parseFlags(args, os.Stderr)
}

func parseFlags(args []string, output io.Writer) (*StructuredConfig, error) {
	cfg, _, err := parseFlagLayer(args, output)
	return cfg, err
}

// boolFlags assigns boolean flags. A false value is zero for mergo, so
// explicitly set booleans are reapplied after the flag layer is merged.
var boolFlags = map[string]func(*StructuredConfig, bool){
	"gas-report":  func(c *StructuredConfig, v bool) { c.Credentials.GasReport = Truthy(v) },
	"strict-keys": func(c *StructuredConfig, v bool) { c.App.StrictKeys = v },
	"redact":      func(c *StructuredConfig, v bool) { c.App.RedactAccounts = v },
	"copy":        func(c *StructuredConfig, v bool) { c.App.Copy = v },
	"summary":     func(c *StructuredConfig, v bool) { c.App.Summary = v },
	"publish":     func(c *StructuredConfig, v bool) { c.App.Publish = v },
	"v":           func(c *StructuredConfig, v bool) { c.App.Verbose = v },
}

// parseFlagLayer parses args and also returns setters for the boolean flags
// present on the command line.
func parseFlagLayer(args []string, output io.Writer) (*StructuredConfig, []func(*StructuredConfig), error) {
	fs := flag.NewFlagSet("hhconfig", flag.ContinueOnError)
	fs.SetOutput(output)

	var serverAddress NetAddress
	var gasReport Truthy
	cfg := &StructuredConfig{}

	fs.StringVar(&cfg.Credentials.ProjectID, "project-id", "", "RPC provider project id")
	fs.StringVar(&cfg.Credentials.PrivateKey, "private-key", "", "Deployer private key (hex, without 0x)")
	fs.Var(&gasReport, "gas-report", "Enable the gas reporter")

	fs.StringVar(&cfg.App.OutputFormat, "format", "", "Output format: json, yaml or js")
	fs.StringVar(&cfg.App.OutputPath, "o", "", "Output file path")
	fs.BoolVar(&cfg.App.StrictKeys, "strict-keys", false, "Fail on malformed private keys")
	fs.BoolVar(&cfg.App.RedactAccounts, "redact", false, "Redact signing accounts")
	fs.BoolVar(&cfg.App.Copy, "copy", false, "Copy the output to the clipboard")
	fs.BoolVar(&cfg.App.Summary, "summary", false, "Print a network summary to stderr")
	fs.BoolVar(&cfg.App.Publish, "publish", false, "Store the assembled config as a snapshot")
	fs.BoolVar(&cfg.App.Verbose, "v", false, "Verbose logging")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.StringVar(&cfg.App.SealPassphrase, "seal-passphrase", "", "Snapshot sealing passphrase")
	fs.StringVar(&cfg.App.IssueToken, "issue-token", "", "Print a token for the named operator and exit")

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Server request timeout (e.g., 30s)")

	fs.StringVar(&cfg.Adapter.HTTPAddress, "remote", "", "Remote config server URL")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "remote-timeout", 0, "Remote request timeout (e.g., 10s)")
	fs.StringVar(&cfg.Adapter.Token, "token", "", "Bearer token for the remote server")

	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.DB.Driver, "driver", "", "Database driver: pgx or sqlite3")

	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.DotEnvPath, "env-file", "", ".env file path")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Credentials.GasReport = gasReport
	cfg.Server.HTTPAddress = serverAddress.String()

	var explicit []func(*StructuredConfig)
	fs.Visit(func(f *flag.Flag) {
		set, ok := boolFlags[f.Name]
		if !ok {
			return
		}
		v, err := strconv.ParseBool(f.Value.String())
		if err != nil {
			return
		}
		explicit = append(explicit, func(c *StructuredConfig) { set(c, v) })
	})

	return cfg, explicit, nil
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
		return errors.New("port number is a positive integer up to 65535")
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
