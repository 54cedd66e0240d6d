// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
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

// ParseFlags parses the process command line into a partial config.
//
// Flags:
//
//	-a              http server address in format [host]:[port]
//	-https-address  https server address in format [host]:[port]
//	-tls-cert       TLS certificate file
//	-tls-key        TLS private key file
//	-d              default connection string
//	-driver         database driver (sqlite3, pgx)
//	-c/-config      json file path with configs
//	-jwt-issuer     expected token issuer
//	-jwt-audience   expected token audience
//	-jwt-secret-key token signing key
//	-allowed-origins comma separated list of CORS origins
//	-log-level      zerolog level name
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var httpAddress, httpsAddress NetAddress
	var allowedOrigins originList
	var cfg StructuredConfig

	fs.Var(&httpAddress, "a", "Net address host:port")
	fs.Var(&httpsAddress, "https-address", "HTTPS net address host:port")
	fs.StringVar(&cfg.Server.TLSCertFile, "tls-cert", "", "TLS certificate file")
	fs.StringVar(&cfg.Server.TLSKeyFile, "tls-key", "", "TLS private key file")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Default connection string")
	fs.StringVar(&cfg.Storage.DB.Driver, "driver", "", "Database driver (sqlite3, pgx)")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.JWT.Issuer, "jwt-issuer", "", "Token issuer")
	fs.StringVar(&cfg.JWT.Audience, "jwt-audience", "", "Token audience")
	fs.StringVar(&cfg.JWT.SecretKey, "jwt-secret-key", "", "Token signing key")
	fs.Var(&allowedOrigins, "allowed-origins", "Comma separated CORS origins")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = httpAddress.String()
	cfg.Server.HTTPSAddress = httpsAddress.String()
	cfg.CORS.AllowedOrigins = allowedOrigins

	return &cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host binds every interface. Any other host must be "localhost"
// or a literal IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// originList collects comma separated origins, possibly over repeated flags.
type originList []string

func (o *originList) String() string {
	if o == nil {
		return ""
	}
	return strings.Join(*o, ",")
}

func (o *originList) Set(s string) error {
	for _, origin := range strings.Split(s, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			*o = append(*o, origin)
		}
	}
	return nil
}
