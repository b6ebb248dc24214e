// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"os"
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

// ParseFlags parses the process command line.
//
// Flags:
//
//	-a companion simulator listen address in format [host]:[port]
//	-adapter-address companion address used by the client
//	-d database DSN
//	-c/-config json file path with configs
//	-hash-key pairing HMAC key
//	-log-file client log file path
//	-metrics-address client Prometheus listen address
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-fetch-timeout companion fetch timeout
//	-debounce re-encryption debounce delay
//	-reset-minutes default HighlySecret reset budget in minutes
//	-expiry-tick expiry timer tick interval
//	-companion-secret companion simulator root secret
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("sif-keeper", flag.ContinueOnError)

	var serverAddress NetAddress
	var adapterAddress string
	var databaseDSN string
	var jsonConfigPath string
	var hashKey string
	var logFile string
	var metricsAddress string
	var requestTimeout time.Duration
	var fetchTimeout time.Duration
	var debounce time.Duration
	var resetMinutes uint
	var expiryTick time.Duration
	var companionSecret string

	fs.Var(&serverAddress, "a", "Companion listen address host:port")
	fs.StringVar(&adapterAddress, "adapter-address", "", "Companion address used by the client")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&hashKey, "hash-key", "", "Pairing hash key")
	fs.StringVar(&logFile, "log-file", "", "Client log file")
	fs.StringVar(&metricsAddress, "metrics-address", "", "Client metrics listen address")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&fetchTimeout, "fetch-timeout", 0, "Companion fetch timeout")
	fs.DurationVar(&debounce, "debounce", 0, "Re-encryption debounce delay")
	fs.UintVar(&resetMinutes, "reset-minutes", 0, "Default reset budget in minutes")
	fs.DurationVar(&expiryTick, "expiry-tick", 0, "Expiry tick interval")
	fs.StringVar(&companionSecret, "companion-secret", "", "Companion root secret")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			HashKey: hashKey,
			LogFile: logFile,

			MetricsAddress: metricsAddress,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Companion: Companion{
			Secret: companionSecret,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			ExpiryTickInterval: expiryTick,
		},
		SIF: SIF{
			FetchTimeout:        fetchTimeout,
			DebounceDelay:       debounce,
			DefaultResetMinutes: uint32(resetMinutes),
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// An unset address is the empty string.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
