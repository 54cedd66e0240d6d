// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors the appsettings-style document accepted via
// -c / CONFIG. Key lookup in encoding/json is case-insensitive, so both
// "ConnectionStrings" and "connectionStrings" are accepted.
type StructuredJSONConfig struct {
	ConnectionStrings struct {
		DefaultConnection string `json:"DefaultConnection"`
	} `json:"ConnectionStrings"`

	AllowedOrigins []string `json:"AllowedOrigins"`

	JWT struct {
		Issuer    string `json:"issuer"`
		Audience  string `json:"audience"`
		SecretKey string `json:"secretKey"`
	} `json:"jwt"`

	App struct {
		Version             string `json:"Version"`
		LogLevel            string `json:"LogLevel"`
		Locale              string `json:"Locale"`
		UnauthorizedMessage string `json:"UnauthorizedMessage"`
	} `json:"App"`

	Storage struct {
		Driver            string   `json:"Driver"`
		ConnectAttempts   int      `json:"ConnectAttempts"`
		ConnectRetryDelay Duration `json:"ConnectRetryDelay"`
	} `json:"Storage"`

	Server struct {
		HTTPAddress     string   `json:"HttpAddress"`
		HTTPSAddress    string   `json:"HttpsAddress"`
		TLSCertFile     string   `json:"TlsCertFile"`
		TLSKeyFile      string   `json:"TlsKeyFile"`
		RequestTimeout  Duration `json:"RequestTimeout"`
		ShutdownTimeout Duration `json:"ShutdownTimeout"`
	} `json:"Server"`

	RateLimit struct {
		PermitLimit         int      `json:"PermitLimit"`
		Window              Duration `json:"Window"`
		QueueLimit          int      `json:"QueueLimit"`
		RejectionStatusCode int      `json:"RejectionStatusCode"`
	} `json:"RateLimit"`

	Workers struct {
		PartitionSweepInterval Duration `json:"PartitionSweepInterval"`
	} `json:"Workers"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:             jsonCfg.App.Version,
			LogLevel:            jsonCfg.App.LogLevel,
			Locale:              jsonCfg.App.Locale,
			UnauthorizedMessage: jsonCfg.App.UnauthorizedMessage,
		},
		JWT: JWT{
			Issuer:    jsonCfg.JWT.Issuer,
			Audience:  jsonCfg.JWT.Audience,
			SecretKey: jsonCfg.JWT.SecretKey,
		},
		Storage: Storage{
			DB: DB{
				Driver:            jsonCfg.Storage.Driver,
				DSN:               jsonCfg.ConnectionStrings.DefaultConnection,
				ConnectAttempts:   jsonCfg.Storage.ConnectAttempts,
				ConnectRetryDelay: time.Duration(jsonCfg.Storage.ConnectRetryDelay),
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			HTTPSAddress:    jsonCfg.Server.HTTPSAddress,
			TLSCertFile:     jsonCfg.Server.TLSCertFile,
			TLSKeyFile:      jsonCfg.Server.TLSKeyFile,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		CORS: CORS{
			AllowedOrigins: jsonCfg.AllowedOrigins,
		},
		RateLimit: RateLimit{
			PermitLimit:         jsonCfg.RateLimit.PermitLimit,
			Window:              time.Duration(jsonCfg.RateLimit.Window),
			QueueLimit:          jsonCfg.RateLimit.QueueLimit,
			RejectionStatusCode: jsonCfg.RateLimit.RejectionStatusCode,
		},
		Workers: Workers{
			PartitionSweepInterval: time.Duration(jsonCfg.Workers.PartitionSweepInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h" and "30s" as well as from nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
