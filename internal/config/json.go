package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout accepted in
// the JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		Revision      string   `json:"revision"`
		Codec         string   `json:"codec"`
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		LogFile       string   `json:"log_file"`
	} `json:"app,omitempty"`

	Canisters struct {
		Backend          string `json:"backend"`
		Factory          string `json:"factory"`
		InternetIdentity string `json:"internet_identity"`
		Network          string `json:"network"`
	} `json:"canisters,omitempty"`

	Network struct {
		LocalURL string `json:"local_url"`
		ICURL    string `json:"ic_url"`
	} `json:"network,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`

		Identity struct {
			Path       string `json:"path"`
			Passphrase string `json:"passphrase"`
		} `json:"identity,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		RateLimit      float64  `json:"rate_limit"`
		RateBurst      int      `json:"rate_burst"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		ArchiveInterval Duration `json:"archive_interval"`
	} `json:"workers,omitempty"`
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
			Revision:      jsonCfg.App.Revision,
			Codec:         jsonCfg.App.Codec,
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			LogFile:       jsonCfg.App.LogFile,
		},
		Canisters: Canisters{
			Backend:          jsonCfg.Canisters.Backend,
			Factory:          jsonCfg.Canisters.Factory,
			InternetIdentity: jsonCfg.Canisters.InternetIdentity,
			Network:          jsonCfg.Canisters.Network,
		},
		Network: Network{
			LocalURL: jsonCfg.Network.LocalURL,
			ICURL:    jsonCfg.Network.ICURL,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
			Identity: Identity{
				Path:       jsonCfg.Storage.Identity.Path,
				Passphrase: jsonCfg.Storage.Identity.Passphrase,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			RateLimit:      jsonCfg.Server.RateLimit,
			RateBurst:      jsonCfg.Server.RateBurst,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			GRPCAddress:    jsonCfg.Adapter.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			ArchiveInterval: time.Duration(jsonCfg.Workers.ArchiveInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
