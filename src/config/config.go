package config

import (
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// Values here are suitable for local development. Deployments overwrite
// this file on the server; it is the only file that differs per environment.
var Config = HubConfig{
	Env:         Dev,
	Addr:        "localhost:9001",
	PrivateAddr: "localhost:9002",
	BaseUrl:     "http://localhost:9001",
	LogLevel:    zerolog.InfoLevel,

	Postgres: PostgresConfig{
		User:     "hub",
		Password: "password",
		Hostname: "localhost",
		Port:     5432,
		DbName:   "hub",
		LogLevel: tracelog.LogLevelWarn,
		MinConn:  2,
		MaxConn:  10,
	},

	Spaces: SpacesConfig{
		Key:      "dvlpr",
		Secret:   "dvlprsecret",
		Region:   "dev",
		Endpoint: "http://localhost:9003",
		Bucket:   "hub-assets-dev",
		BaseUrl:  "http://localhost:9003/hub-assets-dev",
	},
}
