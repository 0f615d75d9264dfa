// Package config loads environment-driven configuration structs.
//
// Every configurable component in this module declares an env-tagged struct
// (see mongo.Config for the pattern) and loads it through Load or MustLoad.
// A .env file in the working directory is picked up once, for local
// development; real deployments set plain environment variables.
package config
