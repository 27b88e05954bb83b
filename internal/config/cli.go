// Package config defines the beam command line and its config file shape.
package config

import "github.com/laserkit/beam/internal/cmd"

// CLI is the root kong model. Flags and env vars override config files.
type CLI struct {
	ConfigFile string    `name:"config" help:"Configuration file (JSON, YAML or TOML)" type:"path" env:"BEAM_CONFIG"`
	Log        LogConfig `embed:"" prefix:"log."`

	Scale   cmd.Scale         `cmd:"" help:"Rescale integer values from one range to another"`
	Rotate  cmd.Rotate        `cmd:"" help:"Rotate a point about a conceptual axis"`
	Project cmd.Project       `cmd:"" help:"Rotate points and scale them into output samples"`
	Config  cmd.ConfigCommand `cmd:"" help:"Configuration helpers"`
}

// LogConfig holds the log.* flags shared by every command.
type LogConfig struct {
	Level      string `help:"Log level" default:"info" enum:"trace,debug,info,warn,error" env:"BEAM_LOG_LEVEL"`
	File       string `help:"Log file path (default: stderr)" env:"BEAM_LOG_FILE"`
	JSON       bool   `help:"Emit JSON log records" env:"BEAM_LOG_JSON"`
	FramesFile string `help:"Write a trace record per projected frame to this file" env:"BEAM_LOG_FRAMES_FILE"`
}
