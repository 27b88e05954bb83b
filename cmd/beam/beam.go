package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"

	"github.com/laserkit/beam/internal/config"
	"github.com/laserkit/beam/internal/configpaths"
	"github.com/laserkit/beam/internal/log"
)

func main() {
	paths := configpaths.ConfigCandidatePaths(findUserConfig(os.Args[1:]))

	var cli config.CLI
	ctx := kong.Parse(&cli,
		kong.Name("beam"),
		kong.Description("Laser projection point rotation and range scaling"),
		kong.UsageOnError(),
		kong.Configuration(kong.JSON, paths.JSON...),
		kong.Configuration(kongyaml.Loader, paths.YAML...),
		kong.Configuration(kongtoml.Loader, paths.TOML...),
	)

	// stdout carries command output, so log records go to stderr.
	logger, closeFiles, err := log.Setup(log.Options{
		Level:  cli.Log.Level,
		File:   cli.Log.File,
		JSON:   cli.Log.JSON,
		Stdout: os.Stderr,
	})
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() {
		for _, c := range closeFiles {
			_ = c.Close()
		}
	}()

	var frames log.SampleLogger
	switch {
	case cli.Log.FramesFile != "":
		f, err := os.OpenFile(cli.Log.FramesFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			logger.Error("failed to open frames file", "file", cli.Log.FramesFile, "error", err)
			frames = log.NewSampleLogger(nil)
		} else {
			opts := &slog.HandlerOptions{Level: log.LevelTrace}
			if cli.Log.JSON {
				frames = log.NewSampleLogger(slog.NewJSONHandler(f, opts))
			} else {
				frames = log.NewSampleLogger(slog.NewTextHandler(f, opts))
			}
			closeFiles = append(closeFiles, f)
		}
	case cli.Log.Level == "trace":
		frames = log.NewSampleLogger(logger.Handler())
	default:
		frames = log.NewSampleLogger(nil)
	}

	ctx.Bind(logger)
	ctx.BindTo(frames, (*log.SampleLogger)(nil))
	ctx.BindTo(os.Stdin, (*io.Reader)(nil))
	ctx.BindTo(os.Stdout, (*io.Writer)(nil))

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv("BEAM_CONFIG")
}
