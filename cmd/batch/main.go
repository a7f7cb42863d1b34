package main

import (
	"fmt"
	"io"
	"os"

	"uule-converter/internal/batch"
	"uule-converter/internal/config"
	"uule-converter/internal/service"
	"uule-converter/internal/uulev2"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	flag.String("file", "", "Path to the CSV file to transcode")
	flag.String("out", "", "Path to the output CSV file, defaults to stdout")
	flag.String("mode", "encode", "encode or decode")
	flag.String("configs", "configs", "Directory holding app.env")
	flag.Bool("debug", false, "sets log level to debug")
	flag.Parse()

	v := viper.New()
	v.SetEnvPrefix("UULE")
	if err := v.BindPFlags(flag.CommandLine); err != nil {
		panic(err)
	}
	v.AutomaticEnv()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if v.GetBool("debug") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := run(v, os.Stdout); err != nil {
		log.Error().Err(err).Msg("batch failed")
		os.Exit(1)
	}
}

// run opens the input and output files named in v and transcodes between them.
// stdout is used when no output file is set.
func run(v *viper.Viper, stdout io.Writer) (err error) {
	file := v.GetString("file")
	if file == "" {
		return fmt.Errorf("--file flag is required")
	}

	// Load config
	cfg, err := config.LoadConfig(v.GetString("configs"))
	if err != nil {
		return fmt.Errorf("cannot load config: %w", err)
	}

	log.Info().Str("file", file).Str("mode", v.GetString("mode")).Msg("starting batch")

	in, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close()

	out := stdout
	if path := v.GetString("out"); path != "" {
		f, createErr := os.Create(path)
		if createErr != nil {
			return fmt.Errorf("failed to create output: %w", createErr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("failed to close output: %w", cerr)
			}
		}()
		out = f
	}

	n, err := transcode(v.GetString("mode"), in, out, cfg)
	if err != nil {
		return fmt.Errorf("transcoded %d rows: %w", n, err)
	}

	log.Info().Int("rows", n).Msg("batch complete")
	return nil
}

func transcode(mode string, in io.Reader, out io.Writer, cfg config.Config) (int, error) {
	switch mode {
	case "encode":
		enc := service.NewEncodeService(uulev2.SystemClock{}, service.Defaults{
			Radius:     cfg.DefaultRadius,
			Provenance: cfg.DefaultProvenance,
		})
		return batch.Encode(in, out, enc)
	case "decode":
		return batch.Decode(in, out, service.NewDecodeService())
	}
	return 0, fmt.Errorf("unknown mode %q", mode)
}
