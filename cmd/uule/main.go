// Command uule encodes and decodes single UULE tokens.
//
//	uule encode v1 "Queens County,New York,United States"
//	uule encode v2 --lat 37.421 --lon -12.2084 [--radius 6200] [--provenance 6] [--timestamp 1591521249034]
//	uule decode <token>
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"uule-converter/internal/models"
	"uule-converter/internal/service"
	"uule-converter/internal/uule"
	"uule-converter/internal/uulev2"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const usage = `usage:
  uule encode v1 <canonical name>
  uule encode v2 --lat <deg> --lon <deg> [--radius <n> | --radiusMeters <m>] [--provenance <n>] [--timestamp <ms>]
  uule decode <token>
`

func main() {
	flag.Bool("debug", false, "sets log level to debug")
	flag.Float64("lat", 0, "latitude in degrees (encode v2)")
	flag.Float64("lon", 0, "longitude in degrees (encode v2)")
	flag.Int32("radius", uule.ExactRadius, "encoded radius, meters * 620 (encode v2)")
	flag.Int32("radiusMeters", 0, "radius in meters, converted with the 620 factor (encode v2)")
	flag.Int32("provenance", 0, "provenance (encode v2)")
	flag.String("timestamp", "", "timestamp in Unix milliseconds, defaults to now (encode v2)")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
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

	out, err := run(flag.Args(), v)
	if err != nil {
		flag.Usage()
		log.Error().Err(err).Msg("uule failed")
		os.Exit(1)
	}
	fmt.Println(out)
}

// run executes one command and returns what should be printed.
func run(args []string, v *viper.Viper) (string, error) {
	if len(args) < 2 {
		return "", fmt.Errorf("missing command")
	}

	switch {
	case args[0] == "decode":
		log.Debug().Str("token", args[1]).Msg("decoding")
		decoded, err := service.NewDecodeService().Decode(args[1])
		if err != nil {
			return "", err
		}
		b, err := json.MarshalIndent(decoded, "", "  ")
		if err != nil {
			return "", err
		}
		return string(b), nil

	case args[0] == "encode" && args[1] == "v1":
		if len(args) < 3 {
			return "", fmt.Errorf("encode v1 needs a canonical name")
		}
		return encoder(v).EncodePlace(args[2])

	case args[0] == "encode" && args[1] == "v2":
		req := models.PointRequest{
			Latitude:  v.GetFloat64("lat"),
			Longitude: v.GetFloat64("lon"),
		}
		if v.IsSet("radiusMeters") {
			r := uule.RadiusFromMeters(v.GetInt32("radiusMeters"))
			req.Radius = &r
		}
		if ts := v.GetString("timestamp"); ts != "" {
			req.Timestamp = &ts
		}
		return encoder(v).EncodePoint(req)
	}

	return "", fmt.Errorf("unknown command %q", args[0])
}

func encoder(v *viper.Viper) *service.EncodeService {
	return service.NewEncodeService(uulev2.SystemClock{}, service.Defaults{
		Radius:     v.GetInt32("radius"),
		Provenance: v.GetInt32("provenance"),
	})
}
