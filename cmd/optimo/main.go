// Package main provides a small CLI over the optimo client for polling
// and stopping plan optimizations.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	optimo "github.com/optimoroute/optimo-go"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().
		Timestamp().
		Logger()

	baseURL := flag.String("base-url", envOr("OPTIMO_URL", "https://api.optimoroute.com"), "vendor API base URL")
	accessKey := flag.String("key", os.Getenv("OPTIMO_KEY"), "vendor access key")
	version := flag.String("version", optimo.DefaultVersion, "API version segment")
	timeout := flag.Duration("timeout", 30*time.Second, "request timeout")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <get|stop> <request-id>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	command, requestID := flag.Arg(0), flag.Arg(1)

	clientLog := zerolog.Nop()
	if *verbose {
		clientLog = log
	}

	client, err := optimo.NewClient(optimo.Config{
		BaseURL:   *baseURL,
		AccessKey: *accessKey,
		Version:   *version,
		Logger:    clientLog,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	switch command {
	case "get":
		result, err := client.Get(ctx, requestID)
		if err != nil {
			log.Fatal().Err(err).Str("request_id", requestID).Msg("get failed")
		}
		if result == nil {
			fmt.Println("planning still in progress")
			return
		}
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			log.Fatal().Err(err).Msg("encoding result")
		}
		fmt.Println(string(out))

	case "stop":
		if err := client.Stop(ctx, requestID); err != nil {
			log.Fatal().Err(err).Str("request_id", requestID).Msg("stop failed")
		}
		log.Info().Str("request_id", requestID).Msg("optimization stopped")

	default:
		log.Fatal().Str("command", command).Msg("unknown command, expected 'get' or 'stop'")
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
