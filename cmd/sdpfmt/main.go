// Command sdpfmt validates SDP session descriptions and prints them in
// canonical form.
//
//	sdpfmt [-config sdpfmt.toml] [-strict] [-check] [file ...]
//
// With no files it reads standard input.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/nostressdev/signaling/internal/config"
	"github.com/nostressdev/signaling/internal/logging"
	"github.com/nostressdev/signaling/sdp"
	"github.com/sirupsen/logrus"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sdpfmt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a TOML config file")
	strict := fs.Bool("strict", false, "reject lines that are out of place instead of skipping them")
	check := fs.Bool("check", false, "validate only, print nothing on success")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		cfg = loaded
	}
	if *strict {
		cfg.Strict = true
	}
	if err := logging.Configure(cfg.LogLevel, cfg.LogFormat); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	if fs.NArg() == 0 {
		if err := format("<stdin>", stdin, stdout, cfg, *check); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		return 0
	}

	status := 0
	for _, path := range fs.Args() {
		if err := formatFile(path, stdout, cfg, *check); err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", path, err)
			status = 1
		}
	}
	return status
}

func formatFile(path string, out io.Writer, cfg config.Config, check bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return format(path, f, out, cfg, check)
}

func format(name string, in io.Reader, out io.Writer, cfg config.Config, check bool) error {
	d, err := sdp.NewDecoder(in, cfg.DecoderOptions()...).Decode()
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"function":     "format",
		"input":        name,
		"session_name": d.SessionName(),
	}).Info("Session description is valid")

	if check {
		return nil
	}
	return sdp.NewEncoder(out).Encode(d)
}
