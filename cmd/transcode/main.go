package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/gottingen/transcode"
)

type options struct {
	from, to transcode.Encoding
	suffix   string
	jobs     int
	detect   bool
	validate bool
}

func main() {
	var (
		from     = flag.String("from", "auto", "Source encoding: auto, utf8, utf16le, utf16be, utf32le, utf32be")
		to       = flag.String("to", "utf8", "Target encoding: utf8, utf16le, utf16be, utf32le, utf32be")
		engine   = flag.String("engine", "auto", "Engine: auto, scalar, lanes")
		suffix   = flag.String("suffix", ".out", "Suffix appended to the input name for the output file")
		jobs     = flag.Int("jobs", runtime.GOMAXPROCS(0), "Files processed concurrently")
		detect   = flag.Bool("detect", false, "Print the plausible encodings of each file and exit")
		validate = flag.Bool("validate", false, "Validate each file in its source encoding and exit")
		verbose  = flag.Bool("v", false, "Log engine selection and per-file results to stderr")
	)
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: transcode [-from enc] [-to enc] [-engine name] [-suffix s] [-jobs n] files...")
		fmt.Fprintln(os.Stderr, "       transcode -detect files...")
		fmt.Fprintln(os.Stderr, "       transcode -validate [-from enc] files...")
		os.Exit(1)
	}

	log := newLogger(*verbose)
	defer log.Sync() //nolint:errcheck

	if err := run(log, *from, *to, *engine, *suffix, *jobs, *detect, *validate, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.TimeKey = ""
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

func parseEncoding(name string, allowAuto bool) (transcode.Encoding, error) {
	if allowAuto && strings.EqualFold(name, "auto") {
		return transcode.Unspecified, nil
	}
	e, ok := transcode.ParseEncoding(name)
	if !ok {
		return transcode.Unspecified, fmt.Errorf("unknown encoding %q", name)
	}
	return e, nil
}

func run(log *zap.Logger, fromName, toName, engineName, suffix string, jobs int, detect, validate bool, files []string) error {
	e, err := transcode.ParseEngine(engineName)
	if err != nil {
		return err
	}
	opts := options{suffix: suffix, jobs: jobs, detect: detect, validate: validate}
	if opts.from, err = parseEncoding(fromName, true); err != nil {
		return fmt.Errorf("-from: %w", err)
	}
	if opts.to, err = parseEncoding(toName, false); err != nil {
		return fmt.Errorf("-to: %w", err)
	}
	if opts.jobs < 1 {
		opts.jobs = 1
	}

	transcode.SetLogger(log)
	conv := transcode.New(transcode.WithEngine(e), transcode.WithLogger(log))
	log.Info("starting", zap.Stringer("engine", conv.Engine()), zap.Int("files", len(files)), zap.Int("jobs", opts.jobs))

	lines := make([]string, len(files))
	var g errgroup.Group
	g.SetLimit(opts.jobs)
	for i, path := range files {
		g.Go(func() error {
			line, err := processFile(conv, path, opts)
			if err != nil {
				log.Error("file failed", zap.String("file", path), zap.Error(err))
				return fmt.Errorf("%s: %w", path, err)
			}
			log.Debug("file done", zap.String("file", path), zap.String("result", line))
			lines[i] = line
			return nil
		})
	}
	err = g.Wait()

	for _, line := range lines {
		if line != "" {
			fmt.Println(line)
		}
	}
	return err
}

func processFile(conv *transcode.Converter, path string, opts options) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}

	if opts.detect {
		return fmt.Sprintf("%s: %s", path, conv.DetectEncodings(data)), nil
	}

	from := opts.from
	if from == transcode.Unspecified {
		if from = conv.AutodetectEncoding(data); from == transcode.Unspecified {
			return "", fmt.Errorf("cannot detect encoding")
		}
	}
	if bom, n := transcode.CheckBOM(data); bom == from {
		data = data[n:]
	}
	src, err := load(from, data)
	if err != nil {
		return "", err
	}

	if opts.validate {
		if err := src.validate(conv); err != nil {
			return fmt.Sprintf("%s: %v", path, err), nil
		}
		return fmt.Sprintf("%s: ok", path), nil
	}

	out, err := src.convert(conv, opts.to)
	if err != nil {
		return "", fmt.Errorf("convert from %s to %s: %w", from, opts.to, err)
	}
	dst := path + opts.suffix
	if err := os.WriteFile(dst, out, 0o644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return fmt.Sprintf("%s: %s -> %s (%s, %d bytes)", path, from, dst, opts.to, len(out)), nil
}
