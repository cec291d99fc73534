// Copyright 2022 Teal.Finance/tiny64 contributors
// This file is part of Teal.Finance/tiny64,
// a tiny Base64 codec under the MIT License.
// SPDX-License-Identifier: MIT

// Package main encodes a file to Base64, decodes it back,
// or serves the codec over HTTP.
//
//	tiny64 photo.jpg photo.b64
//	tiny64 -d photo.b64 photo.jpg
//	echo Zm9v | tiny64 -d
//	tiny64 -serve -port 8064 -prom 9064
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/teal-finance/emo"

	"github.com/teal-finance/tiny64"
	"github.com/teal-finance/tiny64/b64"
	"github.com/teal-finance/tiny64/iec"
	"github.com/teal-finance/tiny64/pprof"
)

var log = emo.NewZone("tiny64")

type config struct {
	decode     bool
	lenient    bool
	serve      bool
	port       int
	prom       int
	pprof      int
	burst      int
	perMin     int
	maxBody    string
	dev        bool
	reqLogs    int
	origins    string
	docURL     string
	cpuprofile string
	input      string
	output     string
}

func main() {
	if err := run(parseFlags()); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func parseFlags() config {
	var c config

	flag.BoolVar(&c.decode, "d", false, "Decode the Base64 input (default is to encode)")
	flag.BoolVar(&c.lenient, "lenient", false, "Decode without validation: stop at the first '=' and decode unknown characters as zero bits")
	flag.BoolVar(&c.serve, "serve", false, "Serve the codec HTTP API instead of converting a file")
	flag.IntVar(&c.port, "port", tiny64.EnvInt("TINY64_PORT", 8064), "API server port")
	flag.IntVar(&c.prom, "prom", tiny64.EnvInt("TINY64_PROM", 0), "Prometheus export port, 0 disables it")
	flag.IntVar(&c.pprof, "pprof", tiny64.EnvInt("TINY64_PPROF", 0), "PProf port on localhost, 0 disables it")
	flag.IntVar(&c.burst, "burst", tiny64.EnvInt("TINY64_BURST", 20), "Max requests per client IP at once")
	flag.IntVar(&c.perMin, "per-min", tiny64.EnvInt("TINY64_PER_MIN", 80), "Max requests per minute per client IP, 0 disables the rate limiter")
	flag.StringVar(&c.maxBody, "max-body", tiny64.EnvStr("TINY64_MAX_BODY", "1MiB"), "Max request body size, as 4096, 64KiB or 1MiB")
	flag.BoolVar(&c.dev, "dev", tiny64.EnvBool("TINY64_DEV"), "Development mode: higher rate limits and local origins allowed")
	flag.IntVar(&c.reqLogs, "logs", tiny64.EnvInt("TINY64_LOGS", 1), "Request logs: 0=none 1=IP+URI 2=also some headers")
	flag.StringVar(&c.origins, "origins", tiny64.EnvStr("TINY64_ORIGINS"), "Comma-separated origin prefixes allowed by CORS")
	flag.StringVar(&c.docURL, "doc", tiny64.EnvStr("TINY64_DOC"), "Documentation URL inserted in the error responses")
	flag.StringVar(&c.cpuprofile, "cpuprofile", "", "Write cpu.pprof within this directory")
	tiny64.SetVersionFlag(nil, tiny64.Version("tiny64", ""))

	flag.Parse()

	c.input = flag.Arg(0)
	c.output = flag.Arg(1)

	return c
}

func run(c config) error {
	if c.cpuprofile != "" {
		defer pprof.WriteCPUProfile(c.cpuprofile).Stop()
	}

	if c.serve {
		return serve(c)
	}

	in, closeIn, err := openInput(c.input)
	if err != nil {
		return err
	}
	defer closeIn()

	out, closeOut, err := openOutput(c.output)
	if err != nil {
		return err
	}

	err = convert(in, out, c.decode, c.lenient)
	if e := closeOut(); e != nil && err == nil {
		err = e
	}
	return err
}

func serve(c config) error {
	tiny64.LogVersion("")

	maxBody, err := iec.Parse(c.maxBody)
	if err != nil {
		return fmt.Errorf("-max-body: %w", err)
	}
	log.Info("Accept request bodies up to", iec.Format(maxBody))

	opts := []tiny64.Option{
		tiny64.WithServerHeader("tiny64"),
		tiny64.WithDev(c.dev),
		tiny64.WithPProf(c.pprof),
		tiny64.WithMaxBody(maxBody),
		tiny64.WithDocURL(c.docURL),
		tiny64.WithOrigins(splitClean(c.origins)...),
		tiny64.WithReqLogs(c.reqLogs),
	}
	if c.perMin > 0 {
		opts = append(opts, tiny64.WithLimiter(c.burst, c.perMin))
	}
	if c.prom > 0 {
		opts = append(opts, tiny64.WithProm(c.prom, "tiny64"))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return tiny64.New(opts...).Run(ctx, c.port)
}

// convert reads the whole input then writes its encoding (or decoding).
// The encoded text ends with a line feed. The text to decode may be surrounded by spaces.
func convert(in io.Reader, out io.Writer, decode, lenient bool) error {
	src, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var dst []byte

	switch {
	case !decode:
		dst = make([]byte, b64.EncodedLen(len(src))+1)
		n := b64.Encode(dst, src)
		dst[n] = '\n' // replace the NUL terminator
		log.Debug("Encoded", iec.Format(int64(len(src))), "into", n, "characters")

	case lenient:
		src = bytes.TrimSpace(src)
		dst = make([]byte, b64.MaxDecodedLen(len(src)))
		dst = dst[:b64.Decode(dst, src)]
		log.Debug("Decoded", len(src), "characters into", iec.Format(int64(len(dst))))

	default:
		src = bytes.TrimSpace(src)
		dst = make([]byte, b64.DecodedLen(src))
		n, err := b64.DecodeStrict(dst, src)
		if err != nil {
			var corrupt b64.CorruptInputError
			if errors.As(err, &corrupt) {
				return fmt.Errorf("decode: %w (use -lenient to ignore)", err)
			}
			return fmt.Errorf("decode: %w", err)
		}
		dst = dst[:n]
		log.Debug("Decoded", len(src), "characters into", iec.Format(int64(n)))
	}

	if _, err = out.Write(dst); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func openInput(name string) (io.Reader, func(), error) {
	if name == "" || name == "-" {
		return os.Stdin, func() {}, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}

	return f, func() {
		if e := f.Close(); e != nil {
			log.Warning("Close", name, e)
		}
	}, nil
}

func openOutput(name string) (io.Writer, func() error, error) {
	if name == "" || name == "-" {
		return os.Stdout, func() error { return nil }, nil
	}

	f, err := os.Create(name)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}

	return f, f.Close, nil
}

// splitClean splits the comma-separated values and trims them.
func splitClean(values string) []string {
	fields := bytes.Split([]byte(values), []byte{','})
	clean := make([]string, 0, len(fields))
	for _, f := range fields {
		if v := string(bytes.TrimSpace(f)); v != "" {
			clean = append(clean, v)
		}
	}
	return clean
}
