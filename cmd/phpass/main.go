// Command phpass hashes, verifies and inspects phpass-format password hashes.
//
//	phpass [-c cost] [-p] hash PASSWORD...|-
//	phpass verify PASSWORD HASH
//	phpass info HASH
//
// Settings default to the PHPASS_* environment variables, optionally loaded
// from a .env file; flags override them.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/op/go-logging"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/hasbyte1/go-phpass/internal/config"
	"github.com/hasbyte1/go-phpass/internal/logger"
	"github.com/hasbyte1/go-phpass/phpass"
)

const (
	exitOK       = 0
	exitMismatch = 1
	exitUsage    = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("phpass", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	pCost := fs.IntP("cost", "c", phpass.DefaultCost, "iteration-count exponent in [4, 31]")
	pPortable := fs.BoolP("portable", "p", false, "write portable $P$ hashes instead of $2a$")
	pEnv := fs.String("env", ".env", "environment file to load before reading PHPASS_* variables")
	fs.SortFlags = false
	fs.Usage = func() {
		fmt.Fprint(stderr, "Usage:\n"+
			"  phpass [flags] hash PASSWORD...|-\n"+
			"  phpass [flags] verify PASSWORD HASH\n"+
			"  phpass info HASH\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if err := config.Load(*pEnv); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	if code := initLogger(stderr); code != exitOK {
		return code
	}

	opts, err := config.HasherOptions()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	if fs.Changed("cost") {
		opts.Cost = *pCost
	}
	if fs.Changed("portable") {
		opts.Portable = *pPortable
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return exitUsage
	}

	switch rest[0] {
	case "info":
		if len(rest) != 2 {
			fs.Usage()
			return exitUsage
		}
		return runInfo(rest[1], stdout, stderr)
	case "hash", "verify":
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", rest[0])
		fs.Usage()
		return exitUsage
	}

	h, err := phpass.New(opts)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	logger.Debugf("hasher ready: cost=%d format=%s", h.Cost(), h.Format())

	if rest[0] == "verify" {
		if len(rest) != 3 {
			fs.Usage()
			return exitUsage
		}
		return runVerify(h, rest[1], rest[2], stdout)
	}

	passwords := rest[1:]
	if len(passwords) == 1 && passwords[0] == "-" {
		passwords, err = readLines(stdin)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitUsage
		}
	}
	if len(passwords) == 0 {
		fs.Usage()
		return exitUsage
	}
	return runHash(h, passwords, stdout)
}

func initLogger(stderr io.Writer) int {
	switch config.GetLogLevel() {
	case config.Debug:
		logger.InitLogger(logging.DEBUG)
	case config.Info:
		logger.InitLogger(logging.INFO)
	case config.Notice:
		logger.InitLogger(logging.NOTICE)
	case config.Warn:
		logger.InitLogger(logging.WARNING)
	case config.Error:
		logger.InitLogger(logging.ERROR)
	default:
		fmt.Fprintln(stderr, "unknown log level:", config.GetLogLevel())
		return exitUsage
	}
	return exitOK
}

var errUnusable = errors.New("could not produce a usable hash")

// runHash hashes every password on a bounded pool of goroutines and prints
// the results in input order.
func runHash(h phpass.Hasher, passwords []string, stdout io.Writer) int {
	hashes, err := hashAll(h, passwords)
	code := exitOK
	if err != nil {
		logger.Errorf("%v", err)
		code = exitMismatch
	}
	for _, hash := range hashes {
		fmt.Fprintln(stdout, hash)
	}
	return code
}

// hashAll keeps going after an unusable hash so every input gets a line.
func hashAll(h phpass.Hasher, passwords []string) ([]string, error) {
	out := make([]string, len(passwords))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, pw := range passwords {
		i, pw := i, pw
		g.Go(func() error {
			out[i] = h.Hash([]byte(pw))
			if out[i] == phpass.Unusable {
				return fmt.Errorf("password %d: %w", i+1, errUnusable)
			}
			return nil
		})
	}
	err := g.Wait()
	return out, err
}

func runVerify(h *phpass.PHPass, password, hash string, stdout io.Writer) int {
	if h.Verify([]byte(password), hash) {
		fmt.Fprintln(stdout, "ok")
		return exitOK
	}
	fmt.Fprintln(stdout, "mismatch")
	return exitMismatch
}

func runInfo(hash string, stdout, stderr io.Writer) int {
	s, err := phpass.ParseSetting(hash)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	fmt.Fprintf(stdout, "format=%s prefix=%s cost=%d rounds=%d salt=%s\n",
		s.Format, s.Prefix, s.Cost, s.Rounds(), s.Salt)
	return exitOK
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read passwords: %w", err)
	}
	return lines, nil
}
