// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zopgz

// Command zopgz compresses files with the iterative DEFLATE encoder and
// decompresses gzip/zlib streams, with a gzip-compatible flag surface.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/woozymasta/zopgz"
)

const prog = "zopgz"

// Exit codes: 0 success, 1 at least one file failed, 2 argument error.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// config is the parsed command line.
type config struct {
	level      int
	iterations int
	decompress bool
	stdout     bool
	keep       bool
	force      bool
	quiet      bool
	verbose    bool
	storeName  bool
	suffix     string
	files      []string
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func usage(w io.Writer) {
	fmt.Fprintf(w, `Usage: %s [options] [files...]

Compress or decompress files (gzip format). With no files, or with "-",
reads standard input and writes standard output.

Options:
  -1 .. -9           compression level (default 9; 1 is the fastest setting)
      --fast             alias for -1
      --best             alias for -9
      --iterations=N     override the level's iteration count (N > 9)
  -d, --decompress   decompress instead of compress
  -c, --stdout       write to standard output, keep input files
  -k, --keep         keep input files
  -f, --force        overwrite outputs, allow terminal output
  -n, --no-name      do not store the file name in the gzip header
  -N, --name         store/restore the original file name
  -S, --suffix=SUF   use suffix SUF instead of .gz
  -q, --quiet        suppress warnings
  -v, --verbose      report compression ratios
  -r, --recursive    not supported, rejected with a diagnostic
      --rsyncable        accepted and ignored (compatibility)
  -h, --help         show this help
`, prog)
}

func warnf(cfg *config, format string, args ...any) {
	if cfg == nil || !cfg.quiet {
		fmt.Fprintf(os.Stderr, prog+": "+format+"\n", args...)
	}
}

func usageError(format string, args ...any) int {
	fmt.Fprintf(os.Stderr, prog+": "+format+"\n", args...)
	usage(os.Stderr)
	return exitUsage
}

func run(args []string) int {
	cfg := &config{level: 9, storeName: true, suffix: ".gz"}

	onlyFiles := false
	for i := 0; i < len(args); i++ {
		a := args[i]

		if onlyFiles || a == "-" || !strings.HasPrefix(a, "-") {
			cfg.files = append(cfg.files, a)
			continue
		}

		if strings.HasPrefix(a, "--") {
			switch {
			case a == "--":
				onlyFiles = true
			case a == "--help":
				usage(os.Stdout)
				return exitOK
			case a == "--fast":
				cfg.level = 1
			case a == "--best":
				cfg.level = 9
			case a == "--decompress" || a == "--uncompress":
				cfg.decompress = true
			case a == "--stdout" || a == "--to-stdout":
				cfg.stdout = true
			case a == "--keep":
				cfg.keep = true
			case a == "--force":
				cfg.force = true
			case a == "--quiet":
				cfg.quiet = true
			case a == "--verbose":
				cfg.verbose = true
			case a == "--no-name":
				cfg.storeName = false
			case a == "--name":
				cfg.storeName = true
			case a == "--recursive":
				return usageError("recursive operation is not supported")
			case a == "--rsyncable":
				// Accepted for gzip compatibility, no effect.
			case strings.HasPrefix(a, "--suffix="):
				cfg.suffix = strings.TrimPrefix(a, "--suffix=")
			case strings.HasPrefix(a, "--iterations="):
				n, err := strconv.Atoi(strings.TrimPrefix(a, "--iterations="))
				if err != nil || n < 1 {
					return usageError("invalid iteration count %q", a)
				}
				cfg.iterations = n
			default:
				return usageError("unknown option: %s", a)
			}
			continue
		}

		// Short options, possibly clustered (-cd9).
		for j := 1; j < len(a); j++ {
			switch c := a[j]; c {
			case '1', '2', '3', '4', '5', '6', '7', '8', '9':
				cfg.level = int(c - '0')
			case 'd':
				cfg.decompress = true
			case 'c':
				cfg.stdout = true
			case 'k':
				cfg.keep = true
			case 'f':
				cfg.force = true
			case 'q':
				cfg.quiet = true
			case 'v':
				cfg.verbose = true
			case 'n':
				cfg.storeName = false
			case 'N':
				cfg.storeName = true
			case 'h':
				usage(os.Stdout)
				return exitOK
			case 'r':
				return usageError("recursive operation is not supported")
			case 'S':
				// Suffix follows either in this argument or the next one.
				if j+1 < len(a) {
					cfg.suffix = a[j+1:]
					j = len(a)
					break
				}
				i++
				if i >= len(args) {
					return usageError("-S requires a suffix")
				}
				cfg.suffix = args[i]
				j = len(a)
			default:
				return usageError("unknown option: -%c", c)
			}
		}
	}

	if cfg.suffix == "" {
		return usageError("suffix must not be empty")
	}

	if len(cfg.files) == 0 {
		cfg.files = []string{"-"}
	}

	status := exitOK
	for _, path := range cfg.files {
		var err error
		if cfg.decompress {
			err = decompressFile(cfg, path)
		} else {
			err = compressFile(cfg, path)
		}
		if err != nil {
			warnf(nil, "%s: %v", displayName(path), err)
			status = exitError
		}
	}
	return status
}

func displayName(path string) string {
	if path == "-" {
		return "stdin"
	}
	return path
}

// readInput loads a file or the standard input.
func readInput(path string) ([]byte, os.FileInfo, error) {
	if path == "-" {
		data, err := io.ReadAll(bufio.NewReader(os.Stdin))
		return data, nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, err
	}
	if info.IsDir() {
		return nil, nil, errors.New("is a directory")
	}

	data, err := os.ReadFile(path)
	return data, info, err
}

// writeOutput writes data to path, or to stdout for "-". When info is
// non-nil the source mode and timestamps are copied to the new file.
func writeOutput(cfg *config, path string, data []byte, info os.FileInfo) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}

	if !cfg.force {
		if _, err := os.Stat(path); err == nil {
			if !promptOverwrite(path) {
				return fmt.Errorf("%s already exists; not overwritten", path)
			}
		}
	}

	mode := os.FileMode(0o644)
	if info != nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, data, mode); err != nil {
		return err
	}
	if info != nil {
		if err := os.Chmod(path, info.Mode().Perm()); err != nil {
			return err
		}
		if err := os.Chtimes(path, time.Now(), info.ModTime()); err != nil {
			return err
		}
	}
	return nil
}

// promptOverwrite asks for confirmation when stdin is interactive.
func promptOverwrite(path string) bool {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false
	}
	fmt.Fprintf(os.Stderr, "%s: %s already exists; overwrite (y/n)? ", prog, path)
	r := bufio.NewReader(os.Stdin)
	line, err := r.ReadString('\n')
	if err != nil {
		return false
	}
	line = strings.TrimSpace(line)
	return line == "y" || line == "Y" || line == "yes"
}

// terminalGuard refuses to write compressed bytes to a terminal unless -f.
func terminalGuard(cfg *config) error {
	if cfg.force {
		return nil
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("refusing to write compressed data to a terminal; use -f to force")
	}
	return nil
}

func compressFile(cfg *config, path string) error {
	toStdout := cfg.stdout || path == "-"
	if toStdout {
		if err := terminalGuard(cfg); err != nil {
			return err
		}
	}

	data, info, err := readInput(path)
	if err != nil {
		return err
	}

	opts := &zopgz.CompressOptions{Level: cfg.level, Iterations: cfg.iterations}
	if cfg.storeName && path != "-" {
		opts.Name = filepath.Base(path)
	}
	if info != nil {
		opts.ModTime = info.ModTime()
	}

	out, err := zopgz.Compress(data, opts)
	if err != nil {
		return err
	}

	outPath := "-"
	if !toStdout {
		outPath = path + cfg.suffix
	}
	if err := writeOutput(cfg, outPath, out, info); err != nil {
		return err
	}

	if cfg.verbose {
		ratio := 0.0
		if len(data) > 0 {
			ratio = 100 * (1 - float64(len(out))/float64(len(data)))
		}
		warnf(cfg, "%s: input %d, output %d (%.1f%% saved)", displayName(path), len(data), len(out), ratio)
	}

	if !toStdout && !cfg.keep {
		return os.Remove(path)
	}
	return nil
}

// suffixMap lists the recognized compressed-name endings and what they
// become after decompression.
var suffixMap = []struct{ from, to string }{
	{".gz", ""},
	{".z", ""},
	{"-gz", ""},
	{"_z", ""},
	{"-z", ""},
	{".tgz", ".tar"},
	{".taz", ".tar"},
}

// outputNameFor strips a compressed suffix from path, honoring the
// configured -S suffix first.
func outputNameFor(cfg *config, path string) (string, error) {
	if cfg.suffix != ".gz" && strings.HasSuffix(path, cfg.suffix) && len(path) > len(cfg.suffix) {
		return strings.TrimSuffix(path, cfg.suffix), nil
	}
	for _, m := range suffixMap {
		if strings.HasSuffix(path, m.from) && len(path) > len(m.from) {
			return strings.TrimSuffix(path, m.from) + m.to, nil
		}
	}
	return "", fmt.Errorf("unknown suffix, use -S or -c")
}

func decompressFile(cfg *config, path string) error {
	data, info, err := readInput(path)
	if err != nil {
		return err
	}

	out, err := zopgz.Decompress(data, nil)
	if err != nil {
		return err
	}

	toStdout := cfg.stdout || path == "-"
	outPath := "-"
	if !toStdout {
		if hdr, _, err := zopgz.ParseHeader(data); err == nil && cfg.storeName && hdr.Name != "" {
			outPath = filepath.Join(filepath.Dir(path), filepath.Base(hdr.Name))
		} else {
			outPath, err = outputNameFor(cfg, path)
			if err != nil {
				return err
			}
		}
	}

	if err := writeOutput(cfg, outPath, out, info); err != nil {
		return err
	}

	if cfg.verbose {
		warnf(cfg, "%s: expanded %d -> %d bytes", displayName(path), len(data), len(out))
	}

	if !toStdout && !cfg.keep {
		return os.Remove(path)
	}
	return nil
}
