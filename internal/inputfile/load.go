// Package inputfile reads whitespace-separated int32 key lists used to
// drive the benchmark CLI's --insert/--search/--delete phases from a
// file instead of a synthetic generator.
package inputfile

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// Load reads name and returns the ordered sequence of keys it names.
// Tokens are separated by any run of whitespace; a "#" begins a
// line comment that runs to end of line. Every token must parse as a
// base-10 integer within the int32 range: any other token, or an
// integer outside that range, is reported as an error identifying the
// offending line and token so the caller can print a diagnostic and
// exit 1, per the benchmark driver's error-handling contract.
func Load(name string) ([]int32, error) {
	f, err := openFile(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var keys []int32
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		for _, tok := range strings.Fields(line) {
			key, err := parseKey(tok)
			if err != nil {
				return nil, fmt.Errorf("inputfile: %s:%d: %w", name, lineNo, err)
			}
			keys = append(keys, key)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("inputfile: %s: %w", name, err)
	}
	return keys, nil
}

func parseKey(tok string) (int32, error) {
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", tok)
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("%q overflows a signed 32-bit key", tok)
	}
	return int32(v), nil
}

// openFile opens name for reading, rejecting anything that is not a
// regular file (directories, devices, pipes).
func openFile(name string) (*os.File, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, fmt.Errorf("inputfile: %w", err)
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("inputfile: %s is not a regular file", name)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("inputfile: %w", err)
	}
	return f, nil
}
