package persist

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tripolys/tripolys/internal/xlog"
	"github.com/tripolys/tripolys/triad"
)

func coreTriadsPath(dir string, n int) string {
	return filepath.Join(dir, fmt.Sprintf("triads_core_%d.txt", n))
}

func polyResultsPath(dir, name string, n int) string {
	return filepath.Join(dir, fmt.Sprintf("poly_%s_%d.txt", name, n))
}

// WriteCoreTriads writes triads to triads_core_<n>.txt, one canonical
// arm1,arm2,arm3 line per triad, overwriting any existing file.
func WriteCoreTriads(dir string, n int, triads []*triad.Triad) error {
	path := coreTriadsPath(dir, n)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("persist: WriteCoreTriads: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, t := range triads {
		if _, err := fmt.Fprintf(w, "%s,%s,%s\n", t.Arms[0], t.Arms[1], t.Arms[2]); err != nil {
			return fmt.Errorf("persist: WriteCoreTriads: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("persist: WriteCoreTriads: %w", err)
	}

	xlog.Default.Debug().Str("path", path).Int("count", len(triads)).Msg("wrote core triads")

	return nil
}

// ReadCoreTriads reads triads_core_<n>.txt. A missing file reads as an
// empty slice, not an error — enumeration may simply not have run yet.
// Duplicate lines are tolerated and returned as-is.
func ReadCoreTriads(dir string, n int) ([]*triad.Triad, error) {
	path := coreTriadsPath(dir, n)
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("persist: ReadCoreTriads: %w", err)
	}
	defer f.Close()

	var triads []*triad.Triad
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) != 3 {
			return nil, fmt.Errorf("persist: ReadCoreTriads: %q: %w", line, ErrMalformedLine)
		}
		t, err := triad.Parse(parts[0], parts[1], parts[2])
		if err != nil {
			return nil, fmt.Errorf("persist: ReadCoreTriads: %w", err)
		}
		triads = append(triads, t)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("persist: ReadCoreTriads: %w", err)
	}

	xlog.Default.Debug().Str("path", path).Int("count", len(triads)).Msg("read core triads")

	return triads, nil
}

// AppendPolyResult appends one YES/NO-prefixed line to poly_<name>_<n>.txt,
// creating the file if necessary.
func AppendPolyResult(dir, name string, n int, t *triad.Triad, exists bool) error {
	path := polyResultsPath(dir, name, n)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("persist: AppendPolyResult: %w", err)
	}
	defer f.Close()

	prefix := "NO"
	if exists {
		prefix = "YES"
	}
	if _, err := fmt.Fprintf(f, "%s %s,%s,%s\n", prefix, t.Arms[0], t.Arms[1], t.Arms[2]); err != nil {
		return fmt.Errorf("persist: AppendPolyResult: %w", err)
	}

	xlog.Default.Debug().Str("path", path).Bool("exists", exists).Msg("appended polymorphism result")

	return nil
}

// ReadPolyResults reads poly_<name>_<n>.txt into a map keyed by the
// triad's canonical "arm1,arm2,arm3" form. Duplicate lines for the same
// triad are tolerated; the last line read wins.
func ReadPolyResults(dir, name string, n int) (map[string]bool, error) {
	path := polyResultsPath(dir, name, n)
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return map[string]bool{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("persist: ReadPolyResults: %w", err)
	}
	defer f.Close()

	results := make(map[string]bool)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, " ", 2)
		if len(fields) != 2 {
			return nil, fmt.Errorf("persist: ReadPolyResults: %q: %w", line, ErrMalformedLine)
		}
		switch fields[0] {
		case "YES":
			results[fields[1]] = true
		case "NO":
			results[fields[1]] = false
		default:
			return nil, fmt.Errorf("persist: ReadPolyResults: %q: %w", line, ErrMalformedLine)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("persist: ReadPolyResults: %w", err)
	}

	return results, nil
}

// MigrateLegacy scans dir for files outside the canonical
// triads_core_<n>.txt/poly_<name>_<n>.txt shape whose lines are
// comma-joined binary-string triples, and folds their triads into the
// canonical triads_core_<n>.txt files (grouped by non-root vertex count).
// The legacy file itself is left untouched — migration is additive, never
// destructive.
func MigrateLegacy(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("persist: MigrateLegacy: %w", err)
	}

	byN := make(map[int][]*triad.Triad)
	for _, e := range entries {
		if e.IsDir() || isCanonicalName(e.Name()) {
			continue
		}
		triads, ok := parseLegacyFile(filepath.Join(dir, e.Name()))
		if !ok {
			continue
		}
		for _, t := range triads {
			byN[t.NonRootVertices()] = append(byN[t.NonRootVertices()], t)
		}
		xlog.Default.Debug().Str("file", e.Name()).Int("count", len(triads)).Msg("migrated legacy triad file")
	}

	for n, triads := range byN {
		existing, err := ReadCoreTriads(dir, n)
		if err != nil {
			return err
		}
		if err := WriteCoreTriads(dir, n, append(existing, triads...)); err != nil {
			return err
		}
	}

	return nil
}

func isCanonicalName(name string) bool {
	return strings.HasPrefix(name, "triads_core_") || strings.HasPrefix(name, "poly_")
}

// parseLegacyFile reports ok == false for anything that isn't entirely
// comma-joined binary-string triples, so MigrateLegacy skips unrelated
// files in the data directory rather than misinterpreting them.
func parseLegacyFile(path string) (triads []*triad.Triad, ok bool) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	any := false
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) != 3 {
			return nil, false
		}
		t, err := triad.Parse(parts[0], parts[1], parts[2])
		if err != nil {
			return nil, false
		}
		triads = append(triads, t)
		any = true
	}
	if sc.Err() != nil || !any {
		return nil, false
	}

	return triads, true
}
