package distributions

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// header lines of the tabular environment: a text column followed by four
// display-math columns.
var preamble = []string{
	`\begin{center}`,
	`\small`,
	`\begin{tabular}{`,
	`c`,
	`>{$ \displaystyle}c<{$}`,
	`>{$ \displaystyle}c<{$}`,
	`>{$ \displaystyle}c<{$}`,
	`>{$ \displaystyle}c<{$}`,
	`}`,
	`Distribution & \text{Sample Space} & \varrho(x) & \mu & \sigma^2 \\`,
	`\toprule`,
}

var trailer = []string{`\bottomrule`, `\end{tabular}`, `\end{center}`}

// Render writes the table for names (sorted, duplicates kept as given) to w.
// Every name is validated before anything is written.
func Render(w io.Writer, names ...string) error {
	if len(names) == 0 {
		return ErrNoDistributions
	}
	selected := slices.Clone(names)
	slices.Sort(selected)

	entries := make([]Entry, len(selected))
	for i, name := range selected {
		e, err := Lookup(name)
		if err != nil {
			return err
		}
		entries[i] = e
	}

	var sb strings.Builder
	for _, l := range preamble {
		sb.WriteString(l + "\n")
	}
	for _, e := range entries {
		fmt.Fprintf(&sb, "%s & %s & %s & %s & %s \\\\\n", e.Name, e.Space, e.Density, e.Mean, e.Variance)
	}
	for _, l := range trailer {
		sb.WriteString(l + "\n")
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

// WriteFile renders the table to path, creating its parent directory.
func WriteFile(path string, names ...string) error {
	var buf bytes.Buffer
	if err := Render(&buf, names...); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("distributions: create output dir: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("distributions: write %s: %w", path, err)
	}

	return nil
}
