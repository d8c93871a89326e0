// Package tabular provides flat string-keyed records parsed from CSV
// sources. It is the boundary between raw data files and the typed
// specification/resource loaders; everything downstream consumes Rows
// without caring where they came from.
package tabular

import "strings"

// Row is a single flat record keyed by column header.
type Row map[string]string

// Get returns the trimmed value for key, or "" when absent.
func (r Row) Get(key string) string {
	return strings.TrimSpace(r[key])
}

// GetOr returns the trimmed value for key, or fallback when absent or empty.
func (r Row) GetOr(key, fallback string) string {
	v := r.Get(key)
	if v == "" {
		return fallback
	}
	return v
}

// List splits a pipe-separated field into trimmed non-empty parts.
// Subject files use "|" to pack ordered lists into one CSV cell.
func (r Row) List(key string) []string {
	raw := r.Get(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, "|") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Bool reports whether the field holds a true-ish value ("TRUE"/"true").
func (r Row) Bool(key string) bool {
	v := r.Get(key)
	return v == "TRUE" || v == "true"
}
