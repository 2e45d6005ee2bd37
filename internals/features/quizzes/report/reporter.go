// Package report menulis ringkasan hasil kuis ke file teks append-only.
// Satu writer, handle dibuka sekali saat proses start; tanpa rotasi.
package report

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

const timeLayout = "2006-01-02 15:04:05"

// Entry satu blok hasil yang ditulis ke file.
type Entry struct {
	Username    string
	QuizTitle   string
	Score       int
	Total       int
	Percentage  int
	Personality string
}

// Reporter pemilik tunggal file hasil. Append aman dipanggil dari banyak
// request sekaligus; urutan blok mengikuti urutan lock.
type Reporter struct {
	mu sync.Mutex
	f  *os.File
}

// Open memangkas/membuat file dan menulis header sekali untuk umur file ini.
func Open(path string) (*Reporter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}

	header := fmt.Sprintf("=== QUIZ RESULTS ===\nStarted: %s\n\n", time.Now().Format(timeLayout))
	if _, err := f.WriteString(header); err != nil {
		_ = f.Close()
		return nil, err
	}
	return &Reporter{f: f}, nil
}

// Append menulis satu blok hasil dan langsung flush ke disk.
func (r *Reporter) Append(e Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var b strings.Builder
	fmt.Fprintf(&b, "User: %s\n", e.Username)
	fmt.Fprintf(&b, "Quiz: %s\n", e.QuizTitle)
	fmt.Fprintf(&b, "Date: %s\n", time.Now().Format(timeLayout))
	fmt.Fprintf(&b, "Score: %d of %d (%d%%)\n", e.Score, e.Total, e.Percentage)
	if e.Personality != "" {
		fmt.Fprintf(&b, "Personality: %s\n", e.Personality)
	}
	b.WriteString(strings.Repeat("-", 40) + "\n")

	if _, err := r.f.WriteString(b.String()); err != nil {
		return err
	}
	return r.f.Sync()
}

// Close menutup handle file.
func (r *Reporter) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.f.Close()
}

/* ==========================
   Default reporter (dipakai controller)
========================== */

var defaultReporter *Reporter

// Init menyiapkan reporter default; dipanggil sekali dari main.
func Init(path string) error {
	r, err := Open(path)
	if err != nil {
		return err
	}
	defaultReporter = r
	return nil
}

// Append menulis ke reporter default; no-op kalau Init belum dipanggil.
func Append(e Entry) error {
	if defaultReporter == nil {
		return nil
	}
	return defaultReporter.Append(e)
}

// Close menutup reporter default.
func Close() error {
	if defaultReporter == nil {
		return nil
	}
	return defaultReporter.Close()
}
