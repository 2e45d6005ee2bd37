package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenWritesHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.txt")

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	text := string(content)

	if !strings.HasPrefix(text, "=== QUIZ RESULTS ===\n") {
		t.Errorf("header hilang, isi file:\n%s", text)
	}
	if !strings.Contains(text, "Started: ") {
		t.Errorf("baris Started hilang, isi file:\n%s", text)
	}
	if strings.Count(text, "=== QUIZ RESULTS ===") != 1 {
		t.Errorf("header harus muncul sekali, isi file:\n%s", text)
	}
}

func TestAppendWritesBlock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.txt")

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	err = r.Append(Entry{
		Username:    "anna",
		QuizTitle:   "Mathematics",
		Score:       2,
		Total:       3,
		Percentage:  66,
		Personality: "",
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	text := string(content)

	for _, want := range []string{
		"User: anna\n",
		"Quiz: Mathematics\n",
		"Date: ",
		"Score: 2 of 3 (66%)\n",
		strings.Repeat("-", 40) + "\n",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("blok hasil tanpa %q, isi file:\n%s", want, text)
		}
	}
	// Tanpa personality tidak ada barisnya.
	if strings.Contains(text, "Personality:") {
		t.Errorf("baris Personality tidak diminta tapi muncul:\n%s", text)
	}
}

func TestAppendWithPersonality(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.txt")

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	err = r.Append(Entry{
		Username:    "anna",
		QuizTitle:   "What kind of student are you?",
		Score:       9,
		Total:       10,
		Percentage:  90,
		Personality: "You are an energetic and active student!",
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(content), "Personality: You are an energetic and active student!\n") {
		t.Errorf("baris Personality hilang:\n%s", content)
	}
}

func TestAppendOrderPreserved(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.txt")

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	for _, name := range []string{"first", "second", "third"} {
		if err := r.Append(Entry{Username: name, QuizTitle: "Mathematics", Total: 3}); err != nil {
			t.Fatalf("Append(%s): %v", name, err)
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	text := string(content)

	first := strings.Index(text, "User: first\n")
	second := strings.Index(text, "User: second\n")
	third := strings.Index(text, "User: third\n")
	if first < 0 || second < 0 || third < 0 || !(first < second && second < third) {
		t.Errorf("urutan blok kacau (%d, %d, %d):\n%s", first, second, third, text)
	}
}

func TestOpenTruncatesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.txt")
	if err := os.WriteFile(path, []byte("isi lama yang harus hilang\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if strings.Contains(string(content), "isi lama") {
		t.Errorf("file tidak di-truncate:\n%s", content)
	}
}

func TestDefaultReporterNoInit(t *testing.T) {
	old := defaultReporter
	defaultReporter = nil
	defer func() { defaultReporter = old }()

	// Tanpa Init, Append dan Close harus no-op tanpa error.
	if err := Append(Entry{Username: "anna"}); err != nil {
		t.Errorf("Append tanpa Init: %v", err)
	}
	if err := Close(); err != nil {
		t.Errorf("Close tanpa Init: %v", err)
	}
}
