package diagnostics_test

import (
	"sync"
	"testing"

	"github.com/sammosampson/go-coff/internal/diagnostics"
)

func TestNewRecorder(t *testing.T) {
	r := diagnostics.New("main.hep")

	if r.UnitName() != "main.hep" {
		t.Errorf("UnitName() = %q, want %q", r.UnitName(), "main.hep")
	}
	if r.Phase() != "" {
		t.Errorf("Phase() = %q, want empty", r.Phase())
	}
	if r.Count() != 0 {
		t.Errorf("Count() = %d, want 0", r.Count())
	}
}

func TestRecorderPhases(t *testing.T) {
	r := diagnostics.New("main.hep")

	r.SetPhase("emitting .text")
	r.Info("pushed rbp")

	r.SetPhase("emitting symbols")
	r.Info("appended .file symbol")

	entries := r.Entries()
	if entries[0].Phase() != "emitting .text" {
		t.Errorf("entries[0].Phase() = %q", entries[0].Phase())
	}
	if entries[1].Phase() != "emitting symbols" {
		t.Errorf("entries[1].Phase() = %q", entries[1].Phase())
	}
}

func TestRecorderSeverities(t *testing.T) {
	r := diagnostics.New("main.hep")
	r.SetPhase("lowering")

	r.Error("unsupported register index")
	r.Warning("symbol table larger than expected")
	r.Info("emitted 12 instructions")
	r.Trace("resolved CallArgRegister{Index:0} to CX")

	if !r.HasErrors() {
		t.Error("HasErrors() = false, want true")
	}
	if r.Count() != 4 {
		t.Errorf("Count() = %d, want 4", r.Count())
	}

	entries := r.Entries()
	want := []string{
		diagnostics.SeverityError,
		diagnostics.SeverityWarning,
		diagnostics.SeverityInfo,
		diagnostics.SeverityTrace,
	}
	for i, sev := range want {
		if entries[i].Severity() != sev {
			t.Errorf("entries[%d].Severity() = %q, want %q", i, entries[i].Severity(), sev)
		}
	}
}

func TestRecorderHasErrorsFalseWhenClean(t *testing.T) {
	r := diagnostics.New("clean.hep")
	r.Warning("just a warning")

	if r.HasErrors() {
		t.Error("HasErrors() = true, want false")
	}
}

func TestRecorderEntriesReturnsCopy(t *testing.T) {
	r := diagnostics.New("main.hep")
	r.Info("original")

	entries := r.Entries()
	entries[0] = nil

	if r.Entries()[0] == nil {
		t.Error("Entries() must return a copy, not a reference to the internal slice")
	}
}

func TestRecorderConcurrentWrites(t *testing.T) {
	r := diagnostics.New("main.hep")

	var wg sync.WaitGroup
	const goroutines = 50
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			r.Trace("concurrent entry")
		}()
	}
	wg.Wait()

	if r.Count() != goroutines {
		t.Errorf("Count() = %d, want %d", r.Count(), goroutines)
	}
}

func TestEntryString(t *testing.T) {
	r := diagnostics.New("main.hep")
	r.SetPhase("emitting .text")
	r.Error("unsupported instruction ir.Unknown")

	entry := r.Entries()[0]
	want := "error [emitting .text]: unsupported instruction ir.Unknown"
	if entry.String() != want {
		t.Errorf("String() = %q, want %q", entry.String(), want)
	}
}
