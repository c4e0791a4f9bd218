package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"fiftytwo-server/internal/stats"
)

func sampleRecord(finishedAt int64) RunRecord {
	snap := stats.Snapshot{
		CardsDrawn:       42,
		TurnsPlayed:      15,
		TurnsWon:         8,
		TurnsLost:        5,
		TurnsPushed:      2,
		Blackjacks:       1,
		Busts:            3,
		CombatsWon:       4,
		ChipsBet:         120,
		ChipsWon:         150,
		ChipsLost:        90,
		ChipsDrained:     12,
		Reshuffles:       2,
		DamageDealtTotal: 310,
		HighestChips:     stats.Peak{Value: 210, Turn: 9},
		LowestChips:      stats.Peak{Value: 35, Turn: 13},
		HighestBet:       stats.Peak{Value: 40, Turn: 8},
	}
	snap.DamageBySource[0] = 250
	snap.DamageBySource[1] = 20
	snap.DamageBySource[4] = 40

	return RunRecord{
		Seed:       12345,
		FinishedAt: finishedAt,
		Class:      "DEGENERATE",
		Won:        true,
		Act:        2,
		Stats:      snap,
	}
}

func TestArchiveRoundTrip(t *testing.T) {
	archive, err := NewRunArchive(t.TempDir())
	if err != nil {
		t.Fatalf("NewRunArchive: %v", err)
	}

	rec := sampleRecord(1700000000)
	path, err := archive.Save(rec)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := archive.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got.Seed != rec.Seed || got.FinishedAt != rec.FinishedAt {
		t.Errorf("identity fields: got %d/%d, want %d/%d", got.Seed, got.FinishedAt, rec.Seed, rec.FinishedAt)
	}
	if got.Class != rec.Class {
		t.Errorf("Class = %q, want %q", got.Class, rec.Class)
	}
	if got.Won != rec.Won || got.Act != rec.Act {
		t.Errorf("Won/Act = %v/%d, want %v/%d", got.Won, got.Act, rec.Won, rec.Act)
	}
	if !reflect.DeepEqual(got.Stats, rec.Stats) {
		t.Errorf("stats mismatch:\n got %+v\nwant %+v", got.Stats, rec.Stats)
	}
}

func TestArchiveListOrder(t *testing.T) {
	archive, err := NewRunArchive(t.TempDir())
	if err != nil {
		t.Fatalf("NewRunArchive: %v", err)
	}

	for _, ts := range []int64{1700000100, 1700000300, 1700000200} {
		if _, err := archive.Save(sampleRecord(ts)); err != nil {
			t.Fatalf("Save(%d): %v", ts, err)
		}
	}

	runs, err := archive.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("List returned %d runs, want 3", len(runs))
	}
	// Свежие первыми
	for i := 1; i < len(runs); i++ {
		if runs[i-1].FinishedAt < runs[i].FinishedAt {
			t.Errorf("runs out of order: %d before %d", runs[i-1].FinishedAt, runs[i].FinishedAt)
		}
	}
}

func TestArchiveSkipsCorrupt(t *testing.T) {
	dir := t.TempDir()
	archive, err := NewRunArchive(dir)
	if err != nil {
		t.Fatalf("NewRunArchive: %v", err)
	}
	if _, err := archive.Save(sampleRecord(1700000000)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "run_1_1.f2run"), []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}

	runs, err := archive.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("List returned %d runs, corrupt file must be skipped", len(runs))
	}
}

func TestLoadRejectsBadMagic(t *testing.T) {
	dir := t.TempDir()
	archive, _ := NewRunArchive(dir)

	path := filepath.Join(dir, "bad.f2run")
	// Достаточно байт на заголовок, но не наша сигнатура
	if err := os.WriteFile(path, make([]byte, 64), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := archive.Load(path); err == nil {
		t.Error("Load must reject a file with the wrong magic")
	}
}
