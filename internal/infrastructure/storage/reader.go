package storage

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"fiftytwo-server/internal/stats"
)

// Load читает один файл архива
func (a *RunArchive) Load(path string) (*RunRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readBinary(f)
}

// List загружает все забеги архива, свежие первыми. Испорченные файлы
// пропускаются.
func (a *RunArchive) List() ([]*RunRecord, error) {
	paths, err := filepath.Glob(filepath.Join(a.Dir, "run_*.f2run"))
	if err != nil {
		return nil, err
	}
	out := make([]*RunRecord, 0, len(paths))
	for _, p := range paths {
		rec, err := a.Load(p)
		if err != nil {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FinishedAt > out[j].FinishedAt })
	return out, nil
}

func readBinary(r io.Reader) (*RunRecord, error) {
	var header runFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	if string(header.Magic[:]) != MagicHeader {
		return nil, fmt.Errorf("invalid magic")
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("unsupported version: %d (expected %d)", header.Version, Version1)
	}

	rec := &RunRecord{
		Seed:       header.Seed,
		FinishedAt: header.FinishedAt,
		Won:        header.Won == 1,
		Act:        int(header.Act),
	}

	classBuf := make([]byte, header.ClassLen)
	if _, err := io.ReadFull(r, classBuf); err != nil {
		return nil, fmt.Errorf("failed to read class: %w", err)
	}
	rec.Class = string(classBuf)

	var block statsBlock
	if err := binary.Read(r, binary.LittleEndian, &block); err != nil {
		return nil, fmt.Errorf("failed to read stats: %w", err)
	}
	rec.Stats = stats.Snapshot{
		CardsDrawn:       int(block.CardsDrawn),
		TurnsPlayed:      int(block.TurnsPlayed),
		TurnsWon:         int(block.TurnsWon),
		TurnsLost:        int(block.TurnsLost),
		TurnsPushed:      int(block.TurnsPushed),
		Blackjacks:       int(block.Blackjacks),
		Busts:            int(block.Busts),
		CombatsWon:       int(block.CombatsWon),
		ChipsBet:         int(block.ChipsBet),
		ChipsWon:         int(block.ChipsWon),
		ChipsLost:        int(block.ChipsLost),
		ChipsDrained:     int(block.ChipsDrained),
		Reshuffles:       int(block.Reshuffles),
		DamageDealtTotal: int(block.DamageDealtTotal),
		HighestChips:     stats.Peak{Value: int(block.HighestChips), Turn: int(block.HighestChipsTurn)},
		LowestChips:      stats.Peak{Value: int(block.LowestChips), Turn: int(block.LowestChipsTurn)},
		HighestBet:       stats.Peak{Value: int(block.HighestBet), Turn: int(block.HighestBetTurn)},
	}

	// Блок урона по источникам: читаем заявленную длину, лишнее
	// от будущих версий отбрасываем
	for i := 0; i < int(header.SourceLen); i++ {
		var v int32
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return nil, err
		}
		if i < len(rec.Stats.DamageBySource) {
			rec.Stats.DamageBySource[i] = int(v)
		}
	}
	return rec, nil
}
