package storage

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fiftytwo-server/internal/stats"
)

const (
	MagicHeader string = `F2RN` // 4 байта
	Version1    uint32 = 1
)

// RunRecord - итог одного забега для архива
type RunRecord struct {
	Seed       int64
	FinishedAt int64 // Unix seconds
	Class      string
	Won        bool
	Act        int
	Stats      stats.Snapshot
}

// runFileHeader - точное представление заголовка файла в памяти.
// binary.Write пишет его целиком: только числа и массивы, без строк.
type runFileHeader struct {
	Magic      [4]byte
	Version    uint32
	Seed       int64
	FinishedAt int64
	Won        uint8
	Act        uint8
	ClassLen   uint8
	SourceLen  uint8 // Длина блока урона по источникам
}

// statsBlock - числовая часть статистики фиксированного размера
type statsBlock struct {
	CardsDrawn       int32
	TurnsPlayed      int32
	TurnsWon         int32
	TurnsLost        int32
	TurnsPushed      int32
	Blackjacks       int32
	Busts            int32
	CombatsWon       int32
	ChipsBet         int32
	ChipsWon         int32
	ChipsLost        int32
	ChipsDrained     int32
	Reshuffles       int32
	DamageDealtTotal int32
	HighestChips     int32
	HighestChipsTurn int32
	LowestChips      int32
	LowestChipsTurn  int32
	HighestBet       int32
	HighestBetTurn   int32
}

// RunArchive пишет итоги забегов на диск, по файлу на забег
type RunArchive struct {
	Dir string
}

func NewRunArchive(dir string) (*RunArchive, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create archive dir: %w", err)
	}
	return &RunArchive{Dir: dir}, nil
}

// Save записывает итог забега в новый файл архива
func (a *RunArchive) Save(rec RunRecord) (string, error) {
	name := fmt.Sprintf("run_%d_%d.f2run", rec.FinishedAt, rec.Seed)
	path := filepath.Join(a.Dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := writeBinary(f, rec); err != nil {
		return "", err
	}
	return path, nil
}

func writeBinary(w io.Writer, rec RunRecord) error {
	classBytes := []byte(rec.Class)
	if len(classBytes) > 255 {
		return fmt.Errorf("class name too long: %d", len(classBytes))
	}

	header := runFileHeader{
		Version:    Version1,
		Seed:       rec.Seed,
		FinishedAt: rec.FinishedAt,
		Act:        uint8(rec.Act),
		ClassLen:   uint8(len(classBytes)),
		SourceLen:  uint8(len(rec.Stats.DamageBySource)),
	}
	copy(header.Magic[:], MagicHeader)
	if rec.Won {
		header.Won = 1
	}

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := w.Write(classBytes); err != nil {
		return err
	}

	s := rec.Stats
	block := statsBlock{
		CardsDrawn:       int32(s.CardsDrawn),
		TurnsPlayed:      int32(s.TurnsPlayed),
		TurnsWon:         int32(s.TurnsWon),
		TurnsLost:        int32(s.TurnsLost),
		TurnsPushed:      int32(s.TurnsPushed),
		Blackjacks:       int32(s.Blackjacks),
		Busts:            int32(s.Busts),
		CombatsWon:       int32(s.CombatsWon),
		ChipsBet:         int32(s.ChipsBet),
		ChipsWon:         int32(s.ChipsWon),
		ChipsLost:        int32(s.ChipsLost),
		ChipsDrained:     int32(s.ChipsDrained),
		Reshuffles:       int32(s.Reshuffles),
		DamageDealtTotal: int32(s.DamageDealtTotal),
		HighestChips:     int32(s.HighestChips.Value),
		HighestChipsTurn: int32(s.HighestChips.Turn),
		LowestChips:      int32(s.LowestChips.Value),
		LowestChipsTurn:  int32(s.LowestChips.Turn),
		HighestBet:       int32(s.HighestBet.Value),
		HighestBetTurn:   int32(s.HighestBet.Turn),
	}
	if err := binary.Write(w, binary.LittleEndian, &block); err != nil {
		return err
	}

	// Урон по источникам - отдельным блоком, длина заявлена в заголовке
	for _, v := range s.DamageBySource {
		if err := binary.Write(w, binary.LittleEndian, int32(v)); err != nil {
			return err
		}
	}
	return nil
}
