package api

import (
	"errors"
	"fmt"
)

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p BetPayload) Validate() error {
	if p.Amount <= 0 {
		return errors.New("bet amount must be positive")
	}
	return nil
}

func (p ClassPayload) Validate() error {
	if p.Class == "" {
		return errors.New("class is required")
	}
	return nil
}

func (p TargetPayload) Validate() error {
	if p.CardID < 0 || p.CardID > 51 {
		return fmt.Errorf("cardId %d out of range", p.CardID)
	}
	return nil
}

func (p ChoicePayload) Validate() error {
	if p.Index < 0 || p.Index > 2 {
		return fmt.Errorf("choice index %d out of range", p.Index)
	}
	return nil
}

func (p SlotPayload) Validate() error {
	if p.Slot < 0 || p.Slot > 5 {
		return fmt.Errorf("trinket slot %d out of range", p.Slot)
	}
	return nil
}
