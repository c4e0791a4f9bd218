package content

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"fiftytwo-server/internal/domain"
	"fiftytwo-server/internal/tags"
)

type eventFile struct {
	Events []eventDTO `yaml:"events"`
}

type eventDTO struct {
	ID      string      `yaml:"id"`
	Title   string      `yaml:"title"`
	Body    string      `yaml:"body"`
	Weight  int         `yaml:"weight"`
	Choices []choiceDTO `yaml:"choices"`
}

type choiceDTO struct {
	Text        string         `yaml:"text"`
	Requirement requirementDTO `yaml:"requirement"`
	Outcome     outcomeDTO     `yaml:"outcome"`
}

type requirementDTO struct {
	Type      string `yaml:"type"`
	Tag       string `yaml:"tag"`
	Threshold int    `yaml:"threshold"`
	Trinket   string `yaml:"trinket"`
}

type outcomeDTO struct {
	ChipsDelta  int `yaml:"chipsDelta"`
	SanityDelta int `yaml:"sanityDelta"`

	Tag      string `yaml:"tag"`
	TagCount int    `yaml:"tagCount"`
	Strategy string `yaml:"strategy"`

	TrinketKey string `yaml:"trinketKey"`

	NextEnemyHPPercent int `yaml:"nextEnemyHpPercent"`

	ResultText string `yaml:"resultText"`
}

func (l *Library) loadEvents(path string) error {
	raw, err := dataFS.ReadFile(path)
	if err != nil {
		return &LoadError{File: path, Err: err}
	}
	var file eventFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return &LoadError{File: path, Err: err}
	}
	if len(file.Events) == 0 {
		return &LoadError{File: path, Err: fmt.Errorf("no events defined")}
	}

	seen := make(map[string]bool)
	for _, dto := range file.Events {
		ev, err := dto.toEvent(l)
		if err != nil {
			return &LoadError{File: path, Node: dto.ID, Err: err}
		}
		if seen[ev.ID] {
			return &LoadError{File: path, Node: ev.ID, Err: fmt.Errorf("duplicate event id")}
		}
		seen[ev.ID] = true
		l.Events = append(l.Events, ev)
	}
	return nil
}

func (d eventDTO) toEvent(l *Library) (*domain.NarrativeEvent, error) {
	if len(d.Choices) != domain.ChoicesPerEvent {
		return nil, fmt.Errorf("event must have exactly %d choices, got %d",
			domain.ChoicesPerEvent, len(d.Choices))
	}
	weight := d.Weight
	if weight <= 0 {
		weight = 1
	}
	ev := &domain.NarrativeEvent{
		ID:     d.ID,
		Title:  d.Title,
		Body:   d.Body,
		Weight: weight,
	}
	for i, c := range d.Choices {
		choice, err := c.toChoice(l)
		if err != nil {
			return nil, fmt.Errorf("choice %d: %w", i, err)
		}
		ev.Choices[i] = choice
	}
	if err := ev.Validate(); err != nil {
		return nil, err
	}
	return ev, nil
}

func (d choiceDTO) toChoice(l *Library) (domain.EventChoice, error) {
	var out domain.EventChoice
	out.Text = d.Text

	reqType, err := domain.ParseRequirementType(orDefault(d.Requirement.Type, "NONE"))
	if err != nil {
		return out, err
	}
	out.Requirement = domain.ChoiceRequirement{
		Type:      reqType,
		Threshold: d.Requirement.Threshold,
		Trinket:   d.Requirement.Trinket,
	}
	switch reqType {
	case domain.RequireTagCount:
		kind, err := tags.Parse(d.Requirement.Tag)
		if err != nil {
			return out, fmt.Errorf("TAG_COUNT requirement: %w", err)
		}
		out.Requirement.Tag = kind
		if d.Requirement.Threshold <= 0 {
			return out, fmt.Errorf("TAG_COUNT requirement needs a positive threshold")
		}
	case domain.RequireTrinket:
		if d.Requirement.Trinket == "" {
			return out, fmt.Errorf("TRINKET requirement needs a trinket key")
		}
		if _, ok := l.trinketByID[d.Requirement.Trinket]; !ok {
			return out, fmt.Errorf("TRINKET requirement references unknown trinket %q", d.Requirement.Trinket)
		}
	case domain.RequireSanityThreshold, domain.RequireChipsThreshold, domain.RequireHPThreshold:
		if d.Requirement.Threshold <= 0 {
			return out, fmt.Errorf("%s requirement needs a positive threshold", reqType)
		}
	}

	out.Outcome = domain.ChoiceOutcome{
		ChipsDelta:         d.Outcome.ChipsDelta,
		SanityDelta:        d.Outcome.SanityDelta,
		TagCount:           d.Outcome.TagCount,
		TrinketKey:         d.Outcome.TrinketKey,
		NextEnemyHPPercent: d.Outcome.NextEnemyHPPercent,
		ResultText:         d.Outcome.ResultText,
	}
	if d.Outcome.Tag != "" {
		kind, err := tags.Parse(d.Outcome.Tag)
		if err != nil {
			return out, fmt.Errorf("outcome: %w", err)
		}
		out.Outcome.Tag = kind
		out.Outcome.HasTag = true
		strategy, err := domain.ParseTagStrategy(orDefault(d.Outcome.Strategy, "RANDOM_CARD"))
		if err != nil {
			return out, err
		}
		out.Outcome.Strategy = strategy
		if out.Outcome.TagCount <= 0 {
			out.Outcome.TagCount = 1
		}
	}
	if d.Outcome.TrinketKey != "" {
		if _, ok := l.trinketByID[d.Outcome.TrinketKey]; !ok {
			return out, fmt.Errorf("outcome references unknown trinket %q", d.Outcome.TrinketKey)
		}
	}
	if d.Outcome.NextEnemyHPPercent < 0 {
		return out, fmt.Errorf("nextEnemyHpPercent cannot be negative")
	}
	if out.Outcome.ResultText == "" {
		return out, fmt.Errorf("outcome resultText is required")
	}
	return out, nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
