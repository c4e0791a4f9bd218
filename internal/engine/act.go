package engine

import (
	"math/rand"

	"fiftytwo-server/internal/content"
	"fiftytwo-server/internal/domain"
)

// lastAct - номер последнего этажа. Победа над его боссом закрывает забег.
const lastAct = 3

// actLayout - порядок узлов каждого этажа. Между боями две нарративных
// остановки, этаж закрывает босс.
var actLayout = []domain.EncounterType{
	domain.EncounterNormal,
	domain.EncounterNormal,
	domain.EncounterEvent,
	domain.EncounterNormal,
	domain.EncounterElite,
	domain.EncounterEvent,
	domain.EncounterBoss,
}

// actNode - один узел этажа: бой с конкретным врагом или событие
type actNode struct {
	Type  domain.EncounterType
	Enemy *domain.EnemyTemplate
}

// actRun - прогресс по этажу. Враги выбираются при построении этажа,
// чтобы состав был зафиксирован сидом забега.
type actRun struct {
	Act   int
	Nodes []actNode
	Index int // Номер текущего узла, с нуля; -1 до первого Next
}

func newActRun(act int, lib *content.Library, rng *rand.Rand) *actRun {
	run := &actRun{Act: act, Index: -1}
	used := map[string]bool{}
	for _, t := range actLayout {
		if t == domain.EncounterEvent {
			run.Nodes = append(run.Nodes, actNode{Type: t})
			continue
		}
		run.Nodes = append(run.Nodes, actNode{Type: t, Enemy: pickEnemy(lib, rng, t, used)})
	}
	return run
}

// pickEnemy выбирает врага нужного тира, избегая повторов внутри этажа,
// пока пул позволяет. Пустой тир подменяется обычными врагами.
func pickEnemy(lib *content.Library, rng *rand.Rand, tier domain.EncounterType, used map[string]bool) *domain.EnemyTemplate {
	pool := lib.EnemiesByTier(tier)
	if len(pool) == 0 {
		pool = lib.EnemiesByTier(domain.EncounterNormal)
	}
	fresh := make([]*domain.EnemyTemplate, 0, len(pool))
	for _, t := range pool {
		if !used[t.ID] {
			fresh = append(fresh, t)
		}
	}
	if len(fresh) == 0 {
		fresh = pool
	}
	t := fresh[rng.Intn(len(fresh))]
	used[t.ID] = true
	return t
}

// Next возвращает следующий узел или nil, когда этаж пройден
func (r *actRun) Next() *actNode {
	r.Index++
	if r.Index >= len(r.Nodes) {
		return nil
	}
	return &r.Nodes[r.Index]
}

// Current - узел, на котором стоит забег
func (r *actRun) Current() *actNode {
	if r.Index < 0 || r.Index >= len(r.Nodes) {
		return nil
	}
	return &r.Nodes[r.Index]
}

// Peek подсматривает тип следующего узла для интерфейса
func (r *actRun) Peek() (domain.EncounterType, bool) {
	if r.Index+1 >= len(r.Nodes) {
		return 0, false
	}
	return r.Nodes[r.Index+1].Type, true
}
