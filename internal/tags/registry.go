package tags

import "sort"

// Meta - глобальные метаданные карты помимо тегов
type Meta struct {
	Rarity int
	Flavor string
}

// Registry хранит теги и метаданные всех 52 карт шуза. Записи
// материализуются лениво: карта без тегов не занимает памяти.
// Registry не потокобезопасен и принадлежит горутине движка.
type Registry struct {
	byCard map[int]map[Kind]struct{}
	meta   map[int]Meta
}

// NewRegistry создает пустой реестр
func NewRegistry() *Registry {
	return &Registry{
		byCard: make(map[int]map[Kind]struct{}),
		meta:   make(map[int]Meta),
	}
}

// SetMeta записывает редкость и флейвор карты
func (r *Registry) SetMeta(cardID int, m Meta) {
	r.meta[cardID] = m
}

// MetaOf возвращает метаданные карты (нулевые, если не задавались)
func (r *Registry) MetaOf(cardID int) Meta {
	return r.meta[cardID]
}

// Add помечает карту тегом. Повторная пометка тем же тегом идемпотентна.
// Возвращает true, если тег действительно добавлен.
func (r *Registry) Add(cardID int, k Kind) bool {
	set, ok := r.byCard[cardID]
	if !ok {
		set = make(map[Kind]struct{}, 2)
		r.byCard[cardID] = set
	}
	if _, exists := set[k]; exists {
		return false
	}
	set[k] = struct{}{}
	return true
}

// Remove снимает тег с карты
func (r *Registry) Remove(cardID int, k Kind) bool {
	set, ok := r.byCard[cardID]
	if !ok {
		return false
	}
	if _, exists := set[k]; !exists {
		return false
	}
	delete(set, k)
	if len(set) == 0 {
		delete(r.byCard, cardID)
	}
	return true
}

// Has проверяет наличие тега на карте
func (r *Registry) Has(cardID int, k Kind) bool {
	set, ok := r.byCard[cardID]
	if !ok {
		return false
	}
	_, exists := set[k]
	return exists
}

// IsDoubled реализует интерфейс источника тегов для подсчета очков руки
func (r *Registry) IsDoubled(cardID int) bool {
	return r.Has(cardID, Doubled)
}

// ClearDoubled снимает одноручный тег DOUBLED с карты
func (r *Registry) ClearDoubled(cardID int) bool {
	return r.Remove(cardID, Doubled)
}

// Tags возвращает теги карты в стабильном порядке
func (r *Registry) Tags(cardID int) []Kind {
	set, ok := r.byCard[cardID]
	if !ok {
		return nil
	}
	out := make([]Kind, 0, len(set))
	for k := Kind(0); k < kindMax; k++ {
		if _, exists := set[k]; exists {
			out = append(out, k)
		}
	}
	return out
}

// Count - сколько карт несут указанный тег
func (r *Registry) Count(k Kind) int {
	n := 0
	for _, set := range r.byCard {
		if _, exists := set[k]; exists {
			n++
		}
	}
	return n
}

// TaggedCards возвращает card_id всех карт с указанным тегом
func (r *Registry) TaggedCards(k Kind) []int {
	var out []int
	for id, set := range r.byCard {
		if _, exists := set[k]; exists {
			out = append(out, id)
		}
	}
	sort.Ints(out)
	return out
}

// ClearCard снимает все теги с карты
func (r *Registry) ClearCard(cardID int) {
	delete(r.byCard, cardID)
}

// ClearKind снимает указанный тег со всех карт
func (r *Registry) ClearKind(k Kind) {
	for id, set := range r.byCard {
		delete(set, k)
		if len(set) == 0 {
			delete(r.byCard, id)
		}
	}
}

// Reset опустошает реестр (новый забег)
func (r *Registry) Reset() {
	r.byCard = make(map[int]map[Kind]struct{})
	r.meta = make(map[int]Meta)
}
