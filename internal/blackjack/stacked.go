package blackjack

import (
	"math/rand/v2"
	"slices"
)

// stackedSource выдает индексы заранее заданных карт по порядку,
// после чего переходит на обычный генератор
type stackedSource struct {
	deck     *Deck
	order    []Card
	fallback Source
}

func (s *stackedSource) IntN(n int) int {
	for len(s.order) > 0 {
		next := s.order[0]
		s.order = s.order[1:]
		if i := s.deck.index(next); i >= 0 {
			return i
		}
	}
	return s.fallback.IntN(n)
}

// NewStackedDeck создает полную колоду, из которой сначала раздаются
// указанные карты в указанном порядке. Карты, которых уже нет в колоде, пропускаются.
// Нужна для тестов и воспроизведения раздач
func NewStackedDeck(order ...Card) *Deck {
	src := &stackedSource{
		order:    slices.Clone(order),
		fallback: rand.New(rand.NewPCG(1, 2)),
	}
	d := NewDeck(src)
	src.deck = d
	return d
}
