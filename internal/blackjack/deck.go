package blackjack

import (
	"math/rand/v2"
	"slices"
)

// deckSize количество карт в полной колоде
const deckSize = 52

// Source источник случайных индексов. *rand.Rand удовлетворяет интерфейсу
type Source interface {
	IntN(n int) int
}

// Deck колода нерозданных карт. Карты не тасуются заранее:
// каждая раздача берет случайный индекс и удаляет карту из колоды
type Deck struct {
	cards []Card
	src   Source
}

// NewDeck создает полную колоду из 52 карт.
// Если src == nil, используется генератор с собственным случайным сидом
func NewDeck(src Source) *Deck {
	if src == nil {
		src = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	d := &Deck{
		cards: make([]Card, 0, deckSize),
		src:   src,
	}
	d.fill()
	return d
}

func (d *Deck) fill() {
	d.cards = d.cards[:0]
	for _, s := range suits {
		for r := Two; r <= Ace; r++ {
			d.cards = append(d.cards, Card{Rank: r, Suit: s})
		}
	}
}

// Draw вынимает случайную карту из колоды. Карта возвращается рубашкой вверх
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrDeckExhausted
	}

	i := d.src.IntN(len(d.cards))
	card := d.cards[i]
	d.cards = slices.Delete(d.cards, i, i+1)

	return card, nil
}

// Reset возвращает колоду к полным 52 картам
func (d *Deck) Reset() {
	d.fill()
}

// Len количество оставшихся карт
func (d *Deck) Len() int {
	return len(d.cards)
}

// Contains проверяет, лежит ли карта (ранг и масть) в колоде
func (d *Deck) Contains(c Card) bool {
	return d.index(c) >= 0
}

func (d *Deck) index(c Card) int {
	return slices.IndexFunc(d.cards, c.Same)
}
