package blackjack

import (
	"fmt"
	"strings"
)

// Suit масть карты
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

var suits = [...]Suit{Spades, Hearts, Diamonds, Clubs}

func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	}
	return "?"
}

// Rank достоинство карты. Числовые ранги совпадают со своим значением
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	if r >= Two && r <= Ten {
		return fmt.Sprintf("%d", int(r))
	}
	return "?"
}

// value очки карты без учета туза. Картинки стоят 10
func (r Rank) value() int {
	if r >= Jack && r <= King {
		return 10
	}
	return int(r)
}

// Card карта. После создания меняется только FaceUp и только один раз, при вскрытии
type Card struct {
	Rank   Rank
	Suit   Suit
	FaceUp bool
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Same сравнивает карты по рангу и масти, без учета FaceUp
func (c Card) Same(other Card) bool {
	return c.Rank == other.Rank && c.Suit == other.Suit
}

// ParseCard разбирает запись вида "As", "10h", "Td", "7c"
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}

	rankPart, suitPart := strings.ToUpper(s[:len(s)-1]), strings.ToLower(s[len(s)-1:])

	var rank Rank
	switch rankPart {
	case "A":
		rank = Ace
	case "K":
		rank = King
	case "Q":
		rank = Queen
	case "J":
		rank = Jack
	case "T", "10":
		rank = Ten
	default:
		if len(rankPart) != 1 || rankPart[0] < '2' || rankPart[0] > '9' {
			return Card{}, fmt.Errorf("invalid rank in card %q", s)
		}
		rank = Rank(rankPart[0] - '0')
	}

	var suit Suit
	switch suitPart {
	case "s":
		suit = Spades
	case "h":
		suit = Hearts
	case "d":
		suit = Diamonds
	case "c":
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("invalid suit in card %q", s)
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// MustParseCards разбирает список карт через пробел и паникует на ошибке.
// Используется в тестах и для подготовленных колод
func MustParseCards(s string) []Card {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			panic(err)
		}
		cards = append(cards, c)
	}
	return cards
}
