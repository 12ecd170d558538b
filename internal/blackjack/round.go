package blackjack

import "fmt"

// Round раунд одного игрока: колода, две руки, ставка и текущее состояние.
// Раунд не потокобезопасен, им владеет ровно один игрок
type Round struct {
	state  State
	deck   *Deck
	player Hand
	dealer Hand
	wager  *Wager
	err    error
}

// NewRound создает раунд в состоянии Betting. Если deck == nil, создается новая полная колода
func NewRound(deck *Deck) *Round {
	if deck == nil {
		deck = NewDeck(nil)
	}
	return &Round{
		state: Betting,
		deck:  deck,
	}
}

func (r *Round) State() State {
	return r.state
}

// Err причина, по которой раунд прерван (только в Abandoned)
func (r *Round) Err() error {
	return r.err
}

// Player копия руки игрока
func (r *Round) Player() Hand {
	return append(Hand(nil), r.player...)
}

// Dealer копия руки дилера, закрытая карта остается закрытой
func (r *Round) Dealer() Hand {
	return append(Hand(nil), r.dealer...)
}

func (r *Round) PlayerScore() int {
	return r.player.Score()
}

// DealerScore очки дилера по открытым картам
func (r *Round) DealerScore() int {
	return r.dealer.Score()
}

// Wager текущая ставка. ok == false, если ставки нет
func (r *Round) Wager() (Wager, bool) {
	if r.wager == nil {
		return Wager{}, false
	}
	return *r.wager, true
}

// DeckLen количество карт, оставшихся в колоде
func (r *Round) DeckLen() int {
	return r.deck.Len()
}

// Controls какие действия сейчас доступны игроку
func (r *Round) Controls() Controls {
	return Controls{
		Bet:   r.state.Allows(ActionBet),
		Hit:   r.state.Allows(ActionHit) && r.player.Score() < BlackjackScore,
		Stand: r.state.Allows(ActionStand),
		Reset: r.state.Allows(ActionReset),
	}
}

// PlaceBet принимает ставку и сразу раздает начальные карты.
// Списание с баланса делает вызывающий код до этого вызова
func (r *Round) PlaceBet(amount int) error {
	if err := r.check(ActionBet); err != nil {
		return err
	}
	if amount <= 0 {
		return ErrInvalidBet
	}

	r.wager = &Wager{Amount: amount, Outcome: Pending}
	r.apply(ActionBet)

	return r.deal()
}

// deal начальная раздача: игроку, дилеру закрытую, игроку, дилеру открытую
func (r *Round) deal() error {
	steps := []struct {
		hand   *Hand
		faceUp bool
	}{
		{&r.player, true},
		{&r.dealer, false},
		{&r.player, true},
		{&r.dealer, true},
	}
	for _, st := range steps {
		if err := r.draw(st.hand, st.faceUp); err != nil {
			return err
		}
	}

	r.apply(ActionDeal)
	return nil
}

// Hit добор карты игроку. При переборе раунд сразу завершается проигрышем,
// закрытая карта дилера вскрывается для записи в журнал
func (r *Round) Hit() error {
	if err := r.check(ActionHit); err != nil {
		return err
	}
	if r.player.Score() >= BlackjackScore {
		return ErrHitDisabled
	}

	if err := r.draw(&r.player, true); err != nil {
		return err
	}
	r.apply(ActionHit)

	if r.player.Busted() {
		r.revealHole()
		r.wager.Outcome = Lost
		r.apply(ActionBust)
	}

	return nil
}

// Stand игрок заканчивает ход: вскрытие закрытой карты, ход дилера и расчет итога
func (r *Round) Stand() error {
	if err := r.check(ActionStand); err != nil {
		return err
	}

	r.revealHole()
	r.apply(ActionStand)

	return r.playDealer()
}

func (r *Round) playDealer() error {
	for DealerShouldHit(r.dealer.Score()) {
		if err := r.draw(&r.dealer, true); err != nil {
			return err
		}
		r.apply(ActionDealerDraw)
	}

	r.wager.Outcome = DetermineOutcome(r.player.Score(), r.dealer.Score())
	r.apply(ActionSettle)

	return nil
}

// Reset возвращает раунд в Betting: полная колода, пустые руки, ставки нет
func (r *Round) Reset() error {
	if err := r.check(ActionReset); err != nil {
		return err
	}

	r.deck.Reset()
	r.player = nil
	r.dealer = nil
	r.wager = nil
	r.err = nil
	r.apply(ActionReset)

	return nil
}

// draw переносит одну карту из колоды в руку. Пустая колода прерывает раунд
func (r *Round) draw(hand *Hand, faceUp bool) error {
	card, err := r.deck.Draw()
	if err != nil {
		r.err = err
		r.apply(ActionAbandon)
		return err
	}
	card.FaceUp = faceUp
	*hand = append(*hand, card)
	return nil
}

func (r *Round) revealHole() {
	for i := range r.dealer {
		r.dealer[i].FaceUp = true
	}
}

func (r *Round) check(a Action) error {
	if !r.state.Allows(a) {
		return fmt.Errorf("%w: %s in %s", ErrInvalidAction, a, r.state)
	}
	return nil
}

func (r *Round) apply(a Action) {
	next, ok := r.state.Next(a)
	if !ok {
		panic(fmt.Sprintf("blackjack: transition %s from %s is not in the table", a, r.state))
	}
	r.state = next
}
