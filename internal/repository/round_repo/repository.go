package round_repo

import (
	"blackjack_backend/internal/model"
	"sync"
)

// Repo хранит активные раунды в памяти процесса. Раунд живет от ставки до reset
// и при рестарте сервера теряется вместе с нерассчитанной ставкой
type Repo struct {
	mtx    sync.Mutex
	rounds map[int]*model.RoundSession
	busy   map[int]struct{}
}

// NewRoundRepository Конструктор пустого хранилища
func NewRoundRepository() *Repo {
	return &Repo{
		rounds: make(map[int]*model.RoundSession),
		busy:   make(map[int]struct{}),
	}
}

// Get активная сессия игрока
func (r *Repo) Get(playerID int) (*model.RoundSession, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	s, ok := r.rounds[playerID]
	return s, ok
}

// Save сохраняет сессию, заменяя предыдущую сессию этого игрока
func (r *Repo) Save(session *model.RoundSession) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.rounds[session.PlayerID] = session
}

// Acquire занимает слот действия игрока. Возвращает release, который освобождает слот;
// повторный вызов release ничего не делает
func (r *Repo) Acquire(playerID int) (func(), bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, taken := r.busy[playerID]; taken {
		return nil, false
	}
	r.busy[playerID] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mtx.Lock()
			delete(r.busy, playerID)
			r.mtx.Unlock()
		})
	}, true
}
