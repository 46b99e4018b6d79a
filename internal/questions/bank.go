package questions

import (
	"math/rand"
	"sync"

	"github.com/quizarena/tictactrivia-backend/internal/entity"
)

// DefaultSubject is used when a client asks for a subject the bank does not
// carry.
const DefaultSubject = "historia"

// Bank hands out questions per subject, avoiding recently used items until a
// subject's pool is exhausted, then starting over.
type Bank struct {
	mu      sync.Mutex
	catalog map[string][]entity.Question
	used    map[string]map[int]struct{}
}

func NewBank() *Bank {
	return &Bank{
		catalog: catalog,
		used:    make(map[string]map[int]struct{}),
	}
}

// Subjects lists the subjects the bank carries.
func (that *Bank) Subjects() []string {
	that.mu.Lock()
	defer that.mu.Unlock()

	subjects := make([]string, 0, len(that.catalog))
	for subject := range that.catalog {
		subjects = append(subjects, subject)
	}
	return subjects
}

// Next picks a random not-recently-used question for the subject. Every
// returned question has its correct answer among the options.
func (that *Bank) Next(subject string) *entity.Question {
	that.mu.Lock()
	defer that.mu.Unlock()

	pool, ok := that.catalog[subject]
	if !ok {
		subject = DefaultSubject
		pool = that.catalog[subject]
	}

	usedIDs, ok := that.used[subject]
	if !ok {
		usedIDs = make(map[int]struct{})
		that.used[subject] = usedIDs
	}

	available := make([]entity.Question, 0, len(pool))
	for _, question := range pool {
		if _, seen := usedIDs[question.ID]; !seen {
			available = append(available, question)
		}
	}

	// pool exhausted: reset the exclusion set and reuse everything
	if len(available) == 0 {
		usedIDs = make(map[int]struct{})
		that.used[subject] = usedIDs
		available = pool
	}

	question := available[rand.Intn(len(available))] //nolint: gosec // not a secret
	usedIDs[question.ID] = struct{}{}

	question.Subject = subject

	return &question
}
