package questions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBank_Next(t *testing.T) {
	t.Run("Every question is answerable", func(t *testing.T) {
		// Given: a fresh bank
		bank := NewBank()

		// When: drawing from every subject
		for _, subject := range bank.Subjects() {
			question := bank.Next(subject)

			// Then: the correct answer is one of the options
			require.NotNil(t, question)
			assert.Contains(t, question.Options, question.CorrectAnswer)
			assert.Equal(t, subject, question.Subject)
			assert.NotEmpty(t, question.Question)
		}
	})

	t.Run("Unknown subject falls back to the default", func(t *testing.T) {
		// Given: a fresh bank
		bank := NewBank()

		// When: a client asks for a subject the bank does not carry
		question := bank.Next("astrologia")

		// Then: a default-subject question comes back
		require.NotNil(t, question)
		assert.Equal(t, DefaultSubject, question.Subject)
	})

	t.Run("No repeats until the pool is exhausted", func(t *testing.T) {
		// Given: a fresh bank and the default subject's pool size
		bank := NewBank()
		poolSize := len(catalog[DefaultSubject])

		// When: drawing exactly one full pool
		seen := make(map[int]struct{})
		for i := 0; i < poolSize; i++ {
			question := bank.Next(DefaultSubject)
			seen[question.ID] = struct{}{}
		}

		// Then: every draw was distinct
		assert.Len(t, seen, poolSize)
	})

	t.Run("Exhausted pool resets and keeps serving", func(t *testing.T) {
		// Given: a bank with the default pool fully drawn
		bank := NewBank()
		poolSize := len(catalog[DefaultSubject])
		for i := 0; i < poolSize; i++ {
			bank.Next(DefaultSubject)
		}

		// When: drawing once more
		question := bank.Next(DefaultSubject)

		// Then: the bank recycles instead of running dry
		require.NotNil(t, question)
		assert.Contains(t, question.Options, question.CorrectAnswer)
	})

	t.Run("Returned question is a copy", func(t *testing.T) {
		// Given: a bank serving a question
		bank := NewBank()
		question := bank.Next(DefaultSubject)

		// When: the caller mutates what it got
		original := question.Question
		question.Question = "tampered"

		// Then: a later draw of the same item is unaffected
		poolSize := len(catalog[DefaultSubject])
		for i := 0; i < 2*poolSize; i++ {
			again := bank.Next(DefaultSubject)
			if again.ID == question.ID {
				assert.Equal(t, original, again.Question)
				return
			}
		}
		t.Fatalf("question %d never reappeared", question.ID)
	})
}

func TestBank_Subjects(t *testing.T) {
	// Given: a fresh bank
	bank := NewBank()

	// Then: the catalog subjects are all listed
	subjects := bank.Subjects()
	assert.ElementsMatch(t, []string{"historia", "quimica", "matematica"}, subjects)
}
