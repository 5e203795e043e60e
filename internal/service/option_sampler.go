package service

import (
	"math/rand"
)

// fillerOption pads the choice set when a question has no incorrect options
// at all.
const fillerOption = "None of the above"

// optionCount is the size of the choice set shown to the player.
const optionCount = 4

// SampleOptions builds the shuffled choice set for one question: up to
// three picks from the incorrect pool, padded by re-sampling with
// repetition (or with fillerOption when the pool is empty), plus the
// correct answer, shuffled together. Pure function; uniqueness of the
// padding picks is best effort only.
func SampleOptions(correctAnswer string, incorrectPool []string) []string {
	pool := make([]string, len(incorrectPool))
	copy(pool, incorrectPool)
	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	wrong := pool
	if len(wrong) > optionCount-1 {
		wrong = wrong[:optionCount-1]
	}

	for len(wrong) < optionCount-1 {
		if len(pool) > 0 {
			wrong = append(wrong, pool[rand.Intn(len(pool))])
		} else {
			wrong = append(wrong, fillerOption)
		}
	}

	choices := append(wrong, correctAnswer)
	rand.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})

	return choices
}
