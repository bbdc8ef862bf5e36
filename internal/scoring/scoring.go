// Package scoring derives pillar scores, the overall score and the assessment
// status from an answer set. It is a pure function of its input and never
// fails: malformed or unknown answers simply count as unanswered.
package scoring

import (
	"math"

	"github.com/jkivisto/maturemark/internal/catalog"
	"github.com/jkivisto/maturemark/internal/models"
)

// Result is the outcome of recomputing an answer set.
type Result struct {
	PillarScores  map[models.PillarKey]int
	OverallScore  int
	Status        models.AssessmentStatus
	AnsweredCount int
}

// Recompute scores the answer set against the full catalog.
//
// Each pillar scores round(100 * yes / 6) with the fixed denominator of six
// questions, so a missing answer weighs the same as an explicit no. The
// overall score is the rounded mean of the eight pillar scores; rounding twice
// like this can differ slightly from rounding the grand total once, which is
// the established behavior. Answers whose question id is not in the catalog
// are ignored for both scoring and the completion count.
func Recompute(answers map[string]models.Answer) Result {
	yesCounts := make(map[models.PillarKey]int, len(catalog.Keys()))
	answered := 0
	for questionID, answer := range answers {
		key, ok := catalog.PillarForQuestion(questionID)
		if !ok {
			continue
		}
		if answer.Response.Answered() {
			answered++
		}
		if answer.Response == models.ResponseYes {
			yesCounts[key]++
		}
	}

	keys := catalog.Keys()
	pillarScores := make(map[models.PillarKey]int, len(keys))
	scoreSum := 0
	for _, key := range keys {
		score := roundPercent(yesCounts[key], catalog.QuestionsPerPillar)
		pillarScores[key] = score
		scoreSum += score
	}

	return Result{
		PillarScores:  pillarScores,
		OverallScore:  int(math.Round(float64(scoreSum) / float64(len(keys)))),
		Status:        statusFor(answered),
		AnsweredCount: answered,
	}
}

func statusFor(answeredCount int) models.AssessmentStatus {
	switch {
	case answeredCount == 0:
		return models.StatusNotStarted
	case answeredCount == catalog.TotalQuestionCount():
		return models.StatusCompleted
	default:
		return models.StatusInProgress
	}
}

func roundPercent(count, total int) int {
	return int(math.Round(100 * float64(count) / float64(total)))
}
