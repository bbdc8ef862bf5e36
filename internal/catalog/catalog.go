// Package catalog holds the fixed DevSecOps maturity catalog: eight pillars
// with six yes/no questions each. The data never changes at runtime.
package catalog

import "github.com/jkivisto/maturemark/internal/models"

const (
	// QuestionsPerPillar is the fixed scoring denominator for every pillar.
	QuestionsPerPillar = 6
)

// prefixes maps each pillar key to the question-id prefix it owns. The ids in
// the catalog follow "<prefix>-<3-digit-seq>". Code Quality is the odd one
// out: its key is "codeQuality" but its question ids use "quality-".
var prefixes = map[models.PillarKey]string{
	models.PillarCode:        "code",
	models.PillarBuild:       "build",
	models.PillarCodeQuality: "quality",
	models.PillarSecurity:    "security",
	models.PillarTesting:     "testing",
	models.PillarPackage:     "package",
	models.PillarDeploy:      "deploy",
	models.PillarMonitoring:  "monitoring",
}

// pillarByQuestion is built once from the catalog so that scoring does not
// have to infer pillars from id prefixes. Ids outside the catalog resolve to
// nothing and are ignored everywhere.
var pillarByQuestion = func() map[string]models.PillarKey {
	lookup := make(map[string]models.PillarKey, len(pillars)*QuestionsPerPillar)
	for _, pillar := range pillars {
		for _, question := range pillar.Questions {
			lookup[question.ID] = pillar.Key
		}
	}
	return lookup
}()

// Pillars returns the eight pillars in their canonical order.
func Pillars() []models.Pillar {
	return pillars
}

// Keys returns the pillar keys in their canonical order: code, build,
// codeQuality, security, testing, package, deploy, monitoring. Exports and
// score listings depend on this ordering.
func Keys() []models.PillarKey {
	keys := make([]models.PillarKey, 0, len(pillars))
	for _, pillar := range pillars {
		keys = append(keys, pillar.Key)
	}
	return keys
}

// Prefix returns the question-id prefix for a pillar key.
func Prefix(key models.PillarKey) string {
	return prefixes[key]
}

// QuestionCount returns the number of questions in a pillar.
func QuestionCount(models.PillarKey) int {
	return QuestionsPerPillar
}

// TotalQuestionCount returns the number of questions across all pillars.
func TotalQuestionCount() int {
	return len(pillars) * QuestionsPerPillar
}

// PillarForQuestion resolves a question id to its pillar. The second return
// value is false for ids not present in the catalog.
func PillarForQuestion(questionID string) (models.PillarKey, bool) {
	key, ok := pillarByQuestion[questionID]
	return key, ok
}

// Question returns the catalog entry for a question id.
func Question(questionID string) (models.Question, bool) {
	key, ok := pillarByQuestion[questionID]
	if !ok {
		return models.Question{}, false
	}
	for _, pillar := range pillars {
		if pillar.Key != key {
			continue
		}
		for _, question := range pillar.Questions {
			if question.ID == questionID {
				return question, true
			}
		}
	}
	return models.Question{}, false
}
