package models

// PillarKey identifies one of the eight fixed DevSecOps maturity pillars.
type PillarKey string

const (
	PillarCode        PillarKey = "code"
	PillarBuild       PillarKey = "build"
	PillarCodeQuality PillarKey = "codeQuality"
	PillarSecurity    PillarKey = "security"
	PillarTesting     PillarKey = "testing"
	PillarPackage     PillarKey = "package"
	PillarDeploy      PillarKey = "deploy"
	PillarMonitoring  PillarKey = "monitoring"
)

// Question is a single yes/no maturity question belonging to a pillar.
type Question struct {
	ID          string    `json:"id"`
	PillarKey   PillarKey `json:"pillarKey"`
	Question    string    `json:"question"`
	Description string    `json:"description"`
	Tools       []string  `json:"tools,omitempty"`
}

// Pillar is one of the eight maturity categories with its fixed question set.
type Pillar struct {
	Key         PillarKey  `json:"key"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Tools       []string   `json:"tools"`
	Questions   []Question `json:"questions"`
}
