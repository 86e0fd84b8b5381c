// Package workflow renders the CodeQL GitHub Actions workflow pushed to
// scanned repositories.
package workflow

import (
	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v2"
)

const (
	// Name is matched against workflow_run events to find scanner runs
	Name     = "CodeQL-Fly"
	FileName = "codeql-fly.yml"
	FilePath = ".github/workflows/" + FileName

	Language  = "javascript-typescript"
	BuildMode = "none"
)

type Definition struct {
	Name string            `yaml:"name"`
	On   Trigger           `yaml:"on"`
	Env  map[string]string `yaml:"env"`
	Jobs map[string]Job    `yaml:"jobs"`
}

type Trigger struct {
	WorkflowDispatch Dispatch `yaml:"workflow_dispatch"`
}

type Dispatch struct {
	Inputs map[string]Input `yaml:"inputs"`
}

type Input struct {
	Description string `yaml:"description"`
	Required    bool   `yaml:"required"`
	Default     string `yaml:"default"`
	Type        string `yaml:"type"`
}

type Job struct {
	Name        string            `yaml:"name"`
	RunsOn      string            `yaml:"runs-on"`
	Permissions map[string]string `yaml:"permissions"`
	Strategy    Strategy          `yaml:"strategy"`
	Steps       []Step            `yaml:"steps"`
}

type Strategy struct {
	FailFast bool                `yaml:"fail-fast"`
	Matrix   map[string][]string `yaml:"matrix"`
}

type Step struct {
	Name  string            `yaml:"name,omitempty"`
	If    string            `yaml:"if,omitempty"`
	Uses  string            `yaml:"uses,omitempty"`
	Shell string            `yaml:"shell,omitempty"`
	Run   string            `yaml:"run,omitempty"`
	With  map[string]string `yaml:"with,omitempty"`
}

// New builds the workflow definition for a release tag. The tag is exposed to
// the job as RELEASE_TAG.
func New(tag string) *Definition {
	return &Definition{
		Name: Name,
		On: Trigger{
			WorkflowDispatch: Dispatch{
				Inputs: map[string]Input{
					"branch": {
						Description: "Branch to analyze",
						Required:    false,
						Default:     "main",
						Type:        "string",
					},
				},
			},
		},
		Env: map[string]string{
			"RELEASE_TAG": tag,
		},
		Jobs: map[string]Job{
			"analyze": {
				Name:   "Analyze (${{ matrix.language }})",
				RunsOn: "ubuntu-latest",
				Permissions: map[string]string{
					"security-events": "write",
					"packages":        "read",
					"actions":         "read",
					"contents":        "read",
				},
				Strategy: Strategy{
					FailFast: false,
					Matrix: map[string][]string{
						"language":   {Language},
						"build-mode": {BuildMode},
					},
				},
				Steps: []Step{
					{
						Name: "Checkout repository",
						Uses: "actions/checkout@v4",
					},
					{
						Name: "Initialize CodeQL",
						Uses: "github/codeql-action/init@v3",
						With: map[string]string{
							"languages":  "${{ matrix.language }}",
							"build-mode": "${{ matrix.build-mode }}",
						},
					},
					{
						Name: "Perform CodeQL Analysis",
						Uses: "github/codeql-action/analyze@v3",
						With: map[string]string{
							"category": "/language:${{ matrix.language }}",
						},
					},
				},
			},
		},
	}
}

// Render returns the YAML document of the workflow for tag
func Render(tag string) ([]byte, error) {
	raw, err := yaml.Marshal(New(tag))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal workflow definition", goerr.V("tag", tag))
	}
	return raw, nil
}
