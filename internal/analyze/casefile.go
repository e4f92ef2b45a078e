package analyze

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dbelyaev/caselens/internal/model"
)

// CaseFile is the YAML input format for a single case
type CaseFile struct {
	Case     model.Case           `yaml:"case"`
	Strategy string               `yaml:"strategy"`
	Evidence []model.EvidenceItem `yaml:"evidence"`
}

// LoadCaseFile reads and validates a case file
func LoadCaseFile(path string) (*CaseFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read case file: %w", err)
	}

	var cf CaseFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse case file %s: %w", path, err)
	}

	if strings.TrimSpace(cf.Case.Facts) == "" {
		return nil, fmt.Errorf("case file %s: missing case facts", path)
	}
	if strings.TrimSpace(cf.Strategy) == "" {
		return nil, fmt.Errorf("case file %s: missing strategy description", path)
	}
	if len(cf.Evidence) == 0 {
		return nil, fmt.Errorf("case file %s: at least one evidence item is required", path)
	}

	// Validate items up front so a bad entry is reported with its position
	collection, err := model.NewEvidenceCollection(cf.Evidence...)
	if err != nil {
		return nil, fmt.Errorf("case file %s: %w", path, err)
	}
	cf.Evidence = collection.Items()

	return &cf, nil
}
