package compliance

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// frameworksFile is the on-disk shape of a custom framework definition file:
//
//	frameworks:
//	  - name: hipaa
//	    display_name: HIPAA
//	    description: Health Insurance Portability and Accountability Act
//	    controls:
//	      - id: HIPAA-164.312
//	        title: Technical Safeguards
//	        description: Access control and encryption of ePHI
//	        policy_mappings:
//	          - aws.security.kms_encryption
type frameworksFile struct {
	Frameworks []Framework `yaml:"frameworks"`
}

// LoadFrameworks parses additional framework definitions from a YAML file.
// The definitions extend the registry through (*Registry).Extend; the
// built-in table is never modified.
func LoadFrameworks(path string) ([]Framework, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("compliance: read frameworks file: %w", err)
	}

	var file frameworksFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("compliance: parse %s: %w", path, err)
	}

	for i, fw := range file.Frameworks {
		if fw.Name == "" {
			return nil, fmt.Errorf("compliance: %s: framework %d has no name", path, i)
		}
		if len(fw.Controls) == 0 {
			return nil, fmt.Errorf("compliance: %s: framework %q has no controls", path, fw.Name)
		}
		for _, ctl := range fw.Controls {
			if ctl.ID == "" {
				return nil, fmt.Errorf("compliance: %s: framework %q has a control without an id", path, fw.Name)
			}
		}
	}

	return file.Frameworks, nil
}
