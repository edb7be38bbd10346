package compliance

import (
	"strings"
)

// Registry is a read-only catalog of compliance frameworks. Lookup is
// case-insensitive at the boundary; names are stored canonically in
// lowercase. A Registry is immutable after construction and safe for
// concurrent readers.
type Registry struct {
	byName map[string]Framework
	names  []string
}

// NewRegistry builds a registry from the given frameworks in order.
// A framework whose lowercase name repeats an earlier one replaces it in
// place, keeping the original position.
func NewRegistry(frameworks ...Framework) *Registry {
	r := &Registry{byName: make(map[string]Framework, len(frameworks))}
	for _, fw := range frameworks {
		key := strings.ToLower(fw.Name)
		if _, exists := r.byName[key]; !exists {
			r.names = append(r.names, key)
		}
		r.byName[key] = fw
	}
	return r
}

// Lookup returns the framework registered under name, matching
// case-insensitively.
func (r *Registry) Lookup(name string) (Framework, bool) {
	fw, ok := r.byName[strings.ToLower(name)]
	return fw, ok
}

// Names returns the registered framework names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Extend returns a new registry containing the receiver's frameworks plus
// the given ones. The receiver is left untouched.
func (r *Registry) Extend(frameworks ...Framework) *Registry {
	combined := make([]Framework, 0, len(r.names)+len(frameworks))
	for _, name := range r.names {
		combined = append(combined, r.byName[name])
	}
	combined = append(combined, frameworks...)
	return NewRegistry(combined...)
}

// builtin is constructed once at init and never mutated.
var builtin = NewRegistry(
	Framework{
		Name:        "sox",
		DisplayName: "SOX (Sarbanes-Oxley Act)",
		Description: "Financial reporting integrity and internal controls",
		Controls: []Control{
			{
				ID:          "SOX-302",
				Title:       "Management Assessment of Internal Controls",
				Description: "CEO/CFO certification of internal controls over financial reporting",
				PolicyPrefixes: []string{
					"aws.security.iam_mfa",
					"aws.compliance.sox",
					"azure.security.key_vault",
				},
			},
			{
				ID:          "SOX-404",
				Title:       "Internal Control Assessment",
				Description: "Document and assess effectiveness of internal controls",
				PolicyPrefixes: []string{
					"aws.security.s3_encryption",
					"aws.compliance.sox",
					"azure.security.storage_encryption",
				},
			},
			{
				ID:          "SOX-ITGC",
				Title:       "IT General Controls",
				Description: "IT controls supporting financial reporting systems",
				PolicyPrefixes: []string{
					"aws.security.kms_encryption",
					"aws.compliance.sox",
					"aws.tagging.required_tags",
				},
			},
		},
	},
	Framework{
		Name:        "pci",
		DisplayName: "PCI DSS",
		Description: "Payment Card Industry Data Security Standard",
		Controls: []Control{
			{
				ID:          "PCI-REQ-1",
				Title:       "Install and Maintain Firewall Configuration",
				Description: "Protect cardholder data with firewall and router configuration",
				PolicyPrefixes: []string{
					"aws.security.ec2_security_groups",
					"azure.security.network_security",
				},
			},
			{
				ID:          "PCI-REQ-2",
				Title:       "Do Not Use Vendor-Supplied Defaults",
				Description: "Change default passwords and security parameters",
				PolicyPrefixes: []string{
					"aws.compliance.pci_dss",
				},
			},
			{
				ID:          "PCI-REQ-3",
				Title:       "Protect Stored Cardholder Data",
				Description: "Encrypt transmission of cardholder data",
				PolicyPrefixes: []string{
					"aws.security.s3_encryption",
					"aws.security.kms_encryption",
					"azure.security.storage_encryption",
					"aws.compliance.pci_dss",
				},
			},
			{
				ID:          "PCI-REQ-7",
				Title:       "Restrict Access by Business Need-to-Know",
				Description: "Limit access to cardholder data by business need to know",
				PolicyPrefixes: []string{
					"aws.security.s3_public_access",
					"aws.security.iam_mfa",
					"aws.compliance.pci_dss",
				},
			},
			{
				ID:          "PCI-REQ-8",
				Title:       "Identify and Authenticate Access",
				Description: "Assign unique ID to each person with computer access",
				PolicyPrefixes: []string{
					"aws.security.iam_mfa",
					"aws.compliance.pci_dss",
				},
			},
			{
				ID:          "PCI-REQ-10",
				Title:       "Track and Monitor Access",
				Description: "Track and monitor all access to network resources and cardholder data",
				PolicyPrefixes: []string{
					"aws.compliance.pci_dss",
					"aws.compliance.sox",
				},
			},
		},
	},
	Framework{
		Name:        "ffiec",
		DisplayName: "FFIEC Cybersecurity Assessment",
		Description: "Federal Financial Institutions Examination Council - Cybersecurity maturity",
		Controls: []Control{
			{
				ID:          "FFIEC-D1",
				Title:       "Cyber Risk Management and Oversight",
				Description: "Establish cybersecurity governance",
				PolicyPrefixes: []string{
					"aws.tagging.required_tags",
					"aws.compliance.ffiec",
				},
			},
			{
				ID:          "FFIEC-D2",
				Title:       "Threat Intelligence and Collaboration",
				Description: "Monitor and respond to cyber threats",
				PolicyPrefixes: []string{
					"aws.compliance.ffiec",
				},
			},
			{
				ID:          "FFIEC-D3",
				Title:       "Cybersecurity Controls",
				Description: "Implement preventative and detective controls",
				PolicyPrefixes: []string{
					"aws.security.s3_encryption",
					"aws.security.kms_encryption",
					"aws.security.ec2_security_groups",
					"azure.security.storage_encryption",
					"azure.security.network_security",
					"aws.compliance.ffiec",
				},
			},
			{
				ID:          "FFIEC-D4",
				Title:       "External Dependency Management",
				Description: "Manage third-party and supply chain risks",
				PolicyPrefixes: []string{
					"aws.compliance.ffiec",
				},
			},
			{
				ID:          "FFIEC-D5",
				Title:       "Cyber Incident Management and Resilience",
				Description: "Detect, respond, and recover from incidents",
				PolicyPrefixes: []string{
					"aws.compliance.ffiec",
				},
			},
		},
	},
	Framework{
		Name:        "glba",
		DisplayName: "GLBA",
		Description: "Gramm-Leach-Bliley Act - Financial privacy and consumer data protection (Updated for 2023 FTC Final Rule and 2024 Breach Notification Rule)",
		Controls: []Control{
			{
				ID:          "GLBA-SAFEGUARDS",
				Title:       "Safeguards Rule - Data Protection",
				Description: "Administrative, technical, and physical safeguards to protect nonpublic personal information (NPI)",
				PolicyPrefixes: []string{
					"aws.compliance.glba",
					"aws.security.s3_encryption",
					"aws.security.kms_encryption",
					"azure.security.storage_encryption",
				},
			},
			{
				ID:          "GLBA-ACCESS",
				Title:       "Access Control - Limit NPI Access",
				Description: "Limit access to customer information to authorized personnel only",
				PolicyPrefixes: []string{
					"aws.compliance.glba",
					"aws.security.s3_public_access",
					"aws.security.iam_mfa",
					"aws.security.ec2_security_groups",
					"azure.security.key_vault",
					"azure.security.network_security",
				},
			},
			{
				ID:          "GLBA-MONITORING",
				Title:       "Security Monitoring - Continuous Oversight",
				Description: "Monitor systems, detect unauthorized access, and adapt to emerging threats",
				PolicyPrefixes: []string{
					"aws.compliance.glba",
					"aws.compliance.sox",
					"aws.compliance.ffiec",
				},
			},
			{
				ID:          "GLBA-VENDOR",
				Title:       "Third-Party Oversight - Cloud/Hybrid Security",
				Description: "Ensure cloud service providers maintain adequate data protection controls",
				PolicyPrefixes: []string{
					"aws.compliance.glba",
					"aws.tagging.required_tags",
				},
			},
			{
				ID:          "GLBA-BREACH",
				Title:       "Breach Notification - 30-Day Requirement",
				Description: "Report data breaches affecting 500+ customers within 30 days (2024 FTC Rule)",
				PolicyPrefixes: []string{
					"aws.compliance.glba",
					"aws.compliance.sox",
				},
			},
		},
	},
)

// Builtin returns the built-in registry covering SOX, PCI DSS, FFIEC and
// GLBA. The returned registry is shared and immutable.
func Builtin() *Registry {
	return builtin
}
