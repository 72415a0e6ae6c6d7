package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// --- Credentials ---

type Credentials struct {
	Username string
	Password string
}

// LoadCredentials reads the portal account from the environment. A .env file
// in the working directory is honored if present.
func LoadCredentials() (*Credentials, error) {
	godotenv.Load()

	username := os.Getenv("KMUTNB_USERNAME")
	if username == "" {
		return nil, fmt.Errorf("KMUTNB_USERNAME must be set")
	}
	password := os.Getenv("KMUTNB_PASSWORD")
	if password == "" {
		return nil, fmt.Errorf("KMUTNB_PASSWORD must be set")
	}

	return &Credentials{Username: username, Password: password}, nil
}

// --- Portal ---

// Portal holds the fixed endpoint configuration for one run. Tests substitute
// their own instance instead of patching package-level URLs.
type Portal struct {
	LoginURL   string `yaml:"login_url"`
	ProcessURL string `yaml:"process_url"`
	ReserveURL string `yaml:"reserve_url"`
	Origin     string `yaml:"origin"`
	UserAgent  string `yaml:"user_agent"`

	TimeoutSeconds int `yaml:"timeout_seconds"`

	// InsecureSkipVerify disables TLS certificate validation. Off by default;
	// only turn it on for portals with broken certificate chains.
	InsecureSkipVerify bool `yaml:"insecure_skip_verify"`
}

// DefaultPortal returns the production KMUTNB endpoints.
func DefaultPortal() Portal {
	return Portal{
		LoginURL:       "https://software.kmutnb.ac.th/login/",
		ProcessURL:     "https://software.kmutnb.ac.th/adobe-reserve/processa.php",
		ReserveURL:     "https://software.kmutnb.ac.th:443/adobe-reserve/add2.php",
		Origin:         "https://software.kmutnb.ac.th",
		UserAgent:      "Mozilla/5.0 (X11; Linux x86_64; rv:146.0) Gecko/20100101 Firefox/146.0",
		TimeoutSeconds: 10,
	}
}

// LoadPortal merges a YAML override file over the defaults. A missing file is
// not an error; the defaults are returned unchanged. KMUTNB_INSECURE_TLS=true
// in the environment also flips InsecureSkipVerify.
func LoadPortal(path string) (Portal, error) {
	portal := DefaultPortal()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &portal); err != nil {
			return portal, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return portal, err
	}

	if os.Getenv("KMUTNB_INSECURE_TLS") == "true" {
		portal.InsecureSkipVerify = true
	}

	if portal.TimeoutSeconds <= 0 {
		return portal, fmt.Errorf("timeout_seconds must be positive, got %d", portal.TimeoutSeconds)
	}

	return portal, nil
}

// Timeout returns the request timeout as a duration.
func (p Portal) Timeout() time.Duration {
	return time.Duration(p.TimeoutSeconds) * time.Second
}
