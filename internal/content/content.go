// Package content loads the site content the pages are rendered from.
package content

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"kcphysics/aiCompanySite/internal/models"
)

// ErrInvalidContent is returned when loaded content is missing required fields.
var ErrInvalidContent = errors.New("invalid content")

// Default returns the built-in site content.
func Default() models.Site {
	return models.Site{
		Name: "Company",
		Home: models.HomePage{
			Title:       "Company Site",
			Description: "A static company website generated from plain content files.",
		},
		About: models.AboutPage{
			Hero: models.HeroContent{
				Title:       "About Our Company",
				Description: "Building amazing products with cutting-edge technology",
			},
			Mission: models.MissionContent{
				Title:   "Our Mission & Values",
				Mission: "To deliver exceptional solutions that empower businesses and individuals to achieve their goals through innovative technology.",
				Vision:  "A world where technology seamlessly enhances every aspect of life, making it more efficient, connected, and meaningful.",
				Values: []string{
					"Innovation and Excellence",
					"Customer-Centric Approach",
					"Integrity and Transparency",
					"Collaboration and Teamwork",
					"Continuous Learning",
				},
			},
			TeamTitle: "Meet Our Team",
			Team: []models.TeamMemberEntry{
				{
					Name: "John Doe",
					Role: "CEO & Founder",
					Bio:  "Passionate about building products that make a difference. 10+ years in tech leadership.",
				},
				{
					Name: "Jane Smith",
					Role: "CTO",
					Bio:  "Full-stack architect with expertise in scalable systems and modern web technologies.",
				},
				{
					Name: "Mike Johnson",
					Role: "Lead Designer",
					Bio:  "Creating beautiful, user-centered designs that deliver exceptional experiences.",
				},
			},
		},
		Contact: models.ContactPage{
			Hero: models.HeroContent{
				Title:       "Contact Us",
				Description: "Have a question or want to work together? We'd love to hear from you.",
			},
			Info: []models.LabeledValue{
				{Label: "Email", Value: "hello@company.com"},
				{Label: "Phone", Value: "+1 (555) 123-4567"},
				{Label: "Office", Value: "123 Business Ave, Suite 100\nSan Francisco, CA 94102"},
				{Label: "Working Hours", Value: "Monday - Friday: 9:00 AM - 6:00 PM PST"},
			},
		},
	}
}

// Load reads a YAML content file over the defaults. Fields absent from the
// file keep their default value. A missing file yields the defaults.
func Load(path string) (models.Site, error) {
	site := Default()
	if path == "" {
		return site, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return site, nil
	}
	if err != nil {
		return site, fmt.Errorf("unable to read content file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &site); err != nil {
		return site, fmt.Errorf("unable to parse content file %s: %w", path, err)
	}
	return site, nil
}

// ReadTeamCSV reads team members from a CSV file with the columns
// name, role, bio, image_url[, image_width, image_height].
// The header row and rows with fewer than two fields are skipped.
func ReadTeamCSV(path string) ([]models.TeamMemberEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("unable to read CSV records: %w", err)
	}

	var members []models.TeamMemberEntry
	for i, record := range records {
		if i == 0 || len(record) < 2 {
			continue
		}
		member := models.TeamMemberEntry{
			Name: strings.TrimSpace(record[0]),
			Role: strings.TrimSpace(record[1]),
		}
		if len(record) > 2 {
			member.Bio = strings.TrimSpace(record[2])
		}
		if len(record) > 3 {
			member.ImageURL = strings.TrimSpace(record[3])
		}
		if len(record) > 4 {
			if member.ImageWidth, err = atoiOrZero(record[4]); err != nil {
				return nil, fmt.Errorf("row %d: image width: %w", i+1, err)
			}
		}
		if len(record) > 5 {
			if member.ImageHeight, err = atoiOrZero(record[5]); err != nil {
				return nil, fmt.Errorf("row %d: image height: %w", i+1, err)
			}
		}
		members = append(members, member)
	}
	return members, nil
}

func atoiOrZero(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

// Validate checks the fields file content cannot be trusted to carry.
func Validate(site models.Site) error {
	for i, m := range site.About.Team {
		if strings.TrimSpace(m.Name) == "" {
			return fmt.Errorf("%w: team member %d has no name", ErrInvalidContent, i+1)
		}
		if strings.TrimSpace(m.Role) == "" {
			return fmt.Errorf("%w: team member %q has no role", ErrInvalidContent, m.Name)
		}
		if m.ImageWidth < 0 || m.ImageHeight < 0 {
			return fmt.Errorf("%w: team member %q has negative image dimensions", ErrInvalidContent, m.Name)
		}
	}
	return nil
}

// LoadSite loads the content file, replaces the team with the CSV roster
// when teamCSV is set, and validates the result.
func LoadSite(contentFile, teamCSV string) (models.Site, error) {
	site, err := Load(contentFile)
	if err != nil {
		return site, err
	}
	if teamCSV != "" {
		members, err := ReadTeamCSV(teamCSV)
		if err != nil {
			return site, fmt.Errorf("failed to read team CSV: %w", err)
		}
		site.About.Team = members
	}
	if err := Validate(site); err != nil {
		return site, err
	}
	return site, nil
}
