package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kcphysics/aiCompanySite/internal/models"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	site := Default()
	require.NoError(t, Validate(site))
	assert.Len(t, site.About.Team, 3)
	assert.Len(t, site.Contact.Info, 4)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	site, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), site)

	site, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), site)
}

func TestLoadOverridesOnlyPresentFields(t *testing.T) {
	path := writeFile(t, "site.yaml", `
name: Acme
about:
  hero:
    title: About Acme
  sections:
    - title: Offices
      items:
        - label: HQ
          value: Lisbon
        - label: HQ
          value: Porto
contact:
  info: []
`)

	site, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Acme", site.Name)
	assert.Equal(t, "About Acme", site.About.Hero.Title)
	assert.Equal(t, Default().About.Hero.Description, site.About.Hero.Description)
	assert.Equal(t, []models.SectionContent{{
		Title: "Offices",
		Items: []models.LabeledValue{{Label: "HQ", Value: "Lisbon"}, {Label: "HQ", Value: "Porto"}},
	}}, site.About.Sections)
	assert.NotNil(t, site.Contact.Info)
	assert.Empty(t, site.Contact.Info)
	assert.Len(t, site.About.Team, 3)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeFile(t, "site.yaml", "about: [unclosed")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestReadTeamCSV(t *testing.T) {
	path := writeFile(t, "team.csv", `name,role,bio,image_url,image_width,image_height
Jane Smith,CTO,,,,
John Doe,CEO & Founder,Builds things.,/assets/john.jpg,400,300
too-short
Mike Johnson,Lead Designer
`)

	members, err := ReadTeamCSV(path)
	require.NoError(t, err)
	assert.Equal(t, []models.TeamMemberEntry{
		{Name: "Jane Smith", Role: "CTO"},
		{Name: "John Doe", Role: "CEO & Founder", Bio: "Builds things.", ImageURL: "/assets/john.jpg", ImageWidth: 400, ImageHeight: 300},
		{Name: "Mike Johnson", Role: "Lead Designer"},
	}, members)
}

func TestReadTeamCSVWidthWithoutHeight(t *testing.T) {
	path := writeFile(t, "team.csv", "name,role,bio,image_url,image_width\nAda,Eng,,/a.png,400\n")

	members, err := ReadTeamCSV(path)
	require.NoError(t, err)
	assert.Equal(t, []models.TeamMemberEntry{
		{Name: "Ada", Role: "Eng", ImageURL: "/a.png", ImageWidth: 400},
	}, members)
}

func TestReadTeamCSVBadDimension(t *testing.T) {
	path := writeFile(t, "team.csv", "name,role,bio,image_url,image_width,image_height\nJane,CTO,,x.jpg,wide,10\n")
	_, err := ReadTeamCSV(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		team    []models.TeamMemberEntry
		wantErr bool
	}{
		{name: "empty team", team: nil},
		{name: "complete member", team: []models.TeamMemberEntry{{Name: "Jane Smith", Role: "CTO"}}},
		{name: "missing name", team: []models.TeamMemberEntry{{Role: "CTO"}}, wantErr: true},
		{name: "missing role", team: []models.TeamMemberEntry{{Name: "Jane Smith"}}, wantErr: true},
		{name: "negative width", team: []models.TeamMemberEntry{{Name: "Jane", Role: "CTO", ImageWidth: -1}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			site := models.Site{About: models.AboutPage{Team: tt.team}}
			err := Validate(site)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidContent)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoadSiteUsesTeamCSV(t *testing.T) {
	csvPath := writeFile(t, "team.csv", "name,role\nAda,Engineer\n")

	site, err := LoadSite("", csvPath)
	require.NoError(t, err)
	assert.Equal(t, []models.TeamMemberEntry{{Name: "Ada", Role: "Engineer"}}, site.About.Team)
}

func TestLoadSiteRejectsInvalidRoster(t *testing.T) {
	csvPath := writeFile(t, "team.csv", "name,role\n,Engineer\n")

	_, err := LoadSite("", csvPath)
	assert.ErrorIs(t, err, ErrInvalidContent)
}
