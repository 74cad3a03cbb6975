package about

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"kcphysics/aiCompanySite/internal/htmltest"
	"kcphysics/aiCompanySite/internal/models"
)

func TestPageOrder(t *testing.T) {
	doc := htmltest.Parse(t, Page(models.AboutPage{
		Hero: models.HeroContent{Title: "About Our Company"},
		Mission: models.MissionContent{
			Title:   "Our Mission & Values",
			Mission: "To deliver exceptional solutions.",
		},
		Sections: []models.SectionContent{
			{Title: "Offices", Items: []models.LabeledValue{{Label: "HQ", Value: "San Francisco"}}},
		},
		Team: []models.TeamMemberEntry{{Name: "Jane Smith", Role: "CTO"}},
	}))

	headings := htmltest.FindAll(doc, func(n *html.Node) bool {
		return n.Data == "h1" || n.Data == "h2"
	})
	assert.Equal(t,
		[]string{"About Our Company", "Our Mission & Values", "Offices", "Meet Our Team"},
		htmltest.Texts(headings),
	)
}

func TestPageWithoutTeamSkipsGrid(t *testing.T) {
	doc := htmltest.Parse(t, Page(models.AboutPage{}))

	assert.Empty(t, htmltest.FindAll(doc, htmltest.Slot("team-grid")))
	h1 := htmltest.FindAll(doc, htmltest.Tag("h1"))
	require.Len(t, h1, 1)
	assert.Equal(t, "About Us", htmltest.Text(h1[0]))
}

func TestPageIsIdempotent(t *testing.T) {
	content := models.AboutPage{
		Team: []models.TeamMemberEntry{{Name: "Mike Johnson", Role: "Lead Designer"}},
	}
	assert.Equal(t, htmltest.Render(t, Page(content)), htmltest.Render(t, Page(content)))
}
