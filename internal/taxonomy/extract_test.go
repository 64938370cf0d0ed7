package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestTaxonomy(t *testing.T) *Taxonomy {
	t.Helper()
	tax, err := Load()
	require.NoError(t, err)
	return tax
}

func TestExtract_FindsCanonicalSkills(t *testing.T) {
	tax := loadTestTaxonomy(t)

	set := tax.Extract("Built services in Python and Go, deployed on AWS with Docker and Kubernetes.")

	assert.True(t, set.Contains("Python"))
	assert.True(t, set.Contains("Go"))
	assert.True(t, set.Contains("AWS"))
	assert.True(t, set.Contains("Docker"))
	assert.True(t, set.Contains("Kubernetes"))
	assert.False(t, set.Contains("Rust"))
}

func TestExtract_MatchesVariants(t *testing.T) {
	tax := loadTestTaxonomy(t)

	set := tax.Extract("Wrote backend services in golang and js with postgres.")

	assert.True(t, set.Contains("Go"))
	assert.True(t, set.Contains("JavaScript"))
	assert.True(t, set.Contains("PostgreSQL"))
}

func TestExtract_PunctuatedSkillNames(t *testing.T) {
	tax := loadTestTaxonomy(t)

	set := tax.Extract("Systems programming in C++ and C# plus Node.js tooling.")

	assert.True(t, set.Contains("C++"))
	assert.True(t, set.Contains("C#"))
	assert.True(t, set.Contains("Node.js"))
}

func TestExtract_WholeWordOnly(t *testing.T) {
	tax := loadTestTaxonomy(t)

	// "going" must not match Go, "rusty" must not match Rust.
	set := tax.Extract("Going forward we kept the rusty pipeline running.")

	assert.False(t, set.Contains("Go"))
	assert.False(t, set.Contains("Rust"))
}

func TestExtract_EmptyText(t *testing.T) {
	tax := loadTestTaxonomy(t)

	assert.Equal(t, 0, tax.Extract("").Len())
	assert.Equal(t, 0, tax.Extract("   \n\t").Len())
}

func TestExtract_Deterministic(t *testing.T) {
	tax := loadTestTaxonomy(t)
	text := "Python, Java, SQL, AWS, Docker, Kubernetes, React, MongoDB, Machine Learning"

	first := tax.Extract(text)
	second := tax.Extract(text)

	assert.Equal(t, first, second)
	assert.Equal(t, first.Names(), second.Names())
}

func TestExtract_DeclarationOrder(t *testing.T) {
	tax := loadTestTaxonomy(t)

	// Mention order in text is reversed; output must follow taxonomy order.
	set := tax.Extract("Used Docker before I ever touched Python.")

	names := set.Names()
	require.Contains(t, names, "Python")
	require.Contains(t, names, "Docker")
	assert.Less(t, indexOf(names, "Python"), indexOf(names, "Docker"))
}

func TestExtract_DepthProficiencyTier(t *testing.T) {
	tax := loadTestTaxonomy(t)

	set := tax.Extract("Expert in Python with strong background in distributed systems.")

	require.True(t, set.Contains("Python"))
	skill := set.Skills[0]
	require.NotNil(t, skill.Depth)
	assert.Equal(t, "expert", skill.Depth.ProficiencyTier)
}

func TestExtract_DepthYearsAndCertification(t *testing.T) {
	tax := loadTestTaxonomy(t)

	set := tax.Extract("AWS certified, 6 years of AWS infrastructure work.")

	require.True(t, set.Contains("AWS"))
	var depth = set.Skills[0].Depth
	require.NotNil(t, depth)
	assert.Equal(t, 6.0, depth.Years)
	assert.True(t, depth.Certified)
}

func TestExtract_NoDepthSignal(t *testing.T) {
	tax := loadTestTaxonomy(t)

	set := tax.Extract("Python")

	require.Equal(t, 1, set.Len())
	assert.Nil(t, set.Skills[0].Depth)
}

func indexOf(items []string, target string) int {
	for i, item := range items {
		if item == target {
			return i
		}
	}
	return -1
}
