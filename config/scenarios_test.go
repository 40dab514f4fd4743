package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sci-simulator/domain"
)

func writeScenarios(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadScenarios_ReferenceOnly(t *testing.T) {
	catalog, err := LoadScenarios("")
	require.NoError(t, err)

	list := catalog.List()
	require.Len(t, list, 1)
	assert.Equal(t, ReferenceScenario, list[0].Name)
	assert.Equal(t, domain.ReferenceInputs(), list[0].Inputs)
}

func TestLoadScenarios_FromFile(t *testing.T) {
	path := writeScenarios(t, `
scenarios:
  - name: zero-rate
    description: prêt à taux zéro
    inputs:
      purchase_price: 200000
      notary_rate: 0.08
      loan_years: 20
      interest_rate: 0
      annual_rent: 12000
      marginal_tax_rate: 0.3
      social_contributions: true
`)

	catalog, err := LoadScenarios(path)
	require.NoError(t, err)

	list := catalog.List()
	require.Len(t, list, 2)
	assert.Equal(t, ReferenceScenario, list[0].Name)
	assert.Equal(t, "zero-rate", list[1].Name)

	s, ok := catalog.Get("zero-rate")
	require.True(t, ok)
	assert.Equal(t, 200000.0, s.Inputs.PurchasePrice)
	assert.Equal(t, 20, s.Inputs.LoanYears)
	assert.Zero(t, s.Inputs.InterestRate)
	assert.True(t, s.Inputs.SocialContributions)
}

func TestLoadScenarios_RepositoryFile(t *testing.T) {
	catalog, err := LoadScenarios("../scenarios.yaml")
	require.NoError(t, err)

	_, ok := catalog.Get("cash-heavy")
	assert.True(t, ok)
	_, ok = catalog.Get("small-studio")
	assert.True(t, ok)
	_, ok = catalog.Get(ReferenceScenario)
	assert.True(t, ok)
}

func TestLoadScenarios_Errors(t *testing.T) {
	_, err := LoadScenarios(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadScenarios(writeScenarios(t, "scenarios: [unclosed"))
	assert.Error(t, err)

	_, err = LoadScenarios(writeScenarios(t, "scenarios:\n  - description: nameless\n"))
	assert.Error(t, err)
}
