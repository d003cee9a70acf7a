package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jeevan-J/smart-contract-deployer/internal/domain"
)

func TestValidateName(t *testing.T) {
	t.Run("accepts plain names", func(t *testing.T) {
		for _, name := range []string{"Counter", "erc20_basic", "my-token.v2", "A"} {
			assert.NoError(t, domain.ValidateName(name), name)
		}
	})

	t.Run("rejects unsafe names", func(t *testing.T) {
		for _, name := range []string{
			"",
			".",
			"..",
			"../etc/passwd",
			"a/b",
			`a\b`,
			"con:aux",
			"what?",
			"star*",
			"quo\"te",
			"pipe|name",
			"tab\tname",
			"nul\x00name",
		} {
			err := domain.ValidateName(name)
			require.Error(t, err, "%q should be rejected", name)

			var invalid *domain.InvalidNameError
			assert.ErrorAs(t, err, &invalid)
		}
	})
}
