package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile() *Profile {
	return &Profile{
		Metadata: ProfileMetadata{Name: "self_profile", Version: "1.0.0"},
		Parameters: []Parameter{
			{
				Name:   "vm.swappiness",
				Domain: DomainContinuous,
				Dtype:  "int",
				Range:  []float64{0, 100},
				Ref:    60,
			},
			{
				Name:    "io.scheduler",
				Domain:  DomainDiscrete,
				Dtype:   "string",
				Options: []interface{}{"mq-deadline", "kyber", "none"},
				Ref:     "kyber",
			},
		},
	}
}

func TestValidate_ValidProfile(t *testing.T) {
	assert.NoError(t, Validate(validProfile()))
}

func TestValidate_Metadata(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		p := validProfile()
		p.Metadata.Name = ""
		err := Validate(p)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "profile name is required")
	})

	t.Run("missing version", func(t *testing.T) {
		p := validProfile()
		p.Metadata.Version = ""
		err := Validate(p)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "profile version is required")
	})

	t.Run("bad semver", func(t *testing.T) {
		p := validProfile()
		p.Metadata.Version = "not-a-version"
		err := Validate(p)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not valid semver")
	})

	t.Run("prerelease semver accepted", func(t *testing.T) {
		p := validProfile()
		p.Metadata.Version = "2.0.0-rc.1"
		assert.NoError(t, Validate(p))
	})
}

func TestValidate_Parameters(t *testing.T) {
	t.Run("empty parameter list", func(t *testing.T) {
		p := validProfile()
		p.Parameters = nil
		err := Validate(p)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one parameter is required")
	})

	t.Run("continuous range must have 2 items", func(t *testing.T) {
		p := validProfile()
		p.Parameters[0].Range = []float64{0}
		err := Validate(p)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exactly 2 items")
	})

	t.Run("ref out of range", func(t *testing.T) {
		p := validProfile()
		p.Parameters[0].Ref = 500
		err := Validate(p)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "out of range")
	})

	t.Run("non-numeric ref on continuous", func(t *testing.T) {
		p := validProfile()
		p.Parameters[0].Ref = "sixty"
		err := Validate(p)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not numeric")
	})

	t.Run("discrete ref must be an option", func(t *testing.T) {
		p := validProfile()
		p.Parameters[1].Ref = "bfq"
		err := Validate(p)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not among its options")
	})

	t.Run("discrete needs options", func(t *testing.T) {
		p := validProfile()
		p.Parameters[1].Options = nil
		err := Validate(p)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one option")
	})

	t.Run("unknown domain", func(t *testing.T) {
		p := validProfile()
		p.Parameters[0].Domain = "fuzzy"
		p.Parameters[0].Range = nil
		err := Validate(p)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown domain")
	})

	t.Run("duplicate parameter names", func(t *testing.T) {
		p := validProfile()
		p.Parameters[1] = p.Parameters[0]
		err := Validate(p)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate parameter name")
	})
}

func TestValidate_EmptySelectionRule(t *testing.T) {
	p := validProfile()
	p.Selection = &Selection{Rule: "   "}
	err := Validate(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "selection rule cannot be empty")
}

func TestValidateDocument(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		assert.NoError(t, ValidateDocument([]byte(validProfileYAML)))
	})

	t.Run("missing required sections", func(t *testing.T) {
		err := ValidateDocument([]byte("profile:\n  name: p\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "schema validation failed")
	})

	t.Run("bad domain enum", func(t *testing.T) {
		doc := strings.Replace(validProfileYAML, "domain: discrete", "domain: sideways", 1)
		err := ValidateDocument([]byte(doc))
		require.Error(t, err)
	})
}
