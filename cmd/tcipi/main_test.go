package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/couchcryptid/tcipi-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_TextOutput(t *testing.T) {
	code, out, _ := runCLI(t, "-sst", "28", "-shear", "10", "-humidity", "65", "-divergence", "15", "-ohc", "75")

	require.Equal(t, 0, code)
	assert.Contains(t, out, "Profile: ohc")
	assert.Contains(t, out, "Ocean Heat Content")
	assert.Contains(t, out, "Composite: 5.55")
	assert.Contains(t, out, "TCIPI: 5.5")
	assert.Contains(t, out, "Category: Medium")
	assert.NotContains(t, out, "Size adjustment")
}

func TestRun_SizeAdjustmentShown(t *testing.T) {
	code, out, _ := runCLI(t, "-sst", "31", "-shear", "5", "-humidity", "75", "-divergence", "20", "-ohc", "100", "-size", "small")

	require.Equal(t, 0, code)
	assert.Contains(t, out, "Pre-adjustment: 7.5 (High)")
	assert.Contains(t, out, "Size adjustment (small): +0.75")
	assert.Contains(t, out, "Category: Very High")
}

func TestRun_JSONOutput(t *testing.T) {
	code, out, _ := runCLI(t, "-json", "-profile", "convergence",
		"-sst", "28", "-shear", "10", "-humidity", "65", "-divergence", "15", "-convergence", "20")

	require.Equal(t, 0, code)
	var a domain.Assessment
	require.NoError(t, json.Unmarshal([]byte(out), &a))
	assert.Equal(t, "convergence", a.Profile)
	assert.Equal(t, domain.FactorConvergence, a.SubScores.FifthFactor)
	assert.Equal(t, 5.5, a.Index)
	assert.Equal(t, domain.CategoryMedium, a.Category)
}

func TestRun_Legend(t *testing.T) {
	code, out, _ := runCLI(t, "-categories", "-profile", "convergence")

	require.Equal(t, 0, code)
	assert.Contains(t, out, "8.5-10")
	assert.Contains(t, out, "0-3.9")
}

func TestRun_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown profile", []string{"-profile", "shear"}, "unknown profile"},
		{"unknown size", []string{"-size", "tiny"}, "unknown size class"},
		{"bad float", []string{"-sst", "warm"}, "invalid value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := runCLI(t, tt.args...)
			assert.Equal(t, 2, code)
			assert.Contains(t, errOut, tt.want)
		})
	}
}
