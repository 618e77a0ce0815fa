package display

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/devup/pkg/provision"
	"github.com/stretchr/testify/assert"
)

func sampleReport() *provision.Report {
	return &provision.Report{Steps: []*provision.StepResult{
		{
			Step: "packages",
			Items: []provision.ItemResult{
				{Name: "Git", Status: provision.StatusSkipped},
				{Name: "jq", Status: provision.StatusInstalled},
				{Name: "ripgrep", Status: provision.StatusFailed, Err: assert.AnError},
			},
		},
	}}
}

func TestRenderReport(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	r.RenderReport(sampleReport())
	out := buf.String()

	assert.Contains(t, out, "packages")
	assert.Contains(t, out, "jq")
	assert.Contains(t, out, "Git (already present)")
	assert.Contains(t, out, "ripgrep")
	assert.Contains(t, out, "1 installed, 1 skipped, 1 failed")
}

func TestRenderReport_CleanRun(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	r.RenderReport(&provision.Report{Steps: []*provision.StepResult{
		{
			Step: "packages",
			Items: []provision.ItemResult{
				{Name: "Git", Status: provision.StatusSkipped},
			},
		},
	}})

	assert.Contains(t, buf.String(), "0 installed, 1 skipped, 0 failed")
}

func TestRenderPresence(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	err := r.RenderPresence([][]string{
		{"Git", "git", "yes"},
		{"ripgrep", "rg", "no"},
	})

	assert.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Git")
	assert.Contains(t, out, "rg")
}
