package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gs1ops/edimon/internal/domain/model"
)

func strPtr(s string) *string { return &s }

func TestClassify_CriticalPhrases(t *testing.T) {
	tests := []struct {
		name   string
		reason string
	}{
		{
			name:   "alta empresa failure",
			reason: "Error al dar de alta la empresa",
		},
		{
			name:   "foreach failure",
			reason: "Error en el alta de la empresa. - Invalid argument supplied for foreach()",
		},
		{
			name:   "missing company for user",
			reason: "No existe la empresa, no se creo el usuario",
		},
		{
			name:   "missing user",
			reason: "No existe el usuario, no se creo el usuario",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, model.ClassificationCritical, Classify(strPtr(tt.reason)))
		})
		t.Run(tt.name+" uppercase", func(t *testing.T) {
			assert.Equal(t, model.ClassificationCritical, Classify(strPtr(strings.ToUpper(tt.reason))))
		})
		t.Run(tt.name+" lowercase", func(t *testing.T) {
			assert.Equal(t, model.ClassificationCritical, Classify(strPtr(strings.ToLower(tt.reason))))
		})
		t.Run(tt.name+" embedded", func(t *testing.T) {
			embedded := "2024-01-02 worker[3]: " + tt.reason + " (job 99)"
			assert.Equal(t, model.ClassificationCritical, Classify(strPtr(embedded)))
		})
	}
}

func TestClassify_ForeachPhraseSeparatorVariants(t *testing.T) {
	// The legacy pipeline is not consistent about spacing around the dash.
	variants := []string{
		"Error en el alta de la empresa. - Invalid argument supplied for foreach()",
		"Error en el alta de la empresa.- Invalid argument supplied for foreach()",
		"Error en el alta de la empresa.  -  Invalid argument supplied for foreach()",
		"Error en el alta de la empresa.-Invalid argument supplied for foreach()",
	}
	for _, v := range variants {
		assert.Equal(t, model.ClassificationCritical, Classify(strPtr(v)), "variant %q", v)
	}
}

func TestClassify_Ok(t *testing.T) {
	tests := []struct {
		name   string
		reason *string
	}{
		{name: "nil reason", reason: nil},
		{name: "empty reason", reason: strPtr("")},
		{name: "unrelated rejection", reason: strPtr("Documento duplicado")},
		{name: "similar but paraphrased", reason: strPtr("Error al dar de baja la empresa")},
		{name: "partial phrase", reason: strPtr("No existe la empresa")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, model.ClassificationOk, Classify(tt.reason))
		})
	}
}

func TestClassify_Stable(t *testing.T) {
	reason := strPtr("Error al dar de alta la empresa")
	first := Classify(reason)
	for range 10 {
		assert.Equal(t, first, Classify(reason))
	}
}

func TestJob_ClassifiesRow(t *testing.T) {
	j := model.Job{ID: 7, Platform: model.PlatformEDI, RejectionReason: strPtr("No existe el usuario, no se creo el usuario")}
	cj := Job(j)

	assert.Equal(t, j, cj.Job)
	assert.Equal(t, model.ClassificationCritical, cj.Classification)

	okRow := Job(model.Job{ID: 8, Platform: model.PlatformEDI})
	assert.Equal(t, model.ClassificationOk, okRow.Classification)
}
