// Package classify decides whether a publication job failed critically based
// on its rejection reason text.
package classify

import (
	"regexp"

	"github.com/gs1ops/edimon/internal/domain/model"
)

// criticalPattern is the fixed alternation of known critical-failure phrases
// emitted by the legacy pipeline. The list is deliberately literal: it is not
// a rule engine, and the phrases must not be paraphrased. Matching is a
// case-insensitive substring search.
var criticalPattern = regexp.MustCompile(
	`(?i)(Error al dar de alta la empresa` +
		`|Error en el alta de la empresa\.\s*-\s*Invalid argument supplied for foreach\(\)` +
		`|No existe la empresa, no se creo el usuario` +
		`|No existe el usuario, no se creo el usuario)`,
)

// Classify returns the health verdict for a single rejection reason.
// A nil or empty reason is Ok. The function is pure and stable: no side
// effects, no locale or time dependence, and it never fails.
func Classify(reason *string) model.Classification {
	if reason == nil || *reason == "" {
		return model.ClassificationOk
	}
	if criticalPattern.MatchString(*reason) {
		return model.ClassificationCritical
	}
	return model.ClassificationOk
}

// Job classifies a full job row.
func Job(j model.Job) model.ClassifiedJob {
	return model.ClassifiedJob{Job: j, Classification: Classify(j.RejectionReason)}
}
