package service

import (
	cultoModel "pulpito_backend/internals/features/cultos/cultos/model"
	tipoModel "pulpito_backend/internals/features/cultos/tipos/model"
)

type Completion string

const (
	Complete   Completion = "completo"
	Incomplete Completion = "incompleto"
)

// Evaluate indica si todos los puestos que exige el tipo están cubiertos.
// Un tipo sin resolver (nil) nunca da un culto por completo.
func Evaluate(c *cultoModel.CultoModel, t *tipoModel.TipoCultoModel) Completion {
	if c == nil || t == nil {
		return Incomplete
	}
	for _, r := range tipoModel.AllRoles {
		if t.Requires(r) && c.Assignee(r) == nil {
			return Incomplete
		}
	}
	return Complete
}

// MissingRoles lista los puestos exigidos sin asignar. Con tipo nil, todos.
func MissingRoles(c *cultoModel.CultoModel, t *tipoModel.TipoCultoModel) []tipoModel.Role {
	missing := make([]tipoModel.Role, 0, len(tipoModel.AllRoles))
	for _, r := range tipoModel.AllRoles {
		if t == nil || c == nil {
			missing = append(missing, r)
			continue
		}
		if t.Requires(r) && c.Assignee(r) == nil {
			missing = append(missing, r)
		}
	}
	return missing
}
