package arch

import "fmt"

// ModelID addresses a circuit model inside a Library arena.
type ModelID int

// InvalidModel is the sentinel for "no model referenced".
const InvalidModel ModelID = -1

// ModelType enumerates the circuit-model kinds the naming engine knows.
type ModelType int

const (
	ModelMux ModelType = iota
	ModelLUT
	ModelGate
	ModelSRAM
	ModelWire
)

func (t ModelType) String() string {
	switch t {
	case ModelMux:
		return "mux"
	case ModelLUT:
		return "lut"
	case ModelGate:
		return "gate"
	case ModelSRAM:
		return "sram"
	case ModelWire:
		return "wire"
	}
	return fmt.Sprintf("model_type(%d)", int(t))
}

// ParseModelType converts the serialized model-type token.
func ParseModelType(s string) (ModelType, error) {
	switch s {
	case "mux":
		return ModelMux, nil
	case "lut":
		return ModelLUT, nil
	case "gate":
		return ModelGate, nil
	case "sram":
		return ModelSRAM, nil
	case "wire":
		return ModelWire, nil
	}
	return 0, fmt.Errorf("unknown model type %q", s)
}

// GateType refines ModelGate into a concrete standard-cell kind.
type GateType int

const (
	GateNone GateType = iota
	GateAnd
	GateOr
	GateMux2 // 2-input mux standard cell
)

func (g GateType) String() string {
	switch g {
	case GateNone:
		return "none"
	case GateAnd:
		return "and"
	case GateOr:
		return "or"
	case GateMux2:
		return "mux2"
	}
	return fmt.Sprintf("gate_type(%d)", int(g))
}

// ParseGateType converts the serialized gate-kind token.
func ParseGateType(s string) (GateType, error) {
	switch s {
	case "and":
		return GateAnd, nil
	case "or":
		return GateOr, nil
	case "mux2":
		return GateMux2, nil
	}
	return 0, fmt.Errorf("unknown gate type %q", s)
}

type model struct {
	name     string
	typ      ModelType
	gate     GateType
	passGate ModelID
}

// Library is the read-only circuit-model catalog. It is built once by the
// architecture loader and then read concurrently by any number of naming
// calls without synchronization.
type Library struct {
	models []model
	byName map[string]ModelID
}

// NewLibrary returns an empty catalog.
func NewLibrary() *Library {
	return &Library{byName: make(map[string]ModelID)}
}

// AddModel registers a model and returns its arena id.
func (l *Library) AddModel(name string, typ ModelType) ModelID {
	id := ModelID(len(l.models))
	l.models = append(l.models, model{name: name, typ: typ, gate: GateNone, passGate: InvalidModel})
	l.byName[name] = id
	return id
}

// AddGateModel registers a logic-gate model with its gate kind.
func (l *Library) AddGateModel(name string, gate GateType) ModelID {
	id := l.AddModel(name, ModelGate)
	l.models[id].gate = gate
	return id
}

// SetPassGateLogicModel links a multiplexer model to the gate or pass-gate
// model implementing its branches.
func (l *Library) SetPassGateLogicModel(mux, passGate ModelID) {
	l.models[mux].passGate = passGate
}

// ModelByName resolves a catalog name to an id.
func (l *Library) ModelByName(name string) (ModelID, bool) {
	id, ok := l.byName[name]
	return id, ok
}

// NumModels returns the number of registered models.
func (l *Library) NumModels() int {
	return len(l.models)
}

// Valid reports whether id addresses a model in this catalog.
func (l *Library) Valid(id ModelID) bool {
	return id >= 0 && int(id) < len(l.models)
}

// ModelName returns the catalog name of a model.
func (l *Library) ModelName(id ModelID) string {
	return l.models[id].name
}

// ModelType returns the kind of a model.
func (l *Library) ModelType(id ModelID) ModelType {
	return l.models[id].typ
}

// GateType returns the gate kind of a ModelGate model, GateNone otherwise.
func (l *Library) GateType(id ModelID) GateType {
	return l.models[id].gate
}

// PassGateLogicModel returns the branch implementation model of a
// multiplexer, or InvalidModel when none is linked.
func (l *Library) PassGateLogicModel(id ModelID) ModelID {
	return l.models[id].passGate
}
